// Package tags extracts and strips inline test-tag markers from free-text
// test and suite descriptions. Three surface syntaxes are recognized:
// bracketed ("login works [SMOKE]"), at-prefixed ("login works @smoke") and
// hash-prefixed ("login works #smoke"). Tokens are normalized to lowercase.
package tags

import (
	"regexp"
	"strings"
)

var (
	bracketPattern = regexp.MustCompile(`\[([A-Za-z0-9_-]+)\]`)
	atPattern      = regexp.MustCompile(`@([A-Za-z0-9_-]+)`)
	hashPattern    = regexp.MustCompile(`#([A-Za-z0-9_-]+)`)

	whitespaceRun = regexp.MustCompile(`\s{2,}`)
)

// Extract returns the ordered unique lowercase tags found in text.
// Discovery order follows the three syntaxes in sequence (bracketed,
// at-prefixed, hash-prefixed), each left to right. Duplicates across
// syntaxes collapse to the first occurrence.
func Extract(text string) []string {
	var out []string
	seen := make(map[string]bool)

	for _, pattern := range []*regexp.Regexp{bracketPattern, atPattern, hashPattern} {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			tag := strings.ToLower(m[1])
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}

	return out
}

// Strip removes all tag markers from text, collapses the whitespace runs
// left behind and trims the result. Strip never fails; text without tags
// is returned trimmed but otherwise unchanged.
func Strip(text string) string {
	out := bracketPattern.ReplaceAllString(text, "")
	out = atPattern.ReplaceAllString(out, "")
	out = hashPattern.ReplaceAllString(out, "")
	out = whitespaceRun.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
