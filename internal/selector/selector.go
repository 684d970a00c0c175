// Package selector maps raw CSS/WebdriverIO selector strings to ranked
// Playwright locator expressions. The priority order encodes locator
// resilience: test ids survive markup changes better than labels, labels
// better than roles, and raw CSS is the last resort.
package selector

import (
	"fmt"
	"regexp"
	"strings"
)

// Strategy identifies which locator strategy a selector was classified into.
type Strategy string

const (
	StrategyTestID      Strategy = "testId"
	StrategyLabel       Strategy = "label"
	StrategyRole        Strategy = "role"
	StrategyPlaceholder Strategy = "placeholder"
	StrategyCSS         Strategy = "css"
)

// Transform is the result of classifying a single selector string.
type Transform struct {
	// Code is the Playwright locator expression, e.g. page.getByTestId('submit').
	Code string `json:"code"`
	// Strategy is the locator strategy the selector was mapped onto.
	Strategy Strategy `json:"strategy"`
	// Original is the input selector, unchanged.
	Original string `json:"original"`
	// Advisory is an optional human-readable improvement hint.
	Advisory string `json:"advisory,omitempty"`
}

var (
	testIDPattern      = regexp.MustCompile(`\[data-test(?:-?id)?\s*=\s*["']?([^"'\]]+)["']?\]`)
	ariaLabelPattern   = regexp.MustCompile(`\[aria-label\s*=\s*["']?([^"'\]]+)["']?\]`)
	rolePattern        = regexp.MustCompile(`\[role\s*=\s*["']?([^"'\]]+)["']?\]`)
	placeholderPattern = regexp.MustCompile(`\[placeholder\s*=\s*["']?([^"'\]]+)["']?\]`)
	tagButtonPattern   = regexp.MustCompile(`^(button|a)(\[.*\])?$`)
)

// Classify maps a raw selector string to a locator expression. It is a total,
// deterministic, pure function: every input terminates in exactly one strategy,
// with the CSS fallback guaranteeing a result. First match wins; the order of
// the cases must not change.
func Classify(sel string) Transform {
	if m := testIDPattern.FindStringSubmatch(sel); m != nil {
		return Transform{
			Code:     fmt.Sprintf("page.getByTestId(%s)", quote(m[1])),
			Strategy: StrategyTestID,
			Original: sel,
		}
	}

	if m := ariaLabelPattern.FindStringSubmatch(sel); m != nil {
		return Transform{
			Code:     fmt.Sprintf("page.getByLabel(%s)", quote(m[1])),
			Strategy: StrategyLabel,
			Original: sel,
		}
	}

	if m := rolePattern.FindStringSubmatch(sel); m != nil {
		return Transform{
			Code:     fmt.Sprintf("page.getByRole(%s)", quote(m[1])),
			Strategy: StrategyRole,
			Original: sel,
		}
	}

	if m := placeholderPattern.FindStringSubmatch(sel); m != nil {
		return Transform{
			Code:     fmt.Sprintf("page.getByPlaceholder(%s)", quote(m[1])),
			Strategy: StrategyPlaceholder,
			Original: sel,
		}
	}

	if m := tagButtonPattern.FindStringSubmatch(sel); m != nil {
		role := "button"
		if m[1] == "a" {
			role = "link"
		}
		return Transform{
			Code:     fmt.Sprintf("page.getByRole(%s)", quote(role)),
			Strategy: StrategyRole,
			Original: sel,
			Advisory: "add a { name: ... } option to disambiguate this " + role,
		}
	}

	return Transform{
		Code:     fmt.Sprintf("page.locator(%s)", quote(sel)),
		Strategy: StrategyCSS,
		Original: sel,
		Advisory: "consider adding a data-testid attribute for a more resilient locator",
	}
}

// quote renders a JS single-quoted string literal.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
