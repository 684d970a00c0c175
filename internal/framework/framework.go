// Package framework decides which test dialect a source file is written in.
// The verdict gates the rewrite engine: target-only files are returned
// unchanged, which is what makes migration idempotent.
package framework

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/lucad87/mcp-server-tests-migration/internal/jsparse"
)

// Verdict is the four-way classification of a file's test dialect.
type Verdict struct {
	IsLegacy  bool `json:"isLegacy"`
	IsTarget  bool `json:"isTarget"`
	IsMixed   bool `json:"isMixed"`
	IsUnknown bool `json:"isUnknown"`
}

// String returns the verdict as a single word for logs and reports.
func (v Verdict) String() string {
	switch {
	case v.IsMixed:
		return "mixed"
	case v.IsLegacy:
		return "webdriverio"
	case v.IsTarget:
		return "playwright"
	default:
		return "unknown"
	}
}

// IsLegacySource reports whether an import/require source belongs to the
// WebdriverIO family, including its assertion library.
func IsLegacySource(src string) bool {
	return strings.Contains(src, "webdriverio") ||
		strings.HasPrefix(src, "@wdio/") ||
		src == "expect-webdriverio"
}

// IsTargetSource reports whether an import source names the Playwright test package.
func IsTargetSource(src string) bool {
	return src == "@playwright/test" || strings.HasPrefix(src, "@playwright/")
}

// Classify walks the tree once and scans call callees and import sources for
// dialect markers. Evidence of both families yields a mixed verdict; IsLegacy
// and IsTarget are never both set.
func Classify(tree *jsparse.Tree) Verdict {
	var legacy, target bool

	jsparse.Walk(tree.Root, func(n *sitter.Node) bool {
		switch n.Type() {
		case jsparse.NodeCallExpression:
			switch tree.CalleeName(n) {
			case "$", "$$":
				legacy = true
			case "require":
				if src := tree.RequireSource(n); IsLegacySource(src) {
					legacy = true
				}
			}
			if obj, prop := tree.MemberCallee(n); prop != "" {
				switch obj {
				case "browser", "driver":
					legacy = true
				case "page":
					target = true
				}
			}
		case jsparse.NodeImportStatement:
			src := tree.ImportSource(n)
			if IsLegacySource(src) {
				legacy = true
			}
			if IsTargetSource(src) {
				target = true
			}
		}
		return true
	})

	switch {
	case legacy && target:
		return Verdict{IsMixed: true}
	case legacy:
		return Verdict{IsLegacy: true}
	case target:
		return Verdict{IsTarget: true}
	default:
		return Verdict{IsUnknown: true}
	}
}
