// Package facts harvests the structural inventory of a test file in a single
// read-only traversal: imports, suites, cases, hooks, selectors, commands,
// assertion sites, page-object references and tags. Every fact keeps its
// source span so callers can point back at the original line.
package facts

import (
	"github.com/lucad87/mcp-server-tests-migration/internal/jsparse"
)

// HookKind names the six recognized hook positions.
type HookKind string

const (
	HookPreSuite     HookKind = "preSuite"     // before
	HookPostSuite    HookKind = "postSuite"    // after
	HookPreCase      HookKind = "preCase"      // beforeEach
	HookPostCase     HookKind = "postCase"     // afterEach
	HookPreCaseList  HookKind = "preCaseList"  // beforeAll
	HookPostCaseList HookKind = "postCaseList" // afterAll
)

// Binding is one imported name: Local is the in-file name, Origin the
// exported name when the binding was renamed.
type Binding struct {
	Local  string `json:"local"`
	Origin string `json:"origin,omitempty"`
}

// Import records one import or require declaration.
type Import struct {
	Source   string        `json:"source"`
	Bindings []Binding     `json:"bindings,omitempty"`
	Require  bool          `json:"require,omitempty"`
	Span     jsparse.Span  `json:"span"`
}

// TestGroup is a describe-style suite declaration.
type TestGroup struct {
	Name string       `json:"name"`
	Tags []string     `json:"tags,omitempty"`
	Span jsparse.Span `json:"span"`
}

// TestCase is a single test declaration.
type TestCase struct {
	Name string       `json:"name"`
	Tags []string     `json:"tags,omitempty"`
	Span jsparse.Span `json:"span"`
}

// Hook is a lifecycle hook declaration.
type Hook struct {
	Kind       HookKind     `json:"kind"`
	Name       string       `json:"name"`
	Namespaced bool         `json:"namespaced,omitempty"`
	Span       jsparse.Span `json:"span"`
}

// Selector is a raw $()/$$() element lookup with a string-literal argument.
type Selector struct {
	Raw      string       `json:"raw"`
	Multiple bool         `json:"multiple,omitempty"`
	Span     jsparse.Span `json:"span"`
}

// Command is a member-call command name. Calls on the global browser/driver
// handle are qualified, e.g. "browser.url".
type Command struct {
	Name string       `json:"name"`
	Span jsparse.Span `json:"span"`
}

// Assertion is one assertion call site.
type Assertion struct {
	Matcher string       `json:"matcher,omitempty"`
	Span    jsparse.Span `json:"span"`
}

// PageObjectRef is a construction of a class whose name carries a Page or
// Component suffix.
type PageObjectRef struct {
	ClassName string       `json:"className"`
	Span      jsparse.Span `json:"span"`
}

// Facts is the ordered structural inventory of one file. Sequence order is
// source appearance order; nothing is sorted after the fact.
type Facts struct {
	Imports        []Import        `json:"imports"`
	TestGroups     []TestGroup     `json:"testGroups"`
	TestCases      []TestCase      `json:"testCases"`
	Hooks          []Hook          `json:"hooks"`
	Selectors      []Selector      `json:"selectors"`
	Commands       []Command       `json:"commands"`
	Assertions     []Assertion     `json:"assertions"`
	PageObjectRefs []PageObjectRef `json:"pageObjectRefs"`
	// Tags preserves multiplicity across the whole file; per-description
	// duplicates are already collapsed by the tag engine.
	Tags []string `json:"tags"`
}

// hookKinds maps hook call names to their kind.
var hookKinds = map[string]HookKind{
	"before":     HookPreSuite,
	"after":      HookPostSuite,
	"beforeEach": HookPreCase,
	"afterEach":  HookPostCase,
	"beforeAll":  HookPreCaseList,
	"afterAll":   HookPostCaseList,
}

// assertionVerbs is the fixed set of terminal member names recognized as
// assertion matchers.
var assertionVerbs = map[string]bool{
	"toBe":             true,
	"toEqual":          true,
	"toExist":          true,
	"toContain":        true,
	"toMatch":          true,
	"toHaveText":       true,
	"toHaveValue":      true,
	"toHaveTitle":      true,
	"toHaveUrl":        true,
	"toHaveURL":        true,
	"toHaveAttribute":  true,
	"toBeDisplayed":    true,
	"toBeVisible":      true,
	"toBeEnabled":      true,
	"toBeDisabled":     true,
	"toBeChecked":      true,
	"toBeFocused":      true,
	"toBeClickable":    true,
}
