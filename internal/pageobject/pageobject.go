// Package pageobject synthesizes a Page Object class skeleton from an
// already-migrated Playwright spec: locators become constructor fields,
// the first navigation URL becomes an open() method.
package pageobject

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/lucad87/mcp-server-tests-migration/internal/errors"
	"github.com/lucad87/mcp-server-tests-migration/internal/jsparse"
)

// LocatorKind names the recognized locator factories.
type LocatorKind string

const (
	LocatorTestID      LocatorKind = "testId"
	LocatorLabel       LocatorKind = "label"
	LocatorRole        LocatorKind = "role"
	LocatorPlaceholder LocatorKind = "placeholder"
	LocatorGeneric     LocatorKind = "css"
)

// factoryKinds maps factory method names to locator kinds; page.locator is
// the generic fallback.
var factoryKinds = map[string]LocatorKind{
	"getByTestId":      LocatorTestID,
	"getByLabel":       LocatorLabel,
	"getByRole":        LocatorRole,
	"getByPlaceholder": LocatorPlaceholder,
	"locator":          LocatorGeneric,
}

// actionVocabulary is the fixed set of interaction method names collected
// from the migrated test body.
var actionVocabulary = map[string]bool{
	"click":                  true,
	"dblclick":               true,
	"fill":                   true,
	"clear":                  true,
	"press":                  true,
	"pressSequentially":      true,
	"type":                   true,
	"check":                  true,
	"uncheck":                true,
	"selectOption":           true,
	"hover":                  true,
	"tap":                    true,
	"focus":                  true,
	"blur":                   true,
	"dragTo":                 true,
	"scrollIntoViewIfNeeded": true,
	"setInputFiles":          true,
}

// Locator is one discovered locator-factory call.
type Locator struct {
	Kind      LocatorKind  `json:"kind"`
	Args      string       `json:"args"`
	Value     string       `json:"value,omitempty"`
	FieldName string       `json:"fieldName"`
	Span      jsparse.Span `json:"span"`
}

// Info is the raw material the synthesizer extracted.
type Info struct {
	URLs           []string  `json:"urls"`
	Locators       []Locator `json:"locators"`
	Actions        []string  `json:"actions"`
	AssertionSites int       `json:"assertionSites"`
}

// Class is the synthesized page-object skeleton.
type Class struct {
	ClassName  string `json:"className"`
	FileName   string `json:"fileName"`
	SourceText string `json:"sourceText"`
}

// Synthesize re-parses migrated source and emits a page-object class
// skeleton named after the file.
func Synthesize(ctx context.Context, source string, filePath string) (*Class, *Info, error) {
	dialect := jsparse.DialectFromPath(filePath)
	tree, err := jsparse.Parse(ctx, []byte(source), dialect)
	if err != nil {
		return nil, nil, errors.NewParseFailure(filePath, err)
	}

	info := collect(tree)
	className := ClassName(filePath)
	class := &Class{
		ClassName:  className,
		FileName:   fileName(filePath),
		SourceText: render(className, info, dialect),
	}
	return class, info, nil
}

// collect gathers navigation URLs, locators, actions and assertion sites in
// one traversal.
func collect(tree *jsparse.Tree) *Info {
	info := &Info{}
	used := make(map[string]int)
	seenArgs := make(map[string]bool)
	seenActions := make(map[string]bool)
	index := 0

	jsparse.Walk(tree.Root, func(n *sitter.Node) bool {
		if n.Type() != jsparse.NodeCallExpression {
			return true
		}

		if tree.CalleeName(n) == "expect" {
			info.AssertionSites++
			return true
		}

		obj, prop := tree.MemberCallee(n)
		if prop == "" {
			return true
		}

		if obj == "page" && prop == "goto" {
			if url, _, ok := tree.FirstStringArg(n); ok {
				info.URLs = append(info.URLs, url)
			}
			return true
		}

		if kind, ok := factoryKinds[prop]; ok && obj == "page" {
			argsNode := jsparse.ArgumentsOf(n)
			argsText := strings.TrimSpace(tree.Text(argsNode))
			argsText = strings.TrimPrefix(argsText, "(")
			argsText = strings.TrimSuffix(argsText, ")")
			if seenArgs[argsText] {
				return true // same locator twice, one field is enough
			}
			seenArgs[argsText] = true

			value, _, _ := tree.FirstStringArg(n)
			index++
			loc := Locator{
				Kind:  kind,
				Args:  argsText,
				Value: value,
				Span:  tree.SpanOf(n),
			}
			loc.FieldName = uniqueName(fieldName(loc, index), used)
			info.Locators = append(info.Locators, loc)
			return true
		}

		if actionVocabulary[prop] {
			if !seenActions[prop] {
				seenActions[prop] = true
				info.Actions = append(info.Actions, prop)
			}
		}
		return true
	})

	return info
}

var (
	attrTestIDPattern    = regexp.MustCompile(`data-test(?:-?id)?\s*=\s*["']?([^"'\]]+)["']?`)
	idSelectorPattern    = regexp.MustCompile(`#([A-Za-z][\w-]*)`)
	ariaLabelPattern     = regexp.MustCompile(`aria-label\s*=\s*["']?([^"'\]]+)["']?`)
	classSelectorPattern = regexp.MustCompile(`\.([A-Za-z][\w-]*)`)
)

// fieldName derives a field name for a locator following the priority
// order: test-id value, id selector, aria-label (with Element suffix),
// class selector, positional fallback.
func fieldName(loc Locator, index int) string {
	if loc.Kind == LocatorTestID && loc.Value != "" {
		return camelCase(loc.Value)
	}
	if m := attrTestIDPattern.FindStringSubmatch(loc.Args); m != nil {
		return camelCase(m[1])
	}
	if m := idSelectorPattern.FindStringSubmatch(loc.Args); m != nil {
		return camelCase(m[1])
	}
	if loc.Kind == LocatorLabel && loc.Value != "" {
		return camelCase(loc.Value) + "Element"
	}
	if m := ariaLabelPattern.FindStringSubmatch(loc.Args); m != nil {
		return camelCase(m[1]) + "Element"
	}
	if m := classSelectorPattern.FindStringSubmatch(loc.Args); m != nil {
		return camelCase(m[1])
	}
	return fmt.Sprintf("element%d", index)
}

// uniqueName resolves collisions between distinct locators that derive the
// same field name by appending an ordinal.
func uniqueName(name string, used map[string]int) string {
	used[name]++
	if used[name] == 1 {
		return name
	}
	return fmt.Sprintf("%s%d", name, used[name])
}

// camelCase splits on hyphen/underscore/whitespace runs, upper-cases the
// letter after each split and lower-cases the very first character.
func camelCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '\t'
	})
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	for i, part := range parts {
		if i == 0 {
			b.WriteString(strings.ToLower(part[:1]) + part[1:])
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}

// testSuffixes are stripped from the base name before class naming.
var testSuffixes = []string{".spec", ".test", ".e2e"}

// ClassName derives the page-object class name from a file path:
// login.spec.js becomes LoginPage.
func ClassName(filePath string) string {
	base := filepath.Base(filePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	for _, suffix := range testSuffixes {
		base = strings.TrimSuffix(base, suffix)
	}

	parts := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_'
	})
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	b.WriteString("Page")
	return b.String()
}

// fileName derives the companion file name: login.spec.js -> login.page.js.
func fileName(filePath string) string {
	base := filepath.Base(filePath)
	ext := filepath.Ext(base)
	base = strings.TrimSuffix(base, ext)
	for _, suffix := range testSuffixes {
		base = strings.TrimSuffix(base, suffix)
	}
	if ext == "" {
		ext = ".js"
	}
	return base + ".page" + ext
}

// render emits the class skeleton. TypeScript sources get a typed page
// member; JavaScript sources a plain constructor.
func render(className string, info *Info, dialect jsparse.Dialect) string {
	url := "/"
	if len(info.URLs) > 0 {
		url = info.URLs[0]
	}

	var b strings.Builder
	if dialect == jsparse.DialectTypeScript {
		b.WriteString("import type { Page, Locator } from '@playwright/test';\n\n")
		b.WriteString("export class " + className + " {\n")
		b.WriteString("  readonly page: Page;\n")
		for _, loc := range info.Locators {
			b.WriteString("  readonly " + loc.FieldName + ": Locator;\n")
		}
		b.WriteString("\n  constructor(page: Page) {\n")
	} else {
		b.WriteString("export class " + className + " {\n")
		b.WriteString("  constructor(page) {\n")
	}

	b.WriteString("    this.page = page;\n")
	for _, loc := range info.Locators {
		b.WriteString("    this." + loc.FieldName + " = page." + factoryCall(loc) + ";\n")
	}
	b.WriteString("  }\n\n")

	b.WriteString("  async open() {\n")
	b.WriteString("    await this.page.goto('" + url + "');\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")
	return b.String()
}

// factoryCall reconstructs the locator factory invocation for a field.
func factoryCall(loc Locator) string {
	var method string
	switch loc.Kind {
	case LocatorTestID:
		method = "getByTestId"
	case LocatorLabel:
		method = "getByLabel"
	case LocatorRole:
		method = "getByRole"
	case LocatorPlaceholder:
		method = "getByPlaceholder"
	default:
		method = "locator"
	}
	return method + "(" + loc.Args + ")"
}
