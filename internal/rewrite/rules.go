package rewrite

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/lucad87/mcp-server-tests-migration/internal/framework"
	"github.com/lucad87/mcp-server-tests-migration/internal/jsparse"
	"github.com/lucad87/mcp-server-tests-migration/internal/selector"
	"github.com/lucad87/mcp-server-tests-migration/internal/tags"
)

// hookRename maps legacy hook names to their namespaced Playwright form.
// The suite-scoped pair is promoted to beforeAll/afterAll; the rest keep
// their names under the runner identifier.
var hookRename = map[string]string{
	"before":     "test.beforeAll",
	"after":      "test.afterAll",
	"beforeEach": "test.beforeEach",
	"afterEach":  "test.afterEach",
	"beforeAll":  "test.beforeAll",
	"afterAll":   "test.afterAll",
}

// walk runs the single rewrite traversal. All rules are independent per
// node; emitted changes are logged in traversal order.
func (p *pass) walk() {
	jsparse.Walk(p.tree.Root, func(n *sitter.Node) bool {
		switch n.Type() {
		case jsparse.NodeImportStatement:
			p.rewriteImport(n)
		case jsparse.NodeLexicalDeclaration, jsparse.NodeVariableDeclaration:
			p.rewriteRequireDeclaration(n)
		case jsparse.NodeCallExpression:
			p.rewriteCall(n)
		}
		return true
	})
}

// rewriteImport replaces a legacy assertion-library import with the runner
// import. A second legacy import is removed rather than duplicated.
func (p *pass) rewriteImport(imp *sitter.Node) {
	src := p.tree.ImportSource(imp)
	if !framework.IsLegacySource(src) {
		return
	}

	if p.runnerImportPresent || p.runnerImportAdded {
		p.replace(imp.StartByte(), consumeNewline(p.tree.Source, imp.EndByte()), "")
		p.logf("Removed redundant import of '%s'", src)
		return
	}

	p.replace(imp.StartByte(), imp.EndByte(), runnerImport)
	p.runnerImportAdded = true
	p.logf("Replaced import of '%s' with %s", src, "@playwright/test")
}

// rewriteRequireDeclaration handles `const x = require('<legacy>')`:
// the declaration gains an equivalent import inserted before it and loses
// the legacy declarator, disappearing entirely when that leaves it empty.
func (p *pass) rewriteRequireDeclaration(decl *sitter.Node) {
	var keep []string
	var removedSources []string

	for i := 0; i < int(decl.NamedChildCount()); i++ {
		d := decl.NamedChild(i)
		if d.Type() != jsparse.NodeVariableDeclarator {
			continue
		}
		value := d.ChildByFieldName("value")
		src := p.tree.RequireSource(value)
		if src != "" && framework.IsLegacySource(src) {
			removedSources = append(removedSources, src)
			continue
		}
		keep = append(keep, p.tree.Text(d))
	}

	if len(removedSources) == 0 {
		return
	}

	importText := ""
	if !p.runnerImportPresent && !p.runnerImportAdded {
		importText = runnerImport
		p.runnerImportAdded = true
	}

	var replacement string
	switch {
	case len(keep) == 0 && importText == "":
		// Nothing to keep and the import already exists: drop the statement.
		p.replace(decl.StartByte(), consumeNewline(p.tree.Source, decl.EndByte()), "")
	case len(keep) == 0:
		p.replace(decl.StartByte(), decl.EndByte(), importText)
	default:
		keyword := "const"
		if kw := decl.Child(0); kw != nil {
			keyword = p.tree.Text(kw)
		}
		replacement = keyword + " " + strings.Join(keep, ", ") + ";"
		if importText != "" {
			replacement = importText + "\n" + replacement
		}
		p.replace(decl.StartByte(), decl.EndByte(), replacement)
	}

	for _, src := range removedSources {
		p.logf("Replaced require of '%s' with %s import", src, "@playwright/test")
	}
}

// rewriteCall applies the call-shaped rules: suites, cases, hooks, element
// lookups and mapped commands.
func (p *pass) rewriteCall(call *sitter.Node) {
	if name := p.tree.CalleeName(call); name != "" {
		switch name {
		case "describe":
			callee := jsparse.CalleeOf(call)
			p.replace(callee.StartByte(), callee.EndByte(), "test.describe")
			p.logf("Converted describe() to test.describe()")
		case "it", "test":
			p.rewriteTestCase(call, name)
		case "$", "$$":
			p.rewriteElementLookup(call, name)
		default:
			if renamed, ok := hookRename[name]; ok {
				callee := jsparse.CalleeOf(call)
				p.replace(callee.StartByte(), callee.EndByte(), renamed)
				p.logf("Converted %s() hook to %s()", name, renamed)
				p.injectPageParam(call)
			}
		}
		return
	}

	p.rewriteMemberCall(call)
}

// rewriteTestCase renames the case call, migrates inline tags into a
// structured options argument and injects the page fixture parameter.
func (p *pass) rewriteTestCase(call *sitter.Node, name string) {
	if name == "it" {
		callee := jsparse.CalleeOf(call)
		p.replace(callee.StartByte(), callee.EndByte(), "test")
		p.logf("Converted it() to test()")
	}
	p.injectTags(call)
	p.injectPageParam(call)
}

// injectTags strips tags from a string-literal title and re-inserts them as
// a { tag: [...] } options argument. When the call already carries a
// non-function second argument the title is left alone: that shape is
// treated as not-yet-migrated and no merge is attempted.
func (p *pass) injectTags(call *sitter.Node) {
	title, titleNode, ok := p.tree.FirstStringArg(call)
	if !ok {
		return
	}
	found := tags.Extract(title)
	if len(found) == 0 {
		return
	}

	args := jsparse.Args(call)
	if len(args) >= 2 && !jsparse.IsFunctionValue(args[1]) {
		p.note("Skipped tag injection where a non-callback second argument already exists.")
		return
	}

	raw := p.tree.Text(titleNode)
	quote := "'"
	if len(raw) > 0 {
		quote = string(raw[0])
	}
	stripped := tags.Strip(title)
	p.replace(titleNode.StartByte(), titleNode.EndByte(), quote+stripped+quote)

	prefixed := make([]string, len(found))
	for i, tag := range found {
		prefixed[i] = "'@" + tag + "'"
	}
	p.insert(titleNode.EndByte(), ", { tag: ["+strings.Join(prefixed, ", ")+"] }")

	p.tagsMigrated = append(p.tagsMigrated, found...)
	p.logf("Moved tags [%s] from test title into tag options", strings.Join(found, ", "))
}

// injectPageParam gives a zero-parameter trailing callback the destructured
// page fixture, typed when requested.
func (p *pass) injectPageParam(call *sitter.Node) {
	args := jsparse.Args(call)
	if len(args) == 0 {
		return
	}
	fn := args[len(args)-1]
	if !jsparse.IsFunctionValue(fn) {
		return
	}
	params := fn.ChildByFieldName("parameters")
	if params == nil || params.NamedChildCount() > 0 {
		return
	}

	text := plainPageParam
	if p.opts.TypedOutput {
		text = typedPageParam
	}
	p.replace(params.StartByte(), params.EndByte(), text)
	p.paramInjected = true
	p.logf("Injected { page } fixture parameter into callback")
}

// rewriteElementLookup swaps a $()/$$() call for the classified locator.
func (p *pass) rewriteElementLookup(call *sitter.Node, name string) {
	raw, _, ok := p.tree.FirstStringArg(call)
	if !ok {
		return
	}

	transform := selector.Classify(raw)
	p.replace(call.StartByte(), call.EndByte(), transform.Code)
	p.logf("Rewrote %s('%s') to %s (%s strategy)", name, raw, transform.Code, transform.Strategy)
	if transform.Advisory != "" {
		p.note("Selector '" + raw + "': " + transform.Advisory)
	}
	if name == "$$" {
		p.note("Multi-element lookup '" + raw + "': iterate with .all() or use .nth() on the locator.")
	}
}

// rewriteMemberCall translates mapped command names. Global-handle calls
// with a qualified mapping replace the whole receiver.property pair.
func (p *pass) rewriteMemberCall(call *sitter.Node) {
	obj, prop := p.tree.MemberCallee(call)
	if prop == "" || obj == "test" || obj == "page" || obj == "context" {
		return
	}

	callee := jsparse.CalleeOf(call)

	if obj == "browser" || obj == "driver" {
		if m, ok := p.engine.registry.Lookup("browser." + prop); ok {
			p.replace(callee.StartByte(), callee.EndByte(), m.Target)
			p.insertOptionLiteral(call, m.OptionLiteral)
			p.logf("Rewrote %s.%s to %s", obj, prop, m.Target)
			return
		}
		if m, ok := p.engine.registry.Lookup(prop); ok {
			p.rewriteProperty(call, prop, m.Target, m.OptionLiteral)
			return
		}
		p.note("Unmapped command left as-is: " + obj + "." + prop)
		return
	}

	if assertionVerb(prop) {
		return
	}
	if m, ok := p.engine.registry.Lookup(prop); ok {
		p.rewriteProperty(call, prop, m.Target, m.OptionLiteral)
	}
}

// rewriteProperty replaces only the method name of a member call.
func (p *pass) rewriteProperty(call *sitter.Node, prop, target, optionLiteral string) {
	if target == prop && optionLiteral == "" {
		return // identical mapping, nothing to change
	}
	_, propNode := jsparse.MemberParts(jsparse.CalleeOf(call))
	if propNode == nil {
		return
	}
	if target != prop {
		p.replace(propNode.StartByte(), propNode.EndByte(), target)
	}
	p.insertOptionLiteral(call, optionLiteral)
	if optionLiteral != "" {
		p.logf("Rewrote .%s() to .%s(%s)", prop, target, optionLiteral)
	} else {
		p.logf("Rewrote .%s() to .%s()", prop, target)
	}
}

// insertOptionLiteral places a mapping's option fragment into an empty
// argument list. Calls that already pass arguments are left alone.
func (p *pass) insertOptionLiteral(call *sitter.Node, literal string) {
	if literal == "" {
		return
	}
	args := jsparse.ArgumentsOf(call)
	if args == nil || args.NamedChildCount() > 0 {
		return
	}
	p.insert(args.StartByte()+1, literal)
}

// assertionVerb mirrors the extractor's fixed matcher set; mapped command
// renames must not touch assertion chains.
func assertionVerb(name string) bool {
	return strings.HasPrefix(name, "toBe") || strings.HasPrefix(name, "toHave") ||
		name == "toEqual" || name == "toExist" || name == "toContain" || name == "toMatch"
}

// consumeNewline extends a deletion span over one trailing newline so a
// removed statement doesn't leave a blank line behind.
func consumeNewline(source []byte, end uint32) uint32 {
	if int(end) < len(source) && source[end] == '\n' {
		return end + 1
	}
	return end
}
