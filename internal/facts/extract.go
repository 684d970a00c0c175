package facts

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/lucad87/mcp-server-tests-migration/internal/jsparse"
	"github.com/lucad87/mcp-server-tests-migration/internal/tags"
)

// Extract walks the tree once and returns the structural facts of the file.
// The traversal is read-only; the tree is not retained.
func Extract(tree *jsparse.Tree) *Facts {
	f := &Facts{}

	jsparse.Walk(tree.Root, func(n *sitter.Node) bool {
		switch n.Type() {
		case jsparse.NodeImportStatement:
			f.Imports = append(f.Imports, extractImport(tree, n))

		case jsparse.NodeVariableDeclarator:
			if imp, ok := extractRequire(tree, n); ok {
				f.Imports = append(f.Imports, imp)
			}

		case jsparse.NodeCallExpression:
			f.extractCall(tree, n)

		case jsparse.NodeNewExpression:
			if ref, ok := extractPageObjectRef(tree, n); ok {
				f.PageObjectRefs = append(f.PageObjectRefs, ref)
			}
		}
		return true
	})

	return f
}

func (f *Facts) extractCall(tree *jsparse.Tree, call *sitter.Node) {
	span := tree.SpanOf(call)

	if name := tree.CalleeName(call); name != "" {
		switch name {
		case "describe":
			if title, _, ok := tree.FirstStringArg(call); ok {
				found := tags.Extract(title)
				f.TestGroups = append(f.TestGroups, TestGroup{Name: title, Tags: found, Span: span})
				f.Tags = append(f.Tags, found...)
			}
			return
		case "it", "test":
			if title, _, ok := tree.FirstStringArg(call); ok {
				found := tags.Extract(title)
				f.TestCases = append(f.TestCases, TestCase{Name: title, Tags: found, Span: span})
				f.Tags = append(f.Tags, found...)
			}
			return
		case "$", "$$":
			if raw, _, ok := tree.FirstStringArg(call); ok {
				f.Selectors = append(f.Selectors, Selector{Raw: raw, Multiple: name == "$$", Span: span})
			}
			return
		case "expect":
			f.Assertions = append(f.Assertions, Assertion{Span: span})
			return
		}
		if kind, ok := hookKinds[name]; ok {
			f.Hooks = append(f.Hooks, Hook{Kind: kind, Name: name, Span: span})
			return
		}
		return
	}

	obj, prop := tree.MemberCallee(call)
	if prop == "" {
		return
	}

	// Namespaced suite/case/hook forms: test.describe, test.beforeEach, ...
	if obj == "test" {
		switch prop {
		case "describe":
			if title, _, ok := tree.FirstStringArg(call); ok {
				found := tags.Extract(title)
				f.TestGroups = append(f.TestGroups, TestGroup{Name: title, Tags: found, Span: span})
				f.Tags = append(f.Tags, found...)
			}
			return
		}
		if kind, ok := hookKinds[prop]; ok {
			f.Hooks = append(f.Hooks, Hook{Kind: kind, Name: prop, Namespaced: true, Span: span})
			return
		}
	}

	if assertionVerbs[prop] {
		f.Assertions = append(f.Assertions, Assertion{Matcher: prop, Span: span})
		return
	}

	name := prop
	if obj == "browser" || obj == "driver" {
		name = obj + "." + prop
	}
	f.Commands = append(f.Commands, Command{Name: name, Span: span})
}

func extractImport(tree *jsparse.Tree, imp *sitter.Node) Import {
	out := Import{
		Source: tree.ImportSource(imp),
		Span:   tree.SpanOf(imp),
	}

	jsparse.Walk(imp, func(n *sitter.Node) bool {
		switch n.Type() {
		case "import_specifier":
			name := n.ChildByFieldName("name")
			alias := n.ChildByFieldName("alias")
			b := Binding{Local: tree.Text(name)}
			if alias != nil {
				b.Local = tree.Text(alias)
				b.Origin = tree.Text(name)
			}
			out.Bindings = append(out.Bindings, b)
			return false
		case "namespace_import":
			for i := 0; i < int(n.NamedChildCount()); i++ {
				child := n.NamedChild(i)
				if child.Type() == jsparse.NodeIdentifier {
					out.Bindings = append(out.Bindings, Binding{Local: tree.Text(child)})
				}
			}
			return false
		case "import_clause":
			// Default import: bare identifier directly under the clause.
			for i := 0; i < int(n.NamedChildCount()); i++ {
				child := n.NamedChild(i)
				if child.Type() == jsparse.NodeIdentifier {
					out.Bindings = append(out.Bindings, Binding{Local: tree.Text(child)})
				}
			}
			return true
		}
		return true
	})

	return out
}

func extractRequire(tree *jsparse.Tree, decl *sitter.Node) (Import, bool) {
	value := decl.ChildByFieldName("value")
	if value == nil || value.Type() != jsparse.NodeCallExpression {
		return Import{}, false
	}
	src := tree.RequireSource(value)
	if src == "" {
		return Import{}, false
	}

	out := Import{
		Source:  src,
		Require: true,
		Span:    tree.SpanOf(decl),
	}

	name := decl.ChildByFieldName("name")
	if name == nil {
		return out, true
	}
	switch name.Type() {
	case jsparse.NodeIdentifier:
		out.Bindings = append(out.Bindings, Binding{Local: tree.Text(name)})
	case "object_pattern":
		jsparse.Walk(name, func(n *sitter.Node) bool {
			switch n.Type() {
			case "shorthand_property_identifier_pattern":
				out.Bindings = append(out.Bindings, Binding{Local: tree.Text(n)})
			case "pair_pattern":
				key := n.ChildByFieldName("key")
				val := n.ChildByFieldName("value")
				out.Bindings = append(out.Bindings, Binding{Local: tree.Text(val), Origin: tree.Text(key)})
				return false
			}
			return true
		})
	}

	return out, true
}

func extractPageObjectRef(tree *jsparse.Tree, expr *sitter.Node) (PageObjectRef, bool) {
	ctor := expr.ChildByFieldName("constructor")
	if ctor == nil || ctor.Type() != jsparse.NodeIdentifier {
		return PageObjectRef{}, false
	}
	name := tree.Text(ctor)
	if !strings.HasSuffix(name, "Page") && !strings.HasSuffix(name, "Component") {
		return PageObjectRef{}, false
	}
	return PageObjectRef{ClassName: name, Span: tree.SpanOf(expr)}, true
}
