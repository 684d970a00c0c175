package jsparse

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Node type names from the tree-sitter JavaScript/TypeScript grammars that
// the classifier, extractor and rewrite pass dispatch on.
const (
	NodeCallExpression      = "call_expression"
	NodeMemberExpression    = "member_expression"
	NodeNewExpression       = "new_expression"
	NodeImportStatement     = "import_statement"
	NodeVariableDeclarator  = "variable_declarator"
	NodeLexicalDeclaration  = "lexical_declaration"
	NodeVariableDeclaration = "variable_declaration"
	NodeArrowFunction       = "arrow_function"
	NodeString              = "string"
	NodeTemplateString      = "template_string"
	NodeIdentifier          = "identifier"
)

// functionExpressionTypes covers both grammar generations: older releases
// name the node "function", newer ones "function_expression".
var functionExpressionTypes = map[string]bool{
	"function":            true,
	"function_expression": true,
	"arrow_function":      true,
}

// IsFunctionValue reports whether a node is a callback-shaped expression.
func IsFunctionValue(node *sitter.Node) bool {
	return node != nil && functionExpressionTypes[node.Type()]
}

// CalleeOf returns the function child of a call expression.
func CalleeOf(call *sitter.Node) *sitter.Node {
	if call == nil || call.Type() != NodeCallExpression {
		return nil
	}
	return call.ChildByFieldName("function")
}

// ArgumentsOf returns the arguments node of a call or new expression.
func ArgumentsOf(call *sitter.Node) *sitter.Node {
	if call == nil {
		return nil
	}
	return call.ChildByFieldName("arguments")
}

// Args returns the named argument nodes of a call, in order.
func Args(call *sitter.Node) []*sitter.Node {
	args := ArgumentsOf(call)
	if args == nil {
		return nil
	}
	out := make([]*sitter.Node, 0, args.NamedChildCount())
	for i := 0; i < int(args.NamedChildCount()); i++ {
		out = append(out, args.NamedChild(i))
	}
	return out
}

// MemberParts splits a member expression into its object and property nodes.
func MemberParts(member *sitter.Node) (object, property *sitter.Node) {
	if member == nil || member.Type() != NodeMemberExpression {
		return nil, nil
	}
	return member.ChildByFieldName("object"), member.ChildByFieldName("property")
}

// CalleeName returns the plain identifier name a call is invoked through,
// or "" when the callee is not a bare identifier.
func (t *Tree) CalleeName(call *sitter.Node) string {
	callee := CalleeOf(call)
	if callee == nil || callee.Type() != NodeIdentifier {
		return ""
	}
	return t.Text(callee)
}

// MemberCallee returns object and property names for calls of the form
// obj.prop(...). Either may be "" when the shape doesn't match.
func (t *Tree) MemberCallee(call *sitter.Node) (object, property string) {
	callee := CalleeOf(call)
	obj, prop := MemberParts(callee)
	if prop == nil {
		return "", ""
	}
	if obj != nil && obj.Type() == NodeIdentifier {
		object = t.Text(obj)
	}
	return object, t.Text(prop)
}

// StringValue unquotes a string literal node. Template strings without
// substitutions are accepted too. Returns "" and false for anything else.
func (t *Tree) StringValue(node *sitter.Node) (string, bool) {
	if node == nil {
		return "", false
	}
	switch node.Type() {
	case NodeString:
		text := t.Text(node)
		if len(text) >= 2 {
			return text[1 : len(text)-1], true
		}
		return "", true
	case NodeTemplateString:
		text := t.Text(node)
		if strings.Contains(text, "${") {
			return "", false
		}
		if len(text) >= 2 {
			return text[1 : len(text)-1], true
		}
		return "", true
	default:
		return "", false
	}
}

// FirstStringArg returns the unquoted first argument of a call when that
// argument is a string literal.
func (t *Tree) FirstStringArg(call *sitter.Node) (string, *sitter.Node, bool) {
	args := Args(call)
	if len(args) == 0 {
		return "", nil, false
	}
	value, ok := t.StringValue(args[0])
	if !ok {
		return "", nil, false
	}
	return value, args[0], true
}

// RequireSource returns the module source of a require(...) call, or "" when
// the node is not a require call with a string argument.
func (t *Tree) RequireSource(call *sitter.Node) string {
	if t.CalleeName(call) != "require" {
		return ""
	}
	src, _, ok := t.FirstStringArg(call)
	if !ok {
		return ""
	}
	return src
}

// ImportSource returns the unquoted source of an import statement.
func (t *Tree) ImportSource(imp *sitter.Node) string {
	if imp == nil || imp.Type() != NodeImportStatement {
		return ""
	}
	src, ok := t.StringValue(imp.ChildByFieldName("source"))
	if !ok {
		return ""
	}
	return src
}
