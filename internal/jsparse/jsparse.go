// Package jsparse wraps tree-sitter parsing of JavaScript and TypeScript
// test sources. tree-sitter recovers at statement scope, so partially
// invalid files still produce a usable tree with ERROR nodes; only a
// completely failed parse surfaces as an error.
package jsparse

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Dialect selects the grammar used for parsing.
type Dialect string

const (
	// DialectJavaScript parses plain JavaScript sources.
	DialectJavaScript Dialect = "javascript"
	// DialectTypeScript parses TypeScript sources.
	DialectTypeScript Dialect = "typescript"
)

// DialectFromPath picks a dialect from a file extension, defaulting to JavaScript.
func DialectFromPath(path string) Dialect {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".tsx", ".mts", ".cts":
		return DialectTypeScript
	default:
		return DialectJavaScript
	}
}

// Tree bundles a parsed root node with the source it was parsed from.
// A Tree is owned by the call that produced it; the rewrite engine parses
// a fresh tree per invocation so concurrent migrations never share one.
type Tree struct {
	Root    *sitter.Node
	Source  []byte
	Dialect Dialect

	tree *sitter.Tree
}

// Span is a line/column range in the original source, 1-indexed lines.
type Span struct {
	StartLine int `json:"startLine"`
	StartCol  int `json:"startCol"`
	EndLine   int `json:"endLine"`
	EndCol    int `json:"endCol"`
}

// Parse parses source text into a Tree. Each call creates its own
// tree-sitter parser instance, so Parse is safe for concurrent use.
func Parse(ctx context.Context, source []byte, dialect Dialect) (*Tree, error) {
	parser := sitter.NewParser()
	switch dialect {
	case DialectTypeScript:
		parser.SetLanguage(typescript.GetLanguage())
	default:
		parser.SetLanguage(javascript.GetLanguage())
	}

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parse produced no tree")
	}

	return &Tree{Root: root, Source: source, Dialect: dialect, tree: tree}, nil
}

// Text returns the source text covered by a node.
func (t *Tree) Text(node *sitter.Node) string {
	if node == nil {
		return ""
	}
	return string(t.Source[node.StartByte():node.EndByte()])
}

// SpanOf returns the 1-indexed source span of a node.
func (t *Tree) SpanOf(node *sitter.Node) Span {
	return Span{
		StartLine: int(node.StartPoint().Row) + 1,
		StartCol:  int(node.StartPoint().Column),
		EndLine:   int(node.EndPoint().Row) + 1,
		EndCol:    int(node.EndPoint().Column),
	}
}

// Walk visits every node in depth-first pre-order. The visit callback
// returns false to skip a node's children.
func Walk(root *sitter.Node, visit func(*sitter.Node) bool) {
	if root == nil {
		return
	}
	if !visit(root) {
		return
	}
	for i := 0; i < int(root.ChildCount()); i++ {
		Walk(root.Child(i), visit)
	}
}
