// Package ast is the facade the rest of ashe parses, inspects, and
// renders source through. It wraps the hand-written Java lexer/parser in
// java/parser and the pretty-printer in format, translating their
// low-level errors into the ashe error-kind taxonomy at the boundary.
package ast

import (
	"bytes"
	"os"

	"github.com/dhamidi/ashe/errs"
	"github.com/dhamidi/ashe/format"
	"github.com/dhamidi/ashe/java/parser"
)

// typeDeclKinds enumerates the node kinds that constitute a top-level or
// nested type declaration.
var typeDeclKinds = []parser.NodeKind{
	parser.KindClassDecl,
	parser.KindInterfaceDecl,
	parser.KindEnumDecl,
	parser.KindRecordDecl,
	parser.KindAnnotationDecl,
}

// memberDeclKinds enumerates the node kinds that constitute a callable
// class member (method or constructor).
var memberDeclKinds = []parser.NodeKind{
	parser.KindMethodDecl,
	parser.KindConstructorDecl,
}

// SourceTree is a parsed source file: its root compilation unit, the
// comments captured alongside it, and the raw bytes used to reconstruct
// unparsed regions during pretty-printing.
type SourceTree struct {
	Path     string
	Source   []byte
	Root     *parser.Node
	Comments []parser.Token
}

// TypeDeclaration wraps a class/interface/enum/record/annotation node.
type TypeDeclaration struct {
	Node *parser.Node
}

// MethodDeclaration wraps a method or constructor node.
type MethodDeclaration struct {
	Node *parser.Node
}

// ParseFile reads path and parses it into a SourceTree. Fails with
// IoError on read failure, ParseError when the text is syntactically
// invalid (incomplete parse).
func ParseFile(path string) (*SourceTree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.IoError, err, "reading "+path)
	}
	return ParseSource(data, path)
}

// ParseSource parses in-memory source bytes, optionally tagging the
// resulting tree with a path (used for diagnostics only).
func ParseSource(source []byte, path string) (*SourceTree, error) {
	opts := []parser.Option{parser.WithComments()}
	if path != "" {
		opts = append(opts, parser.WithFile(path))
	}
	p := parser.ParseCompilationUnit(bytes.NewReader(source), opts...)
	root := p.Finish()
	if root == nil {
		return nil, errs.Newf(errs.ParseError, "could not parse %s as a compilation unit", displayPath(path))
	}
	return &SourceTree{
		Path:     path,
		Source:   source,
		Root:     root,
		Comments: p.Comments(),
	}, nil
}

func displayPath(path string) string {
	if path == "" {
		return "<source>"
	}
	return path
}

// ParseMethod parses a free-form text blob expected to contain a single
// class member (method or constructor) at top level.
func ParseMethod(text string) (*MethodDeclaration, error) {
	p := parser.ParseMember(bytes.NewReader([]byte(text)))
	node := p.Finish()
	if node == nil {
		return nil, errs.New(errs.ParseError, "no method declaration found at top level")
	}
	if !isMemberKind(node.Kind) {
		return nil, errs.Newf(errs.ParseError, "expected a method or constructor declaration, got %s", node.Kind)
	}
	return &MethodDeclaration{Node: node}, nil
}

func isMemberKind(kind parser.NodeKind) bool {
	for _, k := range memberDeclKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ParseBlock parses a free-form text blob expected to contain a single
// statement block (`{ ... }`), used to install a replacement method body.
func ParseBlock(text string) (*parser.Node, error) {
	p := parser.ParseBlock(bytes.NewReader([]byte(text)))
	node := p.Finish()
	if node == nil {
		return nil, errs.New(errs.ParseError, "no statement block found")
	}
	return node, nil
}

// FindTypes returns every type declaration in the tree, top-level and
// nested, in source order (pre-order traversal), mirroring the teacher's
// own recursive inner-class discovery in from_source.go.
func FindTypes(tree *SourceTree) []*TypeDeclaration {
	var found []*TypeDeclaration
	var walk func(n *parser.Node)
	walk = func(n *parser.Node) {
		if n == nil {
			return
		}
		if isTypeDeclKind(n.Kind) {
			found = append(found, &TypeDeclaration{Node: n})
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(tree.Root)
	return found
}

func isTypeDeclKind(kind parser.NodeKind) bool {
	for _, k := range typeDeclKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// FindMethods returns every method/constructor declared directly in the
// body of td, in source order. Nested type members are not included.
func FindMethods(td *TypeDeclaration) []*MethodDeclaration {
	body := td.Node.FirstChildOfKind(parser.KindBlock)
	if body == nil {
		return nil
	}
	var found []*MethodDeclaration
	for _, child := range body.Children {
		if isMemberKind(child.Kind) {
			found = append(found, &MethodDeclaration{Node: child})
		}
	}
	return found
}

// Name returns the type's simple name.
func (td *TypeDeclaration) Name() string {
	if ident := td.Node.FirstChildOfKind(parser.KindIdentifier); ident != nil {
		return ident.TokenLiteral()
	}
	return ""
}

// IsPublic reports whether the type carries the `public` modifier.
func (td *TypeDeclaration) IsPublic() bool {
	return hasModifier(td.Node, "public")
}

// Name returns the method's simple name ("<init>" is not used here; use
// Node.Kind to distinguish constructors).
func (md *MethodDeclaration) Name() string {
	if md.Node.Kind == parser.KindConstructorDecl {
		if ident := md.Node.FirstChildOfKind(parser.KindIdentifier); ident != nil {
			return ident.TokenLiteral()
		}
		return ""
	}
	if ident := md.Node.FirstChildOfKind(parser.KindIdentifier); ident != nil {
		return ident.TokenLiteral()
	}
	return ""
}

// IsPublic reports whether the method carries the `public` modifier.
func (md *MethodDeclaration) IsPublic() bool {
	return hasModifier(md.Node, "public")
}

func hasModifier(node *parser.Node, literal string) bool {
	modifiers := node.FirstChildOfKind(parser.KindModifiers)
	if modifiers == nil {
		return false
	}
	for _, child := range modifiers.Children {
		if child.Token != nil && child.Token.Literal == literal {
			return true
		}
	}
	return false
}

// Render renders tree.Root back to source text using the shared
// pretty-printer.
func Render(tree *SourceTree) (string, error) {
	return RenderNode(tree.Root, tree.Source, tree.Comments)
}

// RenderNode renders an arbitrary node (a whole compilation unit or a
// single method/class subtree) back to source text.
func RenderNode(node *parser.Node, source []byte, comments []parser.Token) (string, error) {
	var buf bytes.Buffer
	pp := format.NewJavaPrettyPrinter(&buf)
	if err := pp.Print(node, source, comments); err != nil {
		return "", errs.Wrap(errs.ParseError, err, "rendering node")
	}
	return buf.String(), nil
}
