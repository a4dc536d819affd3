package ast

import (
	"github.com/dhamidi/ashe/format"
	"github.com/dhamidi/ashe/java/parser"
)

// Parameter is one parsed method parameter: its rendered type text and
// its name.
type Parameter struct {
	Type string
	Name string
}

// Signature is the parsed shape of a method declaration: its modifiers,
// return type, name, and parameter list. Parameter names are retained
// here (Signature is a parse result) even though method identity
// (methodref.Reference) never includes them.
type Signature struct {
	HasModifiers bool
	Modifiers    []string
	ReturnType   string
	Name         string
	Parameters   []Parameter
}

// Signature derives the parsed shape of md's declaration.
func (md *MethodDeclaration) Signature() *Signature {
	node := md.Node
	sig := &Signature{Name: md.Name()}

	if modifiers := node.FirstChildOfKind(parser.KindModifiers); modifiers != nil {
		for _, child := range modifiers.Children {
			if child.Token != nil {
				sig.Modifiers = append(sig.Modifiers, child.Token.Literal)
				sig.HasModifiers = true
			}
		}
	}

	for _, child := range node.Children {
		switch child.Kind {
		case parser.KindType, parser.KindArrayType:
			sig.ReturnType = format.RenderType(child)
		case parser.KindParameters:
			sig.Parameters = parametersFromParametersNode(child)
		}
	}

	if node.Kind == parser.KindConstructorDecl {
		sig.ReturnType = ""
	}

	return sig
}

func parametersFromParametersNode(node *parser.Node) []Parameter {
	var params []Parameter
	for _, child := range node.Children {
		if child.Kind != parser.KindParameter {
			continue
		}
		var p Parameter
		var typeNode *parser.Node
		varargs := false
		for _, gc := range child.Children {
			switch gc.Kind {
			case parser.KindType, parser.KindArrayType:
				typeNode = gc
			case parser.KindIdentifier:
				if gc.Token != nil {
					if gc.Token.Kind == parser.TokenEllipsis {
						varargs = true
					} else {
						p.Name = gc.Token.Literal
					}
				}
			}
		}
		if typeNode != nil {
			p.Type = format.RenderType(typeNode)
		}
		if varargs {
			p.Type += "..."
		}
		params = append(params, p)
	}
	return params
}

// ParameterTypes returns the rendered type text of each parameter, in
// order, with parameter names stripped — the form compared by the
// method-replacement engine's override-equivalent matcher.
func (s *Signature) ParameterTypes() []string {
	types := make([]string, len(s.Parameters))
	for i, p := range s.Parameters {
		types[i] = p.Type
	}
	return types
}

// Body returns the method's statement block, or nil for an abstract or
// interface method with no body.
func (md *MethodDeclaration) Body() *parser.Node {
	return md.Node.FirstChildOfKind(parser.KindBlock)
}

// ReplaceBody swaps md's body block in place, mutating the underlying
// tree. The caller is responsible for re-rendering the enclosing tree
// afterward.
func (md *MethodDeclaration) ReplaceBody(block *parser.Node) {
	for i, child := range md.Node.Children {
		if child.Kind == parser.KindBlock {
			md.Node.Children[i] = block
			return
		}
	}
	md.Node.AddChild(block)
}
