// Package refine implements the refinement driver: the state machine that
// drives slice -> check -> repair -> splice until a method type-checks
// cleanly or a terminal failure is reached.
package refine

import (
	"github.com/dhamidi/ashe/ast"
	"github.com/dhamidi/ashe/errs"
)

// ResolveClassByMethodName parses path and returns the first class or
// interface declaration, in source order, that contains any method with
// the given simple name. It is used to give the LLM the full class
// context surrounding the method under repair. Fails with NotFound if no
// such class exists.
func ResolveClassByMethodName(path, methodName string) (*ast.TypeDeclaration, *ast.SourceTree, error) {
	tree, err := ast.ParseFile(path)
	if err != nil {
		return nil, nil, err
	}

	for _, td := range ast.FindTypes(tree) {
		for _, md := range ast.FindMethods(td) {
			if md.Name() == methodName {
				return td, tree, nil
			}
		}
	}

	return nil, nil, errs.Newf(errs.NotFound, "no class in %s contains a method named %q", path, methodName)
}
