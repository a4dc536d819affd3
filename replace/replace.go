// Package replace implements the method-replacement engine: locating a
// method in a class by override-equivalent signature and substituting it
// wholesale, then writing the modified tree back atomically.
package replace

import (
	"os"

	"github.com/dhamidi/ashe/ast"
	"github.com/dhamidi/ashe/errs"
	"github.com/dhamidi/ashe/java/parser"
)

// Method replaces at most one method in className inside filePath with
// newMethodText. It returns false (with no error) when no method in the
// class is override-equivalent to newMethodText's parsed signature — the
// file is left untouched in that case, per the method-replacement
// contract. A non-nil error indicates an I/O or parse failure, not a
// matching failure.
func Method(filePath, className, newMethodText string) (bool, error) {
	tree, err := ast.ParseFile(filePath)
	if err != nil {
		return false, err
	}

	replacement, err := ast.ParseMethod(newMethodText)
	if err != nil {
		return false, err
	}
	wantSig := replacement.Signature()

	var target *ast.TypeDeclaration
	for _, td := range ast.FindTypes(tree) {
		if td.Name() == className {
			target = td
			break
		}
	}
	if target == nil {
		return false, nil
	}

	body := target.Node.FirstChildOfKind(parser.KindBlock)
	if body == nil {
		return false, nil
	}

	for _, md := range ast.FindMethods(target) {
		if !OverrideEquivalent(md.Signature(), wantSig) {
			continue
		}
		if !replaceInPlace(body, md.Node, replacement.Node) {
			return false, nil
		}
		if err := writeBack(filePath, tree); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

// OriginalTargetMethod splices the repaired methodName out of
// checkedFile's containing class and substitutes it into targetFile,
// using Method. It is the helper the refinement driver calls to move a
// cleaned method from the sliced copy back into the original source.
func OriginalTargetMethod(checkedFile, targetFile, methodName string) (bool, error) {
	tree, err := ast.ParseFile(checkedFile)
	if err != nil {
		return false, err
	}

	var owner *ast.TypeDeclaration
	var method *ast.MethodDeclaration
	for _, td := range ast.FindTypes(tree) {
		for _, md := range ast.FindMethods(td) {
			if md.Name() == methodName {
				owner = td
				method = md
				break
			}
		}
		if owner != nil {
			break
		}
	}
	if owner == nil {
		return false, errs.Newf(errs.NotFound, "no class in %s contains a method named %q", checkedFile, methodName)
	}

	methodText, err := ast.RenderNode(method.Node, tree.Source, tree.Comments)
	if err != nil {
		return false, err
	}

	return Method(targetFile, owner.Name(), methodText)
}

// replaceInPlace swaps oldNode for newNode among body's children,
// reporting whether oldNode was actually found.
func replaceInPlace(body, oldNode, newNode *parser.Node) bool {
	for i, child := range body.Children {
		if child == oldNode {
			body.Children[i] = newNode
			return true
		}
	}
	return false
}

// writeBack renders tree and atomically truncate-writes filePath: it
// renders to a complete buffer first, so a render failure never touches
// the file on disk.
func writeBack(filePath string, tree *ast.SourceTree) error {
	text, err := ast.Render(tree)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filePath, []byte(text), 0o644); err != nil {
		return errs.Wrap(errs.IoError, err, "writing "+filePath)
	}
	return nil
}
