package replace

import (
	"github.com/dhamidi/ashe/ast"
	"github.com/dhamidi/ashe/methodref"
)

// OverrideEquivalent reports whether a and b are the same method from the
// JVM's override-equivalence perspective: same simple name, same
// parameter count (the zero-parameter case handled specially, since a
// parsed signature with no parameters and one with a single blank
// parameter type must still compare equal), parameter types equal in
// order, and equal return type. It is symmetric by construction: every
// comparison it performs is itself symmetric.
func OverrideEquivalent(a, b *ast.Signature) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name {
		return false
	}
	if a.ReturnType != b.ReturnType {
		return false
	}

	aTypes := a.ParameterTypes()
	bTypes := b.ParameterTypes()
	aEmpty := methodref.IsEmptyParameterList(aTypes)
	bEmpty := methodref.IsEmptyParameterList(bTypes)
	if aEmpty || bEmpty {
		return aEmpty == bEmpty
	}
	if len(aTypes) != len(bTypes) {
		return false
	}
	for i := range aTypes {
		if aTypes[i] != bTypes[i] {
			return false
		}
	}
	return true
}
