// Package methodref implements the canonical method reference grammar:
// pkg.Class#name(Type1, Type2, ...). It treats the reference as a
// first-class value with parse/format operations rather than a
// stringly-typed identifier threaded through the rest of ashe.
package methodref

import (
	"regexp"
	"strings"

	"github.com/dhamidi/ashe/errs"
)

// Reference is the canonical identity of a target method. Parameter
// identity is defined by types only; parameter names are never part of
// it.
type Reference struct {
	Package        string
	Class          string
	Method         string
	ParameterTypes []string
}

var referencePattern = regexp.MustCompile(`^([A-Za-z_0-9]+(?:\.[A-Za-z_0-9]+)*)#([A-Za-z_0-9]+)\(([^)]*)\)$`)

var filePathPattern = regexp.MustCompile(`^([A-Za-z_0-9]+/)*[A-Za-z_0-9]+\.[A-Za-z_0-9]+$`)

// Parse parses a canonical reference of the form
// pkg.Class#name(Type1, Type2, ...). The dotted prefix before '#' is
// split into a package and a simple class name at the last '.'.
func Parse(ref string) (*Reference, error) {
	m := referencePattern.FindStringSubmatch(ref)
	if m == nil {
		return nil, errs.Newf(errs.InvalidReference, "invalid method reference: %q", ref)
	}

	qualified := m[1]
	name := m[2]
	paramsBlob := m[3]

	pkg, class := splitQualified(qualified)

	var types []string
	if strings.TrimSpace(paramsBlob) != "" {
		types = SplitParameters(paramsBlob)
		for i, t := range types {
			types[i] = strings.TrimSpace(t)
		}
	}

	return &Reference{
		Package:        pkg,
		Class:          class,
		Method:         name,
		ParameterTypes: types,
	}, nil
}

func splitQualified(qualified string) (pkg, class string) {
	idx := strings.LastIndex(qualified, ".")
	if idx < 0 {
		return "", qualified
	}
	return qualified[:idx], qualified[idx+1:]
}

// Format renders r back into canonical form, with ", " between parameter
// types, matching the wire grammar in §4.2.
func (r *Reference) Format() string {
	qualified := r.Class
	if r.Package != "" {
		qualified = r.Package + "." + r.Class
	}
	return qualified + "#" + r.Method + "(" + strings.Join(r.ParameterTypes, ", ") + ")"
}

// ParseMethodName returns the substring between '#' and the first '(' in
// ref, without fully parsing it into a Reference. Fails with
// InvalidReference if the pattern does not match.
func ParseMethodName(ref string) (string, error) {
	hashIdx := strings.Index(ref, "#")
	if hashIdx < 0 {
		return "", errs.Newf(errs.InvalidReference, "missing '#' in method reference: %q", ref)
	}
	rest := ref[hashIdx+1:]
	parenIdx := strings.Index(rest, "(")
	if parenIdx < 0 {
		return "", errs.Newf(errs.InvalidReference, "missing '(' in method reference: %q", ref)
	}
	name := rest[:parenIdx]
	if name == "" {
		return "", errs.Newf(errs.InvalidReference, "empty method name in reference: %q", ref)
	}
	return name, nil
}

// Normalize inserts a single space after every comma not already followed
// by whitespace. It is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(ref string) string {
	var b strings.Builder
	b.Grow(len(ref))
	for i := 0; i < len(ref); i++ {
		c := ref[i]
		b.WriteByte(c)
		if c == ',' && (i+1 >= len(ref) || !isSpace(ref[i+1])) {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// ValidFilePath reports whether path matches the repository-relative
// source-file form ([A-Za-z_0-9]+/)*[A-Za-z_0-9]+.EXT.
func ValidFilePath(path string) bool {
	return filePathPattern.MatchString(path)
}

// ValidReferenceForm reports whether ref matches the reference-syntax
// grammar (without decomposing it), as a cheap pre-check before Parse.
func ValidReferenceForm(ref string) bool {
	return referencePattern.MatchString(ref)
}

// SplitParameters splits a parameter-type list on top-level commas only:
// commas nested inside matching '<' '>' pairs (generic type arguments) do
// not delimit a parameter. The zero-parameter case is handled by the
// caller: a single empty string must not be treated as one parameter by
// downstream matching logic (see methodref.IsEmptyParameterList).
func SplitParameters(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// IsEmptyParameterList reports whether types represents "no parameters":
// either a nil/empty slice, or a single blank-after-trim entry.
func IsEmptyParameterList(types []string) bool {
	if len(types) == 0 {
		return true
	}
	if len(types) == 1 && strings.TrimSpace(types[0]) == "" {
		return true
	}
	return false
}
