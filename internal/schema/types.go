package schema

// types.go handles GraphQL type expressions - parsing the strings used to
// declare variables (eg "[Int!]!") and deciding whether two uses of the same
// variable imply compatible types

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// ParseType parses a GraphQL type expression such as "Int", "Book!" or
// "[Int!]!" into its AST form.  Only the type name is checked here - whether
// the name exists in the schema is left to the caller (or the compile-time
// re-check) so variables can be declared before the schema is complete.
func ParseType(s string) (*ast.Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty type expression")
	}

	nonNull := false
	if strings.HasSuffix(s, "!") {
		nonNull = true
		s = strings.TrimSpace(s[:len(s)-1])
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return nil, fmt.Errorf("unmatched '[' in type expression %q", s)
		}
		elem, err := ParseType(s[1 : len(s)-1])
		if err != nil {
			return nil, err
		}
		return &ast.Type{Elem: elem, NonNull: nonNull}, nil
	}

	if !ValidName(s) {
		return nil, fmt.Errorf("%q is not a valid type name", s)
	}
	return &ast.Type{NamedType: s, NonNull: nonNull}, nil
}

// Unify combines the types implied by two uses of the same variable.  The
// result is the stricter of the two (non-null wins).  The second return value
// is false if the uses are irreconcilable - different type names or different
// list nesting.
func Unify(a, b *ast.Type) (*ast.Type, bool) {
	if a == nil {
		return b, true
	}
	if b == nil {
		return a, true
	}
	if (a.NamedType == "") != (b.NamedType == "") {
		return nil, false // one is a list, the other is not
	}
	nonNull := a.NonNull || b.NonNull
	if a.NamedType != "" {
		if a.NamedType != b.NamedType {
			return nil, false
		}
		return &ast.Type{NamedType: a.NamedType, NonNull: nonNull}, true
	}
	elem, ok := Unify(a.Elem, b.Elem)
	if !ok {
		return nil, false
	}
	return &ast.Type{Elem: elem, NonNull: nonNull}, true
}

// Satisfies reports whether a variable declared with type "declared" can be
// used where type "wanted" is expected.  A nullable variable may feed a
// non-null argument only when a default exists (hasDefault covers both the
// variable's own default and the argument's schema default).
func Satisfies(declared, wanted *ast.Type, hasDefault bool) bool {
	if declared == nil || wanted == nil {
		return false
	}
	if (declared.NamedType == "") != (wanted.NamedType == "") {
		return false
	}
	if wanted.NonNull && !declared.NonNull && !hasDefault {
		return false
	}
	if declared.NamedType != "" {
		return declared.NamedType == wanted.NamedType
	}
	// List element nullability gets no default let-out
	if wanted.Elem.NonNull && !declared.Elem.NonNull {
		return false
	}
	return Satisfies(declared.Elem, wanted.Elem, true)
}
