// Package schema adapts a pre-existing GraphQL schema (SDL text) for use by
// the query builder.  The schema is the external collaborator that the builder
// validates against - nothing in this package defines types of its own, it
// just loads the SDL (using gqlparser) and answers lookups: what fields a type
// has, what arguments a resolver takes, and whether a type is a leaf (scalar
// or enum) so we know if a sub-selection is required.
package schema

// schema.go has the schema loading and lookup functions

import (
	"fmt"
	"strconv"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// Load parses and validates one or more SDL strings and returns the combined
// schema.  The gqlparser prelude is included so the built-in scalars (Int,
// String etc.) and the @skip/@include directives are always available.
func Load(sdl ...string) (*ast.Schema, error) {
	sources := make([]*ast.Source, 0, len(sdl))
	for i, s := range sdl {
		sources = append(sources, &ast.Source{Name: "sdl-" + strconv.Itoa(i), Input: s})
	}
	s, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %v", err)
	}
	return s, nil
}

// MustLoad is the same as Load but panics on error
func MustLoad(sdl ...string) *ast.Schema {
	s, err := Load(sdl...)
	if err != nil {
		panic(err)
	}
	return s
}

// RootType returns the entry point type for an operation kind, or nil if the
// schema does not declare one (eg a schema with no subscription type).
func RootType(s *ast.Schema, kind ast.Operation) *ast.Definition {
	switch kind {
	case ast.Query:
		return s.Query
	case ast.Mutation:
		return s.Mutation
	case ast.Subscription:
		return s.Subscription
	}
	return nil
}

// typenameDef is the implicit __typename meta field available on every type
var typenameDef = &ast.FieldDefinition{Name: "__typename", Type: ast.NonNullNamedType("String", nil)}

// FieldDef looks up a field on a type, or returns nil if the type has no such
// field.  The __typename meta field is available on any type.
func FieldDef(parent *ast.Definition, name string) *ast.FieldDefinition {
	if parent == nil {
		return nil
	}
	if name == "__typename" {
		return typenameDef
	}
	return parent.Fields.ForName(name)
}

// Underlying returns the definition of the named type underlying t (ignoring
// list and non-null wrappers), or nil for an unknown type name.
func Underlying(s *ast.Schema, t *ast.Type) *ast.Definition {
	if t == nil {
		return nil
	}
	return s.Types[t.Name()]
}

// IsLeaf reports whether t is a leaf type (scalar or enum) - ie a type that
// must not carry a sub-selection.  Object, interface and union types are not
// leaves and require one.
func IsLeaf(s *ast.Schema, t *ast.Type) bool {
	def := Underlying(s, t)
	return def != nil && (def.Kind == ast.Scalar || def.Kind == ast.Enum)
}
