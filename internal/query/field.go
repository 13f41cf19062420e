// Package query holds the immutable value types that make up a GraphQL
// operation - field references, selection sets, query nodes and operations.
// Values are built with non-mutating methods (each call returns a new,
// independently owned value) and validated against the schema when a node or
// operation is constructed, so a value that exists is a value that passed.
package query

// field.go has the Field reference type and its builder-style methods

import (
	"github.com/vektah/gqlparser/v2/ast"
)

type (
	// Argument binds a parameter name to a literal value or a variable
	// reference (an ast.Value of Variable kind).  Arguments hold variables by
	// name only - the declaration lives with the operation and the link is
	// checked when the operation is built.
	Argument struct {
		Name  string
		Value *ast.Value
	}

	// Directive is an annotation rendered after a field's arguments, eg
	// @skip(if: $flag).  Only rendering and argument validation are supported;
	// what the directive does at execution time is the server's business.
	Directive struct {
		Name string
		Args []Argument
	}

	// Field is a reference to one schema field, optionally carrying an alias,
	// arguments, directives and a sub-selection.  The zero Field is invalid -
	// use NewField.  All methods return a modified copy.
	Field struct {
		name       string
		alias      string
		args       []Argument
		directives []Directive
		sel        SelectionSet
	}
)

// NewField creates a reference to the named schema field.  Whether the name
// exists (and whether it needs a sub-selection) is checked when the field is
// attached to a query node, so fields can be authored in any order.
func NewField(name string) Field {
	return Field{name: name}
}

// As returns a copy of the field renamed to the given output key
func (f Field) As(alias string) Field {
	f.alias = alias
	return f
}

// Arg returns a copy of the field with one more argument bound.
// The three-index slice expression forces append to copy, keeping the
// receiver's slice untouched.
func (f Field) Arg(name string, value *ast.Value) Field {
	f.args = append(f.args[:len(f.args):len(f.args)], Argument{Name: name, Value: value})
	return f
}

// Select returns a copy of the field with the given fields appended to its
// sub-selection
func (f Field) Select(sub ...Field) Field {
	f.sel = append(f.sel[:len(f.sel):len(f.sel)], sub...)
	return f
}

// Directive returns a copy of the field with a directive attached
func (f Field) Directive(name string, args ...Argument) Field {
	f.directives = append(f.directives[:len(f.directives):len(f.directives)], Directive{Name: name, Args: args})
	return f
}

// Skip is shorthand for the built-in @skip(if: cond) directive
func (f Field) Skip(cond *ast.Value) Field {
	return f.Directive("skip", Argument{Name: "if", Value: cond})
}

// Include is shorthand for the built-in @include(if: cond) directive
func (f Field) Include(cond *ast.Value) Field {
	return f.Directive("include", Argument{Name: "if", Value: cond})
}

// Name returns the schema field name
func (f Field) Name() string { return f.name }

// Alias returns the output alias ("" if none)
func (f Field) Alias() string { return f.alias }

// Key returns the output key the field's result appears under - the alias if
// one was set, otherwise the field name
func (f Field) Key() string {
	if f.alias != "" {
		return f.alias
	}
	return f.name
}

// Args returns the bound arguments in the order they were added.
// The slice is shared - callers must not modify it.
func (f Field) Args() []Argument { return f.args }

// Directives returns the attached directives in the order they were added
func (f Field) Directives() []Directive { return f.directives }

// Selection returns the sub-selection (nil for a leaf field)
func (f Field) Selection() SelectionSet { return f.sel }
