package gqlbuild

// types.go re-exports the value types and sentinel errors from the internal
// query package so callers only ever import gqlbuild

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/andrewwphillips/gqlbuild/internal/query"
)

type (
	// Field is a reference to one schema field - see F
	Field = query.Field

	// SelectionSet is an ordered set of field references with unique output keys
	SelectionSet = query.SelectionSet

	// Argument binds a parameter name to a value - see A
	Argument = query.Argument

	// Node is one root-level resolver invocation - see Builder.Query etc
	Node = query.Node

	// Operation is a compilable unit of one or more nodes - see Builder.Operation
	Operation = query.Operation

	// Variable is a variable declaration - see Declare
	Variable = query.Variable

	// Value is a literal value or variable reference bound to an argument.
	// Construct with the helpers in this package (String, Int, Var, Lit, ...).
	Value = *ast.Value
)

// The errors returned from construction and compilation, for use with
// errors.Is.  Everything fails at the construction or compile step where the
// violation is detected - never when the compiled document is executed.
var (
	ErrSchemaMismatch          = query.ErrSchemaMismatch
	ErrDuplicateFieldKey       = query.ErrDuplicateFieldKey
	ErrUnknownArgument         = query.ErrUnknownArgument
	ErrMissingRequiredArgument = query.ErrMissingRequiredArgument
	ErrUndeclaredVariable      = query.ErrUndeclaredVariable
	ErrVariableTypeConflict    = query.ErrVariableTypeConflict
	ErrCompile                 = query.ErrCompile
)

// F creates a reference to the named schema field.  Add an alias, arguments,
// directives or a sub-selection with the Field methods - each returns a new
// value, so fields can be shared and reused freely:
//
//	title := gqlbuild.F("title")
//	author := gqlbuild.F("author").Select(gqlbuild.F("name"))
func F(name string) Field {
	return query.NewField(name)
}

// A creates an argument binding, mostly for directive arguments:
//
//	gqlbuild.F("author").Directive("include", gqlbuild.A("if", gqlbuild.Var("wantAuthors")))
func A(name string, value Value) Argument {
	return Argument{Name: name, Value: value}
}

// NewSelectionSet builds a selection set up front, failing immediately on a
// duplicate output key.  (Field.Select and the Select option defer that check
// to node construction, which suits most authoring.)
func NewSelectionSet(fields ...Field) (SelectionSet, error) {
	return query.NewSelectionSet(fields...)
}

// Declare declares an operation variable, eg Declare("author", "Author", nil).
// A leading $ on the name is allowed and ignored.  The type is written as in
// a query document ("Int!", "[ID!]"); it is checked when the operation is
// built, so declarations can be authored before the nodes that use them.
func Declare(name, gqlType string, defaultValue Value) Variable {
	return Variable{Name: strings.TrimPrefix(name, "$"), Type: gqlType, Default: defaultValue}
}
