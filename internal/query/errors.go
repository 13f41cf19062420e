package query

// errors.go declares the sentinel errors returned from query construction and
// compilation.  Everything is raised synchronously at the construction or
// compile step where the violation is detected - never deferred to execution.
// Use errors.Is to classify; the wrapped message says where it happened.

import "errors"

var (
	// ErrSchemaMismatch - a field or entry point does not exist in the schema,
	// a sub-selection was supplied for a leaf field, or omitted for a non-leaf
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrDuplicateFieldKey - two fields in one selection set would produce the
	// same output key (alias-or-name)
	ErrDuplicateFieldKey = errors.New("duplicate field key")

	// ErrUnknownArgument - an argument name is not among the declared parameters
	ErrUnknownArgument = errors.New("unknown argument")

	// ErrMissingRequiredArgument - a non-null parameter with no default was omitted
	ErrMissingRequiredArgument = errors.New("missing required argument")

	// ErrUndeclaredVariable - a $variable reference has no matching declaration
	ErrUndeclaredVariable = errors.New("undeclared variable")

	// ErrVariableTypeConflict - uses of one variable imply incompatible types,
	// or its declared type does not satisfy a use
	ErrVariableTypeConflict = errors.New("variable type conflict")

	// ErrCompile - the compile-time re-check failed (invariants were bypassed)
	ErrCompile = errors.New("compile error")
)
