package gqlbuild

// compile.go provides the Compile function - the last step that turns an
// operation value into the document text handed to the transport

import (
	"github.com/andrewwphillips/gqlbuild/internal/compile"
)

// Compile renders an operation to the canonical GraphQL wire format.  It is a
// pure function: the same operation always compiles to byte-identical output.
// As a defensive measure the rendered document is validated against the
// schema before being returned; a failure there means the construction checks
// were bypassed and is reported as ErrCompile.
func Compile(op Operation) (string, error) {
	return compile.Document(op)
}

// MustCompile is the same as Compile but panics on error
func MustCompile(op Operation) string {
	doc, err := Compile(op)
	if err != nil {
		panic(err)
	}
	return doc
}
