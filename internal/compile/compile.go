// Package compile renders an operation value into the canonical GraphQL wire
// format.  Compilation is a pure fold over the immutable tree: identical
// operations always produce byte-identical documents.  As a last line of
// defence the rendered document is parsed back and run through the gqlparser
// validator against the schema, so a value that somehow bypassed the
// construction checks still fails here rather than at the server.
package compile

// compile.go renders the document text and performs the compile-time re-check

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"

	"github.com/andrewwphillips/gqlbuild/internal/query"
)

// Document compiles an operation to the GraphQL wire format.  Anonymous query
// operations with no variables render in the shorthand form "{ ... }";
// everything else gets the explicit form with operation type, name and
// variable declarations.
func Document(op query.Operation) (string, error) {
	if len(op.Nodes()) == 0 || op.Schema() == nil {
		return "", fmt.Errorf("%w: operation was not built by the operation builder", query.ErrCompile)
	}

	var b strings.Builder
	b.Grow(256) // even small documents are tens of bytes; most fit in this

	shorthand := op.Kind() == ast.Query && op.Name() == "" && len(op.Declarations()) == 0
	if !shorthand {
		b.WriteString(string(op.Kind()))
		if op.Name() != "" {
			b.WriteByte(' ')
			b.WriteString(op.Name())
		}
		if decls := op.Declarations(); len(decls) > 0 {
			if op.Name() == "" {
				b.WriteByte(' ')
			}
			writeDeclarations(&b, decls)
		}
		b.WriteByte(' ')
	}

	b.WriteString("{ ")
	for i, n := range op.Nodes() {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeField(&b, n.Alias(), n.Name(), n.Args(), n.Directives(), n.Selection())
	}
	b.WriteString(" }")

	doc := b.String()
	if err := recheck(op, doc); err != nil {
		return "", err
	}
	return doc, nil
}

// recheck parses the rendered document back and validates it against the
// schema, converting any failure to ErrCompile with the underlying reason
func recheck(op query.Operation, doc string) error {
	qdoc, perr := parser.ParseQuery(&ast.Source{Name: "compiled", Input: doc})
	if perr != nil {
		return fmt.Errorf("%w: compiled document does not parse: %s", query.ErrCompile, perr.Error())
	}
	if errs := validator.Validate(op.Schema(), qdoc); len(errs) != 0 {
		return fmt.Errorf("%w: %s", query.ErrCompile, errs.Error())
	}
	return nil
}

// writeDeclarations renders "($a: T, $b: U = def)"
func writeDeclarations(b *strings.Builder, decls []query.Declaration) {
	b.WriteByte('(')
	for i, d := range decls {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('$')
		b.WriteString(d.Name)
		b.WriteString(": ")
		b.WriteString(d.Type.String())
		if d.Default != nil {
			b.WriteString(" = ")
			b.WriteString(d.Default.String())
		}
	}
	b.WriteByte(')')
}

// writeField renders one field (or root node): alias, name, arguments,
// directives, then the nested selection - recursively
func writeField(b *strings.Builder, alias, name string, args []query.Argument,
	directives []query.Directive, sel query.SelectionSet,
) {
	if alias != "" {
		b.WriteString(alias)
		b.WriteString(": ")
	}
	b.WriteString(name)
	writeArgs(b, args)
	for _, d := range directives {
		b.WriteString(" @")
		b.WriteString(d.Name)
		writeArgs(b, d.Args)
	}
	if len(sel) > 0 {
		b.WriteString(" { ")
		for i, f := range sel {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeField(b, f.Alias(), f.Name(), f.Args(), f.Directives(), f.Selection())
		}
		b.WriteString(" }")
	}
}

// writeArgs renders "(a: 1, b: $x)", or nothing for an empty list
func writeArgs(b *strings.Builder, args []query.Argument) {
	if len(args) == 0 {
		return
	}
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Name)
		b.WriteString(": ")
		b.WriteString(a.Value.String())
	}
	b.WriteByte(')')
}
