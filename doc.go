// Package gqlbuild lets you compose GraphQL queries as Go values and compile
// them to the standard wire format, validated against the schema they will be
// sent to.  You never concatenate query strings and discover the typo at the
// server: a field that doesn't exist, a missing argument, or an undeclared
// variable is an error at construction time.

// Everything the builder produces is an immutable value - each builder call
// returns a new, independently owned value - and compilation is deterministic:
// the same operation always compiles to the same bytes.

// For example, given the schema of a book catalogue server:
//
//	b := gqlbuild.MustNew(sdl)
//	books := b.MustQuery("books",
//	    gqlbuild.Arg("author", gqlbuild.String("John Cena")),
//	    gqlbuild.Select(
//	        gqlbuild.F("title"),
//	        gqlbuild.F("author").Select(gqlbuild.F("name")),
//	    ),
//	)
//	doc := gqlbuild.MustCompile(b.MustOperation(books))
//
// compiles to:
//
//	{ books(author: "John Cena") { title author { name } } }
//
// The compiled document is handed to whatever transport you use (see the
// example directory); this package performs no I/O.

package gqlbuild

// TODO:
// fragments and inline fragments (without them unions/interfaces can only select __typename)
// operation-level directives
