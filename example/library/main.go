package main

// A minimal demonstration: load a schema, build an operation with two aliased
// invocations sharing one variable, and print the compiled document.

import (
	"fmt"

	"github.com/andrewwphillips/gqlbuild"
)

const sdl = `
type Query {
  books(author: Author): [Book!]
  magazines(author: Author): [Magazine!]
}
input Author { name: String }
type Book { title: String! }
type Magazine { title: String! issue: Int }
`

func main() {
	b := gqlbuild.MustNew(sdl)

	titles := gqlbuild.Select(gqlbuild.F("title"))
	byAuthor := gqlbuild.Arg("author", gqlbuild.Var("$author"))

	op := b.MustOperation("DanLibrary",
		gqlbuild.Declare("$author", "Author", nil),
		b.MustQuery("books", gqlbuild.Alias("BooksByAuthor"), byAuthor, titles),
		b.MustQuery("magazines", gqlbuild.Alias("MagazinesByAuthor"), byAuthor, titles),
	)

	fmt.Println(gqlbuild.MustCompile(op))
}
