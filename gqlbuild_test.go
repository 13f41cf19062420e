package gqlbuild_test

// gqlbuild_test.go tests the public API end to end: load a schema, build
// nodes and operations, compile and check the document text

import (
	"errors"
	"strings"
	"testing"

	"github.com/dolmen-go/jsonmap"

	"github.com/andrewwphillips/gqlbuild"
)

const testSDL = `
type Query {
  books(author: String, genre: Genre): [Book!]
  book(id: ID!): Book
  totalBooks: Int!
}
type Mutation {
  addBook(title: String!, info: BookInput): Book
}
type Subscription {
  bookAdded: Book!
}
type Book {
  title: String!
  author: Author
  genre: Genre
  pages: Int
}
type Author { name: String! }
input BookInput { genre: Genre pages: Int }
enum Genre { FICTION NONFICTION }
`

func TestEndToEnd(t *testing.T) {
	b := gqlbuild.MustNew(testSDL)

	books := b.MustQuery("books",
		gqlbuild.Arg("author", gqlbuild.String("John Cena")),
		gqlbuild.Select(
			gqlbuild.F("title"),
			gqlbuild.F("author").Select(gqlbuild.F("name")),
		),
	)
	op := b.MustOperation(books)

	doc := gqlbuild.MustCompile(op)
	expected := `{ books(author: "John Cena") { title author { name } } }`
	Assertf(t, doc == expected, "EndToEnd: expected %q\n      got %q", expected, doc)
}

func TestTwoNodesSharedVariable(t *testing.T) {
	const sdl = `
	type Query {
	  books(author: Author): [Book!]
	  magazines(author: Author): [Magazine!]
	}
	input Author { name: String }
	type Book { title: String! }
	type Magazine { title: String! }
	`
	b := gqlbuild.MustNew(sdl)

	titles := gqlbuild.Select(gqlbuild.F("title"))
	byAuthor := gqlbuild.Arg("author", gqlbuild.Var("$author"))

	op := b.MustOperation("DanLibrary",
		gqlbuild.Declare("$author", "Author", nil),
		b.MustQuery("books", gqlbuild.Alias("BooksByAuthor"), byAuthor, titles),
		b.MustQuery("magazines", gqlbuild.Alias("MagazinesByAuthor"), byAuthor, titles),
	)

	doc := gqlbuild.MustCompile(op)
	expected := `query DanLibrary($author: Author) ` +
		`{ BooksByAuthor: books(author: $author) { title } ` +
		`MagazinesByAuthor: magazines(author: $author) { title } }`
	Assertf(t, doc == expected, "SharedVariable: expected %q\n      got %q", expected, doc)
}

func TestInferredVariable(t *testing.T) {
	b := gqlbuild.MustNew(testSDL)
	op := b.MustOperation(b.MustQuery("books",
		gqlbuild.Arg("genre", gqlbuild.Var("g")),
		gqlbuild.Select(gqlbuild.F("title")),
	))
	doc := gqlbuild.MustCompile(op)
	expected := `query ($g: Genre) { books(genre: $g) { title } }`
	Assertf(t, doc == expected, "Inferred: expected %q\n      got %q", expected, doc)
}

func TestMutationWithObject(t *testing.T) {
	b := gqlbuild.MustNew(testSDL)
	add := b.MustMutation("addBook",
		gqlbuild.Args(jsonmap.Ordered{
			Order: []string{"title", "info"},
			Data: map[string]interface{}{
				"title": "The Go Programming Language",
				"info": gqlbuild.MustObject(jsonmap.Ordered{
					Order: []string{"genre", "pages"},
					Data: map[string]interface{}{
						"genre": gqlbuild.Enum("NONFICTION"),
						"pages": 380,
					},
				}),
			},
		}),
		gqlbuild.Select(gqlbuild.F("title"), gqlbuild.F("pages")),
	)
	doc := gqlbuild.MustCompile(b.MustOperation("AddBook", add))
	// object literals render in gqlparser's compact form
	expected := `mutation AddBook { addBook(title: "The Go Programming Language", ` +
		`info: {genre:NONFICTION,pages:380}) { title pages } }`
	Assertf(t, doc == expected, "Mutation: expected %q\n      got %q", expected, doc)
}

func TestSubscription(t *testing.T) {
	b := gqlbuild.MustNew(testSDL)
	doc := gqlbuild.MustCompile(b.MustOperation(
		b.MustSubscription("bookAdded", gqlbuild.Select(gqlbuild.F("title"))),
	))
	expected := `subscription { bookAdded { title } }`
	Assertf(t, doc == expected, "Subscription: expected %q\n      got %q", expected, doc)
}

func TestSelectionOf(t *testing.T) {
	type author struct {
		Name string
	}
	type book struct {
		Title  string
		Author *author
		Genre  string `gql:",alias=category"`
	}
	b := gqlbuild.MustNew(testSDL)
	op := b.MustOperation(b.MustQuery("books",
		gqlbuild.Arg("author", gqlbuild.Var("who")),
		gqlbuild.SelectionOf(book{}),
	))
	doc := gqlbuild.MustCompile(op)
	expected := `query ($who: String) { books(author: $who) { title author { name } category: genre } }`
	Assertf(t, doc == expected, "SelectionOf: expected %q\n      got %q", expected, doc)
}

func TestLit(t *testing.T) {
	data := map[string]struct {
		in       interface{}
		expected string // via compiled argument; "" means Lit should error
	}{
		"String": {"hi", `"hi"`},
		"Int":    {42, `42`},
		"Int64":  {int64(7), `7`},
		"Float":  {1.5, `1.5`},
		"Bool":   {true, `true`},
		"Nil":    {nil, `null`},
		"Slice":  {[]interface{}{1, "two"}, `[1,"two"]`},
		"Value":  {gqlbuild.Enum("FICTION"), `FICTION`},
		"Map":    {map[string]int{"a": 1}, ""},
		"Struct": {struct{ X int }{1}, ""},
	}
	for name, d := range data {
		v, err := gqlbuild.Lit(d.in)
		if d.expected == "" {
			Assertf(t, err != nil, "Lit: %8s: expected an error, got %v", name, v)
			continue
		}
		Assertf(t, err == nil, "Lit: %8s: expected no error, got %v", name, err)
		if err == nil {
			Assertf(t, v.String() == d.expected, "Lit: %8s: expected %s got %s", name, d.expected, v.String())
		}
	}
}

func TestErrors(t *testing.T) {
	b := gqlbuild.MustNew(testSDL)

	_, err := b.Query("movies", gqlbuild.Select(gqlbuild.F("title")))
	Assertf(t, errors.Is(err, gqlbuild.ErrSchemaMismatch), "Errors: unknown resolver: got %v", err)

	_, err = b.Query("book", gqlbuild.Select(gqlbuild.F("title")))
	Assertf(t, errors.Is(err, gqlbuild.ErrMissingRequiredArgument), "Errors: missing id: got %v", err)

	_, err = b.Query("books",
		gqlbuild.Arg("publisher", gqlbuild.String("x")),
		gqlbuild.Select(gqlbuild.F("title")))
	Assertf(t, errors.Is(err, gqlbuild.ErrUnknownArgument), "Errors: unknown argument: got %v", err)

	_, err = b.Query("books",
		gqlbuild.Select(gqlbuild.F("title"), gqlbuild.F("title")))
	Assertf(t, errors.Is(err, gqlbuild.ErrDuplicateFieldKey), "Errors: duplicate key: got %v", err)

	// a declared variable whose type conflicts with its use
	_, err = b.Operation(
		gqlbuild.Declare("who", "Genre", nil),
		b.MustQuery("books",
			gqlbuild.Arg("author", gqlbuild.Var("who")),
			gqlbuild.Select(gqlbuild.F("title"))),
	)
	Assertf(t, errors.Is(err, gqlbuild.ErrVariableTypeConflict), "Errors: type conflict: got %v", err)

	// an option error surfaces from the node builder, not from the option
	_, err = b.Query("books",
		gqlbuild.Args(jsonmap.Ordered{Order: []string{"author"},
			Data: map[string]interface{}{"author": map[string]int{}}}),
		gqlbuild.Select(gqlbuild.F("title")))
	Assertf(t, err != nil && strings.Contains(err.Error(), "jsonmap.Ordered"),
		"Errors: plain map literal: got %v", err)

	_, err = b.Operation(b.MustQuery("totalBooks"), "LateName")
	Assertf(t, err != nil && strings.Contains(err.Error(), "first parameter"),
		"Errors: late name: got %v", err)

	_, err = b.Operation(42)
	Assertf(t, err != nil && strings.Contains(err.Error(), "unexpected type"),
		"Errors: bad parameter: got %v", err)

	_, err = gqlbuild.New("type Query {") // truncated SDL
	Assertf(t, err != nil, "Errors: expected an error for bad SDL, got nil")
}

func TestFieldReuse(t *testing.T) {
	b := gqlbuild.MustNew(testSDL)

	// one base field used two ways must not interfere with itself
	title := gqlbuild.F("title")
	doc := gqlbuild.MustCompile(b.MustOperation(b.MustQuery("books",
		gqlbuild.Select(title, title.As("headline")),
	)))
	expected := `{ books { title headline: title } }`
	Assertf(t, doc == expected, "Reuse: expected %q\n      got %q", expected, doc)
}

func Assertf(t *testing.T, succeeded bool, format string, args ...interface{}) {
	const (
		succeed = "✓" // tick
		failed  = "X"      //"✗" // cross
	)

	t.Helper()
	if !succeeded {
		t.Errorf("%s\t"+format, append([]interface{}{failed}, args...)...)
	} else {
		t.Logf("%s\t"+format, append([]interface{}{succeed}, args...)...)
	}
}
