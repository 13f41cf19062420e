package schema_test

// schema_test.go tests schema loading and the lookups the builder relies on

import (
	"testing"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/andrewwphillips/gqlbuild/internal/schema"
)

const testSDL = `
type Query {
  books(author: String, genre: Genre): [Book!]
  book(id: ID!): Book
  totalBooks: Int!
}
type Mutation {
  addBook(title: String!, pages: Int = 100): Book
}
type Book {
  title: String!
  author: Author
  genre: Genre
  pages: Int
}
type Author {
  name: String!
  books: [Book!]
}
enum Genre { FICTION NONFICTION }
`

func TestLoad(t *testing.T) {
	s, err := schema.Load(testSDL)
	Assertf(t, err == nil, "Load: expected no error, got %v", err)
	Assertf(t, s != nil && s.Query != nil, "Load: expected a Query type")
	// The prelude should have provided the built-in scalars and directives
	Assertf(t, s.Types["Int"] != nil, "Load: expected built-in Int scalar")
	Assertf(t, s.Directives["skip"] != nil, "Load: expected built-in @skip directive")
}

func TestLoadBadSDL(t *testing.T) {
	_, err := schema.Load("type Query { books: [Missing!] }")
	Assertf(t, err != nil, "LoadBadSDL: expected an error for an undefined type, got nil")
	_, err = schema.Load("this is not SDL")
	Assertf(t, err != nil, "LoadBadSDL: expected a parse error, got nil")
}

func TestRootType(t *testing.T) {
	s := schema.MustLoad(testSDL)
	q := schema.RootType(s, ast.Query)
	Assertf(t, q != nil && q.Name == "Query", "RootType: expected Query, got %v", q)
	m := schema.RootType(s, ast.Mutation)
	Assertf(t, m != nil && m.Name == "Mutation", "RootType: expected Mutation, got %v", m)
	sub := schema.RootType(s, ast.Subscription)
	Assertf(t, sub == nil, "RootType: expected nil for undeclared subscription, got %v", sub)
}

func TestFieldDef(t *testing.T) {
	s := schema.MustLoad(testSDL)
	book := s.Types["Book"]

	def := schema.FieldDef(book, "title")
	Assertf(t, def != nil && def.Type.String() == "String!", "FieldDef: expected title: String!, got %v", def)

	def = schema.FieldDef(book, "publisher")
	Assertf(t, def == nil, "FieldDef: expected nil for unknown field, got %v", def)

	def = schema.FieldDef(book, "__typename")
	Assertf(t, def != nil && def.Type.String() == "String!", "FieldDef: expected __typename meta field, got %v", def)

	def = schema.FieldDef(nil, "title")
	Assertf(t, def == nil, "FieldDef: expected nil for nil parent, got %v", def)
}

func TestIsLeaf(t *testing.T) {
	s := schema.MustLoad(testSDL)
	data := map[string]struct {
		typ  *ast.Type
		leaf bool
	}{
		"Scalar":     {ast.NonNullNamedType("Int", nil), true},
		"Enum":       {ast.NamedType("Genre", nil), true},
		"Object":     {ast.NamedType("Book", nil), false},
		"ListObject": {ast.ListType(ast.NonNullNamedType("Book", nil), nil), false},
		"ListScalar": {ast.ListType(ast.NamedType("String", nil), nil), true},
		"Unknown":    {ast.NamedType("Nothing", nil), false},
	}
	for name, d := range data {
		got := schema.IsLeaf(s, d.typ)
		Assertf(t, got == d.leaf, "IsLeaf: %10s: expected %v got %v", name, d.leaf, got)
	}
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
