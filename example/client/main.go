package main

// An HTTP client that compiles a query and posts it to a GraphQL server in
// the standard JSON envelope, authenticating with a JWT bearer token.  Run a
// server on :8080 (any server whose schema has the books query below) then
// run this to see the response.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/andrewwphillips/gqlbuild"
	"github.com/golang-jwt/jwt/v4"
)

const (
	APP_ISSUER = "github.com/andrewwphillips/gqlbuild/example/client"
	APP_SECRET = "GraphQL-is-awesome" // TODO get this from secret store

	serverURL = "http://localhost:8080/graphql"
)

const sdl = `
type Query {
  books(author: String): [Book!]
}
type Book {
  title: String!
  author: Author
}
type Author { name: String! }
`

// request is the JSON envelope a GraphQL server expects over HTTP
type request struct {
	OperationName string                 `json:"operationName,omitempty"`
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

func main() {
	b := gqlbuild.MustNew(sdl)

	op := b.MustOperation("ByAuthor",
		b.MustQuery("books",
			gqlbuild.Arg("author", gqlbuild.Var("who")),
			gqlbuild.Select(
				gqlbuild.F("title"),
				gqlbuild.F("author").Select(gqlbuild.F("name")),
			),
		),
	)

	body, err := json.Marshal(request{
		OperationName: "ByAuthor",
		Query:         gqlbuild.MustCompile(op),
		Variables:     map[string]interface{}{"who": "John Cena"},
	})
	if err != nil {
		log.Fatalln("marshaling request:", err)
	}

	req, err := http.NewRequest(http.MethodPost, serverURL, bytes.NewReader(body))
	if err != nil {
		log.Fatalln("creating request:", err)
	}
	token, err := getToken("dan")
	if err != nil {
		log.Fatalln("signing token:", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalln("posting query:", err)
	}
	defer resp.Body.Close()

	reply, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalln("reading response:", err)
	}
	fmt.Printf("%s\n%s\n", resp.Status, reply)
}

// getToken returns a signed JWT for the given user ID, for the server to
// authorise the request with
func getToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti": userID,
		"exp": time.Now().Add(time.Hour * 24).Unix(),
		"iss": APP_ISSUER,
	})
	return token.SignedString([]byte(APP_SECRET))
}
