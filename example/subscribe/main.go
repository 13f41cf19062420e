package main

// A websocket client that compiles a subscription and runs it against a
// GraphQL server using the graphql-transport-ws sub-protocol: it sends
// connection_init, waits for connection_ack, subscribes, and prints each
// "next" payload until the server completes or the message limit is reached.

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/andrewwphillips/gqlbuild"
	"github.com/gorilla/websocket"
)

const serverURL = "ws://localhost:8080/graphql"

const sdl = `
type Subscription {
  bookAdded: Book!
}
type Query { totalBooks: Int! }
type Book {
  title: String!
  author: Author
}
type Author { name: String! }
`

// wsMessage is the framing used by the graphql-transport-ws sub-protocol
type wsMessage struct {
	Type    string `json:"type"`
	ID      string `json:"id,omitempty"`
	Payload struct {
		Query string          `json:"query,omitempty"`
		Data  json.RawMessage `json:"data,omitempty"`
	} `json:"payload,omitempty"`
}

func main() {
	b := gqlbuild.MustNew(sdl)
	op := b.MustOperation(
		b.MustSubscription("bookAdded",
			gqlbuild.Select(
				gqlbuild.F("title"),
				gqlbuild.F("author").Select(gqlbuild.F("name")),
			),
		),
	)
	doc := gqlbuild.MustCompile(op)

	dialer := websocket.Dialer{Subprotocols: []string{"graphql-transport-ws"}}
	conn, _, err := dialer.Dial(serverURL, nil)
	if err != nil {
		log.Fatalln("dialing server:", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(wsMessage{Type: "connection_init"}); err != nil {
		log.Fatalln("sending connection_init:", err)
	}
	var ack wsMessage
	if err := conn.ReadJSON(&ack); err != nil || ack.Type != "connection_ack" {
		log.Fatalf("expected connection_ack, got %q (%v)", ack.Type, err)
	}

	subscribe := wsMessage{Type: "subscribe", ID: "1"}
	subscribe.Payload.Query = doc
	if err := conn.WriteJSON(subscribe); err != nil {
		log.Fatalln("sending subscribe:", err)
	}

	for received := 0; received < 10; {
		var message wsMessage
		if err := conn.ReadJSON(&message); err != nil {
			log.Fatalln("reading message:", err)
		}
		switch message.Type {
		case "next":
			received++
			fmt.Printf("%s\n", message.Payload.Data)
		case "complete":
			return
		case "ping":
			if err := conn.WriteJSON(wsMessage{Type: "pong"}); err != nil {
				log.Fatalln("sending pong:", err)
			}
		default:
			log.Println("unexpected message type:", message.Type)
		}
	}
	// tell the server we're done before closing
	if err := conn.WriteJSON(wsMessage{Type: "complete", ID: "1"}); err != nil {
		log.Println("sending complete:", err)
	}
}
