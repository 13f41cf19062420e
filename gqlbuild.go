package gqlbuild

// gqlbuild.go provides the Builder type that holds the schema and constructs
// query nodes and operations against it

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/andrewwphillips/gqlbuild/internal/query"
	"github.com/andrewwphillips/gqlbuild/internal/schema"
)

// Builder constructs query nodes and operations validated against one schema.
// The zero Builder is not usable - create one with New or MustNew.
type Builder struct {
	schema *ast.Schema
}

// New creates a Builder for the schema given as one or more SDL strings.
// The schema is the server's - this package only reads it, to validate what
// the built queries reference.
func New(sdl ...string) (Builder, error) {
	s, err := schema.Load(sdl...)
	if err != nil {
		return Builder{}, err
	}
	return Builder{schema: s}, nil
}

// MustNew is the same as New but panics on error
func MustNew(sdl ...string) Builder {
	b, err := New(sdl...)
	if err != nil {
		panic(err)
	}
	return b
}

// Schema returns the loaded schema (useful for passing to other gqlparser tooling)
func (b Builder) Schema() *ast.Schema { return b.schema }

// Query builds a query node invoking the named resolver of the schema's Query
// type.  Options supply arguments, the selection, an alias and directives.
// The node and everything in it is validated here - see the Err* values for
// what can go wrong.
func (b Builder) Query(name string, opts ...NodeOption) (Node, error) {
	return b.node(ast.Query, name, opts)
}

// MustQuery is the same as Query but panics on error
func (b Builder) MustQuery(name string, opts ...NodeOption) Node {
	n, err := b.Query(name, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// Mutation builds a query node invoking a resolver of the schema's Mutation type
func (b Builder) Mutation(name string, opts ...NodeOption) (Node, error) {
	return b.node(ast.Mutation, name, opts)
}

// MustMutation is the same as Mutation but panics on error
func (b Builder) MustMutation(name string, opts ...NodeOption) Node {
	n, err := b.Mutation(name, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// Subscription builds a query node invoking a resolver of the schema's
// Subscription type
func (b Builder) Subscription(name string, opts ...NodeOption) (Node, error) {
	return b.node(ast.Subscription, name, opts)
}

// MustSubscription is the same as Subscription but panics on error
func (b Builder) MustSubscription(name string, opts ...NodeOption) Node {
	n, err := b.Subscription(name, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

func (b Builder) node(kind ast.Operation, name string, opts []NodeOption) (Node, error) {
	var cfg nodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Node{}, fmt.Errorf("%w building %s %q", cfg.err, kind, name)
	}
	return query.NewNode(b.schema, kind, name, cfg.alias, cfg.args, cfg.directives, cfg.sel)
}

// Operation combines query nodes into a compilable operation.  It is a
// variadic function so can take any number of parameters but to be useful you
// need to supply at least one node.  The parameters are optional (except the
// nodes) but should be supplied in this order:
//
//	string            = the operation name (anonymous if omitted)
//	Variable/[]Variable = explicit variable declarations (inferred if omitted)
//	Node/[]Node       = the query nodes, in the order they should compile
//
// All nodes must have been built from the same entry point (all Query, all
// Mutation, or all Subscription) - the operation takes its type from them.
func (b Builder) Operation(params ...interface{}) (Operation, error) {
	var name string
	var vars []Variable
	var nodes []Node
	for i, p := range params {
		switch v := p.(type) {
		case string:
			if i != 0 {
				return Operation{}, fmt.Errorf("the operation name must be the first parameter")
			}
			name = v
		case Variable:
			vars = append(vars, v)
		case []Variable:
			vars = append(vars, v...)
		case Node:
			nodes = append(nodes, v)
		case []Node:
			nodes = append(nodes, v...)
		default:
			return Operation{}, fmt.Errorf("parameter %d of Operation has unexpected type %T", i, p)
		}
	}
	return query.NewOperation(name, vars, nodes)
}

// MustOperation is the same as Operation but panics on error
func (b Builder) MustOperation(params ...interface{}) Operation {
	op, err := b.Operation(params...)
	if err != nil {
		panic(err)
	}
	return op
}
