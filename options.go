package gqlbuild

// options.go has the options accepted by Builder.Query/Mutation/Subscription.
// Options use closures over a private config struct so new options can be
// added without changing the method signatures.

import (
	"reflect"

	"github.com/dolmen-go/jsonmap"

	"github.com/andrewwphillips/gqlbuild/internal/field"
	"github.com/andrewwphillips/gqlbuild/internal/query"
)

type nodeConfig struct {
	alias      string
	args       []query.Argument
	directives []query.Directive
	sel        query.SelectionSet
	err        error // first error from an option, surfaced by the node builder
}

// NodeOption configures one aspect of a query node under construction
type NodeOption func(*nodeConfig)

// Alias sets the output key the node's result appears under, so one operation
// can invoke the same resolver more than once
func Alias(alias string) NodeOption {
	return func(cfg *nodeConfig) {
		cfg.alias = alias
	}
}

// Arg binds one named argument to a literal value or variable reference
func Arg(name string, value Value) NodeOption {
	return func(cfg *nodeConfig) {
		cfg.args = append(cfg.args, query.Argument{Name: name, Value: value})
	}
}

// Args binds arguments from an ordered map, preserving its order.  An ordered
// map is required (not a plain Go map) because argument order is part of the
// compiled output.  Values are converted as by Lit.
func Args(om jsonmap.Ordered) NodeOption {
	return func(cfg *nodeConfig) {
		for _, name := range om.Order {
			value, err := Lit(om.Data[name])
			if err != nil && cfg.err == nil {
				cfg.err = err
				return
			}
			cfg.args = append(cfg.args, query.Argument{Name: name, Value: value})
		}
	}
}

// Select supplies the node's selection set - the fields to fetch, in the
// order they should compile
func Select(fields ...Field) NodeOption {
	return func(cfg *nodeConfig) {
		cfg.sel = append(cfg.sel, fields...)
	}
}

// SelectionOf derives the node's selection set from a struct value (or
// pointer to one) whose shape mirrors the wanted result.  See the gql tag
// options in the package documentation.
func SelectionOf(v interface{}) NodeOption {
	return func(cfg *nodeConfig) {
		sel, err := field.Selection(reflect.TypeOf(v))
		if err != nil && cfg.err == nil {
			cfg.err = err
			return
		}
		cfg.sel = append(cfg.sel, sel...)
	}
}

// Dir attaches a directive to the node itself (use Field.Directive for
// directives on nested fields)
func Dir(name string, args ...Argument) NodeOption {
	return func(cfg *nodeConfig) {
		cfg.directives = append(cfg.directives, query.Directive{Name: name, Args: args})
	}
}
