package gqlbuild

// values.go has the constructors for the literal values and variable
// references bound to arguments.  Values are gqlparser AST values underneath,
// so anything built here renders exactly as the wire format expects.

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/dolmen-go/jsonmap"
	"github.com/vektah/gqlparser/v2/ast"
)

// Var references an operation variable by name (a leading $ is allowed and
// ignored).  The reference is resolved against the operation's declared or
// inferred variables when the operation is built.
func Var(name string) Value {
	return &ast.Value{Raw: strings.TrimPrefix(name, "$"), Kind: ast.Variable}
}

// String creates a GraphQL String literal
func String(s string) Value {
	return &ast.Value{Raw: s, Kind: ast.StringValue}
}

// Int creates a GraphQL Int literal
func Int(i int) Value {
	return &ast.Value{Raw: strconv.Itoa(i), Kind: ast.IntValue}
}

// Float creates a GraphQL Float literal
func Float(f float64) Value {
	return &ast.Value{Raw: strconv.FormatFloat(f, 'g', -1, 64), Kind: ast.FloatValue}
}

// Bool creates a GraphQL Boolean literal
func Bool(b bool) Value {
	return &ast.Value{Raw: strconv.FormatBool(b), Kind: ast.BooleanValue}
}

// Enum creates a GraphQL enum value literal, eg Enum("FICTION")
func Enum(name string) Value {
	return &ast.Value{Raw: name, Kind: ast.EnumValue}
}

// Null creates the GraphQL null literal
func Null() Value {
	return &ast.Value{Raw: "null", Kind: ast.NullValue}
}

// List creates a GraphQL list literal from the given values
func List(values ...Value) Value {
	v := &ast.Value{Kind: ast.ListValue}
	for _, elem := range values {
		v.Children = append(v.Children, &ast.ChildValue{Value: elem})
	}
	return v
}

// Object creates a GraphQL input object literal from an ordered map.  An
// ordered map is required (not a plain Go map) because field order is part of
// the compiled output.  Values are converted as by Lit.
func Object(om jsonmap.Ordered) (Value, error) {
	v := &ast.Value{Kind: ast.ObjectValue}
	for _, name := range om.Order {
		value, err := Lit(om.Data[name])
		if err != nil {
			return nil, fmt.Errorf("%v for object field %q", err, name)
		}
		v.Children = append(v.Children, &ast.ChildValue{Name: name, Value: value})
	}
	return v, nil
}

// MustObject is the same as Object but panics on error
func MustObject(om jsonmap.Ordered) Value {
	v, err := Object(om)
	if err != nil {
		panic(err)
	}
	return v
}

// Lit converts a Go value to a GraphQL literal: booleans, strings, integers
// and floats map to the matching scalar literal, nil to null, slices and
// arrays to lists, and jsonmap.Ordered to input objects.  A Value passes
// through unchanged.  Plain Go maps are rejected - their iteration order
// would make compiled output unreproducible; use jsonmap.Ordered.
func Lit(v interface{}) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case *ast.Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case int:
		return Int(val), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return &ast.Value{Raw: fmt.Sprintf("%d", val), Kind: ast.IntValue}, nil
	case float32:
		return Float(float64(val)), nil
	case float64:
		return Float(val), nil
	case jsonmap.Ordered:
		return Object(val)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		list := &ast.Value{Kind: ast.ListValue}
		for i := 0; i < rv.Len(); i++ {
			elem, err := Lit(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			list.Children = append(list.Children, &ast.ChildValue{Value: elem})
		}
		return list, nil
	case reflect.Map:
		return nil, fmt.Errorf("cannot use a plain map as a literal (unordered) - use jsonmap.Ordered")
	}
	return nil, fmt.Errorf("cannot convert %T to a GraphQL literal", v)
}

// MustLit is the same as Lit but panics on error
func MustLit(v interface{}) Value {
	value, err := Lit(v)
	if err != nil {
		panic(err)
	}
	return value
}
