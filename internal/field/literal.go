package field

// literal.go parses the literal values written in gql tags - the same grammar
// GraphQL uses for argument values: $variables, strings, numbers, booleans,
// null, enum names, lists and input objects

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/andrewwphillips/gqlbuild/internal/schema"
)

// ParseValue parses a GraphQL literal (or $variable reference) into its AST
// form.  It only decides the kind of the value - whether the value suits the
// argument's type is left to the compile-time re-check.
func ParseValue(s string) (*ast.Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty value")
	}

	if strings.HasPrefix(s, "$") {
		name := s[1:]
		if !schema.ValidName(name) {
			return nil, fmt.Errorf("%q is not a valid variable name", s)
		}
		return &ast.Value{Raw: name, Kind: ast.Variable}, nil
	}
	if strings.HasPrefix(s, `"`) {
		raw, err := strconv.Unquote(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid string literal", s)
		}
		return &ast.Value{Raw: raw, Kind: ast.StringValue}, nil
	}
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return nil, fmt.Errorf("unmatched '[' in %q", s)
		}
		return parseList(s[1 : len(s)-1])
	}
	if strings.HasPrefix(s, "{") {
		if !strings.HasSuffix(s, "}") {
			return nil, fmt.Errorf("unmatched '{' in %q", s)
		}
		return parseObject(s[1 : len(s)-1])
	}

	switch s {
	case "null":
		return &ast.Value{Raw: s, Kind: ast.NullValue}, nil
	case "true", "false":
		return &ast.Value{Raw: s, Kind: ast.BooleanValue}, nil
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &ast.Value{Raw: s, Kind: ast.IntValue}, nil
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return &ast.Value{Raw: s, Kind: ast.FloatValue}, nil
	}
	if schema.ValidName(s) {
		return &ast.Value{Raw: s, Kind: ast.EnumValue}, nil // eg FOOT
	}
	return nil, fmt.Errorf("%q is not a valid literal", s)
}

func parseList(inner string) (*ast.Value, error) {
	v := &ast.Value{Kind: ast.ListValue}
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return v, nil
	}
	parts, err := Split(inner, ',')
	if err != nil {
		return nil, err
	}
	for _, p := range parts {
		elem, err := ParseValue(p)
		if err != nil {
			return nil, err
		}
		v.Children = append(v.Children, &ast.ChildValue{Value: elem})
	}
	return v, nil
}

func parseObject(inner string) (*ast.Value, error) {
	v := &ast.Value{Kind: ast.ObjectValue}
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return v, nil
	}
	parts, err := Split(inner, ',')
	if err != nil {
		return nil, err
	}
	for _, p := range parts {
		colon := strings.IndexByte(p, ':')
		if colon < 0 {
			return nil, fmt.Errorf("object field %q needs a colon", p)
		}
		name := strings.TrimSpace(p[:colon])
		if !schema.ValidName(name) {
			return nil, fmt.Errorf("%q is not a valid object field name", name)
		}
		val, err := ParseValue(p[colon+1:])
		if err != nil {
			return nil, err
		}
		v.Children = append(v.Children, &ast.ChildValue{Name: name, Value: val})
	}
	return v, nil
}
