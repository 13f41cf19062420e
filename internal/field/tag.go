package field

// tag.go extracts selection info from the "gql:" tag string attached to a
// struct field.  The tag names the schema field and carries the options that
// cannot be derived from the Go type:
//
//	gql:"-"                              omit the field
//	gql:"headline"                       schema field name (default: Go name, first letter lower-cased)
//	gql:",alias=topStory"                output alias
//	gql:",args(author=$author,limit=10)" argument bindings (literals or $variables)
//	gql:",scalar"                        treat a struct-typed field as a scalar (no recursion)

import (
	"fmt"
	"strings"

	"github.com/andrewwphillips/gqlbuild/internal/query"
	"github.com/andrewwphillips/gqlbuild/internal/schema"
)

// Info is the selection info extracted from one struct field's tag
type Info struct {
	Name   string // schema field name ("" means derive from the Go name)
	Alias  string // output alias ("" means none)
	Scalar bool   // don't recurse into a struct-typed field
	Args   []query.Argument
}

// GetInfoFromTag parses a gql tag string.  A tag of just "-" returns nil (no
// error) meaning the field is omitted.  An empty tag returns a non-nil Info
// with everything defaulted.
func GetInfoFromTag(tag string) (*Info, error) {
	if tag == "-" {
		return nil, nil // this field is to be ignored
	}
	parts, err := Split(tag, ',')
	if err != nil {
		return nil, fmt.Errorf("%v splitting tag %q", err, tag)
	}

	info := &Info{}
	for i, part := range parts {
		if i == 0 { // first string is the schema field name
			if part != "" && !schema.ValidName(part) {
				return nil, fmt.Errorf("%q is not a valid field name in tag %q", part, tag)
			}
			info.Name = part
			continue
		}
		if part == "" {
			continue // ignore empty sections
		}
		if part == "scalar" {
			info.Scalar = true
			continue
		}
		if strings.HasPrefix(part, "alias=") {
			info.Alias = part[len("alias="):]
			if !schema.ValidName(info.Alias) {
				return nil, fmt.Errorf("%q is not a valid alias in tag %q", info.Alias, tag)
			}
			continue
		}
		if list, ok, err := bracketed(part, "args"); err != nil {
			return nil, fmt.Errorf("%v getting args in tag %q", err, tag)
		} else if ok {
			for _, binding := range list {
				arg, err := parseBinding(binding)
				if err != nil {
					return nil, fmt.Errorf("%v in tag %q", err, tag)
				}
				info.Args = append(info.Args, arg)
			}
			continue
		}
		return nil, fmt.Errorf("unknown option %q in gql tag %q", part, tag)
	}
	return info, nil
}

// parseBinding parses one "name=value" argument binding from an args(...) list
func parseBinding(s string) (query.Argument, error) {
	eq := strings.IndexByte(s, '=')
	if eq < 0 {
		return query.Argument{}, fmt.Errorf("argument %q needs a value (name=value)", s)
	}
	name := strings.TrimSpace(s[:eq])
	if !schema.ValidName(name) {
		return query.Argument{}, fmt.Errorf("%q is not a valid argument name", name)
	}
	value, err := ParseValue(s[eq+1:])
	if err != nil {
		return query.Argument{}, fmt.Errorf("%v for argument %q", err, name)
	}
	return query.Argument{Name: name, Value: value}, nil
}
