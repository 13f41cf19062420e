// Package field derives GraphQL selection sets from Go structs.  A struct
// mirrors the shape of the result you want back: each exported field becomes
// a field reference, nested structs become sub-selections, and the "gql:" tag
// supplies what the type cannot - renames, aliases, argument bindings.  This
// saves spelling out a selection field-by-field when a result type already
// exists in the program.
package field

// field.go walks a Go struct type and builds the equivalent selection set

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/andrewwphillips/gqlbuild/internal/query"
)

// Selection derives a selection set from a struct type (or pointer to one).
// Unexported fields and fields tagged gql:"-" are skipped.  Pointers, slices,
// arrays and maps select their element type; struct-typed fields recurse
// unless tagged as scalar.
func Selection(t reflect.Type) (query.SelectionSet, error) {
	return selection(t, make(map[reflect.Type]bool))
}

// selection does the work of Selection, tracking the structs already being
// expanded so a recursive type is reported rather than looping forever
func selection(t reflect.Type, expanding map[reflect.Type]bool) (query.SelectionSet, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot derive a selection from %v (need a struct)", t)
	}
	if expanding[t] {
		return nil, fmt.Errorf("recursive type %v needs a gql:\"-\" or scalar tag to stop the cycle", t)
	}
	expanding[t] = true
	defer delete(expanding, t)

	var fields []query.Field
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported field
		}
		info, err := GetInfoFromTag(f.Tag.Get("gql"))
		if err != nil {
			return nil, fmt.Errorf("%v on field %q of %v", err, f.Name, t)
		}
		if info == nil {
			continue // explicitly omitted field
		}

		name := info.Name
		if name == "" {
			// make the GraphQL name from the Go field name with the first letter lower-cased
			first, n := utf8.DecodeRuneInString(f.Name)
			name = string(unicode.ToLower(first)) + f.Name[n:]
		}
		qf := query.NewField(name)
		if info.Alias != "" {
			qf = qf.As(info.Alias)
		}
		for _, a := range info.Args {
			qf = qf.Arg(a.Name, a.Value)
		}

		// Get the element type - what the field's values look like
		elem := f.Type
		for elem.Kind() == reflect.Ptr || elem.Kind() == reflect.Slice ||
			elem.Kind() == reflect.Array || elem.Kind() == reflect.Map {
			elem = elem.Elem()
		}
		switch elem.Kind() {
		case reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
			return nil, fmt.Errorf("field %q of %v has no GraphQL equivalent (%v)", f.Name, t, elem.Kind())
		case reflect.Struct:
			if !info.Scalar {
				sub, err := selection(elem, expanding)
				if err != nil {
					return nil, err
				}
				if len(sub) == 0 {
					return nil, fmt.Errorf("struct field %q of %v selects nothing", f.Name, t)
				}
				qf = qf.Select(sub...)
			}
		}
		fields = append(fields, qf)
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%v has no usable fields", t)
	}
	return query.NewSelectionSet(fields...)
}
