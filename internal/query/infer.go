package query

// infer.go is the single traversal pass that finds every $variable reference
// in an operation's nodes, together with the type the surrounding argument
// expects.  Both inference (no explicit declarations) and declaration
// checking are driven off this one pass so the UndeclaredVariable and
// VariableTypeConflict checks stay in one place.

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/andrewwphillips/gqlbuild/internal/schema"
)

// varUse records one $variable reference: the type wanted at the point of use
// and whether a default exists there (which relaxes the non-null requirement)
type varUse struct {
	name       string
	wanted     *ast.Type
	hasDefault bool
	path       string // where it was used, for error messages
}

// variableUses walks every node's argument bindings and directive arguments
// (recursively through the selection tree and through list/object literals)
// and returns the references in first-use order.
func variableUses(s *ast.Schema, nodes []Node) ([]varUse, error) {
	var uses []varUse
	add := func(u varUse) { uses = append(uses, u) }
	for _, n := range nodes {
		if err := argUses(s, n.def.Arguments, n.args, n.Name(), add); err != nil {
			return nil, err
		}
		if err := directiveUses(s, n.directives, n.Name(), add); err != nil {
			return nil, err
		}
		if err := selectionUses(s, n.def.Type, n.sel, n.Name(), add); err != nil {
			return nil, err
		}
	}
	return uses, nil
}

func selectionUses(s *ast.Schema, t *ast.Type, sel SelectionSet, path string, add func(varUse)) error {
	parent := schema.Underlying(s, t)
	for _, f := range sel {
		fieldPath := path + "." + f.Name()
		def := schema.FieldDef(parent, f.Name())
		if def == nil {
			// checked at node construction; repeated here so a bypassed value
			// still fails before compilation
			return fmt.Errorf("%w: %q has no field %q", ErrSchemaMismatch, t.Name(), f.Name())
		}
		if err := argUses(s, def.Arguments, f.Args(), fieldPath, add); err != nil {
			return err
		}
		if err := directiveUses(s, f.Directives(), fieldPath, add); err != nil {
			return err
		}
		if err := selectionUses(s, def.Type, f.Selection(), fieldPath, add); err != nil {
			return err
		}
	}
	return nil
}

func directiveUses(s *ast.Schema, directives []Directive, path string, add func(varUse)) error {
	for _, d := range directives {
		def := s.Directives[d.Name]
		if def == nil {
			return fmt.Errorf("%w: directive @%s (on %q) is not declared by the schema",
				ErrSchemaMismatch, d.Name, path)
		}
		if err := argUses(s, def.Arguments, d.Args, path+"@"+d.Name, add); err != nil {
			return err
		}
	}
	return nil
}

func argUses(s *ast.Schema, decl ast.ArgumentDefinitionList, args []Argument, path string, add func(varUse)) error {
	for _, a := range args {
		d := decl.ForName(a.Name)
		if d == nil {
			return fmt.Errorf("%w: %q is not a parameter of %q", ErrUnknownArgument, a.Name, path)
		}
		argPath := path + "(" + a.Name + ")"
		if err := valueUses(s, a.Value, d.Type, d.DefaultValue != nil, argPath, add); err != nil {
			return err
		}
	}
	return nil
}

// valueUses descends into a bound value looking for variable references.
// Lists pass their element type down; input objects pass each field's type.
func valueUses(s *ast.Schema, v *ast.Value, wanted *ast.Type, hasDefault bool, path string, add func(varUse)) error {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case ast.Variable:
		add(varUse{name: v.Raw, wanted: wanted, hasDefault: hasDefault, path: path})
	case ast.ListValue:
		elem := wanted
		if wanted != nil && wanted.Elem != nil {
			elem = wanted.Elem
		} // a non-list wanted type is left as-is (the compile re-check reports it)
		for _, child := range v.Children {
			if err := valueUses(s, child.Value, elem, false, path, add); err != nil {
				return err
			}
		}
	case ast.ObjectValue:
		def := schema.Underlying(s, wanted)
		if def == nil {
			return fmt.Errorf("%w: %q wants %s, not an input object", ErrSchemaMismatch, path, wanted.String())
		}
		for _, child := range v.Children {
			fd := def.Fields.ForName(child.Name)
			if fd == nil {
				return fmt.Errorf("%w: %q is not a field of input %q (at %q)",
					ErrSchemaMismatch, child.Name, def.Name, path)
			}
			if err := valueUses(s, child.Value, fd.Type, fd.DefaultValue != nil, path+"."+child.Name, add); err != nil {
				return err
			}
		}
	}
	return nil
}
