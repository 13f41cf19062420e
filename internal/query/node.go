package query

// node.go has the Node type - one root-level resolver invocation - and the
// validation walk that checks a node's whole subtree against the schema

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/andrewwphillips/gqlbuild/internal/schema"
)

// Node is one root-level query/mutation/subscription invocation: a resolver
// name, an optional output alias, argument bindings and a selection set.
// Nodes are constructed once via NewNode, validated against the schema, and
// immutable thereafter.
type Node struct {
	kind       ast.Operation
	name       string
	alias      string
	args       []Argument
	directives []Directive
	sel        SelectionSet

	def    *ast.FieldDefinition // resolved root field (not owned)
	schema *ast.Schema          // the schema the node was validated against (not owned)
}

// NewNode builds and validates a query node.  The whole subtree is checked
// here: the resolver must exist on the entry point type, every argument name
// must be declared (with required ones present), leaf fields must not carry a
// sub-selection while non-leaf fields must, directives must be declared, and
// every selection level must have unique output keys.
func NewNode(s *ast.Schema, kind ast.Operation, name, alias string,
	args []Argument, directives []Directive, sel SelectionSet,
) (Node, error) {
	if s == nil {
		return Node{}, fmt.Errorf("no schema to validate %q against", name)
	}
	root := schema.RootType(s, kind)
	if root == nil {
		return Node{}, fmt.Errorf("%w: the schema has no %s type", ErrSchemaMismatch, kind)
	}
	def := schema.FieldDef(root, name)
	if def == nil {
		return Node{}, fmt.Errorf("%w: %s %q is not declared by the schema", ErrSchemaMismatch, kind, name)
	}
	if alias != "" && !schema.ValidName(alias) {
		return Node{}, fmt.Errorf("alias %q is not a valid GraphQL name", alias)
	}

	n := Node{
		kind: kind, name: name, alias: alias,
		args:       append([]Argument(nil), args...),
		directives: append([]Directive(nil), directives...),
		sel:        append(SelectionSet(nil), sel...),
		def:        def,
		schema:     s,
	}
	if err := checkArgs(def.Arguments, n.args, name); err != nil {
		return Node{}, err
	}
	if err := checkDirectives(s, n.directives, name); err != nil {
		return Node{}, err
	}
	if err := checkSelection(s, def.Type, n.sel, name); err != nil {
		return Node{}, err
	}
	return n, nil
}

// As returns a copy of the node under a different output alias.  Aliases are
// how one operation can invoke the same resolver twice.
func (n Node) As(alias string) (Node, error) {
	if !schema.ValidName(alias) {
		return Node{}, fmt.Errorf("alias %q is not a valid GraphQL name", alias)
	}
	n.alias = alias
	return n, nil
}

// Kind returns the entry point the node addresses (query/mutation/subscription)
func (n Node) Kind() ast.Operation { return n.kind }

// Name returns the resolver name
func (n Node) Name() string { return n.name }

// Alias returns the output alias ("" if none)
func (n Node) Alias() string { return n.alias }

// Key returns the output key - the alias if set, else the resolver name
func (n Node) Key() string {
	if n.alias != "" {
		return n.alias
	}
	return n.name
}

// Args returns the argument bindings in authoring order (read-only)
func (n Node) Args() []Argument { return n.args }

// Directives returns the node's directives (read-only)
func (n Node) Directives() []Directive { return n.directives }

// Selection returns the node's selection set (empty for a leaf resolver)
func (n Node) Selection() SelectionSet { return n.sel }

// Def returns the schema definition of the resolver field
func (n Node) Def() *ast.FieldDefinition { return n.def }

// Schema returns the schema the node was validated against
func (n Node) Schema() *ast.Schema { return n.schema }

// checkArgs verifies supplied arguments against the declared parameter list:
// no unknown or repeated names, and no required (non-null, defaultless)
// parameter left out.
func checkArgs(decl ast.ArgumentDefinitionList, args []Argument, where string) error {
	seen := make(map[string]struct{}, len(args))
	for _, a := range args {
		if decl.ForName(a.Name) == nil {
			return fmt.Errorf("%w: %q is not a parameter of %q", ErrUnknownArgument, a.Name, where)
		}
		if _, ok := seen[a.Name]; ok {
			return fmt.Errorf("argument %q of %q supplied more than once", a.Name, where)
		}
		if a.Value == nil {
			return fmt.Errorf("argument %q of %q has no value", a.Name, where)
		}
		seen[a.Name] = struct{}{}
	}
	for _, d := range decl {
		if !d.Type.NonNull || d.DefaultValue != nil {
			continue // optional
		}
		if _, ok := seen[d.Name]; !ok {
			return fmt.Errorf("%w: %q requires argument %q (%s)",
				ErrMissingRequiredArgument, where, d.Name, d.Type.String())
		}
	}
	return nil
}

// checkDirectives verifies that each directive is declared by the schema and
// that its arguments are valid
func checkDirectives(s *ast.Schema, directives []Directive, where string) error {
	for _, d := range directives {
		def := s.Directives[d.Name]
		if def == nil {
			return fmt.Errorf("%w: directive @%s (on %q) is not declared by the schema",
				ErrSchemaMismatch, d.Name, where)
		}
		if err := checkArgs(def.Arguments, d.Args, "@"+d.Name); err != nil {
			return err
		}
	}
	return nil
}

// checkSelection recursively validates a selection set against the type it
// selects from.  The path parameter is dotted field names for error messages.
func checkSelection(s *ast.Schema, t *ast.Type, sel SelectionSet, path string) error {
	if schema.IsLeaf(s, t) {
		if len(sel) != 0 {
			return fmt.Errorf("%w: %q is a leaf (%s) and cannot have a sub-selection",
				ErrSchemaMismatch, path, t.Name())
		}
		return nil
	}
	if len(sel) == 0 {
		return fmt.Errorf("%w: %q (%s) requires a sub-selection",
			ErrSchemaMismatch, path, t.Name())
	}
	if err := sel.checkKeys(path); err != nil {
		return err
	}

	parent := schema.Underlying(s, t)
	for _, f := range sel {
		fieldPath := path + "." + f.Name()
		def := schema.FieldDef(parent, f.Name())
		if def == nil {
			return fmt.Errorf("%w: %q has no field %q", ErrSchemaMismatch, parent.Name, f.Name())
		}
		if f.Alias() != "" && !schema.ValidName(f.Alias()) {
			return fmt.Errorf("alias %q (on %q) is not a valid GraphQL name", f.Alias(), fieldPath)
		}
		if err := checkArgs(def.Arguments, f.Args(), fieldPath); err != nil {
			return err
		}
		if err := checkDirectives(s, f.Directives(), fieldPath); err != nil {
			return err
		}
		if err := checkSelection(s, def.Type, f.Selection(), fieldPath); err != nil {
			return err
		}
	}
	return nil
}
