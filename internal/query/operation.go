package query

// operation.go has the Operation type - the compilable unit of one or more
// query nodes plus variable declarations - and its construction checks

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/andrewwphillips/gqlbuild/internal/schema"
)

type (
	// Variable is a variable declaration as authored: the type is a GraphQL
	// type expression string so it can be written before the schema types it
	// mentions are settled.  It is parsed and checked when the operation is
	// built.
	Variable struct {
		Name    string     // without the leading $
		Type    string     // eg "Author", "[Int!]!"
		Default *ast.Value // optional
	}

	// Declaration is a parsed, validated variable declaration owned by an
	// operation
	Declaration struct {
		Name    string
		Type    *ast.Type
		Default *ast.Value
	}

	// Operation aggregates one or more query nodes sharing an entry point,
	// an optional name and the declared variables, ready for compilation.
	// Constructed once via NewOperation, immutable thereafter.
	Operation struct {
		kind   ast.Operation
		name   string
		decls  []Declaration
		nodes  []Node
		schema *ast.Schema
	}
)

// NewOperation builds and validates an operation from nodes in the given
// order.  All nodes must address the same entry point and their output keys
// must be unique.  If vars is empty the declarations are inferred by scanning
// every argument binding and directive argument for $variable references;
// otherwise every reference must resolve to a declared variable of a
// compatible type, and every declared variable must be used.
func NewOperation(name string, vars []Variable, nodes []Node) (Operation, error) {
	if len(nodes) == 0 {
		return Operation{}, fmt.Errorf("an operation needs at least one query node")
	}
	for _, n := range nodes {
		if n.schema == nil {
			return Operation{}, fmt.Errorf("node %q was not built against a schema", n.Name())
		}
	}
	if name != "" && !schema.ValidName(name) {
		return Operation{}, fmt.Errorf("operation name %q is not a valid GraphQL name", name)
	}

	op := Operation{
		kind:   nodes[0].kind,
		name:   name,
		nodes:  append([]Node(nil), nodes...),
		schema: nodes[0].schema,
	}
	seen := make(map[string]struct{}, len(nodes))
	for _, n := range op.nodes {
		if n.kind != op.kind {
			return Operation{}, fmt.Errorf("%w: cannot mix %s %q with %s %q in one operation",
				ErrSchemaMismatch, op.kind, op.nodes[0].Name(), n.kind, n.Name())
		}
		if _, ok := seen[n.Key()]; ok {
			return Operation{}, fmt.Errorf("%w: output key %q appears twice at the top level (alias one of them)",
				ErrDuplicateFieldKey, n.Key())
		}
		seen[n.Key()] = struct{}{}
	}

	uses, err := variableUses(op.schema, op.nodes)
	if err != nil {
		return Operation{}, err
	}
	if len(vars) == 0 {
		op.decls, err = inferDeclarations(uses)
	} else {
		op.decls, err = checkDeclarations(vars, uses)
	}
	if err != nil {
		return Operation{}, err
	}
	return op, nil
}

// Kind returns the entry point the operation addresses
func (op Operation) Kind() ast.Operation { return op.kind }

// Name returns the operation name ("" for an anonymous operation)
func (op Operation) Name() string { return op.name }

// Declarations returns the declared (or inferred) variables in order (read-only)
func (op Operation) Declarations() []Declaration { return op.decls }

// Nodes returns the query nodes in authoring order (read-only)
func (op Operation) Nodes() []Node { return op.nodes }

// Schema returns the schema the operation was validated against
func (op Operation) Schema() *ast.Schema { return op.schema }

// inferDeclarations folds the variable uses into declarations, one per name in
// first-use order, unifying the types each use implies
func inferDeclarations(uses []varUse) ([]Declaration, error) {
	var order []string
	types := make(map[string]*ast.Type)
	for _, u := range uses {
		prev, ok := types[u.name]
		if !ok {
			order = append(order, u.name)
		}
		unified, ok := schema.Unify(prev, u.wanted)
		if !ok {
			return nil, fmt.Errorf("%w: $%s is used both as %s and as %s",
				ErrVariableTypeConflict, u.name, prev.String(), u.wanted.String())
		}
		types[u.name] = unified
	}
	decls := make([]Declaration, 0, len(order))
	for _, name := range order {
		decls = append(decls, Declaration{Name: name, Type: types[name]})
	}
	return decls, nil
}

// checkDeclarations validates explicit declarations against the variable uses:
// every use must resolve to a declaration of a satisfying type and every
// declaration must be used
func checkDeclarations(vars []Variable, uses []varUse) ([]Declaration, error) {
	decls := make([]Declaration, 0, len(vars))
	byName := make(map[string]Declaration, len(vars))
	for _, v := range vars {
		if !schema.ValidName(v.Name) {
			return nil, fmt.Errorf("variable name %q is not a valid GraphQL name", v.Name)
		}
		if _, ok := byName[v.Name]; ok {
			return nil, fmt.Errorf("variable $%s declared twice", v.Name)
		}
		t, err := schema.ParseType(v.Type)
		if err != nil {
			return nil, fmt.Errorf("%v declaring variable $%s", err, v.Name)
		}
		d := Declaration{Name: v.Name, Type: t, Default: v.Default}
		byName[v.Name] = d
		decls = append(decls, d)
	}

	used := make(map[string]struct{}, len(uses))
	for _, u := range uses {
		d, ok := byName[u.name]
		if !ok {
			return nil, fmt.Errorf("%w: $%s (used at %q) is not declared by the operation",
				ErrUndeclaredVariable, u.name, u.path)
		}
		if !schema.Satisfies(d.Type, u.wanted, u.hasDefault || d.Default != nil) {
			return nil, fmt.Errorf("%w: $%s is declared as %s but %q wants %s",
				ErrVariableTypeConflict, u.name, d.Type.String(), u.path, u.wanted.String())
		}
		used[u.name] = struct{}{}
	}
	for _, d := range decls {
		if _, ok := used[d.Name]; !ok {
			return nil, fmt.Errorf("variable $%s is declared but never used", d.Name)
		}
	}
	return decls, nil
}
