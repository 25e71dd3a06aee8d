// Package interpreter drives the fixed-point loop that interleaves
// reduction with top-level name inlining, which is how recursion and
// mutual recursion normalize (spec.md §4.4). It mirrors interpret() /
// resolve_names() in the C++ this spec was distilled from, with one
// deliberate divergence spec.md §4.4 requires: inlining copies the
// referenced definition's expression rather than aliasing it, since this
// Go implementation's trees are not reference-counted.
package interpreter

import (
	"github.com/levant47/lambda-calculus/internal/ast"
	"github.com/levant47/lambda-calculus/internal/diagnostics"
	"github.com/levant47/lambda-calculus/internal/reducer"
)

// Interpret locates "main" in program and normalizes it, returning the
// final expression once reduction and inlining both stop changing it, or
// an error from the reducer's recursion budget or a missing "main".
func Interpret(program *ast.Program) (ast.Expression, error) {
	main, ok := program.Lookup("main")
	if !ok {
		return nil, &diagnostics.MissingMain{}
	}
	return interpret(program, main)
}

// InterpretExpression runs the same fixed-point loop as Interpret, seeded
// with an arbitrary expression instead of a program's "main" statement.
// program still supplies whatever top-level names free variables in expr
// may resolve against; pass an empty *ast.Program to normalize expr in
// isolation.
func InterpretExpression(program *ast.Program, expr ast.Expression) (ast.Expression, error) {
	return interpret(program, expr)
}

func interpret(program *ast.Program, current ast.Expression) (ast.Expression, error) {
	for {
		reduced, err := reducer.Reduce(current)
		if err != nil {
			return nil, err
		}
		resolved := resolveNames(program, reduced)
		if ast.Equal(resolved, current) {
			return resolved, nil
		}
		current = resolved
	}
}

// resolveNames walks expr, replacing every free Variable whose GlobalName
// matches a statement in program with a deep copy of that statement's
// expression. Bound variables and variables with no matching definition
// pass through unchanged.
func resolveNames(program *ast.Program, expr ast.Expression) ast.Expression {
	switch e := expr.(type) {
	case *ast.Variable:
		if e.IsBound {
			return e
		}
		if def, ok := program.Lookup(e.GlobalName); ok {
			return ast.Copy(def)
		}
		return e
	case *ast.Function:
		return &ast.Function{
			Depth:         e.Depth,
			ParameterName: e.ParameterName,
			BinderID:      e.BinderID,
			Body:          resolveNames(program, e.Body),
		}
	case *ast.Application:
		return &ast.Application{
			Depth: e.Depth,
			Left:  resolveNames(program, e.Left),
			Right: resolveNames(program, e.Right),
		}
	default:
		panic("interpreter.resolveNames: unknown expression type")
	}
}
