// Package reducer implements capture-free beta- and eta-reduction over
// de Bruijn-indexed expressions, bounded by a call-depth budget (spec.md
// §4.3). The algorithm mirrors the C++ reduce/beta_reduce/eta_reduce this
// spec was distilled from line for line: reduce both sides of an
// Application to normal form first, then beta-reduce an outer redex and
// recurse on the result; reduce a Function's body then attempt eta once.
package reducer

import (
	"github.com/levant47/lambda-calculus/internal/ast"
	"github.com/levant47/lambda-calculus/internal/diagnostics"
)

// Limit is the maximum reduce call depth before a RecursionLimit error is
// returned — the only mechanism that detects a diverging reduction such as
// the Ω-combinator (spec.md §4.3, §8 scenario 7). It is a var, not a const,
// so internal/config can lower or raise it from a loaded config file.
var Limit = 300

// Reduce returns the (attempted) normal form of expr, or a
// *diagnostics.RecursionLimit error if the budget is exhausted.
func Reduce(expr ast.Expression) (ast.Expression, error) {
	return reduce(expr, 0)
}

func reduce(expr ast.Expression, depth int) (ast.Expression, error) {
	if depth == Limit {
		return nil, &diagnostics.RecursionLimit{Limit: Limit}
	}
	depth++

	switch e := expr.(type) {
	case *ast.Variable:
		return ast.Copy(e), nil

	case *ast.Function:
		reducedBody, err := reduce(e.Body, depth)
		if err != nil {
			return nil, err
		}
		return etaReduce(&ast.Function{
			Depth:         e.Depth,
			ParameterName: e.ParameterName,
			BinderID:      e.BinderID,
			Body:          reducedBody,
		}), nil

	case *ast.Application:
		reducedLeft, err := reduce(e.Left, depth)
		if err != nil {
			return nil, err
		}
		reducedRight, err := reduce(e.Right, depth)
		if err != nil {
			return nil, err
		}
		if fn, ok := reducedLeft.(*ast.Function); ok {
			return reduce(betaReduce(0, reducedRight, fn.Body), depth)
		}
		return &ast.Application{Depth: e.Depth, Left: reducedLeft, Right: reducedRight}, nil

	default:
		panic("reducer.reduce: unknown expression type")
	}
}

// betaReduce substitutes argument for the Variable at de Bruijn index
// boundIndex throughout body, decrementing every Variable bound at a
// shallower index (the binder that is being removed) and leaving argument
// itself un-shifted: by the time beta-reduction runs, both operands of the
// enclosing Application are already in normal form, so the argument was
// formed under exactly the same binders it is being reinserted under
// (spec.md §4.3, §9).
func betaReduce(boundIndex int, argument ast.Expression, body ast.Expression) ast.Expression {
	switch b := body.(type) {
	case *ast.Variable:
		if !b.IsBound || b.BoundIndex < boundIndex {
			return ast.Copy(b)
		}
		if b.BoundIndex == boundIndex {
			return ast.Copy(argument)
		}
		cp := *b
		cp.BoundIndex--
		return &cp
	case *ast.Function:
		return &ast.Function{
			Depth:         b.Depth,
			ParameterName: b.ParameterName,
			BinderID:      b.BinderID,
			Body:          betaReduce(boundIndex+1, argument, b.Body),
		}
	case *ast.Application:
		return &ast.Application{
			Depth: b.Depth,
			Left:  betaReduce(boundIndex, argument, b.Left),
			Right: betaReduce(boundIndex, argument, b.Right),
		}
	default:
		panic("reducer.betaReduce: unknown expression type")
	}
}

// hasUsage reports whether any Variable bound at de Bruijn index
// boundIndex occurs free within expr (i.e. occurs without crossing another
// binder of the same relative depth).
func hasUsage(boundIndex int, expr ast.Expression) bool {
	switch e := expr.(type) {
	case *ast.Variable:
		return e.IsBound && e.BoundIndex == boundIndex
	case *ast.Function:
		return hasUsage(boundIndex+1, e.Body)
	case *ast.Application:
		return hasUsage(boundIndex, e.Left) || hasUsage(boundIndex, e.Right)
	default:
		panic("reducer.hasUsage: unknown expression type")
	}
}

// shiftDown decrements every Variable's BoundIndex that is strictly
// greater than boundIndex — the index-fixup eta-reduction requires once
// the Function node it was bound by is removed (spec.md §4.3).
func shiftDown(boundIndex int, expr ast.Expression) ast.Expression {
	switch e := expr.(type) {
	case *ast.Variable:
		cp := *e
		if cp.IsBound && cp.BoundIndex > boundIndex {
			cp.BoundIndex--
		}
		return &cp
	case *ast.Function:
		return &ast.Function{
			Depth:         e.Depth,
			ParameterName: e.ParameterName,
			BinderID:      e.BinderID,
			Body:          shiftDown(boundIndex+1, e.Body),
		}
	case *ast.Application:
		return &ast.Application{
			Depth: e.Depth,
			Left:  shiftDown(boundIndex, e.Left),
			Right: shiftDown(boundIndex, e.Right),
		}
	default:
		panic("reducer.shiftDown: unknown expression type")
	}
}

// etaReduce attempts a single eta-contraction at fn: if fn's body is
// `Application(f, Variable(bound_index=0))` and f contains no use of
// index 0, fn collapses to f with every remaining index downshifted by
// one (spec.md §4.3). At most one eta step is attempted per Function node
// per reduce call, matching the reference reducer.
func etaReduce(fn *ast.Function) ast.Expression {
	app, ok := fn.Body.(*ast.Application)
	if !ok {
		return fn
	}
	v, ok := app.Right.(*ast.Variable)
	if !ok || !v.IsBound || v.BoundIndex != 0 {
		return fn
	}
	if hasUsage(0, app.Left) {
		return fn
	}
	return shiftDown(0, app.Left)
}
