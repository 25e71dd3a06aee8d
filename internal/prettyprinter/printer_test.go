package prettyprinter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/levant47/lambda-calculus/internal/ast"
	"github.com/levant47/lambda-calculus/internal/parser"
	"github.com/levant47/lambda-calculus/internal/prettyprinter"
)

// TestPrintRoundTripsThroughTheParser covers spec.md §8 property 1: printing
// an expression and re-parsing it must produce a structurally equal tree.
func TestPrintRoundTripsThroughTheParser(t *testing.T) {
	sources := []string{
		`\ x . x`,
		`\ x y z . x y z`,
		`a b (c d) (e f)`,
		`(\ x y . y x) (\ y . y)`,
		`(\ g y x . y x g) x (\ a b x . a x b)`,
		`f \ x . x`,
	}

	for _, src := range sources {
		src := src
		t.Run(src, func(t *testing.T) {
			expr, err := parser.ParseExpression(src)
			require.NoError(t, err)

			printed := prettyprinter.Print(expr)

			reparsed, err := parser.ParseExpression(printed)
			require.NoError(t, err, "printed form %q must re-parse", printed)

			require.True(t, ast.Equal(expr, reparsed), "round trip through %q changed the tree", printed)
		})
	}
}

// TestPrintDisambiguatesShadowedParameterAgainstAncestor mirrors spec.md §8
// scenario 3: \ y . y (\ y . y) is printed with the inner y renamed because
// an ancestor binder already uses that name.
func TestPrintDisambiguatesShadowedParameterAgainstAncestor(t *testing.T) {
	outer := &ast.Function{ParameterName: "y", BinderID: 0, Body: &ast.Application{
		Left: &ast.Variable{IsBound: true, BoundIndex: 0, BinderID: 0},
		Right: &ast.Function{ParameterName: "y", BinderID: 1, Body: &ast.Variable{
			IsBound: true, BoundIndex: 0, BinderID: 1,
		}},
	}}

	require.Equal(t, `\ y . y (\ y_1 . y_1)`, prettyprinter.Print(outer))
}

// TestPrintDisambiguatesParameterAgainstAFreeName mirrors spec.md §8 scenario
// 4: a binder named x is renamed because the free variable x appears in its
// own body, even though no ancestor binder shares the name.
func TestPrintDisambiguatesParameterAgainstAFreeName(t *testing.T) {
	fn := &ast.Function{ParameterName: "x", BinderID: 0, Body: &ast.Application{
		Left:  &ast.Variable{IsBound: true, BoundIndex: 0, BinderID: 0},
		Right: &ast.Variable{GlobalName: "x"},
	}}

	require.Equal(t, `\ x_1 . x_1 x`, prettyprinter.Print(fn))
}

// TestPrintCollapsesNestedFunctionsIntoOneHead mirrors spec.md §8 scenario 5:
// directly nested Function nodes print as a single multi-parameter head,
// since \x.\y.body and \x y.body are structurally identical trees.
func TestPrintCollapsesNestedFunctionsIntoOneHead(t *testing.T) {
	expr, err := parser.ParseExpression(`(\ g y x . y x g) x (\ a b x . a x b)`)
	require.NoError(t, err)

	printed := prettyprinter.Print(expr)
	require.NotContains(t, printed, ". \\", "adjacent heads must collapse into one")
}

func TestPrintLeavesAnUnshadowedNameAlone(t *testing.T) {
	expr, err := parser.ParseExpression(`\ x . x`)
	require.NoError(t, err)
	require.Equal(t, `\ x . x`, prettyprinter.Print(expr))
}

func TestPrintParenthesizesFunctionOperands(t *testing.T) {
	expr, err := parser.ParseExpression(`f \ x . x`)
	require.NoError(t, err)
	require.Equal(t, `f (\ x . x)`, prettyprinter.Print(expr))
}

func TestPrintParenthesizesApplicationOnTheRight(t *testing.T) {
	expr, err := parser.ParseExpression(`a (b c)`)
	require.NoError(t, err)
	require.Equal(t, `a (b c)`, prettyprinter.Print(expr))
}

func TestPrintDoesNotParenthesizeApplicationOnTheLeft(t *testing.T) {
	expr, err := parser.ParseExpression(`a b c`)
	require.NoError(t, err)
	require.Equal(t, `a b c`, prettyprinter.Print(expr))
}
