package interpreter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/levant47/lambda-calculus/internal/diagnostics"
	"github.com/levant47/lambda-calculus/internal/parser"
	"github.com/levant47/lambda-calculus/internal/prettyprinter"
)

func run(t *testing.T, source string) (string, error) {
	t.Helper()
	program, err := parser.Parse(source)
	require.NoError(t, err)
	result, err := Interpret(program)
	if err != nil {
		return "", err
	}
	return prettyprinter.Print(result), nil
}

// TestInterpretEndToEndScenarios covers spec.md §8's end-to-end table for
// expressions assigned directly to main.
func TestInterpretEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name   string
		main   string
		expect string
	}{
		{"beta", `(\ x . x) value`, `value`},
		{"triple eta", `\ x y z . x y z`, `\ x . x`},
		{"nested shadow", `(\ x y . y x) (\ y . y)`, `\ y . y (\ y_1 . y_1)`},
		{"single shadow via global collision", `(\ y x . x y) x`, `\ x_1 . x_1 x`},
		{"double shadow", `(\ g y x . y x g) x (\ a b x . a x b)`, `\ x_1 x_2 . x_1 x_2 x`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			printed, err := run(t, "main = "+c.main+";")
			require.NoError(t, err)
			require.Equal(t, c.expect, printed)
		})
	}
}

// TestInterpretInlinesTopLevelDefinitions covers scenario 6: the fixed-point
// loop inlines the non-recursive top-level definitions "zero" and "succ"
// into "main" and then normalizes the result.
//
// succ zero is Church numeral one, \ f x . f x, but the reducer's eta rule
// fires on the inner \x. f x (x is unused by f), collapsing it to plain f;
// the outer \f body is then a bare variable, so eta cannot fire again and
// the whole thing settles on the identity combinator, \ f . f.
func TestInterpretInlinesTopLevelDefinitions(t *testing.T) {
	source := "zero = \\ f x . x;\n" +
		"succ = \\ n f x . f (n f x);\n" +
		"main = succ zero;\n"
	printed, err := run(t, source)
	require.NoError(t, err)
	require.Equal(t, `\ f . f`, printed)
}

func TestInterpretRecursionLimitOnOmegaCombinator(t *testing.T) {
	_, err := run(t, `main = (\ x . x x) (\ x . x x);`)
	require.Error(t, err)
	var limitErr *diagnostics.RecursionLimit
	require.ErrorAs(t, err, &limitErr)
}

func TestInterpretMissingMain(t *testing.T) {
	_, err := run(t, `id = \ x . x;`)
	require.Error(t, err)
	var missing *diagnostics.MissingMain
	require.ErrorAs(t, err, &missing)
}
