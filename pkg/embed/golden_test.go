package embed_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/levant47/lambda-calculus/pkg/embed"
)

// TestEvalAgainstGoldenScenarios runs every program/expected-output pair
// bundled in testdata/scenarios.txtar through Eval. The archive holds four
// of the spec.md §8 end-to-end scenarios (beta, triple eta, nested shadow,
// and the zero/succ program) in one file instead of one .lc file per case.
func TestEvalAgainstGoldenScenarios(t *testing.T) {
	data, err := os.ReadFile("testdata/scenarios.txtar")
	require.NoError(t, err)
	archive := txtar.Parse(data)

	programs := map[string]string{}
	expected := map[string]string{}
	for _, f := range archive.Files {
		name, kind, ok := strings.Cut(f.Name, "/")
		require.True(t, ok, "unexpected archive entry %q", f.Name)
		switch kind {
		case "program.lc":
			programs[name] = string(f.Data)
		case "expected.txt":
			expected[name] = strings.TrimRight(string(f.Data), "\n")
		default:
			t.Fatalf("unrecognized archive entry %q", f.Name)
		}
	}
	require.NotEmpty(t, programs)

	for name, source := range programs {
		name, source := name, source
		t.Run(name, func(t *testing.T) {
			want, ok := expected[name]
			require.True(t, ok, "case %q has no expected.txt", name)

			in := embed.New()
			got, err := in.Eval(source)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}
