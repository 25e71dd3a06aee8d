package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/levant47/lambda-calculus/internal/config"
	"github.com/levant47/lambda-calculus/internal/reducer"
)

func TestLoadAndApplyOverridesRecursionLimit(t *testing.T) {
	original := reducer.Limit
	t.Cleanup(func() { reducer.Limit = original })

	path := filepath.Join(t.TempDir(), "lambdac.yaml")
	require.NoError(t, os.WriteFile(path, []byte("recursion_limit: 42\n"), 0o644))

	file, err := config.Load(path)
	require.NoError(t, err)
	file.Apply()

	require.Equal(t, 42, reducer.Limit)
}

func TestApplyLeavesDefaultAloneWhenFieldIsZero(t *testing.T) {
	original := reducer.Limit
	t.Cleanup(func() { reducer.Limit = original })

	(&config.File{}).Apply()

	require.Equal(t, original, reducer.Limit)
}

func TestLoadReportsAMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
