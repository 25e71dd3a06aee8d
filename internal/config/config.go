// Package config holds the constants and optional file-based overrides that
// parameterize the interpreter, following the shape of this codebase's own
// internal/config: small exported constants plus a File whose Apply lets an
// outer layer (the CLI) override other packages' vars (reducer.Limit) at
// startup.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/levant47/lambda-calculus/internal/reducer"
)

// DisambiguationSeparator joins a shadowed parameter name to its
// disambiguating index when the pretty-printer renders it (e.g. "y_1").
const DisambiguationSeparator = "_"

// File is the schema of an optional YAML configuration file passed via
// the CLI's --config flag. Every field is optional; a zero value means
// "leave the compiled-in default alone".
type File struct {
	RecursionLimit int `yaml:"recursion_limit"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &f, nil
}

// Apply installs any positive fields of f into the package-level vars the
// rest of the program consults; zero and negative values are ignored.
func (f *File) Apply() {
	if f.RecursionLimit > 0 {
		reducer.Limit = f.RecursionLimit
	}
}
