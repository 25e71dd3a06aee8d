// Package embed is the library entry point for embedding the interpreter
// in another Go program, the same role pkg/embed plays for this
// codebase's own VM: a small facade over the internal pipeline stages that
// hides their package boundaries from callers.
package embed

import (
	"log"

	"github.com/google/uuid"

	"github.com/levant47/lambda-calculus/internal/ast"
	"github.com/levant47/lambda-calculus/internal/diagnostics"
	"github.com/levant47/lambda-calculus/internal/interpreter"
	"github.com/levant47/lambda-calculus/internal/parser"
	"github.com/levant47/lambda-calculus/internal/prettyprinter"
)

// Interpreter runs complete programs end to end: parse, interpret to
// normal form, and pretty-print the result.
type Interpreter struct {
	// Logger receives one line per pipeline stage of each Eval call when
	// Verbose is true, each tagged with that call's short trace id so
	// concurrent Eval calls in a host program can be told apart in
	// interleaved output.
	Logger  *log.Logger
	Verbose bool
}

// New constructs an Interpreter with its defaults: no logging output
// unless Verbose is set.
func New() *Interpreter {
	return &Interpreter{Logger: log.Default()}
}

// Eval parses source as a complete program and returns the pretty-printed
// normal form of its "main" statement.
func (in *Interpreter) Eval(source string) (string, error) {
	traceID := uuid.New().String()[:8]
	if in.Verbose {
		in.Logger.Printf("[%s] parsing %d bytes", traceID, len(source))
	}

	program, err := parser.Parse(source)
	if err != nil {
		return "", err
	}

	if in.Verbose {
		in.Logger.Printf("[%s] parsed %d statement(s), interpreting", traceID, len(program.Statements))
	}

	result, err := interpreter.Interpret(program)
	if err != nil {
		return "", err
	}

	if in.Verbose {
		in.Logger.Printf("[%s] normalized, pretty-printing", traceID)
	}

	return prettyprinter.Print(result), nil
}

// EvalExpression parses source as a single bare expression (no statement,
// no "main" lookup) and returns its normal form, pretty-printed. This is
// the entry point exposed for golden-file and property-based tests that
// operate on isolated expressions rather than whole programs.
func (in *Interpreter) EvalExpression(source string) (string, error) {
	expr, err := parser.ParseExpression(source)
	if err != nil {
		return "", err
	}
	result, err := interpreter.InterpretExpression(&ast.Program{}, expr)
	if err != nil {
		return "", err
	}
	return prettyprinter.Print(result), nil
}

// Error renders any error returned by Eval/EvalExpression as the single
// stage-prefixed line the CLI prints to stderr.
func Error(err error) string {
	return diagnostics.Stage(err)
}
