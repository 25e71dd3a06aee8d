// Command lambdac reads a lambda calculus source file, normalizes its
// "main" statement, and prints the result — the CLI front end for
// pkg/embed. Flags are parsed with the standard "flag" package; errors are
// printed stage-prefixed to stderr with exit 1, in the same spirit as this
// codebase's own cmd/funxy.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/levant47/lambda-calculus/internal/config"
	"github.com/levant47/lambda-calculus/pkg/embed"
)

func main() {
	configPath := flag.String("config", "", "path to an optional YAML config file")
	verbose := flag.Bool("verbose", false, "log each pipeline stage to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-config path.yaml] [-verbose] <source file>\n", os.Args[0])
	}
	flag.Parse()

	if *configPath != "" {
		file, err := config.Load(*configPath)
		if err != nil {
			fail("%s", err)
		}
		file.Apply()
	}

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}
	sourcePath := args[0]
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		fail("File '%s' not found", sourcePath)
	}

	in := embed.New()
	in.Verbose = *verbose
	if *verbose {
		in.Logger = log.New(os.Stderr, "", log.Ltime)
	}

	result, err := in.Eval(string(source))
	if err != nil {
		fail("%s", embed.Error(err))
	}

	fmt.Print(result)
}

// fail prints a message to stderr, colorized red when stderr is a
// terminal, and exits with status 1.
func fail(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "\x1b[31m%s\x1b[0m\n", message)
	} else {
		fmt.Fprintln(os.Stderr, message)
	}
	os.Exit(1)
}
