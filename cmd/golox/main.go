package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tjarratt/golox/internal/inspect"
	"github.com/tjarratt/golox/internal/lox"
	"github.com/tjarratt/golox/internal/repl"
)

func main() {
	showTokens := flag.Bool("tokens", false, "print the token sequence instead of the parse tree")
	formatName := flag.String("format", "text", "output format for dumps: text, json, yaml")
	debug := flag.Bool("debug", false, "append a raw dump of the parse tree")
	flag.Parse()

	format, err := inspect.ParseFormat(*formatName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(64)
	}

	runner := lox.New()
	runner.SetShowTokens(*showTokens)
	runner.SetFormat(format)
	runner.SetDebug(*debug)

	args := flag.Args()
	switch {
	case len(args) > 1:
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [script.lox]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(64)
	case len(args) == 1:
		runFile(runner, args[0])
	default:
		repl.StartWithRunner(runner, os.Stdin, os.Stdout)
	}
}

// runFile pushes one script through the pipeline, diagnostics on stderr.
// Exit code 65 marks an error in the source, distinct from usage errors
// (64) and I/O failures (1).
func runFile(runner *lox.Runner, path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	output, reporter, err := runner.Run(string(source), path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Output goes to stdout so it can be piped
	if output != "" {
		fmt.Println(output)
	}

	if reporter.HasErrors() {
		fmt.Fprintln(os.Stderr, reporter.Format())
		os.Exit(65)
	}
}
