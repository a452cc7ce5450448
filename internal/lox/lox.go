// Package lox wires the scanning and parsing phases into one pipeline
// shared by the file runner and the interactive prompt.
package lox

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/tjarratt/golox/internal/errors"
	"github.com/tjarratt/golox/internal/inspect"
	"github.com/tjarratt/golox/internal/parser"
	"github.com/tjarratt/golox/internal/scanner"
)

// Runner pushes source buffers through the pipeline and renders what
// each phase produced. A single Runner may serve many buffers; each Run
// gets its own diagnostics.
type Runner struct {
	showTokens bool
	format     inspect.Format
	debug      bool
}

// New creates a runner that prints parse trees as text
func New() *Runner {
	return &Runner{format: inspect.FormatText}
}

// SetShowTokens makes the runner print the token sequence ahead of the
// parse tree
func (r *Runner) SetShowTokens(show bool) {
	r.showTokens = show
}

// SetFormat selects the rendering for token and tree output
func (r *Runner) SetFormat(format inspect.Format) {
	r.format = format
}

// SetDebug makes the runner append a raw dump of the parse tree,
// field types and all
func (r *Runner) SetDebug(debug bool) {
	r.debug = debug
}

// Debug reports whether raw tree dumps are enabled
func (r *Runner) Debug() bool {
	return r.debug
}

// Format returns the current output format
func (r *Runner) Format() inspect.Format {
	return r.format
}

// ShowTokens reports whether token dumps are enabled
func (r *Runner) ShowTokens() bool {
	return r.showTokens
}

// Run scans one source buffer and, outside token mode, parses it.
// Diagnostics collect on the returned reporter rather than in shared
// state, so every call is independent; the error return is reserved
// for rendering failures, never for language errors.
//
// A buffer with scan errors is never parsed: its token sequence is
// incomplete, and feeding it onward would only manufacture confusing
// follow-on diagnostics.
func (r *Runner) Run(source, filename string) (string, *errors.Reporter, error) {
	reporter := errors.NewReporter(source, filename)

	// Phase 1: scanning
	tokens := scanner.New(source, reporter).ScanTokens()

	// Token mode stops here; the parser never sees the buffer. The dump
	// still renders when the scan had errors, showing what was salvaged.
	if r.showTokens {
		dump, err := inspect.Tokens(tokens, r.format)
		if err != nil {
			return "", reporter, fmt.Errorf("rendering error: %v", err)
		}
		return strings.TrimRight(dump, "\n"), reporter, nil
	}

	if reporter.HasErrors() {
		return "", reporter, nil
	}

	// Phase 2: parsing
	expr := parser.New(tokens, reporter).Parse()
	if reporter.HasErrors() || expr == nil {
		return "", reporter, nil
	}

	tree, err := inspect.Tree(expr, r.format)
	if err != nil {
		return "", reporter, fmt.Errorf("rendering error: %v", err)
	}

	sections := []string{strings.TrimRight(tree, "\n")}
	if r.debug {
		sections = append(sections, strings.TrimRight(spew.Sdump(expr), "\n"))
	}

	return strings.Join(sections, "\n"), reporter, nil
}
