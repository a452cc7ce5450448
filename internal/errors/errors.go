package errors

import (
	"fmt"
	"strings"

	"github.com/tjarratt/golox/internal/token"
)

// Diagnostic is a single lexical or syntax error tied to a source line
type Diagnostic struct {
	Message string
	Line    int
	Where   string // location hint such as " at 'foo'", empty for lexical errors
}

// String renders the classic single-line report form
func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Reporter collects the diagnostics of one scan/parse pass over a source buffer.
// Error state travels with the value instead of a process-wide flag, so the
// caller decides what a non-empty report means for parsing and exit codes.
type Reporter struct {
	filename    string
	lines       []string
	diagnostics []Diagnostic
}

// NewReporter creates a reporter for the given source text
func NewReporter(source, filename string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Report records a diagnostic at the given line.
// where is a location hint like " at 'foo'"; lexical errors pass "".
func (r *Reporter) Report(line int, where, message string) {
	r.diagnostics = append(r.diagnostics, Diagnostic{Message: message, Line: line, Where: where})
}

// ReportToken records a diagnostic pointing at a token's position
func (r *Reporter) ReportToken(tok token.Token, message string) {
	if tok.Type == token.EOF {
		r.Report(tok.Line, " at end", message)
	} else {
		r.Report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
	}
}

// HasErrors reports whether any diagnostic has been recorded
func (r *Reporter) HasErrors() bool {
	return len(r.diagnostics) > 0
}

// Count returns the number of recorded diagnostics
func (r *Reporter) Count() int {
	return len(r.diagnostics)
}

// Diagnostics returns the recorded diagnostics in report order
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// Format renders every recorded diagnostic with its offending source line
func (r *Reporter) Format() string {
	var result strings.Builder

	for i, d := range r.diagnostics {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(r.formatOne(d))
	}

	if len(r.diagnostics) > 1 {
		result.WriteString(fmt.Sprintf("\nFound %d errors\n", len(r.diagnostics)))
	}

	return result.String()
}

// formatOne renders a single diagnostic with source context when the line is known
func (r *Reporter) formatOne(d Diagnostic) string {
	var result strings.Builder

	result.WriteString(d.String())
	result.WriteString("\n")

	if d.Line < 1 || d.Line > len(r.lines) {
		return result.String()
	}

	lineNumStr := fmt.Sprintf("%d", d.Line)
	padding := strings.Repeat(" ", len(lineNumStr))

	result.WriteString(fmt.Sprintf("%s--> %s:%d\n", padding, r.filename, d.Line))
	result.WriteString(fmt.Sprintf("%s |\n", padding))
	result.WriteString(fmt.Sprintf("%s | %s\n", lineNumStr, r.lines[d.Line-1]))
	result.WriteString(fmt.Sprintf("%s |\n", padding))

	return result.String()
}
