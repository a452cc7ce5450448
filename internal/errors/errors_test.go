package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjarratt/golox/internal/token"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Message: "Unexpected character.", Line: 4}
	assert.Equal(t, "[line 4] Error: Unexpected character.", d.String())

	d = Diagnostic{Message: "Expect expression.", Line: 2, Where: " at '+'"}
	assert.Equal(t, "[line 2] Error at '+': Expect expression.", d.String())
}

func TestReporterStartsEmpty(t *testing.T) {
	r := NewReporter("var x;", "script.lox")
	assert.False(t, r.HasErrors())
	assert.Equal(t, 0, r.Count())
	assert.Empty(t, r.Diagnostics())
	assert.Equal(t, "", r.Format())
}

func TestReportTokenHints(t *testing.T) {
	r := NewReporter("1 +", "<repl>")
	r.ReportToken(token.Token{Type: token.PLUS, Lexeme: "+", Line: 1}, "Expect expression.")
	r.ReportToken(token.Token{Type: token.EOF, Line: 1}, "Expect ')' after expression.")

	diagnostics := r.Diagnostics()
	require.Len(t, diagnostics, 2)
	assert.Equal(t, " at '+'", diagnostics[0].Where)
	assert.Equal(t, " at end", diagnostics[1].Where)
	assert.True(t, r.HasErrors())
}

func TestFormatIncludesSourceLine(t *testing.T) {
	source := "var x = 10;\n\"oops"
	r := NewReporter(source, "script.lox")
	r.Report(2, "", "Unterminated string.")

	out := r.Format()
	assert.Contains(t, out, "[line 2] Error: Unterminated string.")
	assert.Contains(t, out, "--> script.lox:2")
	assert.Contains(t, out, `2 | "oops`)
	assert.NotContains(t, out, "Found")
}

func TestFormatSummarizesMultipleErrors(t *testing.T) {
	r := NewReporter("@\n#", "script.lox")
	r.Report(1, "", "Unexpected character.")
	r.Report(2, "", "Unexpected character.")

	out := r.Format()
	assert.Contains(t, out, "Found 2 errors")
}

func TestFormatToleratesLinesOutsideTheSource(t *testing.T) {
	r := NewReporter("x", "script.lox")
	r.Report(99, "", "Unexpected character.")

	assert.Equal(t, "[line 99] Error: Unexpected character.\n", r.Format())
}
