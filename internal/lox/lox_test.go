package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjarratt/golox/internal/inspect"
)

func TestRunPrintsTheParseTree(t *testing.T) {
	runner := New()

	output, reporter, err := runner.Run("1 + 2 * 3", "test.lox")

	require.NoError(t, err)
	assert.False(t, reporter.HasErrors())
	assert.Equal(t, "(+ 1 (* 2 3))", output)
}

func TestRunWithTokenDump(t *testing.T) {
	runner := New()
	runner.SetShowTokens(true)

	output, reporter, err := runner.Run("nil", "test.lox")

	require.NoError(t, err)
	assert.False(t, reporter.HasErrors())
	assert.Contains(t, output, `NIL "nil"`)
	assert.Contains(t, output, `EOF ""`)

	t.Logf("token dump output:\n%s", output)
}

func TestRunRendersTreesInJSON(t *testing.T) {
	runner := New()
	runner.SetFormat(inspect.FormatJSON)

	output, reporter, err := runner.Run("-1", "test.lox")

	require.NoError(t, err)
	assert.False(t, reporter.HasErrors())
	assert.Contains(t, output, `"type": "unary"`)
	assert.Contains(t, output, `"operator": "-"`)
}

func TestRunRendersTreesInYAML(t *testing.T) {
	runner := New()
	runner.SetFormat(inspect.FormatYAML)

	output, reporter, err := runner.Run("true", "test.lox")

	require.NoError(t, err)
	assert.False(t, reporter.HasErrors())
	assert.Contains(t, output, "type: literal")
	assert.Contains(t, output, "value: true")
}

func TestRunDebugDumpIncludesNodeTypes(t *testing.T) {
	runner := New()
	runner.SetDebug(true)

	output, reporter, err := runner.Run("1 + 2", "test.lox")

	require.NoError(t, err)
	assert.False(t, reporter.HasErrors())
	assert.Contains(t, output, "(+ 1 2)")
	assert.Contains(t, output, "ast.Binary", "raw dump names the node types")

	t.Logf("debug output:\n%s", output)
}

func TestScanErrorsSkipParsing(t *testing.T) {
	runner := New()

	output, reporter, err := runner.Run(`"unterminated`, "test.lox")

	require.NoError(t, err)
	assert.Equal(t, "", output)
	require.Equal(t, 1, reporter.Count(),
		"only the scan diagnostic, no follow-on parse diagnostics")
	assert.Equal(t, "Unterminated string.", reporter.Diagnostics()[0].Message)
}

func TestParseErrorsProduceNoTree(t *testing.T) {
	runner := New()

	output, reporter, err := runner.Run("1 +", "test.lox")

	require.NoError(t, err)
	assert.Equal(t, "", output)
	require.Equal(t, 1, reporter.Count())
	assert.Equal(t, "Expect expression.", reporter.Diagnostics()[0].Message)
}

func TestTokenDumpStillRendersWhenScanFails(t *testing.T) {
	runner := New()
	runner.SetShowTokens(true)

	output, reporter, _ := runner.Run("1 @", "test.lox")

	assert.True(t, reporter.HasErrors())
	assert.Contains(t, output, `NUMBER "1" 1`,
		"the dump shows what was scanned even for a bad buffer")
}

func TestTokenModeNeverInvokesTheParser(t *testing.T) {
	runner := New()
	runner.SetShowTokens(true)

	// "var" alone is not an expression; a syntax diagnostic here would
	// mean the parser ran.
	output, reporter, err := runner.Run("var", "test.lox")

	require.NoError(t, err)
	assert.False(t, reporter.HasErrors())
	assert.Contains(t, output, `VAR "var"`)
}

func TestDiagnosticsCarryTheFilename(t *testing.T) {
	runner := New()

	_, reporter, _ := runner.Run("@", "demo.lox")

	require.True(t, reporter.HasErrors())
	assert.Contains(t, reporter.Format(), "demo.lox")
}

func TestEachRunGetsFreshDiagnostics(t *testing.T) {
	runner := New()

	_, first, _ := runner.Run("@", "test.lox")
	_, second, _ := runner.Run("1", "test.lox")

	assert.True(t, first.HasErrors())
	assert.False(t, second.HasErrors())
}
