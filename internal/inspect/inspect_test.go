package inspect

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjarratt/golox/internal/ast"
	"github.com/tjarratt/golox/internal/errors"
	"github.com/tjarratt/golox/internal/scanner"
	"github.com/tjarratt/golox/internal/token"
)

func scanFixture(t *testing.T, source string) []token.Token {
	t.Helper()

	reporter := errors.NewReporter(source, "test.lox")
	tokens := scanner.New(source, reporter).ScanTokens()
	require.False(t, reporter.HasErrors())
	return tokens
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "json", "yaml", "JSON", "Yaml"} {
		format, err := ParseFormat(name)

		require.NoError(t, err, "format %q", name)
		assert.NotEmpty(t, format)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestTokensTextFormat(t *testing.T) {
	tokens := scanFixture(t, "var x = 10;")

	out, err := Tokens(tokens, FormatText)

	require.NoError(t, err)
	assert.Equal(t, `VAR "var"
IDENTIFIER "x"
EQUAL "="
NUMBER "10" 10
SEMICOLON ";"
EOF ""
`, out)
}

func TestTokensJSONFormat(t *testing.T) {
	tokens := scanFixture(t, `print "hi";`)

	out, err := Tokens(tokens, FormatJSON)
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 4)

	assert.Equal(t, "PRINT", records[0]["type"])
	assert.NotContains(t, records[0], "literal", "keywords carry no literal")

	assert.Equal(t, "STRING", records[1]["type"])
	assert.Equal(t, `"hi"`, records[1]["lexeme"])
	assert.Equal(t, "hi", records[1]["literal"])
	assert.Equal(t, float64(1), records[1]["line"])

	assert.Equal(t, "EOF", records[3]["type"])
}

func TestTokensYAMLFormat(t *testing.T) {
	tokens := scanFixture(t, "1")

	out, err := Tokens(tokens, FormatYAML)

	require.NoError(t, err)
	assert.Contains(t, out, "type: NUMBER")
	assert.Contains(t, out, `lexeme: "1"`)
	assert.Contains(t, out, "line: 1")
	assert.Contains(t, out, "type: EOF")
}

func TestTreeTextFormat(t *testing.T) {
	expr := &ast.Binary{
		Left:     &ast.Literal{Value: float64(1)},
		Operator: token.Token{Type: token.PLUS, Lexeme: "+", Line: 1},
		Right:    &ast.Literal{Value: float64(2)},
	}

	out, err := Tree(expr, FormatText)

	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)", out)
}

func TestTreeJSONFormat(t *testing.T) {
	expr := &ast.Unary{
		Operator: token.Token{Type: token.MINUS, Lexeme: "-", Line: 1},
		Right:    &ast.Grouping{Expression: &ast.Literal{Value: 45.67}},
	}

	out, err := Tree(expr, FormatJSON)
	require.NoError(t, err)

	var tree map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &tree))

	assert.Equal(t, "unary", tree["type"])
	assert.Equal(t, "-", tree["operator"])

	right := tree["right"].(map[string]interface{})
	assert.Equal(t, "grouping", right["type"])

	inner := right["expression"].(map[string]interface{})
	assert.Equal(t, "literal", inner["type"])
	assert.Equal(t, 45.67, inner["value"])
}

func TestTreeYAMLFormat(t *testing.T) {
	expr := &ast.Literal{Value: true}

	out, err := Tree(expr, FormatYAML)

	require.NoError(t, err)
	assert.Contains(t, out, "type: literal")
	assert.Contains(t, out, "value: true")
}

func TestUnknownFormatIsRejected(t *testing.T) {
	_, err := Tokens(nil, Format("toml"))
	assert.Error(t, err)

	_, err = Tree(&ast.Literal{Value: nil}, Format("toml"))
	assert.Error(t, err)
}
