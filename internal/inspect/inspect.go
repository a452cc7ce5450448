// Package inspect renders token sequences and expression trees for
// people and for tools. The text forms match what the language prints
// interactively; the json and yaml forms are for piping elsewhere.
package inspect

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tjarratt/golox/internal/ast"
	"github.com/tjarratt/golox/internal/token"
)

// Format selects the rendering for token and tree dumps
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format name from a flag or prompt command.
// Matching is case-insensitive.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	}

	return "", fmt.Errorf("unsupported output format: %s", name)
}

// tokenRecord is the marshaling shape for one token.
// Literal is omitted for tokens that carry none, keeping punctuation
// rows compact.
type tokenRecord struct {
	Type    string      `json:"type" yaml:"type"`
	Lexeme  string      `json:"lexeme" yaml:"lexeme"`
	Literal interface{} `json:"literal,omitempty" yaml:"literal,omitempty"`
	Line    int         `json:"line" yaml:"line"`
}

// Tokens renders a scanned token sequence in the given format
func Tokens(tokens []token.Token, format Format) (string, error) {
	switch format {
	case FormatText:
		return textTokens(tokens), nil
	case FormatJSON:
		return toJSON(tokenRecords(tokens))
	case FormatYAML:
		return toYAML(tokenRecords(tokens))
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// Tree renders an expression tree in the given format.
// The text form is the parenthesized prefix notation.
func Tree(expr ast.Expr, format Format) (string, error) {
	switch format {
	case FormatText:
		return ast.Printer{}.Print(expr), nil
	case FormatJSON:
		return toJSON(treeValue(expr))
	case FormatYAML:
		return toYAML(treeValue(expr))
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

func textTokens(tokens []token.Token) string {
	var out strings.Builder

	for _, tok := range tokens {
		out.WriteString(tok.String())
		out.WriteString("\n")
	}

	return out.String()
}

func tokenRecords(tokens []token.Token) []tokenRecord {
	records := make([]tokenRecord, 0, len(tokens))

	for _, tok := range tokens {
		records = append(records, tokenRecord{
			Type:    tok.Type.String(),
			Lexeme:  tok.Lexeme,
			Literal: tok.Literal,
			Line:    tok.Line,
		})
	}

	return records
}

// treeValue converts an expression tree to the nested maps the
// marshalers understand
func treeValue(expr ast.Expr) interface{} {
	switch e := expr.(type) {
	case *ast.Binary:
		return map[string]interface{}{
			"type":     "binary",
			"operator": e.Operator.Lexeme,
			"left":     treeValue(e.Left),
			"right":    treeValue(e.Right),
		}
	case *ast.Grouping:
		return map[string]interface{}{
			"type":       "grouping",
			"expression": treeValue(e.Expression),
		}
	case *ast.Literal:
		return map[string]interface{}{
			"type":  "literal",
			"value": e.Value,
		}
	case *ast.Unary:
		return map[string]interface{}{
			"type":     "unary",
			"operator": e.Operator.Lexeme,
			"right":    treeValue(e.Right),
		}
	default:
		return fmt.Sprintf("<unknown %T>", expr)
	}
}

func toJSON(value interface{}) (string, error) {
	jsonBytes, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling to JSON: %v", err)
	}
	return string(jsonBytes), nil
}

func toYAML(value interface{}) (string, error) {
	yamlBytes, err := yaml.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("error marshaling to YAML: %v", err)
	}
	return string(yamlBytes), nil
}
