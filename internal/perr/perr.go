// Package perr formats parse errors with source context,
// grounded on CWBudde-go-dws's internal/errors.CompilerError: a line/column
// position, the offending source line, and a caret pointing at the error.
package perr

import (
	"fmt"
	"strings"
)

// Position is a 1-indexed line/column into program source text.
type Position struct {
	Line   int
	Column int
}

// ParseError reports a single malformed-input error encountered while
// reading Push source text into a code tree (spec §3's external textual
// form — parenthesized lists of literals, names, and instructions) or
// while reading an XML state document (internal/pushxml).
type ParseError struct {
	Message string
	Source  string
	Pos     Position
}

// NewParseError constructs a ParseError against the given source text.
func NewParseError(pos Position, message, source string) *ParseError {
	return &ParseError{Pos: pos, Message: message, Source: source}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Format()
}

// Format renders the error with a line-number gutter and a caret pointing
// at the offending column.
func (e *ParseError) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "parse error at line %d:%d\n", e.Pos.Line, e.Pos.Column)

	line := e.sourceLine(e.Pos.Line)
	if line != "" {
		gutter := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(gutter)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(gutter)+e.Pos.Column-1))
		sb.WriteString("^\n")
	}
	sb.WriteString(e.Message)
	return sb.String()
}

func (e *ParseError) sourceLine(n int) string {
	lines := strings.Split(e.Source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}
