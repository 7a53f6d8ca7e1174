package perr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatIncludesCaretAtColumn(t *testing.T) {
	err := NewParseError(Position{Line: 2, Column: 5}, "unexpected token", "(a b)\n(c ]d)")
	out := err.Format()
	require.True(t, strings.Contains(out, "(c ]d)"))
	require.True(t, strings.Contains(out, "unexpected token"))

	lines := strings.Split(out, "\n")
	var caretLine string
	for _, l := range lines {
		if strings.Trim(l, " ") == "^" {
			caretLine = l
		}
	}
	require.NotEmpty(t, caretLine, "expected a caret line")
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = NewParseError(Position{Line: 1, Column: 1}, "boom", "x")
	require.Contains(t, err.Error(), "boom")
}
