package cmd

import (
	"io"

	"github.com/pushlang/go-push/internal/value"
)

// stringify renders a slice of stack items in top-of-stack-first order,
// matching stack.Stack.Items.
func stringify(items []*value.Value) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = v.String()
	}
	return out
}

func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}
