package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execRoot(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRunCommandExecutesProgramFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.push")
	require.NoError(t, os.WriteFile(path, []byte("( 1 2 INT.+ )"), 0644))

	out := execRoot(t, "run", path)
	require.Contains(t, out, "ran")
	require.Contains(t, out, "integer:")
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	progPath := filepath.Join(t.TempDir(), "prog.push")
	require.NoError(t, os.WriteFile(progPath, []byte("( 1 2 INT.+ )"), 0644))
	statePath := filepath.Join(t.TempDir(), "state.xml")

	execRoot(t, "serialize", progPath, "--steps", "100", "--out", statePath)

	b, err := os.ReadFile(statePath)
	require.NoError(t, err)
	require.Contains(t, string(b), "<state>")

	out := execRoot(t, "deserialize", statePath)
	require.Contains(t, out, "integer:")
}
