package push

import (
	"bytes"
	"testing"

	"github.com/pushlang/go-push/internal/interp"
	"github.com/stretchr/testify/require"
)

func TestLoadProgramAndRun(t *testing.T) {
	ip := New()
	require.NoError(t, ip.LoadProgram("( 1 2 INT.+ )"))

	steps := ip.Run(100)
	require.Greater(t, steps, 0)

	top, ok := ip.Core().Int.Peek()
	require.True(t, ok)
	require.Equal(t, int64(3), top.Int())
}

func TestLoadProgramRejectsMalformedSource(t *testing.T) {
	ip := New()
	err := ip.LoadProgram("( 1 2")
	require.Error(t, err)
}

func TestDumpLoadRoundTrip(t *testing.T) {
	ip := New()
	require.NoError(t, ip.LoadProgram("( 1 2 INT.+ )"))
	ip.Run(100)

	var buf bytes.Buffer
	require.NoError(t, ip.Dump(&buf))

	out := New()
	require.NoError(t, out.Load(&buf))

	top, ok := out.Core().Int.Peek()
	require.True(t, ok)
	require.Equal(t, int64(3), top.Int())
}

func TestRegisterHostInstruction(t *testing.T) {
	ip := New()
	called := false
	ip.Register("HOST.MARK", func(core *interp.Interpreter, _ any) {
		called = true
	}, nil)

	require.NoError(t, ip.LoadProgram("( HOST.MARK )"))
	ip.Run(10)
	require.True(t, called)
}
