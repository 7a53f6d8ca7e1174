package pushxml

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/pushlang/go-push/internal/interp"
	"github.com/pushlang/go-push/internal/value"
	"github.com/stretchr/testify/require"
)

func TestRoundTripFlatStacksAndBindingsAndConfig(t *testing.T) {
	ip := interp.New()
	ip.Int.Push(ip.NewInt(1))
	ip.Int.Push(ip.NewInt(2))
	ip.Int.Push(ip.NewInt(3))
	ip.Bool.Push(ip.NewBool(true))
	ip.Define(ip.Intern("x"), ip.NewReal(2.5))
	ip.ConfigSet(interp.ConfigMinRandomInt, ip.NewInt(-7))

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, ip))

	out := interp.New()
	require.NoError(t, Load(&buf, out))

	require.Equal(t, ip.Int.Len(), out.Int.Len())
	orig := ip.Int.Items()
	loaded := out.Int.Items()
	for i := range orig {
		require.True(t, value.Equal(orig[i], loaded[i]))
	}

	require.Equal(t, 1, out.Bool.Len())
	b, ok := out.Bool.Peek()
	require.True(t, ok)
	require.True(t, b.Bool())

	bound := out.LookupBinding(out.Intern("x"))
	require.NotNil(t, bound)
	require.Equal(t, 2.5, bound.Real())

	require.Equal(t, int64(-7), out.ConfigInt(interp.ConfigMinRandomInt, 0))
}

func TestRoundTripNestedCodeStructuralEquality(t *testing.T) {
	ip := interp.New()
	// (1 (2 3) 4)
	inner := value.CodeOf(ip.NewInt(2), ip.NewInt(3))
	tree := value.CodeOf(ip.NewInt(1), ip.NewCode(inner), ip.NewInt(4))
	root := ip.NewCode(tree)
	ip.Code.Push(root)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, ip))

	out := interp.New()
	require.NoError(t, Load(&buf, out))

	require.Equal(t, 1, out.Code.Len())
	loadedRoot, ok := out.Code.Peek()
	require.True(t, ok)
	require.True(t, value.Equal(root, loadedRoot))
}

func TestRoundTripPreservesInstructionReference(t *testing.T) {
	ip := interp.New()
	ip.Register("INTEGER.+", func(*interp.Interpreter, any) {}, nil)
	ip.Exec.Push(ip.NewInstrValue(ip.Intern("INTEGER.+")))

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, ip))

	out := interp.New()
	out.Register("INTEGER.+", func(*interp.Interpreter, any) {}, nil)
	require.NoError(t, Load(&buf, out))

	require.Equal(t, 1, out.Exec.Len())
	top, ok := out.Exec.Peek()
	require.True(t, ok)
	require.Equal(t, value.KindInstr, top.Kind())
	require.Equal(t, "INTEGER.+", top.Sym().String())
}

func TestLoadSkipsUnknownInstructionAndWarns(t *testing.T) {
	ip := interp.New()
	ip.Register("INTEGER.+", func(*interp.Interpreter, any) {}, nil)
	ip.Exec.Push(ip.NewInstrValue(ip.Intern("INTEGER.+")))
	ip.Int.Push(ip.NewInt(9))

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, ip))

	var logBuf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuf, nil)))
	defer slog.SetDefault(prev)

	out := interp.New() // note: INTEGER.+ is never registered here
	require.NoError(t, Load(&buf, out))

	require.Equal(t, 0, out.Exec.Len())
	require.Equal(t, 1, out.Int.Len())
	require.Contains(t, logBuf.String(), "unknown instruction")
}

func TestLoadLeavesInterpreterUntouchedOnMalformedDocument(t *testing.T) {
	ip := interp.New()
	ip.Int.Push(ip.NewInt(42))
	ip.Define(ip.Intern("keep"), ip.NewBool(true))

	err := Load(strings.NewReader("<state><stack name=\"integer\"><int value=\"oops\"/></stack>"), ip)
	require.Error(t, err)

	require.Equal(t, 1, ip.Int.Len())
	top, ok := ip.Int.Peek()
	require.True(t, ok)
	require.Equal(t, int64(42), top.Int())
	require.NotNil(t, ip.LookupBinding(ip.Intern("keep")))
}

func TestLoadRejectsNonStateRoot(t *testing.T) {
	ip := interp.New()
	err := Load(strings.NewReader("<notstate/>"), ip)
	require.Error(t, err)
}

func TestLoadAcceptsEmptyState(t *testing.T) {
	ip := interp.New()
	ip.Int.Push(ip.NewInt(1))
	require.NoError(t, Load(strings.NewReader("<state></state>"), ip))
	require.Equal(t, 0, ip.Int.Len())
}
