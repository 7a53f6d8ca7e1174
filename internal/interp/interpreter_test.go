package interp

import (
	"testing"

	"github.com/pushlang/go-push/internal/value"
	"github.com/stretchr/testify/require"
)

func TestStepPushesLiteralsToMatchingStacks(t *testing.T) {
	ip := New()
	ip.Exec.Push(ip.NewInt(5))
	ip.Exec.Push(ip.NewBool(true))

	require.True(t, ip.Step())
	top, ok := ip.Bool.Peek()
	require.True(t, ok)
	require.Equal(t, true, top.Bool())

	require.True(t, ip.Step())
	itop, ok := ip.Int.Peek()
	require.True(t, ok)
	require.Equal(t, int64(5), itop.Int())

	require.False(t, ip.Step(), "empty exec stack is a no-op")
}

func TestRunAddsTwoInts(t *testing.T) {
	ip := New()
	ip.Register("INTEGER.+", func(ip *Interpreter, _ any) {
		b, ok1 := ip.Int.Pop()
		a, ok2 := ip.Int.Pop()
		if !ok1 || !ok2 {
			return
		}
		ip.Int.Push(ip.NewInt(a.Int() + b.Int()))
	}, nil)

	ip.Exec.Push(ip.NewInstrValue(ip.Intern("INTEGER.+")))
	ip.Exec.Push(ip.NewInt(3))
	ip.Exec.Push(ip.NewInt(2))

	steps := ip.Run(0)
	require.Equal(t, 3, steps)

	top, ok := ip.Int.Peek()
	require.True(t, ok)
	require.Equal(t, int64(5), top.Int())
}

func TestRunRespectsMaxSteps(t *testing.T) {
	ip := New()
	for i := 0; i < 10; i++ {
		ip.Exec.Push(ip.NewInt(int64(i)))
	}
	steps := ip.Run(3)
	require.Equal(t, 3, steps)
	require.Equal(t, 3, ip.Int.Len())
	require.Equal(t, 7, ip.Exec.Len())
}

func TestRunStopsOnInterrupt(t *testing.T) {
	ip := New()
	ip.Register("TEST.INTERRUPT", func(ip *Interpreter, _ any) {
		ip.interrupt = 7
	}, nil)

	ip.Exec.Push(ip.NewInt(1))
	ip.Exec.Push(ip.NewInstrValue(ip.Intern("TEST.INTERRUPT")))

	var handled int
	ip.SetInterruptHandler(func(ip *Interpreter, flag int) { handled = flag })

	steps := ip.Run(0)
	require.Equal(t, 1, steps, "the int literal after the interrupting instruction must not run")
	require.Equal(t, 7, handled)
}

func TestStepHaltsOncePendingInterruptIsSet(t *testing.T) {
	ip := New()
	ip.Exec.Push(ip.NewInt(1))
	ip.Interrupt(7)

	var handled int
	ip.SetInterruptHandler(func(ip *Interpreter, flag int) { handled = flag })

	require.False(t, ip.Step(), "Step must halt at the step boundary once interrupted")
	require.Equal(t, 0, ip.Int.Len(), "the pending int literal must not have been dispatched")
	require.Equal(t, 7, handled)
}

func TestNameDispatchUsesBindingWhenPresent(t *testing.T) {
	ip := New()
	foo := ip.Intern("foo")
	ip.Define(foo, ip.NewInt(42))

	ip.Exec.Push(ip.NewNameValue(foo))
	ip.Run(0)

	top, ok := ip.Int.Peek()
	require.True(t, ok)
	require.Equal(t, int64(42), top.Int())
}

func TestNameDispatchPushesUnboundNameToNameStack(t *testing.T) {
	ip := New()
	bar := ip.Intern("bar")
	ip.Exec.Push(ip.NewNameValue(bar))
	ip.Run(0)

	top, ok := ip.Name.Peek()
	require.True(t, ok)
	require.Equal(t, bar, top.Sym())
}

func TestCodeLiteralOnExecExpandsLeftToRight(t *testing.T) {
	ip := New()
	code := value.CodeOf(ip.NewInt(1), ip.NewInt(2))
	ip.Exec.Push(ip.NewCode(code))

	ip.Run(0)

	require.Equal(t, 2, ip.Int.Len())
	top, _ := ip.Int.Peek()
	require.Equal(t, int64(2), top.Int())
}

func TestCloneSharesRegistryAndNamesNotStacks(t *testing.T) {
	ip := New()
	ip.Register("NOOP", func(*Interpreter, any) {}, nil)
	ip.Exec.Push(ip.NewInt(1))

	clone := ip.Clone()
	require.Equal(t, 0, clone.Exec.Len())
	require.NotNil(t, clone.LookupInstrByName("NOOP"))
	require.Same(t, ip.Intern("shared"), clone.Intern("shared"))
}

func TestGCRootsCoversAllStacksBindingsAndConfig(t *testing.T) {
	ip := New()
	ip.Int.Push(ip.NewInt(1))
	ip.Define(ip.Intern("x"), ip.NewInt(2))
	roots := ip.GCRoots()
	require.GreaterOrEqual(t, len(roots), 2+len(defaultConfig()))
}
