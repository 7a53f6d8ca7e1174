package gc

import (
	"testing"

	"github.com/pushlang/go-push/internal/value"
	"github.com/stretchr/testify/require"
)

type fakeRoots struct {
	roots []*value.Value
}

func (f *fakeRoots) GCRoots() []*value.Value { return f.roots }

func TestSweepReclaimsUnreachable(t *testing.T) {
	g := New()
	g.SetInterval(1) // sweep every Collect for deterministic tests

	reachable := value.NewInt(1)
	garbage := value.NewInt(2)

	g.Track(reachable)
	g.Track(garbage)
	g.SetRoots(&fakeRoots{roots: []*value.Value{reachable}})

	require.Equal(t, 2, g.Len())
	g.Collect(false)
	require.Equal(t, 1, g.Len(), "unreachable value must be swept")
}

func TestMarkRecursesIntoCodeChildren(t *testing.T) {
	g := New()
	g.SetInterval(1)

	child := value.NewInt(7)
	code := value.NewCode(value.CodeOf(child))

	g.Track(child)
	g.Track(code)
	g.SetRoots(&fakeRoots{roots: []*value.Value{code}})

	g.Collect(false)
	require.Equal(t, 2, g.Len(), "marking a code value must keep its children alive too")
}

func TestUntrackRemovesWithoutSweep(t *testing.T) {
	g := New()
	v := value.NewInt(1)
	g.Track(v)
	require.Equal(t, 1, g.Len())
	g.Untrack(v)
	require.Equal(t, 0, g.Len())
}

func TestCollectOnlySweepsOnInterval(t *testing.T) {
	g := New()
	g.SetInterval(3)

	garbage := value.NewInt(1)
	g.Track(garbage)
	g.SetRoots(&fakeRoots{})

	g.Collect(false)
	g.Collect(false)
	require.Equal(t, 1, g.Len(), "sweep must not run before the interval elapses")

	g.Collect(false)
	require.Equal(t, 0, g.Len(), "sweep must run once the interval elapses")
}

func TestForceCollectSweepsImmediately(t *testing.T) {
	g := New()
	g.SetInterval(1000)
	garbage := value.NewInt(1)
	g.Track(garbage)
	g.SetRoots(&fakeRoots{})

	g.Collect(true)
	require.Equal(t, 0, g.Len())
}
