package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualReflexiveAndSymmetric(t *testing.T) {
	pool := NewPool()
	vals := []*Value{
		NewNone(),
		NewBool(true),
		NewBool(false),
		NewInt(5),
		NewReal(2.5),
		NewName(pool.Intern("FOO")),
		NewInstr(pool.Intern("INT.+")),
		NewCode(CodeOf(NewInt(1), NewInt(2))),
	}

	for _, v := range vals {
		require.True(t, Equal(v, v), "equal(v, v) must hold for %v", v)
	}

	a, b := NewInt(5), NewInt(5)
	require.True(t, Equal(a, b))
	require.True(t, Equal(b, a), "equality must be symmetric")

	require.False(t, Equal(NewInt(5), NewInt(6)))
	require.False(t, Equal(NewInt(5), NewReal(5)), "different kinds never equal")
}

func TestNameIdentityEquality(t *testing.T) {
	pool := NewPool()
	n1 := pool.Intern("X")
	n2 := pool.Intern("X")
	require.True(t, n1 == n2, "interning the same string twice must return the same pointer")
	require.True(t, Equal(NewName(n1), NewName(n2)))

	other := pool.Intern("Y")
	require.False(t, Equal(NewName(n1), NewName(other)))
}

func TestCodeSizeIsPointCount(t *testing.T) {
	// (A (B C) D) => 1 (top) + 1(A) + [1 + 1(B) + 1(C)] + 1(D) = 6
	inner := NewCode(CodeOf(NewInt(2), NewInt(3)))
	top := NewCode(CodeOf(NewInt(1), inner, NewInt(4)))
	require.Equal(t, 6, Size(top))
	require.Equal(t, 1, Size(NewInt(42)), "a leaf has point count 1")
}

func TestExtractReplaceRoundTrip(t *testing.T) {
	inner := NewCode(CodeOf(NewInt(2), NewInt(3)))
	top := NewCode(CodeOf(NewInt(1), inner, NewInt(4)))

	for p := 0; p < Size(top); p++ {
		repl := NewReal(float64(p) + 0.5)
		replaced := Replace(top, p, repl)
		require.True(t, Equal(Extract(replaced, p), repl), "extract(replace(c,p,v),p) must equal v at point %d", p)
	}
}

func TestReplaceIdempotentAtSamePoint(t *testing.T) {
	inner := NewCode(CodeOf(NewInt(2), NewInt(3)))
	top := NewCode(CodeOf(NewInt(1), inner, NewInt(4)))

	p := 3
	w := NewReal(9.5)
	once := Replace(top, p, w)
	twice := Replace(Replace(top, p, NewBool(true)), p, w)
	require.True(t, Equal(once, twice), "replace(replace(c,p,v),p,w) must equal replace(c,p,w)")
}

func TestConcatSizeAdds(t *testing.T) {
	a := CodeOf(NewInt(1), NewInt(2))
	b := CodeOf(NewInt(3))
	out := Concat(a, b)
	require.Equal(t, CodeSize(a)+CodeSize(b), CodeSize(out))
	require.Equal(t, 3, out.Len())
}

func TestNormalizePointWraps(t *testing.T) {
	top := NewCode(CodeOf(NewInt(1), NewInt(2)))
	size := Size(top) // 3
	require.Equal(t, 0, NormalizePoint(top, size))
	require.Equal(t, 1, NormalizePoint(top, size+1))
	require.Equal(t, size-1, NormalizePoint(top, -1))
}

func TestContainerFindsSmallestStrictSublist(t *testing.T) {
	needle := NewCode(CodeOf(NewInt(1)))
	// ( B ( C ( 1 ) ) )
	inner1 := NewCode(CodeOf(NewName((NewPool()).Intern("C")), needle.Dup()))
	haystack := CodeOf(
		NewName((NewPool()).Intern("B")),
		NewCode(inner1),
	)
	got := Container(haystack, needle)
	require.NotNil(t, got)
	require.True(t, Equal(NewCode(got), NewCode(inner1)))
}

func TestContainerNoMatch(t *testing.T) {
	haystack := CodeOf(NewInt(1), NewInt(2))
	require.Nil(t, Container(haystack, NewInt(99)))
}

func TestCodeDupIsIndependent(t *testing.T) {
	c := CodeOf(NewInt(1), NewInt(2))
	d := c.Dup()
	d.Append(NewInt(3))
	require.Equal(t, 2, c.Len())
	require.Equal(t, 3, d.Len())
}

func TestDiscrepancyZeroForEqualTrees(t *testing.T) {
	a := NewCode(CodeOf(NewInt(1), NewInt(2)))
	b := NewCode(CodeOf(NewInt(1), NewInt(2)))
	require.Equal(t, 0, Discrepancy(a, b))

	c := NewCode(CodeOf(NewInt(1), NewInt(3)))
	require.Greater(t, Discrepancy(a, c), 0)
}
