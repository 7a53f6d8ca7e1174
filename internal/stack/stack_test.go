package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushPopOrder(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Len())

	v, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, 3, v)

	v, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, 2, v)

	require.Equal(t, 1, s.Len())
}

func TestPopEmpty(t *testing.T) {
	s := New[int]()
	_, ok := s.Pop()
	require.False(t, ok, "popping an empty stack must report ok=false, never panic")
}

func TestPeekNthAndPopNth(t *testing.T) {
	s := New[int]()
	s.Push(10)
	s.Push(20)
	s.Push(30) // top

	v, ok := s.PeekNth(0)
	require.True(t, ok)
	require.Equal(t, 30, v)

	v, ok = s.PeekNth(2)
	require.True(t, ok)
	require.Equal(t, 10, v)

	v, ok = s.PopNth(1) // removes 20
	require.True(t, ok)
	require.Equal(t, 20, v)
	require.Equal(t, 2, s.Len())

	top, _ := s.Peek()
	require.Equal(t, 30, top, "popping a non-top item must not disturb the top")
}

func TestPushNthShove(t *testing.T) {
	s := New[string]()
	s.Push("a")
	s.Push("b")
	s.Push("c") // top: c b a (top-to-bottom)

	s.PushNth(2, "x") // insert so x ends up at depth 2 from the new top

	require.Equal(t, []string{"c", "b", "x", "a"}, s.Items())
}

func TestFlush(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	s.Flush()
	require.Equal(t, 0, s.Len())
	_, ok := s.Pop()
	require.False(t, ok)
}

func TestItemsTopFirst(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, []int{3, 2, 1}, s.Items())
}
