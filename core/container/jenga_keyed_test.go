package container_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogud/jenga/core/container"
)

func TestKeyedJengaPushPop(t *testing.T) {
	j := container.NewKeyedJenga[string, int]()
	j.Push("a", 1)
	j.Push("b", 2)
	j.Push("c", 3)

	top, err := j.Peek()
	require.NoError(t, err)
	assert.Equal(t, 3, top)

	j.Push("a", 10)
	assert.Equal(t, container.List[string]{"a", "b", "c"}, j.Keys(), "pushing a present key keeps its place")
	assert.Equal(t, container.List[int]{10, 2, 3}, j.Values())

	v, err := j.Pop()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	values, err := j.PopRange(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 10}, values, "PopRange pops newest first")

	_, err = j.Pop()
	assert.ErrorIs(t, err, container.ErrEmptyContainer)
	_, err = j.Peek()
	assert.ErrorIs(t, err, container.ErrEmptyContainer, "Peek on an empty KeyedJenga fails")
	_, err = j.Pipop()
	assert.ErrorIs(t, err, container.ErrEmptyContainer)
}

func TestKeyedJengaPeekRange(t *testing.T) {
	j := container.NewKeyedJengaOf(
		container.NewPair("a", 1),
		container.NewPair("b", 2),
		container.NewPair("c", 3),
	)

	values, err := j.PeekRange(2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, values)
	assert.Equal(t, 3, j.Len(), "PeekRange leaves the KeyedJenga untouched")

	_, err = j.PeekRange(4)
	assert.ErrorIs(t, err, container.ErrRange)

	_, err = container.NewKeyedJenga[string, int]().PeekRange(1)
	assert.ErrorIs(t, err, container.ErrEmptyContainer)

	pairs, err := j.PipopRange(2)
	require.NoError(t, err)
	assert.Equal(t, []container.Pair[int, bool]{{3, true}, {2, true}}, pairs)
}

func TestKeyedJengaEnterAppend(t *testing.T) {
	j := container.NewKeyedJengaOf(container.NewPair("a", 1), container.NewPair("b", 2))

	require.NoError(t, j.EnterAppend("c", 3, "x"))
	assert.False(t, j.ContainsKey("x"), "an absent key is written without touching appendKey")

	require.NoError(t, j.EnterAppend("a", 100, "z"))
	assert.Equal(t, container.List[string]{"a", "b", "c", "z"}, j.Keys())
	assert.Equal(t, container.List[int]{100, 2, 3, 1}, j.Values(), "the old value moves to appendKey on top")

	err := j.EnterAppend("b", 5, "c")
	assert.ErrorIs(t, err, container.ErrInvalidArgument)
	var fault *container.Fault
	require.True(t, errors.As(err, &fault))
	assert.Equal(t, "appendKey", fault.Param)
	assert.Equal(t, "c", fault.Value)
	assert.True(t, j.ContainsEntry("b", 2), "a rejected EnterAppend changes nothing")

	j.Push("zero", 0)
	require.NoError(t, j.EnterAppend("b", 7, "zero"), "an appendKey holding the zero value may be overwritten")
	assert.True(t, j.ContainsEntry("zero", 2))
	assert.True(t, j.ContainsEntry("b", 7))
}

func TestKeyedJengaExitAndLookup(t *testing.T) {
	j := container.NewKeyedJenga[string, int]()
	j.Enter("a", 1)
	j.Set("b", 1)
	j.PushEntry(container.NewPair("c", 2))

	v, ok := j.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = j.Get("nope")
	assert.False(t, ok)

	assert.True(t, j.ContainsValue(2))
	assert.True(t, j.Contains(1))
	assert.True(t, j.ContainsEntry("c", 2))
	assert.False(t, j.ContainsEntry("c", 1), "ContainsEntry matches the exact pair")

	assert.True(t, j.ExitValue(1))
	assert.Equal(t, container.List[string]{"b", "c"}, j.Keys(), "ExitValue removes the oldest match")
	assert.True(t, j.ExitKey("c"))
	assert.False(t, j.ExitKey("c"))
	assert.False(t, j.ExitValue(42))

	assert.Equal(t, container.List[container.Pair[string, int]]{{"b", 1}}, j.Entries())
}

func TestKeyedJengaCopyTo(t *testing.T) {
	j := container.NewKeyedJengaOf(container.NewPair("a", 1), container.NewPair("b", 2))

	dst := make([]container.Pair[string, int], 3)
	require.NoError(t, j.CopyTo(dst, 1))
	assert.Equal(t, []container.Pair[string, int]{{}, {"a", 1}, {"b", 2}}, dst)
	assert.ErrorIs(t, j.CopyTo(dst, 2), container.ErrInsufficientCapacity)
	assert.ErrorIs(t, j.CopyTo(dst, 3), container.ErrRange)

	values := make([]int, 2)
	require.NoError(t, j.CopyValuesTo(values, 0))
	assert.Equal(t, []int{1, 2}, values)
	assert.ErrorIs(t, j.CopyValuesTo(values, -1), container.ErrRange)

	var empty container.KeyedJenga[string, int]
	assert.NoError(t, empty.CopyTo(nil, 0), "an empty container copies into an empty slice")
	assert.NoError(t, empty.CopyValuesTo(values, 2), "an empty container may copy at the end of dst")
	assert.ErrorIs(t, empty.CopyTo(nil, 1), container.ErrRange)
}

func TestKeyedJengaUnsupported(t *testing.T) {
	j := container.NewKeyedJenga[int, int]()
	assert.ErrorIs(t, j.Add(1, 1), container.ErrUnsupportedOperation)
	_, err := j.Remove(1)
	assert.ErrorIs(t, err, container.ErrUnsupportedOperation)
	assert.True(t, j.IsEmpty())
	assert.False(t, j.IsSynchronized())
}

func TestKeyedJengaDuplicate(t *testing.T) {
	j := container.NewKeyedJengaOf(container.NewPair(1, "x"), container.NewPair(2, "y"))
	d := j.Duplicate()
	d.Push(3, "z")
	d.Set(1, "changed")
	c := j.Clone()
	c.Clear()

	assert.Equal(t, container.List[string]{"x", "y"}, j.Values(), "duplicates share no state with the source")
	assert.Equal(t, container.List[string]{"changed", "y", "z"}, d.Values())
	assert.True(t, c.IsEmpty())
}
