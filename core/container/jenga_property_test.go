package container_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/mogud/jenga/core/container"
)

func TestJengaPushPopInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.Int(), 1, 64).Draw(t, "values")

		j := container.NewJenga[int]()
		for _, v := range values {
			require.NoError(t, j.Push(v))
		}

		popped, err := j.PopRange(len(values))
		require.NoError(t, err)
		slices.Reverse(popped)
		assert.Equal(t, values, popped)
		assert.True(t, j.IsEmpty())
	})
}

func TestJengaPeekDoesNotMutate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.Int(), 1, 32).Draw(t, "values")
		n := rapid.IntRange(0, len(values)+4).Draw(t, "n")

		j := container.NewJengaOf(values...)
		before := j.Values()

		top, ok := j.Peek()
		require.True(t, ok)
		assert.Equal(t, values[len(values)-1], top)

		peeked, err := j.PeekRange(n)
		require.NoError(t, err)
		require.Len(t, peeked, n)
		if n <= len(values) {
			assert.Equal(t, values[len(values)-n:], peeked)
		}
		assert.Equal(t, before, j.Values())
	})
}

// applyRandomOp runs the same drawn operation against both stacks and
// requires matching outcomes.
func applyRandomOp(t *rapid.T, a, b container.Stack[int]) {
	pos := rapid.Int64Range(-2, 12).Draw(t, "pos")
	value := rapid.IntRange(0, 5).Draw(t, "value")

	errString := func(err error) string {
		if err == nil {
			return ""
		}
		return err.Error()
	}

	switch rapid.SampledFrom([]string{"push", "pop", "enter", "set", "exitAt", "exitValue", "peekRange"}).Draw(t, "op") {
	case "push":
		require.Equal(t, errString(a.Push(value)), errString(b.Push(value)))
	case "pop":
		va, ea := a.Pop()
		vb, eb := b.Pop()
		require.Equal(t, errString(ea), errString(eb))
		require.Equal(t, va, vb)
	case "enter":
		require.Equal(t, errString(a.Enter(pos, value)), errString(b.Enter(pos, value)))
	case "set":
		require.Equal(t, errString(a.Set(pos, value)), errString(b.Set(pos, value)))
	case "exitAt":
		require.Equal(t, a.ExitAt(pos), b.ExitAt(pos))
	case "exitValue":
		require.Equal(t, a.ExitValue(value), b.ExitValue(value))
	case "peekRange":
		n := int(pos)
		va, ea := a.PeekRange(n)
		vb, eb := b.PeekRange(n)
		require.Equal(t, errString(ea), errString(eb))
		require.Equal(t, va, vb)
	}
}

func TestSyncJengaEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		plain := container.NewJenga[int]()
		synced := container.NewSyncJenga[int]()

		steps := rapid.IntRange(0, 64).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			applyRandomOp(t, plain, synced)
		}
		assert.Equal(t, plain.Keys(), synced.Keys())
		assert.Equal(t, plain.Values(), synced.Values())
	})
}

func TestKeyedJengaMatchesModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		j := container.NewKeyedJenga[string, int]()
		var order []string
		values := map[string]int{}

		steps := rapid.IntRange(0, 64).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			key := rapid.SampledFrom([]string{"a", "b", "c", "d"}).Draw(t, "key")
			if rapid.Bool().Draw(t, "push") {
				value := rapid.Int().Draw(t, "value")
				j.Push(key, value)
				if _, ok := values[key]; !ok {
					order = append(order, key)
				}
				values[key] = value
				continue
			}

			v, err := j.Pop()
			if len(order) == 0 {
				require.ErrorIs(t, err, container.ErrEmptyContainer)
				continue
			}
			require.NoError(t, err)
			last := order[len(order)-1]
			order = order[:len(order)-1]
			require.Equal(t, values[last], v)
			delete(values, last)
		}

		require.Equal(t, len(order), j.Len())
		for i, k := range j.Keys() {
			require.Equal(t, order[i], k)
		}
	})
}
