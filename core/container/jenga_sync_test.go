package container_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogud/jenga/core/container"
)

func TestSyncJengaConcurrentPush(t *testing.T) {
	const workers, perWorker = 16, 200

	s := container.NewSyncJenga[int]()
	assert.True(t, s.IsSynchronized())

	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				assert.NoError(t, s.Push(i))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, s.Len(), "no push is lost under contention")
	keys := s.Keys()
	assert.Equal(t, int64(0), keys[0])
	assert.Equal(t, int64(workers*perWorker-1), keys[len(keys)-1], "positions stay contiguous")

	wg = sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := s.Pop()
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
	assert.True(t, s.IsEmpty())
}

func TestSyncJengaWrapsInstance(t *testing.T) {
	j := container.NewJengaOf(1, 2)
	s := container.Synchronized(j)
	require.NoError(t, s.Push(3))

	u := container.Unsynchronized(s)
	assert.False(t, u.IsSynchronized())
	assert.Equal(t, container.List[int]{1, 2, 3}, u.Values())

	_, _ = u.Pop()
	assert.Equal(t, 3, s.Len(), "the unwrapped copy is independent")

	d := s.Duplicate()
	require.NoError(t, d.Push(4))
	assert.True(t, d.IsSynchronized())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Clone().Len())
}

func TestSyncJengaFaultsUnlock(t *testing.T) {
	s := container.NewSyncJenga[string]()
	_, err := s.Pop()
	assert.ErrorIs(t, err, container.ErrEmptyContainer)

	// the lock must have been released by the failing call
	require.NoError(t, s.Push("x"))
	assert.ErrorIs(t, s.Enter(5, "y"), container.ErrRange)
	v, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestSyncJengaZeroValue(t *testing.T) {
	var s container.SyncJenga[int]
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	assert.Equal(t, 2, s.Len())
	v, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	var k container.SyncKeyedJenga[string, int]
	assert.True(t, k.IsEmpty(), "a zero SyncKeyedJenga is empty")
	k.Push("a", 1)
	popped, err := k.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, popped)
	assert.Equal(t, 0, k.Clone().Len())
}

func TestSyncKeyedJengaConcurrent(t *testing.T) {
	const workers, perWorker = 8, 100

	s := container.NewSyncKeyedJenga[string, int]()
	assert.True(t, s.IsSynchronized())

	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Push(fmt.Sprintf("%d-%d", w, i), i)
				_ = s.ContainsKey(fmt.Sprintf("%d-%d", w, i))
			}
		}(w)
	}
	wg.Wait()
	assert.Equal(t, workers*perWorker, s.Len())

	u := container.UnsynchronizedKeyed(s)
	assert.Equal(t, s.Len(), u.Len())
	u.Clear()
	assert.Equal(t, workers*perWorker, s.Len(), "the unwrapped copy is independent")

	k := container.SynchronizedKeyed(container.NewKeyedJengaOf(container.NewPair("a", 1)))
	require.NoError(t, k.EnterAppend("a", 2, "b"))
	assert.Equal(t, container.List[container.Pair[string, int]]{{"a", 2}, {"b", 1}}, k.Entries())
}
