package task_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogud/jenga/core/task"
)

func TestPool(t *testing.T) {
	var panics atomic.Int32
	pool, err := task.NewPool(4, func(any) { panics.Add(1) })
	require.NoError(t, err)
	defer pool.Release()

	var sum atomic.Int64
	wg := sync.WaitGroup{}
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		require.NoError(t, pool.Execute(func() {
			defer wg.Done()
			sum.Add(int64(i))
		}))
	}
	wg.Add(1)
	require.NoError(t, pool.Execute(func() {
		defer wg.Done()
		panic("boom")
	}))
	wg.Wait()

	assert.Equal(t, int64(5050), sum.Load())
	assert.Eventually(t, func() bool { return panics.Load() == 1 }, time.Second, time.Millisecond, "a panicking func reaches the handler")
}
