package container_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mogud/jenga/core/container"
)

func TestSafeQueue(t *testing.T) {
	intQueue := container.NewThreadSafeQueue[int]()
	assert.True(t, intQueue.Empty())

	_, ok := intQueue.Deq()
	assert.False(t, ok, "Deq on an empty queue reports false")

	for _, it := range []int{1, 2, 3, 4} {
		intQueue.Enq(it)
	}
	assert.Equal(t, 4, intQueue.Len())

	for want := 1; want <= 4; want++ {
		num, ok := intQueue.Deq()
		assert.True(t, ok)
		assert.Equal(t, want, num, "expect %d but get %d", want, num)
	}
	assert.True(t, intQueue.Empty())

	for _, it := range []int{5, 6} {
		intQueue.Enq(it)
	}
	assert.Equal(t, container.List[int]{5, 6}, intQueue.Drain())
	assert.Equal(t, 0, intQueue.Len())
}

func TestSafeQueueConcurrent(t *testing.T) {
	const producers, perProducer = 8, 1000

	q := container.NewThreadSafeQueue[int]()
	wg := sync.WaitGroup{}
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 1; i <= perProducer; i++ {
				q.Enq(i)
			}
		}()
	}
	wg.Wait()

	sum := 0
	for {
		v, ok := q.Deq()
		if !ok {
			break
		}
		sum += v
	}
	want := producers * perProducer * (perProducer + 1) / 2
	assert.Equal(t, want, sum, "sum expect %d but get %d", want, sum)
}
