package container

import (
	"sync/atomic"
)

type queueNode[T any] struct {
	value T
	next  atomic.Pointer[queueNode[T]]
}

// ThreadSafeQueue is a lock-free FIFO (Michael-Scott queue).
type ThreadSafeQueue[T any] struct {
	head atomic.Pointer[queueNode[T]]
	tail atomic.Pointer[queueNode[T]]
	size atomic.Int64
}

func NewThreadSafeQueue[T any]() *ThreadSafeQueue[T] {
	q := &ThreadSafeQueue[T]{}
	sentinel := &queueNode[T]{}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
	return q
}

func (q *ThreadSafeQueue[T]) Empty() bool {
	return q.head.Load() == q.tail.Load()
}

// Len is exact only once producers and consumers are quiescent.
func (q *ThreadSafeQueue[T]) Len() int {
	return int(q.size.Load())
}

func (q *ThreadSafeQueue[T]) Enq(v T) {
	n := &queueNode[T]{value: v}
	for {
		last := q.tail.Load()
		next := last.next.Load()
		if last != q.tail.Load() {
			continue
		}
		if next != nil {
			q.tail.CompareAndSwap(last, next)
			continue
		}
		if last.next.CompareAndSwap(nil, n) {
			q.tail.CompareAndSwap(last, n)
			q.size.Add(1)
			return
		}
	}
}

// Deq returns false when the queue is empty.
func (q *ThreadSafeQueue[T]) Deq() (T, bool) {
	for {
		first := q.head.Load()
		last := q.tail.Load()
		next := first.next.Load()
		if first != q.head.Load() {
			continue
		}
		if first == last {
			if next == nil {
				var zero T
				return zero, false
			}
			q.tail.CompareAndSwap(last, next)
			continue
		}
		v := next.value
		if q.head.CompareAndSwap(first, next) {
			q.size.Add(-1)
			return v, true
		}
	}
}

// Drain dequeues everything currently in the queue.
func (q *ThreadSafeQueue[T]) Drain() List[T] {
	var result List[T]
	for {
		v, ok := q.Deq()
		if !ok {
			return result
		}
		result.Add(v)
	}
}
