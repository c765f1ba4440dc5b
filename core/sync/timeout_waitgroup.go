package sync

import (
	"context"
	"sync"
	"time"

	"github.com/mogud/jenga/core/meta"
)

// TimeoutWaitGroup is a WaitGroup whose wait can give up. Once the counter
// drops to zero or a wait gives up, the group is finished: Add returns false
// and Done is a no-op.
type TimeoutWaitGroup struct {
	noCopy meta.NoCopy

	lock     sync.Mutex
	counter  int
	finished bool
	c        chan struct{}
}

func NewTimeoutWaitGroup() *TimeoutWaitGroup {
	return &TimeoutWaitGroup{
		c: make(chan struct{}),
	}
}

func (ss *TimeoutWaitGroup) finishLocked() {
	if !ss.finished {
		ss.finished = true
		close(ss.c)
	}
}

func (ss *TimeoutWaitGroup) Add(n int) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	if ss.finished {
		return false
	}
	ss.counter += n
	if ss.counter <= 0 {
		ss.finishLocked()
	}
	return true
}

func (ss *TimeoutWaitGroup) Done() {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	if ss.finished {
		return
	}
	ss.counter--
	if ss.counter <= 0 {
		ss.finishLocked()
	}
}

// WaitTimeout reports whether the counter reached zero within dur.
func (ss *TimeoutWaitGroup) WaitTimeout(dur time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), dur)
	defer cancel()
	return ss.WaitContext(ctx) == nil
}

// WaitContext waits for the counter to reach zero or ctx to end, whichever
// comes first, and returns ctx.Err() in the latter case.
func (ss *TimeoutWaitGroup) WaitContext(ctx context.Context) error {
	ss.lock.Lock()
	if ss.counter <= 0 {
		ss.finishLocked()
	}
	ss.lock.Unlock()

	select {
	case <-ss.c:
		return nil
	case <-ctx.Done():
		ss.lock.Lock()
		defer ss.lock.Unlock()

		if ss.counter <= 0 {
			ss.finishLocked()
			return nil
		}
		ss.finishLocked()
		return ctx.Err()
	}
}

func (ss *TimeoutWaitGroup) Wait() {
	_ = ss.WaitContext(context.Background())
}
