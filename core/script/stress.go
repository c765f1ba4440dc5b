package script

import (
	"context"
	"fmt"
	"time"

	"github.com/mogud/jenga/core/container"
	"github.com/mogud/jenga/core/debug"
	"github.com/mogud/jenga/core/logging/slog"
	"github.com/mogud/jenga/core/sync"
	"github.com/mogud/jenga/core/task"
)

type StressOptions struct {
	Workers int
	Rounds  int
	Timeout time.Duration
}

type StressResult struct {
	Pushes   int
	Expected int
	Len      int
	Errors   []string
	Elapsed  time.Duration
}

// Stress replays the push steps of s from Workers goroutines, Rounds times
// each, against one synchronized container. Keyed pushes get a per-task key
// suffix so every push lands on its own key. The final length must equal the
// number of pushes.
func Stress(ctx context.Context, s *Script, opt StressOptions) (*StressResult, error) {
	if opt.Workers <= 0 || opt.Rounds <= 0 {
		return nil, fmt.Errorf("%w: workers and rounds must be positive", ErrInvalidScript)
	}

	pushes := make([]Step, 0, len(s.Steps))
	for _, step := range s.Steps {
		if step.Op == "push" {
			pushes = append(pushes, step)
		}
	}

	if opt.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opt.Timeout)
		defer cancel()
	}

	failures := container.NewThreadSafeQueue[string]()
	pool, err := task.NewPool(opt.Workers, func(v any) {
		failures.Enq(fmt.Sprintf("panic: %v\n%s", v, debug.StackInfo()))
	})
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	t := newTarget(s, true)
	wg := sync.NewTimeoutWaitGroup()
	total := opt.Workers * opt.Rounds
	wg.Add(total)

	start := time.Now()
	for i := 0; i < total; i++ {
		id := i
		err := pool.Execute(func() {
			defer wg.Done()
			for _, step := range pushes {
				if s.Kind == KindKeyed {
					step.Key = fmt.Sprintf("%v#%d", toKey(step.Key), id)
				}
				if _, err := t.apply(step); err != nil {
					failures.Enq(err.Error())
				}
			}
		})
		if err != nil {
			wg.Done()
			failures.Enq(err.Error())
		}
	}

	if err := wg.WaitContext(ctx); err != nil {
		return nil, fmt.Errorf("stress: %w", err)
	}

	result := &StressResult{
		Pushes:   total * len(pushes),
		Expected: total * len(pushes),
		Len:      t.len(),
		Errors:   failures.Drain(),
		Elapsed:  time.Since(start),
	}
	if s.Kind == KindKeyed {
		result.Expected = total * distinctKeys(pushes)
	}
	slog.Infof("stress done: workers=%d rounds=%d pushes=%d len=%d errors=%d in %v",
		opt.Workers, opt.Rounds, result.Pushes, result.Len, len(result.Errors), result.Elapsed)

	if len(result.Errors) > 0 || result.Len != result.Expected {
		return result, fmt.Errorf("%w: len %d, expected %d, %d errors", ErrMismatch, result.Len, result.Expected, len(result.Errors))
	}
	return result, nil
}

func distinctKeys(steps []Step) int {
	seen := make(map[string]struct{}, len(steps))
	for _, step := range steps {
		seen[toKey(step.Key)] = struct{}{}
	}
	return len(seen)
}
