package script

import (
	"fmt"
	"strconv"

	"github.com/mogud/jenga/core/container"
	"github.com/mogud/jenga/core/logging/slog"
)

type StepResult struct {
	Index  int    `json:"index" yaml:"index"`
	Op     string `json:"op" yaml:"op"`
	Result any    `json:"result,omitempty" yaml:"result,omitempty"`
	Err    string `json:"error,omitempty" yaml:"error,omitempty"`
}

type Entry struct {
	Key   any `json:"key" yaml:"key"`
	Value any `json:"value" yaml:"value"`
}

// Report records what every step returned and the final contents in
// iteration order.
type Report struct {
	Kind         Kind         `json:"kind" yaml:"kind"`
	Synchronized bool         `json:"synchronized" yaml:"synchronized"`
	Steps        []StepResult `json:"steps" yaml:"steps"`
	Len          int          `json:"len" yaml:"len"`
	Contents     []Entry      `json:"contents" yaml:"contents"`
}

// Failed counts the steps that returned an error.
func (r *Report) Failed() int {
	n := 0
	for _, step := range r.Steps {
		if step.Err != "" {
			n++
		}
	}
	return n
}

type target interface {
	apply(step Step) (any, error)
	len() int
	contents() []Entry
}

func newTarget(s *Script, synchronized bool) target {
	opts := []container.Option{
		container.WithCapacity(s.Capacity),
		container.WithMaxCapacity(s.MaxCapacity),
		container.WithLogger(slog.Logger()),
	}
	if s.Kind == KindKeyed {
		if synchronized {
			return &keyedTarget{s: container.NewSyncKeyedJenga[string, any](opts...)}
		}
		return &keyedTarget{s: container.NewKeyedJenga[string, any](opts...)}
	}
	if synchronized {
		return &jengaTarget{s: container.NewSyncJenga[any](opts...)}
	}
	return &jengaTarget{s: container.NewJenga[any](opts...)}
}

// Run executes every step in order. A failing step is recorded in the report
// and the run goes on.
func Run(s *Script, synchronized bool) *Report {
	t := newTarget(s, synchronized)
	report := &Report{
		Kind:         s.Kind,
		Synchronized: synchronized,
		Steps:        make([]StepResult, 0, len(s.Steps)),
	}
	for i, step := range s.Steps {
		res := StepResult{Index: i, Op: step.Op}
		result, err := t.apply(step)
		if err != nil {
			res.Err = err.Error()
			slog.Debugf("script step %d (%s) failed: %v", i, step.Op, err)
		} else {
			res.Result = result
		}
		report.Steps = append(report.Steps, res)
	}
	report.Len = t.len()
	report.Contents = t.contents()
	slog.Infof("script done: kind=%s steps=%d failed=%d len=%d", s.Kind, len(report.Steps), report.Failed(), report.Len)
	return report
}

func rangeOf(step Step) int {
	if step.Range == nil {
		return 0
	}
	return *step.Range
}

func toPosition(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case float64:
		if n := int64(x); float64(n) == x {
			return n, nil
		}
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: position %v (%T) is not an integer", ErrInvalidScript, v, v)
}

func toKey(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

type jengaTarget struct {
	s container.Stack[any]
}

func (t *jengaTarget) apply(step Step) (any, error) {
	switch step.Op {
	case "push":
		return nil, t.s.Push(step.Value)
	case "pop":
		if step.Range == nil {
			return t.s.Pop()
		}
		return t.s.PopRange(*step.Range)
	case "peek":
		v, _ := t.s.Peek()
		return v, nil
	case "peekRange":
		return t.s.PeekRange(rangeOf(step))
	case "exitValue":
		return t.s.ExitValue(step.Value), nil
	case "contains":
		return t.s.Contains(step.Value), nil
	case "clear":
		t.s.Clear()
		return nil, nil
	case "len":
		return t.s.Len(), nil
	}

	pos, err := toPosition(step.Key)
	if err != nil {
		return nil, err
	}
	switch step.Op {
	case "pushEntry":
		return nil, t.s.PushEntry(pos, step.Value)
	case "enter":
		return nil, t.s.Enter(pos, step.Value)
	case "exit":
		return t.s.ExitAt(pos), nil
	case "get":
		v, _ := t.s.Get(pos)
		return v, nil
	case "set":
		return nil, t.s.Set(pos, step.Value)
	case "containsKey":
		return t.s.ContainsKey(pos), nil
	}
	return nil, fmt.Errorf("%w: op %q", ErrInvalidScript, step.Op)
}

func (t *jengaTarget) len() int {
	return t.s.Len()
}

func (t *jengaTarget) contents() []Entry {
	result := make([]Entry, 0, t.s.Len())
	t.s.ScanKV(func(pos int64, value any) {
		result = append(result, Entry{Key: pos, Value: value})
	})
	return result
}

type keyedTarget struct {
	s container.KeyedStack[string, any]
}

func (t *keyedTarget) apply(step Step) (any, error) {
	key := toKey(step.Key)
	switch step.Op {
	case "push":
		t.s.Push(key, step.Value)
		return nil, nil
	case "pushEntry":
		t.s.PushEntry(container.NewPair(key, step.Value))
		return nil, nil
	case "pop":
		if step.Range == nil {
			return t.s.Pop()
		}
		return t.s.PopRange(*step.Range)
	case "peek":
		return t.s.Peek()
	case "peekRange":
		return t.s.PeekRange(rangeOf(step))
	case "enter":
		t.s.Enter(key, step.Value)
		return nil, nil
	case "enterAppend":
		return nil, t.s.EnterAppend(key, step.Value, toKey(step.AppendKey))
	case "exit":
		return t.s.ExitKey(key), nil
	case "exitValue":
		return t.s.ExitValue(step.Value), nil
	case "get":
		v, _ := t.s.Get(key)
		return v, nil
	case "set":
		t.s.Set(key, step.Value)
		return nil, nil
	case "contains":
		return t.s.Contains(step.Value), nil
	case "containsKey":
		return t.s.ContainsKey(key), nil
	case "clear":
		t.s.Clear()
		return nil, nil
	case "len":
		return t.s.Len(), nil
	}
	return nil, fmt.Errorf("%w: op %q", ErrInvalidScript, step.Op)
}

func (t *keyedTarget) len() int {
	return t.s.Len()
}

func (t *keyedTarget) contents() []Entry {
	result := make([]Entry, 0, t.s.Len())
	t.s.ScanKV(func(key string, value any) {
		result = append(result, Entry{Key: key, Value: value})
	})
	return result
}
