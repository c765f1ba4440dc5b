package script_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogud/jenga/core/script"
)

func TestVerify(t *testing.T) {
	require.NoError(t, script.Verify(decode(t, jsonScript)))
	require.NoError(t, script.Verify(decode(t, `{"kind": "keyed", "steps": [
		{"op": "push", "key": "a", "value": 1},
		{"op": "enterAppend", "key": "a", "value": 2, "appendKey": "b"},
		{"op": "pop", "range": 3}
	]}`)))
}

func TestStress(t *testing.T) {
	s := decode(t, `{"steps": [
		{"op": "push", "value": 1},
		{"op": "peek"},
		{"op": "push", "value": 2}
	]}`)

	result, err := script.Stress(context.Background(), s, script.StressOptions{Workers: 4, Rounds: 25, Timeout: 10 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, 200, result.Pushes)
	assert.Equal(t, 200, result.Len)
	assert.Empty(t, result.Errors)
}

func TestStressKeyed(t *testing.T) {
	s := decode(t, `{"kind": "keyed", "steps": [
		{"op": "push", "key": "a", "value": 1},
		{"op": "push", "key": "a", "value": 2},
		{"op": "push", "key": "b", "value": 3}
	]}`)

	result, err := script.Stress(context.Background(), s, script.StressOptions{Workers: 3, Rounds: 10})
	require.NoError(t, err)
	assert.Equal(t, 90, result.Pushes)
	assert.Equal(t, 60, result.Expected, "repeated keys overwrite within a task")
	assert.Equal(t, 60, result.Len)
}

func TestStressRejectsBadOptions(t *testing.T) {
	_, err := script.Stress(context.Background(), decode(t, jsonScript), script.StressOptions{Workers: 0, Rounds: 1})
	assert.ErrorIs(t, err, script.ErrInvalidScript)
}

func TestStressCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := decode(t, `{"steps": [{"op": "push", "value": 1}]}`)
	_, err := script.Stress(ctx, s, script.StressOptions{Workers: 1, Rounds: 100000})
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"steps": [{"op": "len"}]}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loads := make(chan int, 16)
	done := make(chan error, 1)
	go func() {
		done <- script.Watch(ctx, path, func(s *script.Script, err error) {
			if err != nil {
				return
			}
			select {
			case loads <- len(s.Steps):
			default:
			}
		})
	}()

	select {
	case n := <-loads:
		assert.Equal(t, 1, n, "the script is loaded once up front")
	case <-time.After(5 * time.Second):
		t.Fatal("initial load did not happen")
	}

	require.NoError(t, os.WriteFile(path, []byte(`{"steps": [{"op": "len"}, {"op": "clear"}]}`), 0o644))

	deadline := time.After(5 * time.Second)
	for got := 0; got != 2; {
		select {
		case got = <-loads:
		case <-deadline:
			t.Fatal("change was not picked up")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
