package script_test

import (
	"bytes"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mogud/jenga/core/script"
)

func decode(t *testing.T, src string) *script.Script {
	s, err := script.Decode([]byte(src), script.FormatJSON)
	require.NoError(t, err)
	return s
}

func TestRunJenga(t *testing.T) {
	report := script.Run(decode(t, jsonScript), false)

	require.Len(t, report.Steps, 7)
	assert.Equal(t, int64(30), report.Steps[3].Result, "peek")
	assert.Equal(t, int64(30), report.Steps[4].Result, "pop")
	assert.Equal(t, []any{int64(20), int64(10)}, report.Steps[5].Result, "pop range")
	assert.Contains(t, report.Steps[6].Err, "container is empty")
	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, 0, report.Len)
	assert.Empty(t, report.Contents)
}

func TestRunEnter(t *testing.T) {
	report := script.Run(decode(t, `{"steps": [
		{"op": "push", "value": "A"},
		{"op": "push", "value": "B"},
		{"op": "push", "value": "C"},
		{"op": "enter", "key": 1, "value": 99},
		{"op": "enter", "key": 9, "value": 1},
		{"op": "get", "key": "3"},
		{"op": "containsKey", "key": 2},
		{"op": "exit", "key": 2},
		{"op": "exitValue", "value": "A"},
		{"op": "contains", "value": 99},
		{"op": "get", "key": "x"},
		{"op": "len"}
	]}`), false)

	assert.Contains(t, report.Steps[4].Err, "out of range")
	assert.Equal(t, "B", report.Steps[5].Result)
	assert.Equal(t, true, report.Steps[6].Result)
	assert.Equal(t, true, report.Steps[7].Result)
	assert.Equal(t, true, report.Steps[8].Result)
	assert.Equal(t, true, report.Steps[9].Result)
	assert.Contains(t, report.Steps[10].Err, "not an integer")
	assert.Equal(t, 2, report.Steps[11].Result)
	assert.Equal(t, []script.Entry{{Key: int64(1), Value: int64(99)}, {Key: int64(3), Value: "B"}}, report.Contents)
}

func TestRunKeyed(t *testing.T) {
	report := script.Run(decode(t, `{"kind": "keyed", "capacity": 4, "steps": [
		{"op": "push", "key": "a", "value": 1},
		{"op": "pushEntry", "key": "b", "value": 2},
		{"op": "enterAppend", "key": "a", "value": 10, "appendKey": "c"},
		{"op": "enterAppend", "key": "b", "value": 20, "appendKey": "c"},
		{"op": "peekRange", "range": 2},
		{"op": "set", "key": "d", "value": {"nested": [1, 2.5]}},
		{"op": "pop"},
		{"op": "clear"},
		{"op": "peek"}
	]}`), true)

	assert.True(t, report.Synchronized)
	assert.Empty(t, report.Steps[2].Err)
	assert.Contains(t, report.Steps[3].Err, "invalid argument")
	assert.Equal(t, []any{int64(1), int64(2)}, report.Steps[4].Result, "newest first")
	assert.Equal(t, map[string]any{"nested": []any{int64(1), 2.5}}, report.Steps[6].Result)
	assert.Contains(t, report.Steps[8].Err, "container is empty")
	assert.Equal(t, 0, report.Len)
}

func TestEncode(t *testing.T) {
	report := script.Run(decode(t, jsonScript), false)

	var buf bytes.Buffer
	require.NoError(t, script.Encode(&buf, report, script.FormatJSON))
	var fromJSON map[string]any
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, "jenga", fromJSON["kind"])
	assert.Len(t, fromJSON["steps"], 7)

	buf.Reset()
	require.NoError(t, script.Encode(&buf, report, script.FormatYAML))
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, "jenga", fromYAML["kind"])
	assert.Equal(t, 0, fromYAML["len"])

	assert.ErrorIs(t, script.Encode(&buf, report, "xml"), script.ErrInvalidScript)
}
