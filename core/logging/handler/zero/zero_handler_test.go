package zero_test

import (
	"bytes"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogud/jenga/core/logging"
	"github.com/mogud/jenga/core/logging/handler/zero"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewDefaultLogger("script", zero.NewHandler(&buf, logging.INFO), nil)

	logger.Debugf("dropped")
	logger.Warnf("len %d", 3)
	logger.Fatalf("still here")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "records below the minimum level are dropped")

	var rec map[string]any
	require.NoError(t, jsoniter.UnmarshalFromString(lines[0], &rec))
	assert.Equal(t, "warn", rec["level"])
	assert.Equal(t, "len 3", rec["message"])
	assert.Equal(t, "script", rec["path"])
	assert.Contains(t, rec, "time")

	require.NoError(t, jsoniter.UnmarshalFromString(lines[1], &rec))
	assert.Equal(t, "fatal", rec["level"])
}
