package debug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mogud/jenga/core/debug"
)

func TestStackInfo(t *testing.T) {
	assert.Contains(t, debug.StackInfo(), "TestStackInfo")
}
