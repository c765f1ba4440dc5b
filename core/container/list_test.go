package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mogud/jenga/core/container"
)

func TestList(t *testing.T) {
	list := container.NewList(1, 2, 3, 4)

	assert.Equal(t, container.List[int]{3, 4}, list.Tail(2))
	assert.Equal(t, list, list.Tail(9), "Tail past the length returns everything")
	assert.Equal(t, container.List[int]{4, 3, 2, 1}, list.Reversed())
	assert.Equal(t, container.List[int]{1, 2, 3, 4}, list, "Reversed leaves the receiver alone")

	assert.Equal(t, container.List[int]{2, 4}, container.Filter[int](list, func(v int) bool { return v%2 == 0 }))
	assert.True(t, container.All[int](list, func(v int) bool { return v > 0 }))
	assert.False(t, container.Any[int](list, func(v int) bool { return v > 4 }))
	assert.Equal(t, 10, container.Fold(container.Iterator[int](list), 0, func(acc, v int) int { return acc + v }))

	cp := list.Copy()
	cp.Clear()
	assert.True(t, cp.IsEmpty())
	assert.Equal(t, 4, list.Len())
}
