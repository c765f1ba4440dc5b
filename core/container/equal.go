package container

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// deepEqual is the default value equality of the containers and tuples.
// Unexported fields take part in the comparison.
func deepEqual[T any](a, b T) bool {
	return cmp.Equal(a, b, exportAll)
}
