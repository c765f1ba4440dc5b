package task

import (
	"fmt"

	"github.com/panjf2000/ants/v2"
)

// Pool runs funcs on a bounded set of goroutines.
type Pool struct {
	p *ants.PoolWithFunc
}

// NewPool creates a pool of size workers. A panicking func is reported to
// onPanic when it is not nil.
func NewPool(size int, onPanic func(v any)) (*Pool, error) {
	opts := []ants.Option{ants.WithPreAlloc(false)}
	if onPanic != nil {
		opts = append(opts, ants.WithPanicHandler(onPanic))
	}
	p, err := ants.NewPoolWithFunc(size, func(f any) {
		(f.(func()))()
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init goroutine pool: %w", err)
	}
	return &Pool{p: p}, nil
}

// Execute blocks while every worker is busy.
func (ss *Pool) Execute(f func()) error {
	return ss.p.Invoke(f)
}

func (ss *Pool) Release() {
	ss.p.Release()
}
