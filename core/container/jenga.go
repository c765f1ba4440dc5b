package container

import (
	assert "github.com/arl/assertgo"
)

// Stack is the capability shared by Jenga and SyncJenga.
type Stack[T any] interface {
	Iterator[T]
	Push(value T) error
	PushEntry(key int64, value T) error
	Pop() (T, error)
	Pipop() (Pair[T, bool], error)
	PopRange(n int) ([]T, error)
	PipopRange(n int) ([]Pair[T, bool], error)
	Peek() (T, bool)
	PeekRange(n int) ([]T, error)
	Enter(pos int64, value T) error
	EnterValue(value T) error
	EnterEntry(entry Pair[int64, T]) error
	ExitValue(value T) bool
	ExitAt(pos int64) bool
	ExitPair(pos int64, value T) bool
	ExitEntry(entry Pair[int64, T]) bool
	Get(pos int64) (T, bool)
	Set(pos int64, value T) error
	Contains(value T) bool
	ContainsValue(value T) bool
	ContainsKey(pos int64) bool
	ContainsEntry(pos int64, value T) bool
	CopyTo(dst []T, index int) error
	Add(value T) error
	Remove(value T) (bool, error)
	Clear()
	IsEmpty() bool
	IsSynchronized() bool
	Keys() List[int64]
	Values() List[T]
	ScanKV(fn func(pos int64, value T))
}

var _ Stack[int] = (*Jenga[int])(nil)

// Dynamic holds values of any type.
type Dynamic = Jenga[any]

// Jenga is a stack laid over a sparse map of positions. The top is the entry
// with the highest position. Removing an inner position leaves a gap; the
// positions are never compacted.
//
// A Jenga is not safe for concurrent use, see Synchronized. The zero value is
// an empty Jenga comparing values structurally.
type Jenga[T any] struct {
	items OrderedMap[int64, T]
	equal func(a, b T) bool
	opts  options
}

func NewJenga[T any](opts ...Option) *Jenga[T] {
	return &Jenga[T]{opts: buildOptions(opts)}
}

// NewJengaFunc creates a Jenga whose value lookups use equal.
func NewJengaFunc[T any](equal func(a, b T) bool, opts ...Option) *Jenga[T] {
	return &Jenga[T]{equal: equal, opts: buildOptions(opts)}
}

// NewJengaOf places values at positions 0..n-1.
func NewJengaOf[T any](values ...T) *Jenga[T] {
	j := &Jenga[T]{opts: buildOptions(nil)}
	for i, v := range values {
		j.items.Add(int64(i), v)
	}
	return j
}

func (j *Jenga[T]) eq(a, b T) bool {
	if j.equal != nil {
		return j.equal(a, b)
	}
	return deepEqual(a, b)
}

func (j *Jenga[T]) Len() int {
	return j.items.Len()
}

func (j *Jenga[T]) IsEmpty() bool {
	return j.items.IsEmpty()
}

func (j *Jenga[T]) IsSynchronized() bool {
	return false
}

// Push puts value at position Len(). Once gaps exist that position may
// already be taken, in which case ErrDuplicateKey is returned.
func (j *Jenga[T]) Push(value T) error {
	return j.opts.trace(j.push(value))
}

func (j *Jenga[T]) push(value T) error {
	key := int64(j.items.Len())
	if j.items.Contains(key) {
		return &Fault{Kind: ErrDuplicateKey, Op: "push", Param: "key", Value: key}
	}
	j.items.Add(key, value)
	return nil
}

// PushEntry writes value at key. An existing occupant of key is pushed onto
// the top first.
func (j *Jenga[T]) PushEntry(key int64, value T) error {
	return j.opts.trace(displace(key, value, j.items.Get, j.items.Add, j.push))
}

func (j *Jenga[T]) Pop() (T, error) {
	p, err := j.pipop("pop")
	return p.First, j.opts.trace(err)
}

// Pipop pops the top and reports whether the removal took place.
func (j *Jenga[T]) Pipop() (Pair[T, bool], error) {
	p, err := j.pipop("pipop")
	return p, j.opts.trace(err)
}

func (j *Jenga[T]) pipop(op string) (Pair[T, bool], error) {
	if j.items.Len() < 1 {
		return Pair[T, bool]{}, emptyFault(op)
	}
	_, value, found := j.items.PopMax()
	assert.True(found)
	return Pair[T, bool]{value, found}, nil
}

// PopRange pops n values, top first.
func (j *Jenga[T]) PopRange(n int) ([]T, error) {
	pairs, err := j.pipopRange("pop", n)
	if err != nil {
		return nil, j.opts.trace(err)
	}
	result := make([]T, len(pairs))
	for i, p := range pairs {
		result[i] = p.First
	}
	return result, nil
}

func (j *Jenga[T]) PipopRange(n int) ([]Pair[T, bool], error) {
	pairs, err := j.pipopRange("pipop", n)
	return pairs, j.opts.trace(err)
}

func (j *Jenga[T]) pipopRange(op string, n int) ([]Pair[T, bool], error) {
	if err := checkPopRange(op, n, j.items.Len()); err != nil {
		return nil, err
	}
	result := make([]Pair[T, bool], 0, n)
	for i := 0; i < n; i++ {
		p, err := j.pipop(op)
		if err != nil {
			return result, err
		}
		result = append(result, p)
	}
	return result, nil
}

// Peek returns the top value. An empty Jenga yields the zero value and false.
func (j *Jenga[T]) Peek() (T, bool) {
	_, value, ok := j.items.Max()
	return value, ok
}

// PeekRange returns the n values ending at the top, oldest first. When n
// exceeds Len the leading slots hold zero values.
func (j *Jenga[T]) PeekRange(n int) ([]T, error) {
	if n < 0 {
		return nil, j.opts.trace(rangeFault("peek", "range", n, j.items.Len()))
	}
	if j.items.IsEmpty() {
		return []T{}, nil
	}
	result := make([]T, n)
	i := n - 1
	j.items.ScanKVDesc(func(_ int64, value T) bool {
		if i < 0 {
			return false
		}
		result[i] = value
		i--
		return true
	})
	return result, nil
}

// Enter writes value at pos. On an empty Jenga pos may be anywhere up to the
// max capacity. Otherwise pos must lie in [0, Len()) and the current occupant
// is pushed onto the top.
func (j *Jenga[T]) Enter(pos int64, value T) error {
	return j.opts.trace(j.enter(pos, value))
}

func (j *Jenga[T]) enter(pos int64, value T) error {
	if j.items.IsEmpty() {
		if limit := j.opts.limit(); pos < 0 || pos > limit {
			return rangeFault("enter", "position", pos, limit)
		}
		j.items.Add(pos, value)
		return nil
	}
	if pos < 0 || pos >= int64(j.items.Len()) {
		return rangeFault("enter", "position", pos, j.items.Len())
	}
	return displace(pos, value, j.items.Get, j.items.Add, j.push)
}

func (j *Jenga[T]) EnterValue(value T) error {
	return j.Push(value)
}

func (j *Jenga[T]) EnterEntry(entry Pair[int64, T]) error {
	return j.Enter(entry.First, entry.Second)
}

// ExitValue removes the lowest positioned entry equal to value.
func (j *Jenga[T]) ExitValue(value T) bool {
	var (
		key   int64
		found bool
	)
	j.items.ScanKVIf(func(k int64, v T) bool {
		if j.eq(v, value) {
			key, found = k, true
			return false
		}
		return true
	})
	if !found {
		return false
	}
	_, ok := j.items.Remove(key)
	return ok
}

func (j *Jenga[T]) ExitAt(pos int64) bool {
	_, ok := j.items.Remove(pos)
	return ok
}

// ExitPair removes pos only when it lies in [0, Len()) and holds value.
func (j *Jenga[T]) ExitPair(pos int64, value T) bool {
	if pos < 0 || pos >= int64(j.items.Len()) {
		return false
	}
	if !j.ContainsEntry(pos, value) {
		return false
	}
	_, ok := j.items.Remove(pos)
	return ok
}

func (j *Jenga[T]) ExitEntry(entry Pair[int64, T]) bool {
	return j.ExitPair(entry.First, entry.Second)
}

func (j *Jenga[T]) Get(pos int64) (T, bool) {
	return j.items.Get(pos)
}

// Set writes value at pos after pushing the current occupant onto the top.
func (j *Jenga[T]) Set(pos int64, value T) error {
	return j.opts.trace(displace(pos, value, j.items.Get, j.items.Add, j.push))
}

func (j *Jenga[T]) Contains(value T) bool {
	return j.ContainsValue(value)
}

func (j *Jenga[T]) ContainsValue(value T) bool {
	return Any[T](j, func(v T) bool { return j.eq(v, value) })
}

func (j *Jenga[T]) ContainsKey(pos int64) bool {
	return j.items.Contains(pos)
}

func (j *Jenga[T]) ContainsEntry(pos int64, value T) bool {
	v, ok := j.items.Get(pos)
	return ok && j.eq(v, value)
}

func (j *Jenga[T]) Clear() {
	j.items.Clear()
}

// Duplicate returns a deep copy; the two Jengas share no state.
func (j *Jenga[T]) Duplicate() *Jenga[T] {
	return &Jenga[T]{
		items: *j.items.Copy(),
		equal: j.equal,
		opts:  j.opts,
	}
}

func (j *Jenga[T]) Clone() *Jenga[T] {
	return j.Duplicate()
}

// CopyTo copies the values in position order into dst starting at index.
func (j *Jenga[T]) CopyTo(dst []T, index int) error {
	if err := checkCopy("copy", index, len(dst), j.items.Len()); err != nil {
		return j.opts.trace(err)
	}
	i := index
	j.items.ScanKV(func(_ int64, value T) {
		dst[i] = value
		i++
	})
	return nil
}

// Add is not supported, use Push or Enter.
func (j *Jenga[T]) Add(T) error {
	return j.opts.trace(unsupportedFault("add", "use Push or Enter"))
}

// Remove is not supported, use Pop or Exit.
func (j *Jenga[T]) Remove(T) (bool, error) {
	return false, j.opts.trace(unsupportedFault("remove", "use Pop or Exit"))
}

func (j *Jenga[T]) ScanIf(fn func(value T) bool) {
	j.items.ScanKVIf(func(_ int64, value T) bool {
		return fn(value)
	})
}

func (j *Jenga[T]) Scan(fn func(value T)) {
	j.items.ScanKV(func(_ int64, value T) {
		fn(value)
	})
}

func (j *Jenga[T]) ScanKV(fn func(pos int64, value T)) {
	j.items.ScanKV(fn)
}

func (j *Jenga[T]) Keys() List[int64] {
	return j.items.Keys()
}

func (j *Jenga[T]) Values() List[T] {
	return j.items.Values()
}
