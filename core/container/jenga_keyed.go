package container

import (
	assert "github.com/arl/assertgo"
)

// KeyedStack is the capability shared by KeyedJenga and SyncKeyedJenga.
type KeyedStack[K comparable, V any] interface {
	Iterator[Pair[K, V]]
	Push(key K, value V)
	PushEntry(entry Pair[K, V])
	Pop() (V, error)
	Pipop() (Pair[V, bool], error)
	PopRange(n int) ([]V, error)
	PipopRange(n int) ([]Pair[V, bool], error)
	Peek() (V, error)
	PeekRange(n int) ([]V, error)
	Enter(key K, value V)
	EnterAppend(key K, value V, appendKey K) error
	ExitKey(key K) bool
	ExitValue(value V) bool
	Get(key K) (V, bool)
	Set(key K, value V)
	Contains(value V) bool
	ContainsValue(value V) bool
	ContainsKey(key K) bool
	ContainsEntry(key K, value V) bool
	CopyTo(dst []Pair[K, V], index int) error
	CopyValuesTo(dst []V, index int) error
	Add(key K, value V) error
	Remove(key K) (bool, error)
	Clear()
	IsEmpty() bool
	IsSynchronized() bool
	Keys() List[K]
	Values() List[V]
	ScanKV(fn func(key K, value V))
}

var _ KeyedStack[string, int] = (*KeyedJenga[string, int])(nil)

// KeyedJenga is a stack over caller chosen keys. The top is the most recently
// inserted key; overwriting a key keeps its place in the stack.
//
// A KeyedJenga is not safe for concurrent use, see SynchronizedKeyed.
type KeyedJenga[K comparable, V any] struct {
	items LinkedMap[K, V]
	equal func(a, b V) bool
	opts  options
}

func NewKeyedJenga[K comparable, V any](opts ...Option) *KeyedJenga[K, V] {
	o := buildOptions(opts)
	return &KeyedJenga[K, V]{items: *NewLinkedMap[K, V](o.capacity), opts: o}
}

func NewKeyedJengaFunc[K comparable, V any](equal func(a, b V) bool, opts ...Option) *KeyedJenga[K, V] {
	j := NewKeyedJenga[K, V](opts...)
	j.equal = equal
	return j
}

// NewKeyedJengaOf pushes entries in order.
func NewKeyedJengaOf[K comparable, V any](entries ...Pair[K, V]) *KeyedJenga[K, V] {
	j := NewKeyedJenga[K, V](WithCapacity(len(entries)))
	for _, e := range entries {
		j.items.Set(e.First, e.Second)
	}
	return j
}

func (j *KeyedJenga[K, V]) eq(a, b V) bool {
	if j.equal != nil {
		return j.equal(a, b)
	}
	return deepEqual(a, b)
}

func (j *KeyedJenga[K, V]) Len() int {
	return j.items.Len()
}

func (j *KeyedJenga[K, V]) IsEmpty() bool {
	return j.items.IsEmpty()
}

func (j *KeyedJenga[K, V]) IsSynchronized() bool {
	return false
}

// Push overwrites key in place or appends it on top.
func (j *KeyedJenga[K, V]) Push(key K, value V) {
	j.items.Set(key, value)
}

func (j *KeyedJenga[K, V]) PushEntry(entry Pair[K, V]) {
	j.items.Set(entry.First, entry.Second)
}

func (j *KeyedJenga[K, V]) Pop() (V, error) {
	p, err := j.pipop("pop")
	return p.First, j.opts.trace(err)
}

func (j *KeyedJenga[K, V]) Pipop() (Pair[V, bool], error) {
	p, err := j.pipop("pipop")
	return p, j.opts.trace(err)
}

func (j *KeyedJenga[K, V]) pipop(op string) (Pair[V, bool], error) {
	if j.items.Len() < 1 {
		return Pair[V, bool]{}, emptyFault(op)
	}
	_, value, found := j.items.PopLast()
	assert.True(found)
	return Pair[V, bool]{value, found}, nil
}

// PopRange pops n values, newest first.
func (j *KeyedJenga[K, V]) PopRange(n int) ([]V, error) {
	pairs, err := j.pipopRange("pop", n)
	if err != nil {
		return nil, j.opts.trace(err)
	}
	result := make([]V, len(pairs))
	for i, p := range pairs {
		result[i] = p.First
	}
	return result, nil
}

func (j *KeyedJenga[K, V]) PipopRange(n int) ([]Pair[V, bool], error) {
	pairs, err := j.pipopRange("pipop", n)
	return pairs, j.opts.trace(err)
}

func (j *KeyedJenga[K, V]) pipopRange(op string, n int) ([]Pair[V, bool], error) {
	if err := checkPopRange(op, n, j.items.Len()); err != nil {
		return nil, err
	}
	result := make([]Pair[V, bool], 0, n)
	for i := 0; i < n; i++ {
		p, err := j.pipop(op)
		if err != nil {
			return result, err
		}
		result = append(result, p)
	}
	return result, nil
}

// Peek returns the newest value and fails on an empty KeyedJenga.
func (j *KeyedJenga[K, V]) Peek() (V, error) {
	_, value, ok := j.items.Last()
	if !ok {
		return value, j.opts.trace(emptyFault("peek"))
	}
	return value, nil
}

// PeekRange returns what PopRange(n) would, newest first, without touching
// the receiver. It pays for a copy of the backing store.
func (j *KeyedJenga[K, V]) PeekRange(n int) ([]V, error) {
	if err := checkPopRange("peek", n, j.items.Len()); err != nil {
		return nil, j.opts.trace(err)
	}
	return j.Duplicate().PopRange(n)
}

func (j *KeyedJenga[K, V]) Enter(key K, value V) {
	j.items.Set(key, value)
}

// EnterAppend writes value at key. When key is taken its old value moves to
// appendKey, which must be free or hold the zero value.
func (j *KeyedJenga[K, V]) EnterAppend(key K, value V, appendKey K) error {
	return j.opts.trace(j.enterAppend(key, value, appendKey))
}

func (j *KeyedJenga[K, V]) enterAppend(key K, value V, appendKey K) error {
	if !j.items.Contains(key) {
		j.items.Set(key, value)
		return nil
	}
	var zero V
	if v, ok := j.items.Get(appendKey); ok && !j.eq(v, zero) {
		return &Fault{
			Kind:  ErrInvalidArgument,
			Op:    "enter",
			Param: "appendKey",
			Value: appendKey,
			Msg:   "an occupied key cannot be an append target",
		}
	}
	return displace(key, value, j.items.Get, j.items.Set, func(old V) error {
		j.items.Set(appendKey, old)
		return nil
	})
}

func (j *KeyedJenga[K, V]) ExitKey(key K) bool {
	_, ok := j.items.Remove(key)
	return ok
}

// ExitValue removes the oldest entry holding value.
func (j *KeyedJenga[K, V]) ExitValue(value V) bool {
	var (
		key   K
		found bool
	)
	j.items.ScanIf(func(e Pair[K, V]) bool {
		if j.eq(e.Second, value) {
			key, found = e.First, true
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

func (j *KeyedJenga[K, V]) Get(key K) (V, bool) {
	return j.items.Get(key)
}

func (j *KeyedJenga[K, V]) Set(key K, value V) {
	j.items.Set(key, value)
}

func (j *KeyedJenga[K, V]) Contains(value V) bool {
	return j.ContainsValue(value)
}

func (j *KeyedJenga[K, V]) ContainsValue(value V) bool {
	return Any[Pair[K, V]](j, func(e Pair[K, V]) bool { return j.eq(e.Second, value) })
}

func (j *KeyedJenga[K, V]) ContainsKey(key K) bool {
	return j.items.Contains(key)
}

// ContainsEntry reports whether key maps to value.
func (j *KeyedJenga[K, V]) ContainsEntry(key K, value V) bool {
	v, ok := j.items.Get(key)
	return ok && j.eq(v, value)
}

func (j *KeyedJenga[K, V]) Clear() {
	j.items.Clear()
}

func (j *KeyedJenga[K, V]) Duplicate() *KeyedJenga[K, V] {
	return &KeyedJenga[K, V]{
		items: *j.items.Copy(),
		equal: j.equal,
		opts:  j.opts,
	}
}

func (j *KeyedJenga[K, V]) Clone() *KeyedJenga[K, V] {
	return j.Duplicate()
}

// CopyTo copies the entries oldest first into dst starting at index.
func (j *KeyedJenga[K, V]) CopyTo(dst []Pair[K, V], index int) error {
	if err := checkCopy("copy", index, len(dst), j.items.Len()); err != nil {
		return j.opts.trace(err)
	}
	i := index
	j.items.Scan(func(e Pair[K, V]) {
		dst[i] = e
		i++
	})
	return nil
}

func (j *KeyedJenga[K, V]) CopyValuesTo(dst []V, index int) error {
	if err := checkCopy("copy", index, len(dst), j.items.Len()); err != nil {
		return j.opts.trace(err)
	}
	i := index
	j.items.ScanKV(func(_ K, v V) {
		dst[i] = v
		i++
	})
	return nil
}

// Add is not supported, use Push or Enter.
func (j *KeyedJenga[K, V]) Add(K, V) error {
	return j.opts.trace(unsupportedFault("add", "use Push or Enter"))
}

// Remove is not supported, use Pop or Exit.
func (j *KeyedJenga[K, V]) Remove(K) (bool, error) {
	return false, j.opts.trace(unsupportedFault("remove", "use Pop or Exit"))
}

func (j *KeyedJenga[K, V]) ScanIf(fn func(entry Pair[K, V]) bool) {
	j.items.ScanIf(fn)
}

func (j *KeyedJenga[K, V]) Scan(fn func(entry Pair[K, V])) {
	j.items.Scan(fn)
}

func (j *KeyedJenga[K, V]) ScanKV(fn func(key K, value V)) {
	j.items.ScanKV(fn)
}

func (j *KeyedJenga[K, V]) Keys() List[K] {
	return j.items.Keys()
}

func (j *KeyedJenga[K, V]) Values() List[V] {
	return j.items.Values()
}

// Entries returns the entries oldest first.
func (j *KeyedJenga[K, V]) Entries() List[Pair[K, V]] {
	return ListOf[Pair[K, V]](j)
}
