package container

var _ = Iterator[Pair[int, int]]((*LinkedMap[int, int])(nil))

type linkedEntry[V any] struct {
	seq   uint64
	value V
}

// LinkedMap is a hash map that remembers insertion order. Overwriting a key
// keeps its position; removing and re-adding moves it to the end.
type LinkedMap[K comparable, V any] struct {
	entries map[K]*linkedEntry[V]
	order   OrderedMap[uint64, K]
	seq     uint64
}

func NewLinkedMap[K comparable, V any](capacity int) *LinkedMap[K, V] {
	return &LinkedMap[K, V]{entries: make(map[K]*linkedEntry[V], max(capacity, 0))}
}

func (m *LinkedMap[K, V]) ScanIf(fn func(entry Pair[K, V]) bool) {
	m.order.ScanKVIf(func(_ uint64, key K) bool {
		return fn(Pair[K, V]{key, m.entries[key].value})
	})
}

func (m *LinkedMap[K, V]) Scan(fn func(entry Pair[K, V])) {
	m.order.ScanKV(func(_ uint64, key K) {
		fn(Pair[K, V]{key, m.entries[key].value})
	})
}

func (m *LinkedMap[K, V]) ScanKV(fn func(key K, value V)) {
	m.order.ScanKV(func(_ uint64, key K) {
		fn(key, m.entries[key].value)
	})
}

// ScanKVDesc walks entries newest first until fn returns false.
func (m *LinkedMap[K, V]) ScanKVDesc(fn func(key K, value V) bool) {
	m.order.ScanKVDesc(func(_ uint64, key K) bool {
		return fn(key, m.entries[key].value)
	})
}

func (m *LinkedMap[K, V]) Len() int {
	return len(m.entries)
}

func (m *LinkedMap[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

func (m *LinkedMap[K, V]) Contains(key K) bool {
	_, ok := m.entries[key]
	return ok
}

func (m *LinkedMap[K, V]) Get(key K) (V, bool) {
	if e, ok := m.entries[key]; ok {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Set overwrites key in place or appends it as the newest entry.
func (m *LinkedMap[K, V]) Set(key K, value V) {
	if e, ok := m.entries[key]; ok {
		e.value = value
		return
	}
	if m.entries == nil {
		m.entries = make(map[K]*linkedEntry[V])
	}
	m.seq++
	m.entries[key] = &linkedEntry[V]{seq: m.seq, value: value}
	m.order.Add(m.seq, key)
}

func (m *LinkedMap[K, V]) Remove(key K) (V, bool) {
	e, ok := m.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	delete(m.entries, key)
	m.order.Remove(e.seq)
	return e.value, true
}

// Last returns the newest entry.
func (m *LinkedMap[K, V]) Last() (K, V, bool) {
	_, key, ok := m.order.Max()
	if !ok {
		var zero V
		return key, zero, false
	}
	return key, m.entries[key].value, true
}

func (m *LinkedMap[K, V]) PopLast() (K, V, bool) {
	_, key, ok := m.order.PopMax()
	if !ok {
		var zero V
		return key, zero, false
	}
	e := m.entries[key]
	delete(m.entries, key)
	return key, e.value, true
}

func (m *LinkedMap[K, V]) Clear() {
	*m = LinkedMap[K, V]{}
}

func (m *LinkedMap[K, V]) Copy() *LinkedMap[K, V] {
	result := &LinkedMap[K, V]{
		entries: make(map[K]*linkedEntry[V], len(m.entries)),
		order:   *m.order.Copy(),
		seq:     m.seq,
	}
	for k, e := range m.entries {
		result.entries[k] = &linkedEntry[V]{seq: e.seq, value: e.value}
	}
	return result
}

func (m *LinkedMap[K, V]) Keys() List[K] {
	result := make(List[K], 0, m.Len())
	m.ScanKV(func(k K, _ V) { result.Add(k) })
	return result
}

func (m *LinkedMap[K, V]) Values() List[V] {
	result := make(List[V], 0, m.Len())
	m.ScanKV(func(_ K, v V) { result.Add(v) })
	return result
}
