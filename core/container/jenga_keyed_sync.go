package container

import (
	"sync"
)

var _ KeyedStack[string, int] = (*SyncKeyedJenga[string, int])(nil)

// SyncKeyedJenga guards a KeyedJenga with a mutex, one critical section per
// call. See SyncJenga for the limits of that guarantee. The zero value guards
// an empty KeyedJenga.
type SyncKeyedJenga[K comparable, V any] struct {
	lock sync.Mutex
	base *KeyedJenga[K, V]
}

func NewSyncKeyedJenga[K comparable, V any](opts ...Option) *SyncKeyedJenga[K, V] {
	return &SyncKeyedJenga[K, V]{base: NewKeyedJenga[K, V](opts...)}
}

// SynchronizedKeyed wraps j. j must not be used directly afterwards.
func SynchronizedKeyed[K comparable, V any](j *KeyedJenga[K, V]) *SyncKeyedJenga[K, V] {
	return &SyncKeyedJenga[K, V]{base: j}
}

// UnsynchronizedKeyed returns a deep copy of the guarded KeyedJenga.
func UnsynchronizedKeyed[K comparable, V any](ss *SyncKeyedJenga[K, V]) *KeyedJenga[K, V] {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Duplicate()
}

// inner must be called with the lock held.
func (ss *SyncKeyedJenga[K, V]) inner() *KeyedJenga[K, V] {
	if ss.base == nil {
		ss.base = &KeyedJenga[K, V]{}
	}
	return ss.base
}

func (ss *SyncKeyedJenga[K, V]) IsSynchronized() bool {
	return true
}

func (ss *SyncKeyedJenga[K, V]) duplicate() *SyncKeyedJenga[K, V] {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return &SyncKeyedJenga[K, V]{base: ss.inner().Duplicate()}
}

func (ss *SyncKeyedJenga[K, V]) Duplicate() *SyncKeyedJenga[K, V] {
	return ss.duplicate()
}

func (ss *SyncKeyedJenga[K, V]) Clone() *SyncKeyedJenga[K, V] {
	return ss.duplicate()
}

func (ss *SyncKeyedJenga[K, V]) Len() int {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Len()
}

func (ss *SyncKeyedJenga[K, V]) IsEmpty() bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().IsEmpty()
}

func (ss *SyncKeyedJenga[K, V]) Push(key K, value V) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.inner().Push(key, value)
}

func (ss *SyncKeyedJenga[K, V]) PushEntry(entry Pair[K, V]) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.inner().PushEntry(entry)
}

func (ss *SyncKeyedJenga[K, V]) Pop() (V, error) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Pop()
}

func (ss *SyncKeyedJenga[K, V]) Pipop() (Pair[V, bool], error) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Pipop()
}

func (ss *SyncKeyedJenga[K, V]) PopRange(n int) ([]V, error) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().PopRange(n)
}

func (ss *SyncKeyedJenga[K, V]) PipopRange(n int) ([]Pair[V, bool], error) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().PipopRange(n)
}

func (ss *SyncKeyedJenga[K, V]) Peek() (V, error) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Peek()
}

func (ss *SyncKeyedJenga[K, V]) PeekRange(n int) ([]V, error) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().PeekRange(n)
}

func (ss *SyncKeyedJenga[K, V]) Enter(key K, value V) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.inner().Enter(key, value)
}

func (ss *SyncKeyedJenga[K, V]) EnterAppend(key K, value V, appendKey K) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().EnterAppend(key, value, appendKey)
}

func (ss *SyncKeyedJenga[K, V]) ExitKey(key K) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().ExitKey(key)
}

func (ss *SyncKeyedJenga[K, V]) ExitValue(value V) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().ExitValue(value)
}

func (ss *SyncKeyedJenga[K, V]) Get(key K) (V, bool) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Get(key)
}

func (ss *SyncKeyedJenga[K, V]) Set(key K, value V) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.inner().Set(key, value)
}

func (ss *SyncKeyedJenga[K, V]) Contains(value V) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Contains(value)
}

func (ss *SyncKeyedJenga[K, V]) ContainsValue(value V) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().ContainsValue(value)
}

func (ss *SyncKeyedJenga[K, V]) ContainsKey(key K) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().ContainsKey(key)
}

func (ss *SyncKeyedJenga[K, V]) ContainsEntry(key K, value V) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().ContainsEntry(key, value)
}

func (ss *SyncKeyedJenga[K, V]) CopyTo(dst []Pair[K, V], index int) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().CopyTo(dst, index)
}

func (ss *SyncKeyedJenga[K, V]) CopyValuesTo(dst []V, index int) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().CopyValuesTo(dst, index)
}

func (ss *SyncKeyedJenga[K, V]) Add(key K, value V) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Add(key, value)
}

func (ss *SyncKeyedJenga[K, V]) Remove(key K) (bool, error) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Remove(key)
}

func (ss *SyncKeyedJenga[K, V]) Clear() {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.inner().Clear()
}

func (ss *SyncKeyedJenga[K, V]) Keys() List[K] {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Keys()
}

func (ss *SyncKeyedJenga[K, V]) Values() List[V] {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Values()
}

func (ss *SyncKeyedJenga[K, V]) Entries() List[Pair[K, V]] {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Entries()
}

func (ss *SyncKeyedJenga[K, V]) ScanIf(fn func(entry Pair[K, V]) bool) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.inner().ScanIf(fn)
}

func (ss *SyncKeyedJenga[K, V]) Scan(fn func(entry Pair[K, V])) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.inner().Scan(fn)
}

func (ss *SyncKeyedJenga[K, V]) ScanKV(fn func(key K, value V)) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.inner().ScanKV(fn)
}
