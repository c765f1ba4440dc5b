package container

import (
	"sync"
)

var _ Stack[int] = (*SyncJenga[int])(nil)

// SyncJenga guards a Jenga with a mutex. Every method is its own critical
// section: a sequence such as ContainsKey followed by Enter is not atomic.
// Scan callbacks run with the lock held and must not call back into the
// SyncJenga. The zero value guards an empty Jenga.
type SyncJenga[T any] struct {
	lock sync.Mutex
	base *Jenga[T]
}

func NewSyncJenga[T any](opts ...Option) *SyncJenga[T] {
	return &SyncJenga[T]{base: NewJenga[T](opts...)}
}

// Synchronized wraps j. j must not be used directly afterwards.
func Synchronized[T any](j *Jenga[T]) *SyncJenga[T] {
	return &SyncJenga[T]{base: j}
}

// Unsynchronized returns a deep copy of the guarded Jenga.
func Unsynchronized[T any](ss *SyncJenga[T]) *Jenga[T] {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Duplicate()
}

// inner must be called with the lock held.
func (ss *SyncJenga[T]) inner() *Jenga[T] {
	if ss.base == nil {
		ss.base = &Jenga[T]{}
	}
	return ss.base
}

func (ss *SyncJenga[T]) IsSynchronized() bool {
	return true
}

func (ss *SyncJenga[T]) duplicate() *SyncJenga[T] {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return &SyncJenga[T]{base: ss.inner().Duplicate()}
}

// Duplicate returns a new SyncJenga over a deep copy.
func (ss *SyncJenga[T]) Duplicate() *SyncJenga[T] {
	return ss.duplicate()
}

func (ss *SyncJenga[T]) Clone() *SyncJenga[T] {
	return ss.duplicate()
}

func (ss *SyncJenga[T]) Len() int {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Len()
}

func (ss *SyncJenga[T]) IsEmpty() bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().IsEmpty()
}

func (ss *SyncJenga[T]) Push(value T) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Push(value)
}

func (ss *SyncJenga[T]) PushEntry(key int64, value T) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().PushEntry(key, value)
}

func (ss *SyncJenga[T]) Pop() (T, error) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Pop()
}

func (ss *SyncJenga[T]) Pipop() (Pair[T, bool], error) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Pipop()
}

func (ss *SyncJenga[T]) PopRange(n int) ([]T, error) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().PopRange(n)
}

func (ss *SyncJenga[T]) PipopRange(n int) ([]Pair[T, bool], error) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().PipopRange(n)
}

func (ss *SyncJenga[T]) Peek() (T, bool) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Peek()
}

func (ss *SyncJenga[T]) PeekRange(n int) ([]T, error) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().PeekRange(n)
}

func (ss *SyncJenga[T]) Enter(pos int64, value T) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Enter(pos, value)
}

func (ss *SyncJenga[T]) EnterValue(value T) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().EnterValue(value)
}

func (ss *SyncJenga[T]) EnterEntry(entry Pair[int64, T]) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().EnterEntry(entry)
}

func (ss *SyncJenga[T]) ExitValue(value T) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().ExitValue(value)
}

func (ss *SyncJenga[T]) ExitAt(pos int64) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().ExitAt(pos)
}

func (ss *SyncJenga[T]) ExitPair(pos int64, value T) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().ExitPair(pos, value)
}

func (ss *SyncJenga[T]) ExitEntry(entry Pair[int64, T]) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().ExitEntry(entry)
}

func (ss *SyncJenga[T]) Get(pos int64) (T, bool) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Get(pos)
}

func (ss *SyncJenga[T]) Set(pos int64, value T) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Set(pos, value)
}

func (ss *SyncJenga[T]) Contains(value T) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Contains(value)
}

func (ss *SyncJenga[T]) ContainsValue(value T) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().ContainsValue(value)
}

func (ss *SyncJenga[T]) ContainsKey(pos int64) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().ContainsKey(pos)
}

func (ss *SyncJenga[T]) ContainsEntry(pos int64, value T) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().ContainsEntry(pos, value)
}

func (ss *SyncJenga[T]) CopyTo(dst []T, index int) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().CopyTo(dst, index)
}

func (ss *SyncJenga[T]) Add(value T) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Add(value)
}

func (ss *SyncJenga[T]) Remove(value T) (bool, error) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Remove(value)
}

func (ss *SyncJenga[T]) Clear() {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.inner().Clear()
}

func (ss *SyncJenga[T]) Keys() List[int64] {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Keys()
}

func (ss *SyncJenga[T]) Values() List[T] {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return ss.inner().Values()
}

func (ss *SyncJenga[T]) ScanIf(fn func(value T) bool) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.inner().ScanIf(fn)
}

func (ss *SyncJenga[T]) Scan(fn func(value T)) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.inner().Scan(fn)
}

func (ss *SyncJenga[T]) ScanKV(fn func(pos int64, value T)) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.inner().ScanKV(fn)
}
