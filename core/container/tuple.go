package container

// Data is the shared capability of the fixed arity tuples.
type Data interface {
	// Params returns a snapshot of all fields in order.
	Params() []any
	Swap() error
	Move() error
	// Nullify resets every field to its zero value.
	Nullify()
}

var (
	_ Data = (*Singleton[int])(nil)
	_ Data = (*Pair[int, int])(nil)
	_ Data = (*Triad[int, int, int])(nil)
	_ Data = (*Quadra[int, int, int, int])(nil)
)

type Singleton[T any] struct {
	Value T
}

func NewSingleton[T any](value T) Singleton[T] {
	return Singleton[T]{value}
}

func (s Singleton[T]) Params() []any {
	return []any{s.Value}
}

func (s *Singleton[T]) Swap() error {
	return unsupportedFault("singleton.swap", "odd arity")
}

func (s *Singleton[T]) Move() error {
	return unsupportedFault("singleton.move", "odd arity")
}

func (s *Singleton[T]) Nullify() {
	*s = Singleton[T]{}
}

func (s Singleton[T]) Equal(other Singleton[T]) bool {
	return deepEqual(s.Value, other.Value)
}

type Pair[T, U any] struct {
	First  T
	Second U
}

func NewPair[T, U any](first T, second U) Pair[T, U] {
	return Pair[T, U]{first, second}
}

func (p Pair[T, U]) Params() []any {
	return []any{p.First, p.Second}
}

// Swap exchanges the two fields, converting values when T and U differ.
func (p *Pair[T, U]) Swap() error {
	first, err := convert[T]("pair.swap", "Second", p.Second)
	if err != nil {
		return err
	}
	second, err := convert[U]("pair.swap", "First", p.First)
	if err != nil {
		return err
	}
	p.First, p.Second = first, second
	return nil
}

func (p *Pair[T, U]) Move() error {
	return p.Swap()
}

func (p *Pair[T, U]) Nullify() {
	*p = Pair[T, U]{}
}

func (p Pair[T, U]) Equal(other Pair[T, U]) bool {
	return deepEqual(p.First, other.First) && deepEqual(p.Second, other.Second)
}

type Triad[T, U, V any] struct {
	First  T
	Second U
	Third  V
}

func NewTriad[T, U, V any](first T, second U, third V) Triad[T, U, V] {
	return Triad[T, U, V]{first, second, third}
}

func (t Triad[T, U, V]) Params() []any {
	return []any{t.First, t.Second, t.Third}
}

func (t *Triad[T, U, V]) Swap() error {
	return unsupportedFault("triad.swap", "odd arity")
}

// Move rotates the fields right: Third becomes First.
func (t *Triad[T, U, V]) Move() error {
	first, err := convert[T]("triad.move", "Third", t.Third)
	if err != nil {
		return err
	}
	second, err := convert[U]("triad.move", "First", t.First)
	if err != nil {
		return err
	}
	third, err := convert[V]("triad.move", "Second", t.Second)
	if err != nil {
		return err
	}
	t.First, t.Second, t.Third = first, second, third
	return nil
}

func (t *Triad[T, U, V]) Nullify() {
	*t = Triad[T, U, V]{}
}

func (t Triad[T, U, V]) Equal(other Triad[T, U, V]) bool {
	return deepEqual(t.First, other.First) &&
		deepEqual(t.Second, other.Second) &&
		deepEqual(t.Third, other.Third)
}

type Quadra[T0, T1, T2, T3 any] struct {
	First  T0
	Second T1
	Third  T2
	Fourth T3
}

func NewQuadra[T0, T1, T2, T3 any](first T0, second T1, third T2, fourth T3) Quadra[T0, T1, T2, T3] {
	return Quadra[T0, T1, T2, T3]{first, second, third, fourth}
}

func (q Quadra[T0, T1, T2, T3]) Params() []any {
	return []any{q.First, q.Second, q.Third, q.Fourth}
}

// Swap exchanges the halves: (1, 2, 3, 4) becomes (3, 4, 1, 2).
func (q *Quadra[T0, T1, T2, T3]) Swap() error {
	first, err := convert[T0]("quadra.swap", "Third", q.Third)
	if err != nil {
		return err
	}
	second, err := convert[T1]("quadra.swap", "Fourth", q.Fourth)
	if err != nil {
		return err
	}
	third, err := convert[T2]("quadra.swap", "First", q.First)
	if err != nil {
		return err
	}
	fourth, err := convert[T3]("quadra.swap", "Second", q.Second)
	if err != nil {
		return err
	}
	q.First, q.Second, q.Third, q.Fourth = first, second, third, fourth
	return nil
}

// Move rotates the fields right: Fourth becomes First.
func (q *Quadra[T0, T1, T2, T3]) Move() error {
	first, err := convert[T0]("quadra.move", "Fourth", q.Fourth)
	if err != nil {
		return err
	}
	second, err := convert[T1]("quadra.move", "First", q.First)
	if err != nil {
		return err
	}
	third, err := convert[T2]("quadra.move", "Second", q.Second)
	if err != nil {
		return err
	}
	fourth, err := convert[T3]("quadra.move", "Third", q.Third)
	if err != nil {
		return err
	}
	q.First, q.Second, q.Third, q.Fourth = first, second, third, fourth
	return nil
}

func (q *Quadra[T0, T1, T2, T3]) Nullify() {
	*q = Quadra[T0, T1, T2, T3]{}
}

func (q Quadra[T0, T1, T2, T3]) Equal(other Quadra[T0, T1, T2, T3]) bool {
	return deepEqual(q.First, other.First) &&
		deepEqual(q.Second, other.Second) &&
		deepEqual(q.Third, other.Third) &&
		deepEqual(q.Fourth, other.Fourth)
}
