package container

var _ = Iterator[struct{}]((List[struct{}])(nil))

type List[T any] []T

func NewList[T any](args ...T) List[T] {
	result := make(List[T], len(args))
	copy(result, args)
	return result
}

func (list List[T]) ScanIf(fn func(elem T) bool) {
	for _, v := range list {
		if !fn(v) {
			break
		}
	}
}

func (list List[T]) Scan(fn func(elem T)) {
	for _, v := range list {
		fn(v)
	}
}

func (list List[T]) Len() int {
	return len(list)
}

func (list List[T]) IsEmpty() bool {
	return list.Len() == 0
}

func (list List[T]) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list List[T]) Copy() List[T] {
	newList := make(List[T], list.Len())
	copy(newList, list)
	return newList
}

func (list *List[T]) Add(elem T) {
	*list = append(*list, elem)
}

func (list *List[T]) Clear() {
	*list = (*list)[:0]
}

// Reverse reverses the list in place.
func (list List[T]) Reverse() {
	for i, j := 0, list.Len()-1; i < j; i, j = i+1, j-1 {
		list.Swap(i, j)
	}
}

func (list List[T]) Reversed() List[T] {
	result := list.Copy()
	result.Reverse()
	return result
}

// Tail returns the last n elements, or the whole list when n exceeds its length.
func (list List[T]) Tail(n int) List[T] {
	if n >= list.Len() {
		return list
	}
	return list[list.Len()-n:]
}
