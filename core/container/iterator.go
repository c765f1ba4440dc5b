package container

type Iterator[T any] interface {
	ScanIf(fn func(elem T) bool)
	Scan(fn func(elem T))
	Len() int
}

func Any[T any](iter Iterator[T], fn func(elem T) bool) bool {
	result := false
	iter.ScanIf(func(elem T) bool {
		if fn(elem) {
			result = true
			return false
		}
		return true
	})
	return result
}

func All[T any](iter Iterator[T], fn func(elem T) bool) bool {
	result := true
	iter.ScanIf(func(elem T) bool {
		if !fn(elem) {
			result = false
			return false
		}
		return true
	})
	return result
}

func Fold[T, U any](iter Iterator[T], init U, fn func(acc U, elem T) U) U {
	var acc = init
	iter.Scan(func(elem T) {
		acc = fn(acc, elem)
	})
	return acc
}

func Filter[T any](iter Iterator[T], fn func(elem T) bool) List[T] {
	list := make(List[T], 0, max(iter.Len(), 4))
	return Fold(iter, list, func(acc List[T], elem T) List[T] {
		if fn(elem) {
			acc.Add(elem)
		}
		return acc
	})
}

func ListOf[T any](iter Iterator[T]) List[T] {
	list := make(List[T], 0, max(iter.Len(), 4))
	iter.Scan(func(elem T) {
		list.Add(elem)
	})
	return list
}
