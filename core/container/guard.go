package container

// Checks and the displacement rule shared by Jenga and KeyedJenga.

func checkPopRange(op string, n, count int) error {
	if count < 1 {
		return emptyFault(op)
	}
	if n < 0 || n > count {
		return rangeFault(op, "range", n, count)
	}
	return nil
}

func checkCopy(op string, index, dstLen, count int) error {
	if count == 0 && index == dstLen {
		return nil
	}
	if index < 0 || index >= dstLen {
		return rangeFault(op, "index", index, dstLen)
	}
	if dstLen-index < count {
		return &Fault{
			Kind:  ErrInsufficientCapacity,
			Op:    op,
			Param: "dst",
			Value: dstLen - index,
			Limit: count,
		}
	}
	return nil
}

// displace hands the current occupant of key to relocate, then writes value
// at key. Nothing is written when relocate fails.
func displace[K comparable, V any](
	key K,
	value V,
	get func(K) (V, bool),
	set func(K, V),
	relocate func(V) error,
) error {
	if old, ok := get(key); ok {
		if err := relocate(old); err != nil {
			return err
		}
	}
	set(key, value)
	return nil
}
