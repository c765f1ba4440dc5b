package constraints

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Float interface {
	~float32 | ~float64
}

// Ordered is the key set accepted by the btree backed containers.
type Ordered interface {
	Signed | Unsigned | Float | ~string
}
