package seq

// sliceSeq walks a slice without copying it.
type sliceSeq[T any] struct {
	slice []T
	index int
}

// FromSlice returns a sequence over the elements of slice, in order.
func FromSlice[T any](slice []T) Seq[T] {
	return &sliceSeq[T]{slice: slice, index: -1}
}

func (s *sliceSeq[T]) Next() bool {
	if s.index < len(s.slice) {
		s.index++
	}
	return s.index < len(s.slice)
}

func (s *sliceSeq[T]) Value() T { return s.slice[s.index] }

func (s *sliceSeq[T]) Err() error { return nil }

// Pair is one key/value element produced when iterating a map.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// FromMap returns a sequence over the entries of m. The entries are
// snapshotted at call time; their order is unspecified, like a map range.
func FromMap[K comparable, V any](m map[K]V) Seq[Pair[K, V]] {
	pairs := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	return FromSlice(pairs)
}
