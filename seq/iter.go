package seq

import (
	"iter"
)

// Values returns an iterator over the elements of s, for use with a
// for-range statement. Breaking out of the range leaves s where it was;
// check s.Err after the range when the sequence can fail.
func Values[T any](s Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s.Next() {
			if !yield(s.Value()) {
				return
			}
		}
	}
}

// FromIter adapts a standard iterator into a Seq.
func FromIter[T any](it iter.Seq[T]) Seq[T] {
	next, stop := iter.Pull(it)
	return &Func[T]{Advance: func() (T, bool, error) {
		v, ok := next()
		if !ok {
			stop()
		}
		return v, ok, nil
	}}
}
