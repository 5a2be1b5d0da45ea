package seq

import (
	"errors"
)

// ErrZeroStep is reported by Range when the step is zero, which would never
// make progress toward stop.
var ErrZeroStep = errors.New("seq: zero step")

// Range returns the integers from start up to, but not including, stop,
// advancing by step. A negative step counts down toward stop.
func Range(start, stop, step int) Seq[int] {
	if step == 0 {
		return &Func[int]{Advance: func() (int, bool, error) {
			return 0, false, ErrZeroStep
		}}
	}
	next := start
	return &Func[int]{Advance: func() (int, bool, error) {
		if step > 0 && next >= stop || step < 0 && next <= stop {
			return 0, false, nil
		}
		v := next
		next += step
		return v, true, nil
	}}
}

// Count returns the unbounded sequence from, from+1, from+2, and so on.
func Count(from int) Seq[int] {
	next := from
	return &Func[int]{Advance: func() (int, bool, error) {
		v := next
		next++
		return v, true, nil
	}}
}

// Filter returns the elements of s for which keep is true.
func Filter[T any](s Seq[T], keep func(T) bool) Seq[T] {
	return &Func[T]{Advance: func() (T, bool, error) {
		for s.Next() {
			if v := s.Value(); keep(v) {
				return v, true, nil
			}
		}
		var zero T
		return zero, false, s.Err()
	}}
}

// Map returns the elements of s transformed by f.
func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	return &Func[U]{Advance: func() (U, bool, error) {
		if s.Next() {
			return f(s.Value()), true, nil
		}
		var zero U
		return zero, false, s.Err()
	}}
}

// Take returns at most the first n elements of s. It does not release the
// rest of s; a caller abandoning a generator-backed sequence mid-pass should
// still stop it.
func Take[T any](s Seq[T], n int) Seq[T] {
	remaining := n
	return &Func[T]{Advance: func() (T, bool, error) {
		if remaining > 0 && s.Next() {
			remaining--
			return s.Value(), true, nil
		}
		var zero T
		if remaining > 0 {
			return zero, false, s.Err()
		}
		return zero, false, nil
	}}
}

// Collect drains s into a slice. It returns the elements produced before the
// failure, if there was one.
func Collect[T any](s Seq[T]) ([]T, error) {
	var slice []T
	for s.Next() {
		slice = append(slice, s.Value())
	}
	return slice, s.Err()
}

// CollectMap drains a sequence of pairs into a map.
func CollectMap[K comparable, V any](s Seq[Pair[K, V]]) (map[K]V, error) {
	m := make(map[K]V)
	for s.Next() {
		p := s.Value()
		m[p.Key] = p.Value
	}
	return m, s.Err()
}
