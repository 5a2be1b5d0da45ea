// Package seq provides lazy, single-pass sequences, either built from plain
// advance closures or backed by resumable computations from the generator
// package. Elements are computed on demand: no element exists before the
// Next call that asks for it, so unbounded sequences are legal.
package seq

import (
	"github.com/yieldstep/generator"
)

// Seq is a pull-based sequence of values of type T.
//
// A sequence is single-pass: once Next has returned false it keeps returning
// false, and the sequence cannot be rewound. Err reports the failure that
// ended the sequence, if any; it is meaningful once Next has returned false.
type Seq[T any] interface {
	Next() bool
	Value() T
	Err() error
}

// Func is a Seq driven by a single advance closure, the explicit state
// machine shape of a sequence: all state lives in the closure, no goroutine
// is involved. Advance returns the next value, whether one was produced, and
// the error that ends the sequence.
type Func[T any] struct {
	Advance func() (T, bool, error)

	value T
	err   error
	done  bool
}

func (f *Func[T]) Next() bool {
	if f.done || f.Advance == nil {
		return false
	}
	value, ok, err := f.Advance()
	if err != nil {
		f.done = true
		f.err = err
		return false
	}
	if !ok {
		f.done = true
		return false
	}
	f.value = value
	return true
}

func (f *Func[T]) Value() T { return f.value }

func (f *Func[T]) Err() error { return f.err }

// Gen is a Seq backed by a resumable computation. It is created by Generate.
type Gen[T any] struct {
	g     generator.Generator[T, struct{}]
	value T
	err   error
}

// Generate returns a lazy sequence produced by body: each value passed to
// yield becomes one element. The body only runs while a Next call is in
// flight; each yield suspends it until the element after that is requested.
//
// A sequence abandoned before its body returned should be released with Stop.
func Generate[T any](body func(yield func(T))) *Gen[T] {
	s := &Gen[T]{}
	if body == nil {
		s.err = generator.ErrNilBody
		return s
	}
	s.g, _ = generator.New(func(c *generator.Context[T, struct{}]) T {
		body(func(v T) { c.Yield(v) })
		var zero T
		return zero
	})
	return s
}

func (s *Gen[T]) Next() bool {
	if s.err != nil {
		return false
	}
	step, err := s.g.Resume(struct{}{})
	if err != nil {
		s.err = err
		return false
	}
	if step.Done {
		return false
	}
	s.value = step.Value
	return true
}

func (s *Gen[T]) Value() T { return s.value }

func (s *Gen[T]) Err() error { return s.err }

// Stop interrupts the underlying computation, running its pending defers.
// It is idempotent and safe to call whether or not the sequence is exhausted.
func (s *Gen[T]) Stop() {
	if s.err == nil {
		s.g.Stop()
	}
}
