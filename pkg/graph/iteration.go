package graph

import "iter"

// Iteration is a lazy, finite, single-pass sequence of values.
//
// Elements are produced on demand. Once the sequence is exhausted it stays
// exhausted: Next keeps returning the zero value and false. An Iteration is not
// safe for concurrent use.
type Iteration[T any] struct {
	next func() (T, bool)
}

// NewIteration wraps a generator function. next must return false once it has
// no more elements; it is not called again after that.
func NewIteration[T any](next func() (T, bool)) *Iteration[T] {
	return &Iteration[T]{next: next}
}

// FromSlice returns an Iteration over the elements of s. The slice is read
// lazily, so it must not be modified while the Iteration is in use.
func FromSlice[T any](s []T) *Iteration[T] {
	i := 0
	return NewIteration(func() (T, bool) {
		if i >= len(s) {
			var zero T
			return zero, false
		}
		i++
		return s[i-1], true
	})
}

// Empty returns an Iteration with no elements.
func Empty[T any]() *Iteration[T] {
	return &Iteration[T]{}
}

// Next returns the next element and true, or the zero value and false when
// the sequence is exhausted.
func (it *Iteration[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	v, ok := it.next()
	if !ok {
		it.next = nil
	}
	return v, ok
}

// All returns a range-over-func sequence that consumes the remaining elements.
// Breaking out of the loop early leaves the rest of the Iteration unconsumed.
func (it *Iteration[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the remaining elements into a slice.
// It returns an empty, non-nil slice for an exhausted Iteration.
func (it *Iteration[T]) Collect() []T {
	out := []T{}
	for v := range it.All() {
		out = append(out, v)
	}
	return out
}

// concat chains iterations, draining each in turn.
func concat[T any](parts ...*Iteration[T]) *Iteration[T] {
	return NewIteration(func() (T, bool) {
		for len(parts) > 0 {
			if v, ok := parts[0].Next(); ok {
				return v, true
			}
			parts = parts[1:]
		}
		var zero T
		return zero, false
	})
}

// single yields v once when present is true.
func single[T any](v T, present bool) *Iteration[T] {
	if !present {
		return Empty[T]()
	}
	return FromSlice([]T{v})
}
