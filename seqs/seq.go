package seqs

import "basekit/validate"

type filtered[T any] struct {
	src       Sequence[T]
	predicate func(T) bool
}

// Filter passes through only the elements of src that satisfy predicate.
func Filter[T any](src Sequence[T], predicate func(T) bool) Sequence[T] {
	validate.NotNil("seqs.Filter", "source", src)
	validate.NotNil("seqs.Filter", "predicate", predicate)
	return &filtered[T]{src: src, predicate: predicate}
}

// Reject drops the elements of src that satisfy predicate.
func Reject[T any](src Sequence[T], predicate func(T) bool) Sequence[T] {
	validate.NotNil("seqs.Reject", "source", src)
	validate.NotNil("seqs.Reject", "predicate", predicate)
	return &filtered[T]{src: src, predicate: not(predicate)}
}

func (f *filtered[T]) Next() (T, bool) {
	for {
		v, ok := f.src.Next()
		if !ok || f.predicate(v) {
			return v, ok
		}
	}
}

func (f *filtered[T]) Traits() Traits {
	return derived(f.src.Traits().Ordered)
}

func (f *filtered[T]) Stop() {
	f.src.Stop()
}

type mapped[T, R any] struct {
	src       Sequence[T]
	transform func(T) R
}

// Map applies transform to each element of src.
func Map[T, R any](src Sequence[T], transform func(T) R) Sequence[R] {
	validate.NotNil("seqs.Map", "source", src)
	validate.NotNil("seqs.Map", "transform", transform)
	return &mapped[T, R]{src: src, transform: transform}
}

func (m *mapped[T, R]) Next() (r R, ok bool) {
	v, ok := m.src.Next()
	if !ok {
		return r, false
	}
	return m.transform(v), true
}

func (m *mapped[T, R]) Traits() Traits {
	return derived(m.src.Traits().Ordered)
}

func (m *mapped[T, R]) Stop() {
	m.src.Stop()
}

// Peek calls action on each element as it is pulled through.
// It is useful for debugging (e.g., logging) or side effects.
func Peek[T any](src Sequence[T], action func(T)) Sequence[T] {
	validate.NotNil("seqs.Peek", "source", src)
	validate.NotNil("seqs.Peek", "action", action)
	return Map(src, func(v T) T {
		action(v)
		return v
	})
}
