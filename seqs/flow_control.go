package seqs

import "basekit/validate"

type takingWhile[T any] struct {
	src  Sequence[T]
	cond func(T) bool
	done bool
}

// TakeWhile passes elements of src through as long as cond holds. The first
// element failing cond is consumed but not emitted, and the result is then
// exhausted without pulling src again.
func TakeWhile[T any](src Sequence[T], cond func(T) bool) Sequence[T] {
	validate.NotNil("seqs.TakeWhile", "source", src)
	validate.NotNil("seqs.TakeWhile", "cond", cond)
	return &takingWhile[T]{src: src, cond: cond}
}

// TakeUntil passes elements of src through until cond holds for one of them;
// that element is dropped and the result ends.
func TakeUntil[T any](src Sequence[T], cond func(T) bool) Sequence[T] {
	validate.NotNil("seqs.TakeUntil", "source", src)
	validate.NotNil("seqs.TakeUntil", "cond", cond)
	return &takingWhile[T]{src: src, cond: not(cond)}
}

func (t *takingWhile[T]) Next() (v T, ok bool) {
	if t.done {
		return v, false
	}
	v, ok = t.src.Next()
	if !ok || !t.cond(v) {
		t.Stop()
		var zero T
		return zero, false
	}
	return v, true
}

func (t *takingWhile[T]) Traits() Traits {
	return derived(t.src.Traits().Ordered)
}

func (t *takingWhile[T]) Stop() {
	if t.done {
		return
	}
	t.done = true
	t.src.Stop()
}

type skippingUntil[T any] struct {
	src   Sequence[T]
	cond  func(T) bool
	found bool
	done  bool
}

// SkipUntil discards elements of src until cond holds for one, emits that
// element and passes everything after it through without evaluating cond again.
// If src ends first the result is empty.
func SkipUntil[T any](src Sequence[T], cond func(T) bool) Sequence[T] {
	validate.NotNil("seqs.SkipUntil", "source", src)
	validate.NotNil("seqs.SkipUntil", "cond", cond)
	return &skippingUntil[T]{src: src, cond: cond}
}

// SkipWhile discards elements of src while cond holds, then passes the rest through.
func SkipWhile[T any](src Sequence[T], cond func(T) bool) Sequence[T] {
	validate.NotNil("seqs.SkipWhile", "source", src)
	validate.NotNil("seqs.SkipWhile", "cond", cond)
	return &skippingUntil[T]{src: src, cond: not(cond)}
}

func (s *skippingUntil[T]) Next() (v T, ok bool) {
	if s.done {
		return v, false
	}
	for {
		v, ok = s.src.Next()
		if !ok {
			s.Stop()
			return v, false
		}
		if s.found {
			return v, true
		}
		if s.cond(v) {
			s.found = true
			s.cond = nil
			return v, true
		}
	}
}

func (s *skippingUntil[T]) Traits() Traits {
	return derived(s.src.Traits().Ordered)
}

func (s *skippingUntil[T]) Stop() {
	if s.done {
		return
	}
	s.done = true
	s.src.Stop()
}

func not[T any](cond func(T) bool) func(T) bool {
	return func(v T) bool { return !cond(v) }
}

type limited[T any] struct {
	src       Sequence[T]
	remaining int
	done      bool
}

// Take passes through at most n elements of src. n <= 0 yields nothing.
func Take[T any](src Sequence[T], n int) Sequence[T] {
	validate.NotNil("seqs.Take", "source", src)
	return &limited[T]{src: src, remaining: n}
}

func (l *limited[T]) Next() (v T, ok bool) {
	if l.done {
		return v, false
	}
	if l.remaining <= 0 {
		l.Stop()
		return v, false
	}
	if v, ok = l.src.Next(); !ok {
		l.Stop()
		return v, false
	}
	l.remaining--
	return v, true
}

func (l *limited[T]) Traits() Traits {
	return derived(l.src.Traits().Ordered)
}

func (l *limited[T]) Stop() {
	if l.done {
		return
	}
	l.done = true
	l.src.Stop()
}

type skipping[T any] struct {
	src  Sequence[T]
	skip int
}

// Skip discards the first n elements of src and passes the rest through.
func Skip[T any](src Sequence[T], n int) Sequence[T] {
	validate.NotNil("seqs.Skip", "source", src)
	return &skipping[T]{src: src, skip: n}
}

func (s *skipping[T]) Next() (T, bool) {
	for ; s.skip > 0; s.skip-- {
		if _, ok := s.src.Next(); !ok {
			s.skip = 0
			var zero T
			return zero, false
		}
	}
	return s.src.Next()
}

func (s *skipping[T]) Traits() Traits {
	return derived(s.src.Traits().Ordered)
}

func (s *skipping[T]) Stop() {
	s.skip = 0
	s.src.Stop()
}
