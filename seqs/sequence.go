package seqs

import (
	"iter"

	"basekit/validate"
)

// Sequence is a single-pass, pull-based cursor over elements of type T.
//
// Once Next reports false the sequence stays exhausted. A sequence handed to a
// combinator belongs to that combinator: nothing else may pull from it or stop
// it afterwards. Sequences are not safe for concurrent use.
type Sequence[T any] interface {
	// Next returns the next element, or false once the sequence is exhausted.
	Next() (T, bool)
	// Traits reports what the sequence knows about its remaining elements.
	Traits() Traits
	// Stop releases the sequence and every source it owns. After Stop, Next
	// reports false. Stop is idempotent.
	Stop()
}

// Traits is the advisory capability set of a Sequence.
type Traits struct {
	// Size is the exact number of remaining elements. Only meaningful when Sized.
	Size       int
	Sized      bool
	Ordered    bool
	Splittable bool
}

// derived is the Traits value every combinator reports: unknown size, never
// splittable.
func derived(ordered bool) Traits {
	return Traits{Ordered: ordered}
}

func allOrdered[T any](srcs []Sequence[T]) bool {
	for _, s := range srcs {
		if !s.Traits().Ordered {
			return false
		}
	}
	return true
}

func stopAll[T any](srcs []Sequence[T]) {
	for _, s := range srcs {
		s.Stop()
	}
}

// -------------------------------------------------------
// Sources
// -------------------------------------------------------

type sliceSequence[T any] struct {
	values []T
	pos    int
}

// FromSlice returns a sized Sequence over values. The slice is read, never written.
func FromSlice[T any](values []T) Sequence[T] {
	return &sliceSequence[T]{values: values}
}

// Of returns a sized Sequence over its arguments.
func Of[T any](values ...T) Sequence[T] {
	return FromSlice(values)
}

// Empty returns an exhausted Sequence.
func Empty[T any]() Sequence[T] {
	return FromSlice[T](nil)
}

func (s *sliceSequence[T]) Next() (v T, ok bool) {
	if s.pos >= len(s.values) {
		return v, false
	}
	v = s.values[s.pos]
	s.pos++
	return v, true
}

func (s *sliceSequence[T]) Traits() Traits {
	return Traits{Size: len(s.values) - s.pos, Sized: true, Ordered: true}
}

func (s *sliceSequence[T]) Stop() {
	s.pos = len(s.values)
}

type pulledSequence[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// FromSeq adapts a push-style iterator into a Sequence using iter.Pull.
// Nothing is read from seq until the first call to Next. Callers that abandon
// the Sequence before exhaustion must call Stop to release the iterator.
func FromSeq[T any](seq iter.Seq[T]) Sequence[T] {
	validate.NotNil("seqs.FromSeq", "seq", seq)
	next, stop := iter.Pull(seq)
	return &pulledSequence[T]{next: next, stop: stop}
}

func (p *pulledSequence[T]) Next() (v T, ok bool) {
	if p.done {
		return v, false
	}
	if v, ok = p.next(); !ok {
		p.Stop()
	}
	return v, ok
}

func (p *pulledSequence[T]) Traits() Traits {
	return Traits{Ordered: true}
}

func (p *pulledSequence[T]) Stop() {
	if p.done {
		return
	}
	p.done = true
	p.stop()
}

// -------------------------------------------------------
// range-over-func bridge
// -------------------------------------------------------

// Values returns an iterator that drains s. The iterator is single-use: s is
// stopped when the loop ends, whether by exhaustion or by break.
func Values[T any](s Sequence[T]) iter.Seq[T] {
	validate.NotNil("seqs.Values", "source", s)
	return func(yield func(T) bool) {
		defer s.Stop()
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
