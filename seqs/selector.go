package seqs

import (
	"cmp"
	"fmt"

	"basekit/validate"
)

// Slot holds at most one buffered candidate. OK is false for an empty slot.
type Slot[T any] struct {
	Value T
	OK    bool
}

// Filled returns a non-empty slot holding v.
func Filled[T any](v T) Slot[T] {
	return Slot[T]{Value: v, OK: true}
}

// Selector picks which candidate slot a multi-source combinator consumes next.
//
// Select must return the index of a non-empty slot and true, or false when it
// declines to choose. It must not modify candidates. Selectors carry state
// between calls and belong to a single combinator.
type Selector[T any] interface {
	Select(candidates []Slot[T]) (int, bool)
}

// SelectorFunc adapts a function to the Selector interface.
type SelectorFunc[T any] func(candidates []Slot[T]) (int, bool)

func (f SelectorFunc[T]) Select(candidates []Slot[T]) (int, bool) {
	return f(candidates)
}

// RoundRobinSelector cycles through the slots, skipping empty ones.
type RoundRobinSelector[T any] struct {
	cursor int
}

// RoundRobin returns a selector that scans the slots circularly from just past
// the previously chosen one and picks the first non-empty slot. A source with
// data is never starved.
func RoundRobin[T any]() *RoundRobinSelector[T] {
	return &RoundRobinSelector[T]{}
}

func (s *RoundRobinSelector[T]) Select(candidates []Slot[T]) (int, bool) {
	n := len(candidates)
	if n == 0 {
		return -1, false
	}
	start := s.cursor % n
	for k := range n {
		i := (start + k) % n
		if candidates[i].OK {
			s.cursor = (i + 1) % n
			return i, true
		}
	}
	return -1, false
}

// CompareSelector picks the smallest candidate under its comparison function.
// Equal candidates are taken in rotation so no source wins every tie.
type CompareSelector[T any] struct {
	compare func(a, b T) int
	cursor  int
}

// TakeMin returns a selector choosing the smallest candidate in natural order.
func TakeMin[T cmp.Ordered]() *CompareSelector[T] {
	return &CompareSelector[T]{compare: cmp.Compare[T]}
}

// TakeMinFunc returns a selector choosing the smallest candidate under compare,
// which reports a negative number when a < b, zero when equal and a positive
// number when a > b.
func TakeMinFunc[T any](compare func(a, b T) int) *CompareSelector[T] {
	validate.NotNil("seqs.TakeMinFunc", "compare", compare)
	return &CompareSelector[T]{compare: compare}
}

// TakeMax returns a selector choosing the largest candidate in natural order.
func TakeMax[T cmp.Ordered]() *CompareSelector[T] {
	return &CompareSelector[T]{compare: reversed(cmp.Compare[T])}
}

// TakeMaxFunc returns a selector choosing the largest candidate under compare.
func TakeMaxFunc[T any](compare func(a, b T) int) *CompareSelector[T] {
	validate.NotNil("seqs.TakeMaxFunc", "compare", compare)
	return &CompareSelector[T]{compare: reversed(compare)}
}

func reversed[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int { return compare(b, a) }
}

// Select panics with an error wrapping ErrNoCandidate if every slot is empty.
// Callers check for that case first.
func (s *CompareSelector[T]) Select(candidates []Slot[T]) (int, bool) {
	best := -1
	for i, c := range candidates {
		if c.OK && (best < 0 || s.compare(c.Value, candidates[best].Value) < 0) {
			best = i
		}
	}
	if best < 0 {
		panic(fmt.Errorf("seqs.CompareSelector: %w", ErrNoCandidate))
	}

	// first slot equal to the minimum, scanning from the cursor
	n := len(candidates)
	start := s.cursor % n
	for k := range n {
		i := (start + k) % n
		if candidates[i].OK && s.compare(candidates[i].Value, candidates[best].Value) == 0 {
			s.cursor = (i + 1) % n
			return i, true
		}
	}
	// unreachable for a consistent comparison function
	s.cursor = (best + 1) % n
	return best, true
}
