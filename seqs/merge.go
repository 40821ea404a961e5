package seqs

import (
	"slices"

	"basekit/validate"
)

type merging[T, R any] struct {
	active []Sequence[T]
	unit   func() R
	merge  func(acc R, v T) R
	round  []T
	done   bool
}

// Merge combines sources in rounds. A round pulls one element from every source
// that is not yet exhausted, in declaration order, then folds the values it got
// into a fresh unit() with merge, in the same order, and emits the result.
// Exhausted sources drop out of later rounds; the result is exhausted after a
// round in which no source produced a value.
func Merge[T, R any](unit func() R, merge func(acc R, v T) R, sources ...Sequence[T]) Sequence[R] {
	return newMerging("seqs.Merge", unit, merge, sources)
}

// MergeToList is Merge with an empty slice as the unit and append as the
// merge function: each round becomes one slice.
//
//	seqs.MergeToList(seqs.Of(1, 2), seqs.Of(3), seqs.Of(4, 5, 6)) // [1 3 4] [2 5] [6]
func MergeToList[T any](sources ...Sequence[T]) Sequence[[]T] {
	n := len(sources)
	return newMerging("seqs.MergeToList",
		func() []T { return make([]T, 0, n) },
		func(acc []T, v T) []T { return append(acc, v) },
		sources)
}

func newMerging[T, R any](op string, unit func() R, merge func(R, T) R, sources []Sequence[T]) *merging[T, R] {
	validate.NotNil(op, "unit", unit)
	validate.NotNil(op, "merge", merge)
	validate.NoNils(op, "sources", sources)
	return &merging[T, R]{
		active: slices.Clone(sources),
		unit:   unit,
		merge:  merge,
		round:  make([]T, 0, len(sources)),
	}
}

func (m *merging[T, R]) Next() (acc R, ok bool) {
	if m.done {
		return acc, false
	}

	// pull one element per source, retiring the exhausted ones in place
	n := 0
	for _, src := range m.active {
		v, ok := src.Next()
		if !ok {
			src.Stop()
			continue
		}
		m.active[n] = src
		n++
		m.round = append(m.round, v)
	}
	clear(m.active[n:])
	m.active = m.active[:n]

	if len(m.round) == 0 {
		m.Stop()
		return acc, false
	}
	acc = m.unit()
	for _, v := range m.round {
		acc = m.merge(acc, v)
	}
	clear(m.round)
	m.round = m.round[:0]
	return acc, true
}

func (m *merging[T, R]) Traits() Traits {
	return derived(allOrdered(m.active))
}

func (m *merging[T, R]) Stop() {
	if m.done {
		return
	}
	m.done = true
	stopAll(m.active)
	m.active = nil
}
