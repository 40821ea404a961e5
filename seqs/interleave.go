package seqs

import (
	"fmt"
	"slices"

	"basekit/validate"
)

type interleaving[T any] struct {
	sources  []Sequence[T]
	slots    []Slot[T]
	selector Selector[T]
	filled   int // number of non-empty slots
	primed   bool
	done     bool
}

// Interleave merges sources element by element. Each source has one buffered
// slot, filled on the first pull. On every pull the selector picks a
// non-empty slot, its value is emitted and only that slot is refilled from its
// own source. A source that runs dry leaves its slot empty for good; the
// result is exhausted once every slot is empty. The selector is never asked
// to choose among empty slots.
//
//	seqs.Interleave(seqs.RoundRobin[int](), seqs.Of(1, 3, 5), seqs.Of(2, 4, 6)) // 1 2 3 4 5 6
//	seqs.Interleave(seqs.TakeMin[int](), a, b)                                   // sorted merge of sorted a and b
func Interleave[T any](selector Selector[T], sources ...Sequence[T]) Sequence[T] {
	validate.NotNil("seqs.Interleave", "selector", selector)
	validate.NoNils("seqs.Interleave", "sources", sources)
	return &interleaving[T]{
		sources:  slices.Clone(sources),
		slots:    make([]Slot[T], len(sources)),
		selector: selector,
	}
}

func (m *interleaving[T]) Next() (v T, ok bool) {
	if m.done {
		return v, false
	}
	if !m.primed {
		m.primed = true
		for i := range m.sources {
			m.refill(i)
		}
	}
	if m.filled == 0 {
		m.Stop()
		return v, false
	}

	i, ok := m.selector.Select(m.slots)
	if !ok {
		m.Stop()
		return v, false
	}
	if i < 0 || i >= len(m.slots) || !m.slots[i].OK {
		panic(fmt.Sprintf("seqs.Interleave: selector chose empty slot %d", i))
	}
	v = m.slots[i].Value
	m.refill(i)
	return v, true
}

func (m *interleaving[T]) refill(i int) {
	had := m.slots[i].OK
	v, ok := m.sources[i].Next()
	if ok {
		m.slots[i] = Filled(v)
	} else {
		m.slots[i] = Slot[T]{}
		m.sources[i].Stop()
	}
	switch {
	case had && !ok:
		m.filled--
	case !had && ok:
		m.filled++
	}
}

func (m *interleaving[T]) Traits() Traits {
	return derived(allOrdered(m.sources))
}

func (m *interleaving[T]) Stop() {
	if m.done {
		return
	}
	m.done = true
	clear(m.slots)
	stopAll(m.sources)
}
