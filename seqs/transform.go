package seqs

import (
	"fmt"
	"slices"

	"basekit/validate"
)

type zipping[L, R, O any] struct {
	left     Sequence[L]
	right    Sequence[R]
	combiner func(L, R) O
	done     bool
}

// Zip pairs elements of left and right positionally and emits combiner(l, r).
// Each pull takes one element from left and, only if that succeeded, one from
// right. The result ends as soon as either side is exhausted; a left element
// that found no partner is discarded.
func Zip[L, R, O any](left Sequence[L], right Sequence[R], combiner func(L, R) O) Sequence[O] {
	validate.NotNil("seqs.Zip", "left", left)
	validate.NotNil("seqs.Zip", "right", right)
	validate.NotNil("seqs.Zip", "combiner", combiner)
	return &zipping[L, R, O]{left: left, right: right, combiner: combiner}
}

func (z *zipping[L, R, O]) Next() (o O, ok bool) {
	if z.done {
		return o, false
	}
	l, ok := z.left.Next()
	if !ok {
		z.Stop()
		return o, false
	}
	r, ok := z.right.Next()
	if !ok {
		z.Stop()
		return o, false
	}
	return z.combiner(l, r), true
}

func (z *zipping[L, R, O]) Traits() Traits {
	return derived(z.left.Traits().Ordered && z.right.Traits().Ordered)
}

func (z *zipping[L, R, O]) Stop() {
	if z.done {
		return
	}
	z.done = true
	z.left.Stop()
	z.right.Stop()
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// ZipPairs is Zip with a Pair combiner.
func ZipPairs[T1, T2 any](left Sequence[T1], right Sequence[T2]) Sequence[Pair[T1, T2]] {
	return Zip(left, right, func(v1 T1, v2 T2) Pair[T1, T2] {
		return Pair[T1, T2]{V1: v1, V2: v2}
	})
}

// Indexed is a value tagged with its position in a sequence. The index is
// fixed at creation; the value may be replaced.
type Indexed[T any] struct {
	index uint64
	Value T
}

func NewIndexed[T any](index uint64, value T) Indexed[T] {
	return Indexed[T]{index: index, Value: value}
}

func (i Indexed[T]) Index() uint64 {
	return i.index
}

// SetValue replaces the value and returns the previous one.
func (i *Indexed[T]) SetValue(v T) (old T) {
	old, i.Value = i.Value, v
	return old
}

func (i Indexed[T]) String() string {
	return fmt.Sprintf("%d:%v", i.index, i.Value)
}

// ZipWithIndex tags each element of src with its zero-based position.
func ZipWithIndex[T any](src Sequence[T]) Sequence[Indexed[T]] {
	validate.NotNil("seqs.ZipWithIndex", "source", src)
	return Zip(Indices(), src, NewIndexed[T])
}

type concatenation[T any] struct {
	sources []Sequence[T]
	pos     int
}

// Concat emits every element of each source in turn.
func Concat[T any](sources ...Sequence[T]) Sequence[T] {
	validate.NoNils("seqs.Concat", "sources", sources)
	return &concatenation[T]{sources: slices.Clone(sources)}
}

func (c *concatenation[T]) Next() (v T, ok bool) {
	for c.pos < len(c.sources) {
		if v, ok = c.sources[c.pos].Next(); ok {
			return v, true
		}
		c.sources[c.pos].Stop()
		c.pos++
	}
	return v, false
}

func (c *concatenation[T]) Traits() Traits {
	return derived(allOrdered(c.sources[c.pos:]))
}

func (c *concatenation[T]) Stop() {
	stopAll(c.sources[c.pos:])
	c.pos = len(c.sources)
}
