package seqs

import "basekit/validate"

type aggregating[T any] struct {
	src       Sequence[T]
	sameBatch func(batch []T, next T) bool
	capHint   int
	batch     []T
	done      bool
}

// Aggregate groups consecutive elements of src into batches.
//
// sameBatch reports whether next belongs to the pending batch; it is only
// consulted when the batch is non-empty. A batch is emitted when sameBatch
// rejects an element (which then opens the next batch) or when src is
// exhausted. Empty batches are never emitted, and emitted slices are not
// touched again by the combinator.
func Aggregate[T any](src Sequence[T], sameBatch func(batch []T, next T) bool) Sequence[[]T] {
	validate.NotNil("seqs.Aggregate", "source", src)
	validate.NotNil("seqs.Aggregate", "sameBatch", sameBatch)
	return &aggregating[T]{src: src, sameBatch: sameBatch}
}

// AggregateN groups src into batches of size elements; the last batch holds
// the remainder.
func AggregateN[T any](src Sequence[T], size int) Sequence[[]T] {
	validate.NotNil("seqs.AggregateN", "source", src)
	validate.Positive("seqs.AggregateN", "size", size)
	return &aggregating[T]{
		src:       src,
		sameBatch: func(batch []T, _ T) bool { return len(batch) < size },
		capHint:   size,
	}
}

// AggregateAdjacent groups src into runs where sameBatch holds for every pair
// of neighbouring elements.
func AggregateAdjacent[T any](src Sequence[T], sameBatch func(last, next T) bool) Sequence[[]T] {
	validate.NotNil("seqs.AggregateAdjacent", "source", src)
	validate.NotNil("seqs.AggregateAdjacent", "sameBatch", sameBatch)
	return &aggregating[T]{
		src: src,
		sameBatch: func(batch []T, next T) bool {
			return sameBatch(batch[len(batch)-1], next)
		},
	}
}

// GroupRuns groups src into runs of equal adjacent elements.
func GroupRuns[T comparable](src Sequence[T]) Sequence[[]T] {
	validate.NotNil("seqs.GroupRuns", "source", src)
	return AggregateAdjacent(src, func(last, next T) bool { return last == next })
}

func (a *aggregating[T]) Next() ([]T, bool) {
	if a.done {
		return nil, false
	}
	for {
		v, ok := a.src.Next()
		if !ok {
			batch := a.batch
			a.Stop()
			return batch, len(batch) > 0
		}
		if len(a.batch) == 0 || a.sameBatch(a.batch, v) {
			a.batch = append(a.batch, v)
			continue
		}
		batch := a.batch
		a.batch = append(make([]T, 0, max(a.capHint, 1)), v)
		return batch, true
	}
}

func (a *aggregating[T]) Traits() Traits {
	return derived(a.src.Traits().Ordered)
}

func (a *aggregating[T]) Stop() {
	if a.done {
		return
	}
	a.done = true
	a.batch = nil
	a.src.Stop()
}
