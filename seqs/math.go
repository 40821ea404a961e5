package seqs

import (
	"golang.org/x/exp/constraints"

	"basekit/validate"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Sum drains s and returns the total of its elements.
func Sum[T Number](s Sequence[T]) T {
	validate.NotNil("seqs.Sum", "source", s)
	return Reduce(s, T(0), func(total, v T) T { return total + v })
}

// Min drains s and returns its smallest element, or false if s is empty.
func Min[T constraints.Ordered](s Sequence[T]) (T, bool) {
	validate.NotNil("seqs.Min", "source", s)
	return extreme(s, func(v, best T) bool { return v < best })
}

// Max drains s and returns its largest element, or false if s is empty.
func Max[T constraints.Ordered](s Sequence[T]) (T, bool) {
	validate.NotNil("seqs.Max", "source", s)
	return extreme(s, func(v, best T) bool { return v > best })
}

func extreme[T any](s Sequence[T], better func(v, best T) bool) (best T, found bool) {
	defer s.Stop()
	for {
		v, ok := s.Next()
		if !ok {
			return best, found
		}
		if !found || better(v, best) {
			best, found = v, true
		}
	}
}
