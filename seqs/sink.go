package seqs

import "basekit/validate"

// Terminal operations drain (part of) a sequence and always stop it before
// returning.

// Collect drains s into a slice.
func Collect[T any](s Sequence[T]) []T {
	validate.NotNil("seqs.Collect", "source", s)
	defer s.Stop()
	var out []T
	if t := s.Traits(); t.Sized {
		out = make([]T, 0, t.Size)
	}
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func First[T any](s Sequence[T]) (T, bool) {
	validate.NotNil("seqs.First", "source", s)
	defer s.Stop()
	return s.Next()
}

func Last[T any](s Sequence[T]) (T, bool) {
	validate.NotNil("seqs.Last", "source", s)
	defer s.Stop()
	var last T
	found := false
	for {
		v, ok := s.Next()
		if !ok {
			return last, found
		}
		last, found = v, true
	}
}

func Count[T any](s Sequence[T]) int {
	validate.NotNil("seqs.Count", "source", s)
	defer s.Stop()
	count := 0
	for {
		if _, ok := s.Next(); !ok {
			return count
		}
		count++
	}
}

func Any[T any](s Sequence[T], predicate func(T) bool) bool {
	validate.NotNil("seqs.Any", "source", s)
	validate.NotNil("seqs.Any", "predicate", predicate)
	defer s.Stop()
	for {
		v, ok := s.Next()
		if !ok {
			return false
		}
		if predicate(v) {
			return true
		}
	}
}

func All[T any](s Sequence[T], predicate func(T) bool) bool {
	validate.NotNil("seqs.All", "source", s)
	validate.NotNil("seqs.All", "predicate", predicate)
	defer s.Stop()
	for {
		v, ok := s.Next()
		if !ok {
			return true
		}
		if !predicate(v) {
			return false
		}
	}
}

// Reduce aggregates the elements of s using the reducer function, starting from the initial value.
func Reduce[T, R any](s Sequence[T], initial R, reducer func(R, T) R) R {
	validate.NotNil("seqs.Reduce", "source", s)
	validate.NotNil("seqs.Reduce", "reducer", reducer)
	defer s.Stop()
	acc := initial
	for {
		v, ok := s.Next()
		if !ok {
			return acc
		}
		acc = reducer(acc, v)
	}
}

// ForEach calls action for every element of s.
func ForEach[T any](s Sequence[T], action func(T)) {
	validate.NotNil("seqs.ForEach", "source", s)
	validate.NotNil("seqs.ForEach", "action", action)
	for v := range Values(s) {
		action(v)
	}
}
