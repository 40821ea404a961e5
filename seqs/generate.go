package seqs

import (
	"golang.org/x/exp/constraints"

	"basekit/validate"
)

type unfolding[T any] struct {
	current T
	step    func(T) (T, bool)
	started bool
	done    bool
}

// Unfold generates a sequence from seed. The seed is the first element; every
// later element is step applied to the previous one, and the sequence ends the
// first time step reports false. step runs on the pull that needs its result,
// so a consumer that stops after k elements never pays for element k+1.
//
// The result is unbounded unless step eventually reports false.
func Unfold[T any](seed T, step func(T) (T, bool)) Sequence[T] {
	validate.NotNil("seqs.Unfold", "step", step)
	return &unfolding[T]{current: seed, step: step}
}

func (u *unfolding[T]) Next() (v T, ok bool) {
	if u.done {
		return v, false
	}
	if u.started {
		next, ok := u.step(u.current)
		if !ok {
			u.Stop()
			return v, false
		}
		u.current = next
	}
	u.started = true
	return u.current, true
}

func (u *unfolding[T]) Traits() Traits {
	return derived(true)
}

func (u *unfolding[T]) Stop() {
	u.done = true
	var zero T
	u.current = zero
}

// Iterate returns the infinite sequence seed, f(seed), f(f(seed)), ...
func Iterate[T any](seed T, f func(T) T) Sequence[T] {
	validate.NotNil("seqs.Iterate", "f", f)
	return Unfold(seed, func(v T) (T, bool) { return f(v), true })
}

// Indices returns the infinite sequence 0, 1, 2, ...
func Indices() Sequence[uint64] {
	return Iterate(uint64(0), func(i uint64) uint64 { return i + 1 })
}

// Range returns start, start+step, ... up to but excluding end. A negative step
// counts down. step == 0, or a start already past end, yields nothing. The
// sequence also ends where the next value would overflow T.
func Range[T constraints.Integer](start, end, step T) Sequence[T] {
	inRange := func(i T) bool {
		return step > 0 && i < end || step < 0 && i > end
	}
	if !inRange(start) {
		return Empty[T]()
	}
	return Unfold(start, func(i T) (T, bool) {
		next := i + step
		if step > 0 && next < i || step < 0 && next > i {
			return next, false
		}
		return next, inRange(next)
	})
}

// Repeat returns value count times.
func Repeat[T any](value T, count int) Sequence[T] {
	return Take(Iterate(value, func(v T) T { return v }), count)
}
