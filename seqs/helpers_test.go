package seqs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"basekit/seqs"
)

// counted wraps a slice sequence and counts pulls and stops.
type counted[T any] struct {
	seqs.Sequence[T]
	pulls int
	stops int
}

func newCounted[T any](values ...T) *counted[T] {
	return &counted[T]{Sequence: seqs.FromSlice(values)}
}

func (p *counted[T]) Next() (T, bool) {
	p.pulls++
	return p.Sequence.Next()
}

func (p *counted[T]) Stop() {
	p.stops++
	p.Sequence.Stop()
}

// panicErr runs fn, requires it to panic with an error and returns that error.
func panicErr(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
	}()
	fn()
	return nil
}

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
