package seqs_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basekit/seqs"
)

func TestFromSlice(t *testing.T) {
	s := seqs.Of(1, 2, 3)
	assert.Equal(t, seqs.Traits{Size: 3, Sized: true, Ordered: true}, s.Traits())

	v, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, s.Traits().Size)

	s.Stop()
	_, ok = s.Next()
	assert.False(t, ok)
	assert.Zero(t, s.Traits().Size)
}

func TestEmpty(t *testing.T) {
	s := seqs.Empty[string]()
	_, ok := s.Next()
	assert.False(t, ok)
	assert.True(t, s.Traits().Sized)
}

func TestFromSeq(t *testing.T) {
	t.Run("Lazy", func(t *testing.T) {
		produced := 0
		src := func(yield func(int) bool) {
			for i := 0; ; i++ {
				produced++
				if !yield(i) {
					return
				}
			}
		}
		s := seqs.FromSeq(iter.Seq[int](src))
		defer s.Stop()
		assert.Zero(t, produced)

		v, ok := s.Next()
		require.True(t, ok)
		assert.Equal(t, 0, v)
		assert.Equal(t, 1, produced)
		assert.Equal(t, seqs.Traits{Ordered: true}, s.Traits())
	})

	t.Run("StopReleasesIterator", func(t *testing.T) {
		released := false
		src := func(yield func(int) bool) {
			defer func() { released = true }()
			for i := 0; ; i++ {
				if !yield(i) {
					return
				}
			}
		}
		s := seqs.FromSeq(iter.Seq[int](src))
		s.Next()
		s.Stop()
		assert.True(t, released)

		_, ok := s.Next()
		assert.False(t, ok)
		s.Stop() // idempotent
	})

	t.Run("StaysExhausted", func(t *testing.T) {
		s := seqs.FromSeq(iter.Seq[int](func(yield func(int) bool) { yield(7) }))
		assert.Equal(t, []int{7}, seqs.Collect(s))
		_, ok := s.Next()
		assert.False(t, ok)
	})

	t.Run("Nil", func(t *testing.T) {
		err := panicErr(t, func() { seqs.FromSeq[int](nil) })
		assert.ErrorIs(t, err, seqs.ErrInvalidArgument)
	})
}

func TestValues(t *testing.T) {
	p := newCounted(1, 2, 3, 4)
	var got []int
	for v := range seqs.Values[int](p) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 1, p.stops, "breaking out of the loop stops the sequence")

	// single use
	for range seqs.Values[int](p) {
		t.Fatal("stopped sequence yielded again")
	}
}
