package seqs_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basekit/seqs"
)

func isEven(v int) bool { return v%2 == 0 }

func TestMap(t *testing.T) {
	got := seqs.Collect(seqs.Map(seqs.Of(1, 2, 3), strconv.Itoa))
	assert.Equal(t, []string{"1", "2", "3"}, got)

	tr := seqs.Map(seqs.Of(1), strconv.Itoa).Traits()
	assert.False(t, tr.Sized)
	assert.True(t, tr.Ordered)
}

func TestFilter(t *testing.T) {
	assert.Equal(t, []int{2, 4}, seqs.Collect(seqs.Filter(seqs.FromSlice(ints(5)), isEven)))
	assert.Equal(t, []int{1, 3, 5}, seqs.Collect(seqs.Reject(seqs.FromSlice(ints(5)), isEven)))
	assert.Empty(t, seqs.Collect(seqs.Filter(seqs.Of(1, 3), isEven)))
}

func TestPeek(t *testing.T) {
	var seen []int
	s := seqs.Peek(seqs.Of(1, 2, 3), func(v int) { seen = append(seen, v) })
	v, ok := seqs.First(s)
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{1}, seen, "only pulled elements are observed")
}

func TestSeq_InvalidArguments(t *testing.T) {
	for name, fn := range map[string]func(){
		"Map":    func() { seqs.Map[int, string](seqs.Of(1), nil) },
		"Filter": func() { seqs.Filter[int](nil, isEven) },
		"Reject": func() { seqs.Reject[int](seqs.Of(1), nil) },
		"Peek":   func() { seqs.Peek[int](seqs.Of(1), nil) },
	} {
		assert.ErrorIs(t, panicErr(t, fn), seqs.ErrInvalidArgument, name)
	}
}

func TestSinks(t *testing.T) {
	t.Run("Collect", func(t *testing.T) {
		p := newCounted(1, 2)
		assert.Equal(t, []int{1, 2}, seqs.Collect[int](p))
		assert.Equal(t, 1, p.stops)
	})

	t.Run("First", func(t *testing.T) {
		p := newCounted(7, 8)
		v, ok := seqs.First[int](p)
		assert.True(t, ok)
		assert.Equal(t, 7, v)
		assert.Equal(t, 1, p.pulls)
		assert.Equal(t, 1, p.stops)

		_, ok = seqs.First(seqs.Empty[int]())
		assert.False(t, ok)
	})

	t.Run("Last", func(t *testing.T) {
		v, ok := seqs.Last(seqs.Of(7, 8, 9))
		assert.True(t, ok)
		assert.Equal(t, 9, v)

		_, ok = seqs.Last(seqs.Empty[int]())
		assert.False(t, ok)
	})

	t.Run("Count", func(t *testing.T) {
		assert.Equal(t, 5, seqs.Count(seqs.FromSlice(ints(5))))
		assert.Zero(t, seqs.Count(seqs.Empty[int]()))
	})

	t.Run("AnyAll", func(t *testing.T) {
		p := newCounted(1, 2, 3, 4)
		assert.True(t, seqs.Any[int](p, isEven))
		assert.Equal(t, 2, p.pulls, "Any stops at the first match")
		assert.Equal(t, 1, p.stops)

		assert.False(t, seqs.Any(seqs.Of(1, 3), isEven))
		assert.True(t, seqs.All(seqs.Of(2, 4), isEven))
		assert.False(t, seqs.All(seqs.Of(2, 3), isEven))
		assert.True(t, seqs.All(seqs.Empty[int](), isEven))
	})

	t.Run("Reduce", func(t *testing.T) {
		sum := seqs.Reduce(seqs.FromSlice(ints(4)), 0, func(acc, v int) int { return acc + v })
		assert.Equal(t, 10, sum)

		joined := seqs.Reduce(seqs.Of(1, 2), "", func(acc string, v int) string { return acc + strconv.Itoa(v) })
		assert.Equal(t, "12", joined)
	})

	t.Run("ForEach", func(t *testing.T) {
		p := newCounted(1, 2, 3)
		total := 0
		seqs.ForEach[int](p, func(v int) { total += v })
		assert.Equal(t, 6, total)
		assert.Equal(t, 1, p.stops)
	})
}

func TestNumericSinks(t *testing.T) {
	assert.Equal(t, 15, seqs.Sum(seqs.FromSlice(ints(5))))
	assert.InDelta(t, 1.5, seqs.Sum(seqs.Of(0.5, 1.0)), 1e-9)
	assert.Zero(t, seqs.Sum(seqs.Empty[int]()))

	lo, ok := seqs.Min(seqs.Of(4, -2, 7))
	assert.True(t, ok)
	assert.Equal(t, -2, lo)

	hi, ok := seqs.Max(seqs.Of("pear", "apple", "zucchini"))
	assert.True(t, ok)
	assert.Equal(t, "zucchini", hi)

	_, ok = seqs.Max(seqs.Empty[float64]())
	assert.False(t, ok)

	p := newCounted(3, 1)
	seqs.Min[int](p)
	assert.Equal(t, 1, p.stops)
}

func TestSinks_InvalidArguments(t *testing.T) {
	add := func(acc, v int) int { return acc + v }
	for op, fn := range map[string]func(){
		"seqs.Collect": func() { seqs.Collect[int](nil) },
		"seqs.First":   func() { seqs.First[int](nil) },
		"seqs.Last":    func() { seqs.Last[int](nil) },
		"seqs.Count":   func() { seqs.Count[int](nil) },
		"seqs.Any":     func() { seqs.Any(seqs.Of(1), nil) },
		"seqs.All":     func() { seqs.All[int](nil, isEven) },
		"seqs.Reduce":  func() { seqs.Reduce[int](nil, 0, add) },
		"seqs.ForEach": func() { seqs.ForEach(seqs.Of(1), nil) },
		"seqs.Sum":     func() { seqs.Sum[int](nil) },
		"seqs.Min":     func() { seqs.Min[int](nil) },
		"seqs.Max":     func() { seqs.Max[string](nil) },
		"seqs.Peek":    func() { seqs.Peek[int](nil, func(int) {}) },
	} {
		err := panicErr(t, fn)
		require.ErrorIs(t, err, seqs.ErrInvalidArgument, op)
		assert.Contains(t, err.Error(), op+":", "error names the operation")
	}
}
