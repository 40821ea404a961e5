package seqs

import (
	"github.com/eapache/queue"

	"basekit/validate"
)

type WindowOption func(*windowConfig)

type windowConfig struct {
	partial bool
}

// WithPartialWindows makes Window emit the shrinking windows left at the end of
// the source instead of dropping them.
func WithPartialWindows() WindowOption {
	return func(cfg *windowConfig) {
		cfg.partial = true
	}
}

type windowing[T any] struct {
	src     Sequence[T]
	size    int
	step    int
	partial bool

	buf     *queue.Queue // ring buffer of T
	skip    int          // elements to discard before the next window (step > size)
	emitted bool
	srcDone bool
	done    bool
}

// Window emits sliding windows of size elements, advancing step elements
// between windows. Every window is a fresh slice.
//
// Scenario 1 (step < size): overlapping windows. For example, [1,2,3], [2,3,4] (size=3, step=1)
// Scenario 2 (step == size): equivalent to AggregateN.
// Scenario 3 (step > size): gapped windows (some data is skipped in between).
//
// By default only full windows are emitted.
func Window[T any](src Sequence[T], size, step int, opts ...WindowOption) Sequence[[]T] {
	validate.NotNil("seqs.Window", "source", src)
	validate.Positive("seqs.Window", "size", size)
	validate.Positive("seqs.Window", "step", step)
	var cfg windowConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &windowing[T]{
		src:     src,
		size:    size,
		step:    step,
		partial: cfg.partial,
		buf:     queue.New(),
	}
}

func (w *windowing[T]) Next() ([]T, bool) {
	if w.done {
		return nil, false
	}

	// 1. slide past the previous window
	if w.emitted {
		drop := min(w.step, w.buf.Length())
		for range drop {
			w.buf.Remove()
		}
		w.skip = w.step - drop
	}

	// 2. in skip mode
	for w.skip > 0 && !w.srcDone {
		if _, ok := w.src.Next(); !ok {
			w.srcDone = true
		}
		w.skip--
	}

	// 3. collect data
	for w.buf.Length() < w.size && !w.srcDone {
		v, ok := w.src.Next()
		if !ok {
			w.srcDone = true
			break
		}
		w.buf.Add(v)
	}

	n := w.buf.Length()
	if n == 0 || n < w.size && !w.partial {
		w.Stop()
		return nil, false
	}

	// 4. window ready, copy it out
	out := make([]T, n)
	for i := range out {
		out[i] = w.buf.Get(i).(T)
	}
	w.emitted = true
	return out, true
}

func (w *windowing[T]) Traits() Traits {
	return derived(w.src.Traits().Ordered)
}

func (w *windowing[T]) Stop() {
	if w.done {
		return
	}
	w.done = true
	w.buf = queue.New()
	w.src.Stop()
}
