package seqs

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"basekit/validate"
)

type metered[T any] struct {
	ctx     context.Context
	src     Sequence[T]
	counter metric.Int64Counter
	opts    []metric.AddOption
}

// Metered adds one to counter for every element pulled through src. ctx and
// opts are passed to every Add call, so attributes identifying the pipeline
// belong in opts:
//
//	pulled, _ := meter.Int64Counter("seq.elements")
//	s = seqs.Metered(ctx, s, pulled, metric.WithAttributes(attribute.String("seq", "orders")))
func Metered[T any](ctx context.Context, src Sequence[T], counter metric.Int64Counter, opts ...metric.AddOption) Sequence[T] {
	validate.NotNil("seqs.Metered", "ctx", ctx)
	validate.NotNil("seqs.Metered", "source", src)
	validate.NotNil("seqs.Metered", "counter", counter)
	return &metered[T]{ctx: ctx, src: src, counter: counter, opts: opts}
}

func (m *metered[T]) Next() (T, bool) {
	v, ok := m.src.Next()
	if ok {
		m.counter.Add(m.ctx, 1, m.opts...)
	}
	return v, ok
}

func (m *metered[T]) Traits() Traits {
	return m.src.Traits()
}

func (m *metered[T]) Stop() {
	m.src.Stop()
}
