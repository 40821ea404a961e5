package seqs

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"basekit/validate"
)

const (
	DefaultTraceName  = "seq"
	DefaultTraceLevel = zapcore.DebugLevel
)

type TraceOption func(*traceConfig)

type traceConfig struct {
	logger *zap.Logger
	level  zapcore.Level
	name   string
}

// WithLogger sets the logger Trace writes to. The default discards everything.
func WithLogger(logger *zap.Logger) TraceOption {
	return func(cfg *traceConfig) {
		cfg.logger = logger
	}
}

func WithLevel(level zapcore.Level) TraceOption {
	return func(cfg *traceConfig) {
		cfg.level = level
	}
}

// WithName sets the "seq" field attached to every entry.
func WithName(name string) TraceOption {
	return func(cfg *traceConfig) {
		cfg.name = name
	}
}

type traced[T any] struct {
	src       Sequence[T]
	logger    *zap.Logger
	level     zapcore.Level
	pulled    int
	exhausted bool
	stopped   bool
}

// Trace logs every element pulled through src, its exhaustion and its stop.
// Elements are logged with zap.Any, so tracing a hot pipeline at an enabled
// level is not free; at a disabled level each pull costs one level check.
func Trace[T any](src Sequence[T], opts ...TraceOption) Sequence[T] {
	validate.NotNil("seqs.Trace", "source", src)
	cfg := traceConfig{
		level: DefaultTraceLevel,
		name:  DefaultTraceName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		// silent unless a logger is given
		cfg.logger = zap.NewNop()
	}
	return &traced[T]{
		src:    src,
		logger: cfg.logger.With(zap.String("seq", cfg.name)),
		level:  cfg.level,
	}
}

func (t *traced[T]) Next() (T, bool) {
	v, ok := t.src.Next()
	switch {
	case ok:
		t.pulled++
		if ce := t.logger.Check(t.level, "next"); ce != nil {
			ce.Write(zap.Int("n", t.pulled), zap.Any("value", v))
		}
	case !t.exhausted:
		t.exhausted = true
		if ce := t.logger.Check(t.level, "exhausted"); ce != nil {
			ce.Write(zap.Int("pulled", t.pulled))
		}
	}
	return v, ok
}

func (t *traced[T]) Traits() Traits {
	return t.src.Traits()
}

func (t *traced[T]) Stop() {
	if t.stopped {
		return
	}
	t.stopped = true
	if ce := t.logger.Check(t.level, "stop"); ce != nil {
		ce.Write(zap.Int("pulled", t.pulled), zap.Bool("exhausted", t.exhausted))
	}
	t.src.Stop()
}
