package logger

import "context"

type contextKey struct{}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	if l == nil {
		panic("logger: WithLogger called with nil logger")
	}
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or Default if there is none.
func FromContext(ctx context.Context) *Logger {
	if l := fromContext(ctx); l != nil {
		return l
	}
	return Default()
}

// FromContextOrDefault returns the logger stored in ctx, or def.
func FromContextOrDefault(ctx context.Context, def *Logger) *Logger {
	if l := fromContext(ctx); l != nil {
		return l
	}
	return def
}

func fromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return nil
	}
	l, _ := ctx.Value(contextKey{}).(*Logger)
	return l
}
