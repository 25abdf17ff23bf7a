// Package zerologadapter provides a pgx tracelog.Logger that writes to a github.com/rs/zerolog logger.
package zerologadapter

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

type Logger struct {
	logger      zerolog.Logger
	fromContext bool
	module      string
	ctxFunc     ContextFunc
}

// ContextFunc adds fields from ctx to a log event.
type ContextFunc func(ctx context.Context, logWith zerolog.Context) zerolog.Context

type Option func(*Logger)

// WithModule sets the value of the module field. The default is "pgx".
func WithModule(module string) Option {
	return func(l *Logger) {
		l.module = module
	}
}

// WithoutModule omits the module field.
func WithoutModule() Option {
	return WithModule("")
}

func WithContextFunc(f ContextFunc) Option {
	return func(l *Logger) {
		l.ctxFunc = f
	}
}

// NewLogger returns a tracelog.Logger that writes to logger.
func NewLogger(logger zerolog.Logger, options ...Option) *Logger {
	l := &Logger{logger: logger, module: "pgx"}
	for _, o := range options {
		o(l)
	}
	return l
}

// NewContextLogger returns a tracelog.Logger that writes to the logger stored in the context by
// zerolog.Logger.WithContext.
func NewContextLogger(options ...Option) *Logger {
	l := NewLogger(zerolog.Nop(), options...)
	l.fromContext = true
	return l
}

func (pl *Logger) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var zlevel zerolog.Level
	switch level {
	case tracelog.LogLevelNone:
		zlevel = zerolog.NoLevel
	case tracelog.LogLevelError:
		zlevel = zerolog.ErrorLevel
	case tracelog.LogLevelWarn:
		zlevel = zerolog.WarnLevel
	case tracelog.LogLevelInfo:
		zlevel = zerolog.InfoLevel
	case tracelog.LogLevelDebug:
		zlevel = zerolog.DebugLevel
	case tracelog.LogLevelTrace:
		zlevel = zerolog.TraceLevel
	default:
		zlevel = zerolog.DebugLevel
	}

	logger := pl.logger
	if pl.fromContext {
		logger = *zerolog.Ctx(ctx)
	}

	zctx := logger.With()
	if pl.module != "" {
		zctx = zctx.Str("module", pl.module)
	}
	if pl.ctxFunc != nil {
		zctx = pl.ctxFunc(ctx, zctx)
	}

	pgxlog := zctx.Fields(data).Logger()
	pgxlog.WithLevel(zlevel).Msg(msg)
}

// LogLevel converts a zerolog level to the tracelog level that produces the same output.
func LogLevel(level zerolog.Level) tracelog.LogLevel {
	switch {
	case level <= zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case level == zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case level == zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case level == zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case level == zerolog.ErrorLevel, level == zerolog.FatalLevel, level == zerolog.PanicLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
