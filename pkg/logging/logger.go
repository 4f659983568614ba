package logging

import (
	"context"

	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/ctxdata"
)

type loggerKey struct{}

const (
	requestID = "request_id"
	userID    = "user_id"
)

var (
	loggerKeyInstance = loggerKey{}
)

type Logger struct {
	l *zap.Logger
}

func New(zapLogger *zap.Logger) *Logger {
	return &Logger{zapLogger}
}

// NewNop returns a logger that discards everything. Used by tests.
func NewNop() *Logger {
	return &Logger{zap.NewNop()}
}

// NewFromEnv builds a development logger unless env is "production".
func NewFromEnv(env string) (*Logger, error) {
	var (
		zapLogger *zap.Logger
		err       error
	)
	if env == "production" {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return New(zapLogger), nil
}

func ContextWithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKeyInstance, logger)
}

func GetFromContext(ctx context.Context) (*Logger, bool) {
	logger, ok := ctx.Value(loggerKeyInstance).(*Logger)
	return logger, ok
}

// FromContext falls back to a no-op logger so call sites never nil-check.
func FromContext(ctx context.Context) *Logger {
	if logger, ok := GetFromContext(ctx); ok {
		return logger
	}
	return NewNop()
}

func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{l.l.With(fields...)}
}

func (l *Logger) Sync() error {
	return l.l.Sync()
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	fields = fieldsFromContext(ctx, fields)
	l.l.Debug(msg, fields...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	fields = fieldsFromContext(ctx, fields)
	l.l.Info(msg, fields...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	fields = fieldsFromContext(ctx, fields)
	l.l.Warn(msg, fields...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	fields = fieldsFromContext(ctx, fields)
	l.l.Error(msg, fields...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	fields = fieldsFromContext(ctx, fields)
	l.l.Fatal(msg, fields...)
}

func fieldsFromContext(ctx context.Context, fields []zap.Field) []zap.Field {
	if traceId, ok := ctxdata.GetTraceID(ctx); ok {
		fields = append(fields, zap.String(requestID, traceId))
	}
	if id, ok := ctxdata.GetUserID(ctx); ok {
		fields = append(fields, zap.String(userID, id.String()))
	}
	return fields
}
