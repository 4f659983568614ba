package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnaryLoggingInterceptor(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	tests := []struct {
		name      string
		err       error
		wantLevel zapcore.Level
		wantMsg   string
	}{
		{"OK", nil, zapcore.DebugLevel, "grpc call handled"},
		{"ClientError", status.Error(codes.NotFound, "unknown service"), zapcore.InfoLevel, "grpc call rejected"},
		{"ServerError", status.Error(codes.Internal, "boom"), zapcore.ErrorLevel, "grpc call failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			logger := New(zap.New(core))
			interceptor := NewUnaryLoggingInterceptor(logger)

			var seen *Logger
			_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
				seen = FromContext(ctx)
				return nil, tt.err
			})

			assert.Equal(t, tt.err, err)
			assert.Same(t, logger, seen)
			require.Len(t, logs.All(), 1)
			entry := logs.All()[0]
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.wantMsg, entry.Message)
			assert.Equal(t, status.Code(tt.err).String(), entry.ContextMap()["code"])
		})
	}
}
