package logging

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// NewUnaryLoggingInterceptor stores logger in the request context and
// writes one line per call. Failed calls are logged at error level unless
// the code is a client mistake.
func NewUnaryLoggingInterceptor(logger *Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		start := time.Now()
		ctx = ContextWithLogger(ctx, logger)

		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("duration", time.Since(start)),
		}
		if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
			fields = append(fields, zap.String("peer", p.Addr.String()))
		}

		switch code {
		case codes.OK:
			logger.Debug(ctx, "grpc call handled", fields...)
		case codes.InvalidArgument, codes.NotFound, codes.Unauthenticated, codes.PermissionDenied:
			logger.Info(ctx, "grpc call rejected", append(fields, zap.Error(err))...)
		default:
			logger.Error(ctx, "grpc call failed", append(fields, zap.Error(err))...)
		}
		return resp, err
	}
}
