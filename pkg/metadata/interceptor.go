package metadata

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/ctxdata"
)

const traceIDHeader = "x-trace-id"

// NewMetadataUnaryInterceptor copies the caller's trace id into the context,
// generating one when the caller did not send it.
func NewMetadataUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		traceID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(traceIDHeader); len(values) > 0 {
				traceID = values[0]
			}
		}
		if traceID == "" {
			traceID = uuid.NewString()
		}
		ctx = ctxdata.WithTraceID(ctx, traceID)

		return handler(ctx, req)
	}
}
