package metadata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/ctxdata"
)

func TestMetadataUnaryInterceptor(t *testing.T) {
	interceptor := NewMetadataUnaryInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	t.Run("UsesIncomingTraceID", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(traceIDHeader, "abc"))
		_, err := interceptor(ctx, nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
			traceID, ok := ctxdata.GetTraceID(ctx)
			require.True(t, ok)
			assert.Equal(t, "abc", traceID)
			return nil, nil
		})
		require.NoError(t, err)
	})

	t.Run("GeneratesTraceID", func(t *testing.T) {
		_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
			traceID, ok := ctxdata.GetTraceID(ctx)
			require.True(t, ok)
			assert.NotEmpty(t, traceID)
			return nil, nil
		})
		require.NoError(t, err)
	})
}
