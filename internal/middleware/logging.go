package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/ctxdata"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

const TraceIDHeader = "X-Trace-Id"

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// NewLoggingMiddleware tags every request with a trace id, stores the logger
// in the request context and logs the outcome.
func NewLoggingMiddleware(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			traceID := r.Header.Get(TraceIDHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				id, err := uuid.NewV7()
				if err != nil {
					id = uuid.New()
				}
				traceID = id.String()
			}

			ctx := ctxdata.WithTraceID(r.Context(), traceID)
			ctx = logging.ContextWithLogger(ctx, logger)
			r = r.WithContext(ctx)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			w.Header().Set(TraceIDHeader, traceID)

			next.ServeHTTP(sw, r)

			logger.Info(ctx, "request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", sw.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
