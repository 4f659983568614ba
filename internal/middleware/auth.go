package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/auth"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/ctxdata"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
)

type TokenParser interface {
	Parse(raw string) (*auth.Token, error)
}

type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// NewAuthMiddleware accepts requests carrying a valid, unrevoked bearer
// token and binds the teacher it was issued to into the request context.
func NewAuthMiddleware(tokens TokenParser, revoked RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger := logging.FromContext(ctx)

			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				logger.Info(ctx, "no bearer token", zap.String("path", r.URL.Path))
				writeUnauthorized(w)
				return
			}

			token, err := tokens.Parse(raw)
			if err != nil {
				logger.Info(ctx, "rejected token", zap.String("path", r.URL.Path), zap.Error(err))
				writeUnauthorized(w)
				return
			}

			isRevoked, err := revoked.IsRevoked(ctx, token.ID)
			if err != nil {
				logger.Error(ctx, "failed to check token revocation", zap.Error(err))
				writeError(w, http.StatusServiceUnavailable, "authentication is temporarily unavailable")
				return
			}
			if isRevoked {
				logger.Info(ctx, "revoked token used", zap.String("path", r.URL.Path))
				writeUnauthorized(w)
				return
			}

			ctx = ctxdata.WithSession(ctx, ctxdata.Session{
				UserID:    token.TeacherID,
				Email:     token.Email,
				TokenID:   token.ID,
				ExpiresAt: token.ExpiresAt,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeUnauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "unauthorized")
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}
