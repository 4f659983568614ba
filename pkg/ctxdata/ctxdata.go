package ctxdata

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type traceIDKey struct{}
type sessionKey struct{}

var (
	traceIDKeyInstance = traceIDKey{}
	sessionKeyInstance = sessionKey{}
)

// Session is the authenticated teacher bound to a single request.
type Session struct {
	UserID    uuid.UUID
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	v := ctx.Value(traceIDKeyInstance)
	traceID, ok := v.(string)
	return traceID, ok
}

func WithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionKeyInstance, session)
}

func GetSession(ctx context.Context) (Session, bool) {
	v := ctx.Value(sessionKeyInstance)
	session, ok := v.(Session)
	return session, ok
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	session, ok := GetSession(ctx)
	if !ok || session.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return session.UserID, true
}
