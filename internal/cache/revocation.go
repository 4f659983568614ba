package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "auth:revoked:"

// TokenBlocklist remembers signed-out token ids until they would have
// expired anyway.
type TokenBlocklist struct {
	rdb *redis.Client
}

func NewTokenBlocklist(rdb *redis.Client) *TokenBlocklist {
	return &TokenBlocklist{rdb: rdb}
}

func (b *TokenBlocklist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return b.rdb.Set(ctx, revokedPrefix+tokenID, 1, ttl).Err()
}

func (b *TokenBlocklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := b.rdb.Get(ctx, revokedPrefix+tokenID).Err()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}
