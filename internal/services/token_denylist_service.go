package services

import (
	"context"
	"errors"
	"time"

	"gymdesk-backend/internal/database"

	"github.com/go-redis/redis/v8"
)

const denylistPrefix = "denylist:"

// ErrRevocationUnavailable means a token cannot be revoked because the
// denylist store is not connected.
var ErrRevocationUnavailable = errors.New("token revocation is unavailable: redis is not connected")

// AddToDenylist revokes a token until it would have expired anyway. An already
// expired token needs no entry.
func AddToDenylist(ctx context.Context, tokenString string, expiration time.Duration) error {
	if expiration <= 0 {
		return nil
	}
	if database.RedisClient == nil {
		return ErrRevocationUnavailable
	}
	key := denylistPrefix + tokenString
	return database.RedisClient.Set(ctx, key, 1, expiration).Err()
}

func IsDenylisted(ctx context.Context, tokenString string) (bool, error) {
	if database.RedisClient == nil {
		return false, nil
	}
	key := denylistPrefix + tokenString
	val, err := database.RedisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return val != "", nil
}
