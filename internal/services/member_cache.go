package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gymdesk-backend/internal/database"
	"gymdesk-backend/internal/models"
	"gymdesk-backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	membersListCacheKey = "members:all"
	// memberCacheGenKey is bumped on every invalidation. A fill only lands
	// when the generation read before the database query is still current.
	memberCacheGenKey = "members:gen"
	memberCacheTTL    = 10 * time.Minute
)

var errStaleCacheFill = errors.New("member cache invalidated during read")

// cacheGeneration reads the current invalidation generation. ok is false
// when there is no Redis or the read failed; callers then skip the fill.
func cacheGeneration(ctx context.Context) (gen int64, ok bool) {
	if database.RedisClient == nil {
		return 0, false
	}
	gen, err := database.RedisClient.Get(ctx, memberCacheGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		return 0, false
	}
	return gen, true
}

// fillCache stores value under key unless an invalidation happened after gen
// was read. The check and the write run under WATCH so they cannot interleave
// with invalidateMemberCache.
func fillCache(ctx context.Context, gen int64, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	err = database.RedisClient.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, memberCacheGenKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return errStaleCacheFill
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, memberCacheTTL)
			return nil
		})
		return err
	}, memberCacheGenKey)
	if err != nil && !errors.Is(err, errStaleCacheFill) && !errors.Is(err, redis.TxFailedErr) {
		logger.L().Warn("Failed to fill member cache", zap.String("key", key), zap.Error(err))
	}
}

func memberCacheKey(id uint) string {
	return fmt.Sprintf("member:%d", id)
}

func cachedMemberList(ctx context.Context) ([]models.Member, bool) {
	if database.RedisClient == nil {
		return nil, false
	}
	val, err := database.RedisClient.Get(ctx, membersListCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var members []models.Member
	if err := json.Unmarshal([]byte(val), &members); err != nil {
		return nil, false
	}
	return members, true
}

func cacheMemberList(ctx context.Context, gen int64, members []models.Member) {
	fillCache(ctx, gen, membersListCacheKey, members)
}

func cachedMember(ctx context.Context, id uint) (models.Member, bool) {
	var member models.Member
	if database.RedisClient == nil {
		return member, false
	}
	val, err := database.RedisClient.Get(ctx, memberCacheKey(id)).Result()
	if err != nil {
		return member, false
	}
	if err := json.Unmarshal([]byte(val), &member); err != nil {
		return member, false
	}
	return member, true
}

func cacheMember(ctx context.Context, gen int64, member models.Member) {
	fillCache(ctx, gen, memberCacheKey(member.ID), member)
}

// invalidateMemberCache bumps the generation and drops the list and the
// per-member entry after a mutation so the next read goes to the database.
func invalidateMemberCache(ctx context.Context, id uint) {
	if database.RedisClient == nil {
		return
	}
	_, err := database.RedisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, memberCacheGenKey)
		pipe.Del(ctx, membersListCacheKey, memberCacheKey(id))
		return nil
	})
	if err != nil {
		logger.L().Warn("Failed to invalidate member cache", zap.Uint("member_id", id), zap.Error(err))
	}
}
