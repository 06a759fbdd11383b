package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gymdesk-backend/internal/database"
	"gymdesk-backend/internal/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

func userCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// FindUserByID loads an admin account, caching it in Redis for an hour.
func FindUserByID(ctx context.Context, userID uint) (models.User, error) {
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(ctx, userCacheKey(userID)).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return user, nil
			}
		}
	}

	var user models.User
	if err := database.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, translateDBError(err)
	}

	if database.RedisClient != nil {
		if data, err := json.Marshal(user); err == nil {
			database.RedisClient.Set(ctx, userCacheKey(userID), data, time.Hour)
		}
	}

	return user, nil
}
