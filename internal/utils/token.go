package utils

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenSecretMissing = errors.New("jwt secret is not configured")

var (
	tokenMu     sync.RWMutex
	tokenSecret []byte
	tokenTTL    = 12 * time.Hour
)

// ConfigureTokens sets the signing secret and lifetime of issued tokens.
func ConfigureTokens(secret string, ttl time.Duration) {
	tokenMu.Lock()
	defer tokenMu.Unlock()
	tokenSecret = []byte(secret)
	if ttl > 0 {
		tokenTTL = ttl
	}
}

func tokenSettings() ([]byte, time.Duration) {
	tokenMu.RLock()
	defer tokenMu.RUnlock()
	return tokenSecret, tokenTTL
}

func GenerateToken(userID uint, role string) (string, error) {
	secret, ttl := tokenSettings()
	if len(secret) == 0 {
		return "", ErrTokenSecretMissing
	}

	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	secret, _ := tokenSettings()
	if len(secret) == 0 {
		return nil, ErrTokenSecretMissing
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// TokenRemaining is how long the token stays valid; zero when it has no
// usable expiry.
func TokenRemaining(claims jwt.MapClaims) time.Duration {
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}
	if d := time.Until(exp.Time); d > 0 {
		return d
	}
	return 0
}

func ExtractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization header is required")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", fmt.Errorf("bearer token not found")
	}

	return strings.TrimPrefix(authHeader, bearerPrefix), nil
}
