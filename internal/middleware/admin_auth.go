package middleware

import (
	"errors"
	"net/http"

	"gymdesk-backend/internal/models"
	"gymdesk-backend/internal/services"
	"gymdesk-backend/internal/utils"
	"gymdesk-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by AdminAuthMiddleware.
const (
	ContextUser   = "user"
	ContextToken  = "token"
	ContextClaims = "claims"
)

// AdminAuthMiddleware validates the bearer token, rejects revoked tokens and
// non-admin roles, and loads the admin account into the context.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			utils.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		isDenylisted, err := services.IsDenylisted(ctx, tokenString)
		if err != nil {
			utils.Abort(c, http.StatusInternalServerError, "Failed to check token status")
			return
		}
		if isDenylisted {
			utils.Abort(c, http.StatusUnauthorized, "Token has been revoked")
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.Abort(c, http.StatusForbidden, "Invalid or expired token")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != models.RoleAdmin {
			logger.L().Warn("Unauthorized admin access attempt",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()))
			utils.Abort(c, http.StatusForbidden, "Forbidden: Admins only")
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			utils.Abort(c, http.StatusUnauthorized, "Invalid user ID in token")
			return
		}

		user, err := services.FindUserByID(ctx, uint(userIDFloat))
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				utils.Abort(c, http.StatusUnauthorized, "User not found")
				return
			}
			utils.Abort(c, http.StatusServiceUnavailable, "Failed to load user")
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextToken, tokenString)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}
