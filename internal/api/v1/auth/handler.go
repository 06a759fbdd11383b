package auth

import (
	"errors"
	"net/http"

	"gymdesk-backend/internal/api/v1/common"
	"gymdesk-backend/internal/api/v1/user"
	"gymdesk-backend/internal/middleware"
	"gymdesk-backend/internal/services"
	"gymdesk-backend/internal/utils"
	"gymdesk-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in an admin
// @Description Exchange admin credentials for a bearer token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   input     body   LoginInput  true  "Login Input"
// @Success 200 {object} utils.Response{data=user.UserResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var input LoginInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	token, u, err := services.LoginAdmin(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			logger.L().Warn("Failed login", zap.String("username", input.Username), zap.String("ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid username or password"))
			return
		}
		common.RespondError(c, err, "Could not log in")
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged in successfully", user.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		Token:     token,
	}))
}

// Logout godoc
// @Summary Log out
// @Description Revoke the current bearer token
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	tokenString := c.GetString(middleware.ContextToken)
	claims, _ := c.Get(middleware.ContextClaims)
	mapClaims, ok := claims.(jwt.MapClaims)
	if tokenString == "" || !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	if err := services.AddToDenylist(c.Request.Context(), tokenString, utils.TokenRemaining(mapClaims)); err != nil {
		if errors.Is(err, services.ErrRevocationUnavailable) {
			logger.L().Warn("Logout refused, token denylist unavailable")
			utils.Fail(c, http.StatusServiceUnavailable, "Logout is unavailable: the token could not be revoked")
			return
		}
		logger.L().Error("Failed to denylist token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to denylist token"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged out successfully", nil))
}
