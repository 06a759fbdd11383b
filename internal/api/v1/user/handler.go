package user

import (
	"net/http"

	"gymdesk-backend/internal/middleware"
	"gymdesk-backend/internal/models"
	"gymdesk-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// CurrentUser godoc
// @Summary Get current admin
// @Description Get the signed-in admin account
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=user.UserResponse}
// @Failure 401 {object} utils.Response
// @Router /auth/user [get]
func CurrentUser(c *gin.Context) {
	value, exists := c.Get(middleware.ContextUser)
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}
	u := value.(models.User)

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User retrieved successfully", UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}))
}
