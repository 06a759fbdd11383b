package user

import "github.com/gin-gonic/gin"

// RegisterRoutes expects router to be behind the admin middleware.
func RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.GET("/user", CurrentUser)
}
