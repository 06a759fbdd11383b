package api

import (
	"net/http"

	"gymdesk-backend/config"
	_ "gymdesk-backend/docs"
	"gymdesk-backend/internal/api/v1/auth"
	"gymdesk-backend/internal/api/v1/member"
	"gymdesk-backend/internal/api/v1/stats"
	userRoutes "gymdesk-backend/internal/api/v1/user"
	"gymdesk-backend/internal/middleware"
	"gymdesk-backend/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the HTTP engine. The database, Redis and token settings
// must be initialised before it serves requests.
func NewRouter(cfg *config.Config) *gin.Engine {
	utils.RegisterJSONFieldNames()

	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger(), middleware.Metrics())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1)

		admin := v1.Group("/")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			userRoutes.RegisterRoutes(admin)
			member.RegisterRoutes(admin)
			stats.RegisterRoutes(admin)
		}
	}

	return router
}
