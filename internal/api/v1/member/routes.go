package member

import "github.com/gin-gonic/gin"

// RegisterRoutes expects router to be behind the admin middleware.
func RegisterRoutes(router *gin.RouterGroup) {
	members := router.Group("/members")
	members.GET("", ListMembers)
	members.POST("", CreateMember)
	members.GET("/export", ExportMembers)
	members.GET("/:id", GetMember)
	members.PUT("/:id", UpdateMember)
	members.DELETE("/:id", DeleteMember)
	members.PUT("/:id/update", RenewPlan)
	members.GET("/:id/invoice", DownloadInvoice)
	members.POST("/:id/invoice/archive", ArchiveInvoice)
	members.POST("/:id/email", SendEmail)
}
