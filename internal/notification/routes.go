package notification

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"coauthor/article-service/internal/middleware"
)

// SetupNotificationRoutes 设置通知相关路由
func SetupNotificationRoutes(r *gin.RouterGroup, db *gorm.DB, log zerolog.Logger) {
	handler := NewNotificationHandler(NewNotificationService(db, log))

	notifications := r.Group("/notifications")
	notifications.Use(middleware.JWTAuth())
	{
		notifications.GET("", handler.List)
		notifications.PUT("/read-all", handler.MarkAllRead)
		notifications.PUT("/:id/read", handler.MarkRead)
	}
}
