package account

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"coauthor/article-service/internal/middleware"
)

// SetupAccountRoutes 设置账户相关路由
func SetupAccountRoutes(r *gin.RouterGroup, db *gorm.DB, log zerolog.Logger) {
	handler := NewAccountHandler(NewAccountService(db, log))

	// 公开路由
	r.POST("/register", handler.Register)
	r.POST("/login", handler.Login)

	// 需要认证
	auth := r.Group("")
	auth.Use(middleware.JWTAuth())
	{
		auth.GET("/profile", handler.Profile)
		auth.GET("/users/search", handler.Search)
	}
}
