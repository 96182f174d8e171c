package article

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"coauthor/article-service/internal/middleware"
)

// SetupArticleRoutes 设置文章相关路由
func SetupArticleRoutes(r *gin.RouterGroup, db *gorm.DB, log zerolog.Logger) {
	handler := NewArticleHandler(db, log)

	// 文章路由 - 需要认证
	articlesAuth := r.Group("/articles")
	articlesAuth.Use(middleware.JWTAuth())
	{
		articlesAuth.POST("", handler.Create)                          // 创建文章
		articlesAuth.PUT("/:id", handler.Update)                       // 更新文章
		articlesAuth.POST("/:id/collaborate", handler.AddCollaborator) // 添加协作者
		articlesAuth.GET("/:id/collaborators", handler.GetCollaborators)
		articlesAuth.POST("/:id/restore/:number", handler.Restore) // 恢复历史版本
	}

	// 文章路由 - 可选认证（公开文章允许匿名查看）
	articlesOptional := r.Group("/articles")
	articlesOptional.Use(middleware.OptionalJWTAuth())
	{
		articlesOptional.GET("", handler.List)
		articlesOptional.GET("/:id", handler.Get)
		articlesOptional.GET("/:id/versions", handler.GetVersions)
		articlesOptional.GET("/:id/versions/:number", handler.GetVersion)
		articlesOptional.GET("/:id/compare", handler.Compare)
		articlesOptional.GET("/:id/history", handler.History)
	}
}
