package analysis

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"coauthor/article-service/config"
	"coauthor/article-service/internal/article"
	"coauthor/article-service/internal/database"
	"coauthor/article-service/internal/middleware"
)

// SetupAnalysisRoutes 设置文本分析相关路由
func SetupAnalysisRoutes(r *gin.RouterGroup, db *gorm.DB, rdb *database.RedisClient, cfg *config.AnalysisConfig, log zerolog.Logger) {
	handler := NewAnalysisHandler(
		NewAnalysisService(cfg, rdb, log),
		article.NewArticleService(db, log),
	)

	articles := r.Group("/articles")
	articles.Use(middleware.JWTAuth())
	{
		articles.POST("/:id/analyze", handler.Analyze)
		articles.POST("/:id/question", handler.Question)
	}
}
