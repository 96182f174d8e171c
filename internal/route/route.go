package route

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"coauthor/article-service/config"
	"coauthor/article-service/internal/account"
	"coauthor/article-service/internal/analysis"
	"coauthor/article-service/internal/article"
	"coauthor/article-service/internal/database"
	"coauthor/article-service/internal/friendship"
	"coauthor/article-service/internal/notification"
)

// SetupRouter 组装全部路由
// 依赖（数据库/redis/日志）在这里注入各业务模块，不使用包级单例
func SetupRouter(cfg *config.AppConfig, db *gorm.DB, rdb *database.RedisClient, log zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:5173" // 默认值
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	account.SetupAccountRoutes(api, db, log)
	friendship.SetupFriendshipRoutes(api, db, log)
	article.SetupArticleRoutes(api, db, log)
	notification.SetupNotificationRoutes(api, db, log)
	analysis.SetupAnalysisRoutes(api, db, rdb, &cfg.Analysis, log)

	return r
}
