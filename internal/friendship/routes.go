package friendship

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"coauthor/article-service/internal/middleware"
)

// SetupFriendshipRoutes 设置好友相关路由
func SetupFriendshipRoutes(r *gin.RouterGroup, db *gorm.DB, log zerolog.Logger) {
	handler := NewFriendshipHandler(NewFriendshipService(db, log))

	friends := r.Group("/friends")
	friends.Use(middleware.JWTAuth())
	{
		friends.POST("", handler.AddFriend)
		friends.GET("", handler.ListFriends)
	}
}
