package model

import (
	"gorm.io/gorm"

	"coauthor/article-service/internal/model/article"
	"coauthor/article-service/internal/model/friendship"
	"coauthor/article-service/internal/model/history"
	"coauthor/article-service/internal/model/notification"
	"coauthor/article-service/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 用户模型
		&user.User{},
		// 文章相关模型
		&article.Article{},
		&article.ArticleVersion{},
		&article.ArticleCollaborator{},
		// 社交模型
		&friendship.Friendship{},
		// 流水与通知
		&history.HistoryEntry{},
		&notification.Notification{},
	)
	if err != nil {
		return err
	}
	return nil
}
