// Package history 文章编辑流水，只追加
package history

import (
	"gorm.io/gorm"

	"coauthor/article-service/internal/model/history"
)

// HistoryRepository 历史流水仓储层
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Add 追加一条流水，写入后不再修改
func (r *HistoryRepository) Add(articleID, userID uint, action, content, oldContent string) error {
	entry := &history.HistoryEntry{
		ArticleID:  articleID,
		UserID:     userID,
		Action:     action,
		Content:    content,
		OldContent: oldContent,
	}
	return r.db.Create(entry).Error
}

// ListByArticle 某文章的全部流水，按发生顺序返回
func (r *HistoryRepository) ListByArticle(articleID uint) ([]history.HistoryEntry, error) {
	var entries []history.HistoryEntry
	err := r.db.Where("article_id = ?", articleID).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}
