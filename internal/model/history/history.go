// Package history 文章编辑流水模型
package history

import "time"

// 动作类型
const (
	ActionAdd    = "add"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// HistoryEntry 文章历史流水表，只追加，从不修改
type HistoryEntry struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ArticleID uint   `gorm:"not null;index" json:"article_id"`
	UserID    uint   `gorm:"not null" json:"user_id"`
	Action    string `gorm:"type:varchar(20);not null" json:"action"` // add, edit, delete
	Content   string `gorm:"type:text" json:"content"`
	// 编辑前的正文（add 动作为空）
	OldContent string    `gorm:"type:text" json:"old_content"`
	CreatedAt  time.Time `json:"timestamp"`
}
