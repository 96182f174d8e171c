// Package article 文章相关模型
package article

import (
	"time"
)

// Article 文章基础信息表
type Article struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"type:varchar(255);not null" json:"title"`
	// 当前正文全文（与最新版本快照一致）
	Content string `gorm:"type:text;not null" json:"content"`
	// 作者ID，创建后不可变更
	AuthorID uint `gorm:"not null;index" json:"author_id"`
	IsPublic bool `gorm:"default:false" json:"is_public"`
	// 当前版本号，从1开始，只有正文变化时递增
	// 不变量：恒等于该文章版本表中最大的 version_number
	CurrentVersion int       `gorm:"not null;default:1" json:"current_version"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ArticleCollaborator 文章协作者表
// (article_id, user_id) 唯一；协作者拥有文章的编辑/查看权限，与作者身份独立
type ArticleCollaborator struct {
	ArticleID uint      `gorm:"primaryKey" json:"article_id"`
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
