package article

import "time"

// ArticleVersion 文章版本历史表 (全量存储)
// 版本一旦写入不再修改或删除
type ArticleVersion struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ArticleID uint `gorm:"not null;uniqueIndex:idx_article_version_unique" json:"article_id"`
	// 版本号，在article_id下从1开始连续递增，无空洞无重复
	VersionNumber int `gorm:"not null;uniqueIndex:idx_article_version_unique" json:"version_number"`
	// 编辑者ID
	UserID uint `gorm:"not null;index" json:"user_id"`
	// 正文全量快照，不是增量
	Content string `gorm:"type:text;not null" json:"content"`
	// 提交说明
	Note      string    `gorm:"type:varchar(255)" json:"note"`
	CreatedAt time.Time `json:"created_at"`
}
