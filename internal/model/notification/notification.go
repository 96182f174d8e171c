// Package notification 通知模型
package notification

import "time"

// 通知类型
const (
	TypeFriendRequest       = "friend_request"
	TypeArticleUpdate       = "article_update"
	TypeCollaborationInvite = "collaboration_invite"
)

// Notification 用户通知表
// read 是唯一可变字段，只允许 false -> true
type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Type    string `gorm:"type:varchar(30);not null" json:"type"`
	Title   string `gorm:"type:varchar(255);not null" json:"title"`
	Message string `gorm:"type:text" json:"message"`
	// 附加数据，JSON 文本
	Data      string    `gorm:"type:text" json:"data,omitempty"`
	Read      bool      `gorm:"default:false;index" json:"read"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
