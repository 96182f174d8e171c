// Package friendship 好友关系模型
package friendship

import "time"

// Friendship 好友关系表
// 存储为单条有向记录，语义上无向：同一对用户无论方向只允许一条
// 无向唯一性由服务层双向查重保证，见 friendship.Service.AddFriend
type Friendship struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	FriendID  uint      `gorm:"not null;index" json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}
