package friendship

import (
	"gorm.io/gorm"

	"coauthor/article-service/internal/model/friendship"
)

// FriendshipRepository 好友关系仓储层
type FriendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

func (r *FriendshipRepository) Create(f *friendship.Friendship) error {
	return r.db.Create(f).Error
}

// Exists 判断两个用户之间是否已存在好友关系（不分方向）
func (r *FriendshipRepository) Exists(userID, friendID uint) (bool, error) {
	var count int64
	err := r.db.Model(&friendship.Friendship{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Count(&count).Error
	return count > 0, err
}

// FriendIDs 某用户的全部好友ID，两个方向都算
func (r *FriendshipRepository) FriendIDs(userID uint) ([]uint, error) {
	var rows []friendship.Friendship
	err := r.db.Where("user_id = ? OR friend_id = ?", userID, userID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		if row.UserID == userID {
			ids = append(ids, row.FriendID)
		} else {
			ids = append(ids, row.UserID)
		}
	}
	return ids, nil
}
