package notification

import (
	"gorm.io/gorm"

	"coauthor/article-service/internal/model/notification"
)

// NotificationRepository 通知仓储层
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(n *notification.Notification) error {
	return r.db.Create(n).Error
}

func (r *NotificationRepository) CreateBatch(ns []notification.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	return r.db.Create(&ns).Error
}

func (r *NotificationRepository) GetByID(id uint) (*notification.Notification, error) {
	var n notification.Notification
	err := r.db.First(&n, id).Error
	return &n, err
}

// ListByUser 按创建时间倒序返回某用户的通知，unreadOnly 为 true 时只取未读
func (r *NotificationRepository) ListByUser(userID uint, unreadOnly bool) ([]notification.Notification, error) {
	var ns []notification.Notification
	q := r.db.Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	err := q.Order("created_at DESC, id DESC").Find(&ns).Error
	return ns, err
}

func (r *NotificationRepository) MarkRead(id uint) error {
	return r.db.Model(&notification.Notification{}).
		Where("id = ?", id).
		Update("read", true).Error
}

// MarkAllRead 置某用户全部未读通知为已读，返回影响行数
func (r *NotificationRepository) MarkAllRead(userID uint) (int64, error) {
	result := r.db.Model(&notification.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	return result.RowsAffected, result.Error
}
