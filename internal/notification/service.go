package notification

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"coauthor/article-service/internal/model/notification"
	"coauthor/article-service/internal/pkg/response"
)

// NotificationService 通知服务
// 投递失败不会影响触发它的主流程，调用方只记日志
type NotificationService struct {
	repo *NotificationRepository
	log  zerolog.Logger
}

func NewNotificationService(db *gorm.DB, log zerolog.Logger) *NotificationService {
	return &NotificationService{
		repo: NewNotificationRepository(db),
		log:  log.With().Str("service", "notification").Logger(),
	}
}

// Notify 给单个用户投递通知
func (s *NotificationService) Notify(userID uint, ntype, title, message, data string) error {
	n := &notification.Notification{
		UserID:  userID,
		Type:    ntype,
		Title:   title,
		Message: message,
		Data:    data,
	}
	if err := s.repo.Create(n); err != nil {
		s.log.Error().Err(err).Uint("user_id", userID).Str("type", ntype).Msg("notify failed")
		return err
	}
	return nil
}

// NotifyAll 给一组用户投递同一通知
func (s *NotificationService) NotifyAll(userIDs []uint, ntype, title, message, data string) error {
	if len(userIDs) == 0 {
		return nil
	}
	ns := make([]notification.Notification, 0, len(userIDs))
	for _, uid := range userIDs {
		ns = append(ns, notification.Notification{
			UserID:  uid,
			Type:    ntype,
			Title:   title,
			Message: message,
			Data:    data,
		})
	}
	if err := s.repo.CreateBatch(ns); err != nil {
		s.log.Error().Err(err).Ints("user_ids", toInts(userIDs)).Str("type", ntype).Msg("notify batch failed")
		return err
	}
	return nil
}

// List 当前用户的通知列表，新的在前
func (s *NotificationService) List(userID uint, unreadOnly bool) ([]notification.Notification, *response.BusinessError) {
	ns, err := s.repo.ListByUser(userID, unreadOnly)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorMessage("查询通知失败"),
			response.WithError(err),
		)
	}
	return ns, nil
}

// MarkRead 将某条通知置为已读
// 仅允许操作属于自己的通知；对已读通知重复操作同样返回成功
func (s *NotificationService) MarkRead(userID, notificationID uint) *response.BusinessError {
	n, err := s.repo.GetByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("通知不存在")
		}
		return response.NewBusinessError(
			response.WithErrorMessage("查询通知失败"),
			response.WithError(err),
		)
	}
	if n.UserID != userID {
		// 不泄露他人通知的存在性
		return response.NotFoundError("通知不存在")
	}
	if n.Read {
		return nil
	}
	if err := s.repo.MarkRead(notificationID); err != nil {
		return response.NewBusinessError(
			response.WithErrorMessage("更新通知失败"),
			response.WithError(err),
		)
	}
	return nil
}

// MarkAllRead 一键已读，返回本次置为已读的数量
func (s *NotificationService) MarkAllRead(userID uint) (int64, *response.BusinessError) {
	count, err := s.repo.MarkAllRead(userID)
	if err != nil {
		return 0, response.NewBusinessError(
			response.WithErrorMessage("更新通知失败"),
			response.WithError(err),
		)
	}
	return count, nil
}

func toInts(ids []uint) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}
