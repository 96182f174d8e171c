package friendship

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"coauthor/article-service/internal/account"
	"coauthor/article-service/internal/model/friendship"
	"coauthor/article-service/internal/model/notification"
	"coauthor/article-service/internal/model/user"
	notif "coauthor/article-service/internal/notification"
	"coauthor/article-service/internal/pkg/response"
)

// FriendshipService 好友服务
type FriendshipService struct {
	repo     *FriendshipRepository
	userRepo *account.UserRepository
	notifier *notif.NotificationService
	log      zerolog.Logger
}

func NewFriendshipService(db *gorm.DB, log zerolog.Logger) *FriendshipService {
	return &FriendshipService{
		repo:     NewFriendshipRepository(db),
		userRepo: account.NewUserRepository(db),
		notifier: notif.NewNotificationService(db, log),
		log:      log.With().Str("service", "friendship").Logger(),
	}
}

// AddFriend 添加好友
// 关系无向：任一方向已存在时视为重复，返回 Duplicate
// 成功后给对方投递 friend_request 通知
func (s *FriendshipService) AddFriend(userID, friendID uint) *response.BusinessError {
	if userID == friendID {
		return response.InvalidInputError("不能添加自己为好友")
	}

	friendUser, err := s.userRepo.GetByID(friendID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("用户不存在")
		}
		return response.NewBusinessError(
			response.WithErrorMessage("查询用户失败"),
			response.WithError(err),
		)
	}

	exists, err := s.repo.Exists(userID, friendID)
	if err != nil {
		return response.NewBusinessError(
			response.WithErrorMessage("查询好友关系失败"),
			response.WithError(err),
		)
	}
	if exists {
		return response.DuplicateError("已经是好友")
	}

	if err := s.repo.Create(&friendship.Friendship{UserID: userID, FriendID: friendID}); err != nil {
		return response.NewBusinessError(
			response.WithErrorMessage("添加好友失败"),
			response.WithError(err),
		)
	}

	// 通知失败不影响主流程
	requester, err := s.userRepo.GetByID(userID)
	requesterName := fmt.Sprintf("用户%d", userID)
	if err == nil {
		requesterName = requester.Username
	}
	_ = s.notifier.Notify(
		friendID,
		notification.TypeFriendRequest,
		"新的好友",
		fmt.Sprintf("%s 已将你添加为好友", requesterName),
		"",
	)

	s.log.Info().Uint("user_id", userID).Uint("friend_id", friendUser.ID).Msg("friend added")
	return nil
}

// ListFriends 好友列表，按成为好友的先后排序
func (s *FriendshipService) ListFriends(userID uint) ([]user.User, *response.BusinessError) {
	ids, err := s.repo.FriendIDs(userID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorMessage("查询好友关系失败"),
			response.WithError(err),
		)
	}

	users, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorMessage("查询好友失败"),
			response.WithError(err),
		)
	}

	// GetByIDs 不保证顺序，按关系建立顺序重排
	byID := make(map[uint]user.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	ordered := make([]user.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			ordered = append(ordered, u)
		}
	}
	return ordered, nil
}
