package article

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"coauthor/article-service/internal/account"
	"coauthor/article-service/internal/dto"
	"coauthor/article-service/internal/history"
	articlemodel "coauthor/article-service/internal/model/article"
	historymodel "coauthor/article-service/internal/model/history"
	"coauthor/article-service/internal/model/notification"
	"coauthor/article-service/internal/model/user"
	notif "coauthor/article-service/internal/notification"
	"coauthor/article-service/internal/permission"
	"coauthor/article-service/internal/pkg/response"
)

// ArticleService 文章服务
type ArticleService struct {
	articleRepo    *ArticleRepository
	versionService *VersionService
	userRepo       *account.UserRepository
	historyRepo    *history.HistoryRepository
	permService    *permission.PermissionService
	notifier       *notif.NotificationService
	log            zerolog.Logger
}

func NewArticleService(db *gorm.DB, log zerolog.Logger) *ArticleService {
	return &ArticleService{
		articleRepo:    NewArticleRepository(db),
		versionService: NewVersionService(db, log),
		userRepo:       account.NewUserRepository(db),
		historyRepo:    history.NewHistoryRepository(db),
		permService:    permission.NewPermissionService(db),
		notifier:       notif.NewNotificationService(db, log),
		log:            log.With().Str("service", "article").Logger(),
	}
}

// Create 创建文章
// 同步写入第1版快照和 add 流水；作者不进协作者表
func (s *ArticleService) Create(userID uint, req *dto.CreateArticleRequest) (*articlemodel.Article, *response.BusinessError) {
	art := &articlemodel.Article{
		Title:          req.Title,
		Content:        req.Content,
		AuthorID:       userID,
		IsPublic:       req.IsPublic,
		CurrentVersion: 1,
	}
	if err := s.articleRepo.Create(art); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorMessage("创建文章失败"),
			response.WithError(err),
		)
	}

	note := req.Note
	if note == "" {
		note = "初始版本"
	}
	if _, err := s.versionService.CreateVersion(art.ID, userID, req.Content, note, 1); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorMessage("创建初始版本失败"),
			response.WithError(err),
		)
	}

	if err := s.historyRepo.Add(art.ID, userID, historymodel.ActionAdd, req.Content, ""); err != nil {
		s.log.Error().Err(err).Uint("article_id", art.ID).Msg("append add history failed")
	}

	s.log.Info().Uint("article_id", art.ID).Uint("user_id", userID).Msg("article created")
	return art, nil
}

// Get 查看文章
// 不可见与不存在都区分返回：不存在 NotFound，私有且无权限 Forbidden
func (s *ArticleService) Get(articleID, userID uint) (*articlemodel.Article, *response.BusinessError) {
	art, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("文章不存在")
		}
		return nil, response.NewBusinessError(
			response.WithErrorMessage("查询文章失败"),
			response.WithError(err),
		)
	}

	if !permission.Decide(art.IsPublic, art.AuthorID, userID, s.permService.IsCollaborator(articleID, userID)) {
		return nil, response.ForbiddenError("无权查看该文章")
	}
	return art, nil
}

// List 文章列表
// publicOnly 为 true 时只取公开文章，否则取当前用户可见的全部文章
func (s *ArticleService) List(userID uint, publicOnly bool) ([]articlemodel.Article, *response.BusinessError) {
	var (
		articles []articlemodel.Article
		err      error
	)
	if publicOnly || userID == 0 {
		articles, err = s.articleRepo.ListPublic()
	} else {
		articles, err = s.articleRepo.ListVisible(userID)
	}
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorMessage("查询文章列表失败"),
			response.WithError(err),
		)
	}
	return articles, nil
}

// Update 更新文章
// 标题/公开性有值就改；正文交给版本引擎，逐字节相同时不产生新版本
func (s *ArticleService) Update(articleID, userID uint, req *dto.UpdateArticleRequest) (*articlemodel.Article, *response.BusinessError) {
	art, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("文章不存在")
		}
		return nil, response.NewBusinessError(
			response.WithErrorMessage("查询文章失败"),
			response.WithError(err),
		)
	}

	if !s.permService.CanEdit(articleID, userID) {
		return nil, response.ForbiddenError("无权编辑该文章")
	}

	// 1. 非正文字段无条件更新
	changed := false
	if req.Title != nil && *req.Title != art.Title {
		art.Title = *req.Title
		changed = true
	}
	if req.IsPublic != nil && *req.IsPublic != art.IsPublic {
		art.IsPublic = *req.IsPublic
		changed = true
	}
	if changed {
		art.UpdatedAt = time.Now()
		if err := s.articleRepo.Update(art); err != nil {
			return nil, response.NewBusinessError(
				response.WithErrorMessage("更新文章失败"),
				response.WithError(err),
			)
		}
	}

	// 2. 正文走版本引擎
	if req.Content != nil {
		if _, err := s.versionService.UpdateArticleContent(art, userID, *req.Content, req.Note); err != nil {
			return nil, response.NewBusinessError(
				response.WithErrorMessage("更新正文失败"),
				response.WithError(err),
			)
		}
	}

	return art, nil
}

// Restore 恢复到历史版本
// 永远向前追加：当前在第5版时恢复第2版，会生成内容等于第2版的第6版
func (s *ArticleService) Restore(articleID, userID uint, versionNumber int) (*articlemodel.Article, *response.BusinessError) {
	art, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("文章不存在")
		}
		return nil, response.NewBusinessError(
			response.WithErrorMessage("查询文章失败"),
			response.WithError(err),
		)
	}

	if !s.permService.CanEdit(articleID, userID) {
		return nil, response.ForbiddenError("无权编辑该文章")
	}

	target, bizErr := s.versionService.GetVersion(articleID, versionNumber)
	if bizErr != nil {
		return nil, bizErr
	}

	note := fmt.Sprintf("Restored from version %d", versionNumber)
	if _, err := s.versionService.UpdateArticleContent(art, userID, target.Content, note); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorMessage("恢复版本失败"),
			response.WithError(err),
		)
	}

	s.log.Info().
		Uint("article_id", articleID).
		Uint("user_id", userID).
		Int("restored_from", versionNumber).
		Int("current_version", art.CurrentVersion).
		Msg("article restored")
	return art, nil
}

// AddCollaborator 添加协作者，仅作者可操作
// 重复添加返回 Duplicate；成功后给被邀请者投递 collaboration_invite 通知
func (s *ArticleService) AddCollaborator(articleID, targetUserID, byUserID uint) *response.BusinessError {
	art, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("文章不存在")
		}
		return response.NewBusinessError(
			response.WithErrorMessage("查询文章失败"),
			response.WithError(err),
		)
	}

	if !s.permService.CanManageCollaborators(articleID, byUserID) {
		return response.ForbiddenError("仅作者可以管理协作者")
	}

	if _, err := s.userRepo.GetByID(targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFoundError("用户不存在")
		}
		return response.NewBusinessError(
			response.WithErrorMessage("查询用户失败"),
			response.WithError(err),
		)
	}

	exists, err := s.articleRepo.IsCollaborator(articleID, targetUserID)
	if err != nil {
		return response.NewBusinessError(
			response.WithErrorMessage("查询协作者失败"),
			response.WithError(err),
		)
	}
	if exists {
		return response.DuplicateError("该用户已是协作者")
	}

	if err := s.articleRepo.AddCollaborator(articleID, targetUserID); err != nil {
		return response.NewBusinessError(
			response.WithErrorMessage("添加协作者失败"),
			response.WithError(err),
		)
	}

	inviterName := fmt.Sprintf("用户%d", byUserID)
	if inviter, err := s.userRepo.GetByID(byUserID); err == nil {
		inviterName = inviter.Username
	}
	_ = s.notifier.Notify(
		targetUserID,
		notification.TypeCollaborationInvite,
		"协作邀请",
		fmt.Sprintf("%s 邀请你协作编辑文章《%s》", inviterName, art.Title),
		"",
	)

	s.log.Info().
		Uint("article_id", articleID).
		Uint("target_user_id", targetUserID).
		Uint("by_user_id", byUserID).
		Msg("collaborator added")
	return nil
}

// GetCollaborators 协作者的用户资料列表，需要查看权限
func (s *ArticleService) GetCollaborators(articleID, userID uint) ([]user.User, *response.BusinessError) {
	if _, bizErr := s.Get(articleID, userID); bizErr != nil {
		return nil, bizErr
	}

	ids, err := s.articleRepo.CollaboratorIDs(articleID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorMessage("查询协作者失败"),
			response.WithError(err),
		)
	}

	users, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorMessage("查询协作者失败"),
			response.WithError(err),
		)
	}

	// 保持加入先后顺序
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

// History 文章的编辑流水，需要查看权限
func (s *ArticleService) History(articleID, userID uint) ([]historymodel.HistoryEntry, *response.BusinessError) {
	if _, bizErr := s.Get(articleID, userID); bizErr != nil {
		return nil, bizErr
	}

	entries, err := s.historyRepo.ListByArticle(articleID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorMessage("查询编辑历史失败"),
			response.WithError(err),
		)
	}
	return entries, nil
}

// Versions 文章的版本列表，需要查看权限
func (s *ArticleService) Versions(articleID, userID uint) ([]dto.VersionResponse, *response.BusinessError) {
	if _, bizErr := s.Get(articleID, userID); bizErr != nil {
		return nil, bizErr
	}

	versions, err := s.versionService.GetVersions(articleID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorMessage("查询版本失败"),
			response.WithError(err),
		)
	}
	return versions, nil
}

// Version 按版本号查看单个版本，需要查看权限
func (s *ArticleService) Version(articleID, userID uint, number int) (*dto.VersionResponse, *response.BusinessError) {
	if _, bizErr := s.Get(articleID, userID); bizErr != nil {
		return nil, bizErr
	}
	return s.versionService.GetVersion(articleID, number)
}
