package article

import (
	"encoding/json"
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
	notif "coauthor/article-service/internal/notification"
	"coauthor/article-service/internal/pkg/response"
)

// VersionService 版本引擎
// 维护不变量：article.CurrentVersion 恒等于版本表中该文章最大的 version_number，
// 版本号从1起连续无空洞，版本一经写入不再修改
type VersionService struct {
	articleRepo *ArticleRepository
	versionRepo *VersionRepository
	userRepo    *account.UserRepository
	historyRepo *history.HistoryRepository
	notifier    *notif.NotificationService
	log         zerolog.Logger
}

func NewVersionService(db *gorm.DB, log zerolog.Logger) *VersionService {
	return &VersionService{
		articleRepo: NewArticleRepository(db),
		versionRepo: NewVersionRepository(db),
		userRepo:    account.NewUserRepository(db),
		historyRepo: history.NewHistoryRepository(db),
		notifier:    notif.NewNotificationService(db, log),
		log:         log.With().Str("service", "version").Logger(),
	}
}

// CreateVersion 追加一个版本快照
// 版本号由调用方给定并保证连续性，这里不做空洞检查
func (s *VersionService) CreateVersion(articleID, userID uint, content, note string, versionNumber int) (*articlemodel.ArticleVersion, error) {
	version := &articlemodel.ArticleVersion{
		ArticleID:     articleID,
		VersionNumber: versionNumber,
		UserID:        userID,
		Content:       content,
		Note:          note,
	}
	if err := s.versionRepo.Create(version); err != nil {
		return nil, err
	}
	return version, nil
}

// UpdateArticleContent 更新文章正文
// 新旧正文逐字节相同时不产生任何版本；不同时递增版本号、写入快照、
// 记录 edit 流水，并给编辑者之外的所有协作者投递 article_update 通知
// 返回是否真的产生了新版本
func (s *VersionService) UpdateArticleContent(art *articlemodel.Article, userID uint, content, note string) (bool, error) {
	if art.Content == content {
		return false, nil
	}

	oldContent := art.Content
	nextNumber := art.CurrentVersion + 1

	if _, err := s.CreateVersion(art.ID, userID, content, note, nextNumber); err != nil {
		return false, err
	}

	art.Content = content
	art.CurrentVersion = nextNumber
	art.UpdatedAt = time.Now()
	if err := s.articleRepo.Update(art); err != nil {
		return false, err
	}

	if err := s.historyRepo.Add(art.ID, userID, historymodel.ActionEdit, content, oldContent); err != nil {
		s.log.Error().Err(err).Uint("article_id", art.ID).Msg("append edit history failed")
	}

	s.fanOutUpdate(art, userID, oldContent, content, nextNumber)

	s.log.Info().
		Uint("article_id", art.ID).
		Uint("user_id", userID).
		Int("version", nextNumber).
		Msg("article content updated")
	return true, nil
}

// fanOutUpdate 给编辑者之外的协作者投递更新通知，附带编辑规模统计
func (s *VersionService) fanOutUpdate(art *articlemodel.Article, editorID uint, oldContent, newContent string, versionNumber int) {
	collaboratorIDs, err := s.articleRepo.CollaboratorIDs(art.ID)
	if err != nil {
		s.log.Error().Err(err).Uint("article_id", art.ID).Msg("load collaborators failed")
		return
	}

	targets := make([]uint, 0, len(collaboratorIDs))
	for _, id := range collaboratorIDs {
		if id != editorID {
			targets = append(targets, id)
		}
	}
	if len(targets) == 0 {
		return
	}

	editorName := fmt.Sprintf("用户%d", editorID)
	if editor, err := s.userRepo.GetByID(editorID); err == nil {
		editorName = editor.Username
	}

	data, _ := json.Marshal(map[string]any{
		"article_id": art.ID,
		"version":    versionNumber,
		"stats":      ComputeEditStats(oldContent, newContent),
	})

	_ = s.notifier.NotifyAll(
		targets,
		notification.TypeArticleUpdate,
		"文章已更新",
		fmt.Sprintf("%s 更新了文章《%s》", editorName, art.Title),
		string(data),
	)
}

// GetVersions 文章的全部版本，版本号升序，附带编辑者用户名
func (s *VersionService) GetVersions(articleID uint) ([]dto.VersionResponse, error) {
	versions, err := s.versionRepo.GetVersions(articleID)
	if err != nil {
		return nil, err
	}

	usernames, err := s.editorNames(versions)
	if err != nil {
		return nil, err
	}

	result := make([]dto.VersionResponse, 0, len(versions))
	for _, v := range versions {
		result = append(result, toVersionResponse(&v, usernames[v.UserID]))
	}
	return result, nil
}

// GetVersion 按版本号取单个版本
func (s *VersionService) GetVersion(articleID uint, number int) (*dto.VersionResponse, *response.BusinessError) {
	version, err := s.versionRepo.GetByNumber(articleID, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("版本不存在")
		}
		return nil, response.NewBusinessError(
			response.WithErrorMessage("查询版本失败"),
			response.WithError(err),
		)
	}

	username := ""
	if u, err := s.userRepo.GetByID(version.UserID); err == nil {
		username = u.Username
	}
	resp := toVersionResponse(version, username)
	return &resp, nil
}

// editorNames 批量取版本编辑者的用户名
func (s *VersionService) editorNames(versions []articlemodel.ArticleVersion) (map[uint]string, error) {
	idSet := make(map[uint]struct{}, len(versions))
	ids := make([]uint, 0, len(versions))
	for _, v := range versions {
		if _, seen := idSet[v.UserID]; !seen {
			idSet[v.UserID] = struct{}{}
			ids = append(ids, v.UserID)
		}
	}

	users, err := s.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}
	return names, nil
}

func toVersionResponse(v *articlemodel.ArticleVersion, username string) dto.VersionResponse {
	return dto.VersionResponse{
		ID:            v.ID,
		ArticleID:     v.ArticleID,
		VersionNumber: v.VersionNumber,
		UserID:        v.UserID,
		Username:      username,
		Content:       v.Content,
		Note:          v.Note,
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
	}
}
