package article

import (
	"gorm.io/gorm"

	"coauthor/article-service/internal/model/article"
)

// ArticleRepository 文章仓储层
type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// ===== Article 基础操作 =====

func (r *ArticleRepository) GetByID(id uint) (*article.Article, error) {
	var art article.Article
	err := r.db.First(&art, id).Error
	return &art, err
}

func (r *ArticleRepository) Create(art *article.Article) error {
	return r.db.Create(art).Error
}

func (r *ArticleRepository) Update(art *article.Article) error {
	return r.db.Save(art).Error
}

// ListVisible 某用户可见的全部文章：公开的、自己写的、自己协作的
func (r *ArticleRepository) ListVisible(userID uint) ([]article.Article, error) {
	var articles []article.Article
	err := r.db.
		Where("is_public = ?", true).
		Or("author_id = ?", userID).
		Or("id IN (?)", r.db.Model(&article.ArticleCollaborator{}).
			Select("article_id").
			Where("user_id = ?", userID)).
		Order("updated_at DESC").
		Find(&articles).Error
	return articles, err
}

// ListPublic 全部公开文章
func (r *ArticleRepository) ListPublic() ([]article.Article, error) {
	var articles []article.Article
	err := r.db.Where("is_public = ?", true).
		Order("updated_at DESC").
		Find(&articles).Error
	return articles, err
}

// ===== 协作者操作 =====

// IsCollaborator 判断用户是否为文章协作者
func (r *ArticleRepository) IsCollaborator(articleID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&article.ArticleCollaborator{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count).Error
	return count > 0, err
}

// AddCollaborator 添加协作者
func (r *ArticleRepository) AddCollaborator(articleID, userID uint) error {
	collaborator := &article.ArticleCollaborator{
		ArticleID: articleID,
		UserID:    userID,
	}
	return r.db.Create(collaborator).Error
}

// GetCollaborators 文章的全部协作者，按加入先后排序
func (r *ArticleRepository) GetCollaborators(articleID uint) ([]article.ArticleCollaborator, error) {
	var collaborators []article.ArticleCollaborator
	err := r.db.Where("article_id = ?", articleID).
		Order("created_at ASC").
		Find(&collaborators).Error
	return collaborators, err
}

// CollaboratorIDs 文章协作者的用户ID列表
func (r *ArticleRepository) CollaboratorIDs(articleID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&article.ArticleCollaborator{}).
		Where("article_id = ?", articleID).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}

// VersionRepository 版本仓储层
type VersionRepository struct {
	db *gorm.DB
}

func NewVersionRepository(db *gorm.DB) *VersionRepository {
	return &VersionRepository{db: db}
}

func (r *VersionRepository) Create(version *article.ArticleVersion) error {
	return r.db.Create(version).Error
}

// GetNextVersionNumber 获取下一个版本号（文章维度连续递增）
func (r *VersionRepository) GetNextVersionNumber(articleID uint) int {
	var maxVersion int
	r.db.Model(&article.ArticleVersion{}).
		Where("article_id = ?", articleID).
		Select("COALESCE(MAX(version_number), 0)").
		Scan(&maxVersion)
	return maxVersion + 1
}

// GetVersions 文章的全部版本，版本号升序
func (r *VersionRepository) GetVersions(articleID uint) ([]article.ArticleVersion, error) {
	var versions []article.ArticleVersion
	err := r.db.Where("article_id = ?", articleID).
		Order("version_number ASC").
		Find(&versions).Error
	return versions, err
}

// GetByNumber 按 (article_id, version_number) 取单个版本
func (r *VersionRepository) GetByNumber(articleID uint, number int) (*article.ArticleVersion, error) {
	var version article.ArticleVersion
	err := r.db.Where("article_id = ? AND version_number = ?", articleID, number).
		First(&version).Error
	return &version, err
}
