// Package permission 统一权限检查
// 文章访问规则：
//   - 查看：公开文章 或 作者 或 协作者
//   - 编辑（更新/恢复版本）：作者 或 协作者
//   - 协作者管理：仅作者
//
// 权限只区分作者/协作者/其他人，没有角色等级
package permission

import (
	"gorm.io/gorm"
)

// PermissionService 权限检查服务
type PermissionService struct {
	db *gorm.DB
}

// NewPermissionService 创建权限服务实例
func NewPermissionService(db *gorm.DB) *PermissionService {
	return &PermissionService{db: db}
}

// IsCollaborator 纯成员测试：用户是否是文章协作者
func (s *PermissionService) IsCollaborator(articleID uint, userID uint) bool {
	var count int64
	s.db.Table("article_collaborators").
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count)
	return count > 0
}

// isAuthor 用户是否是文章作者
func (s *PermissionService) isAuthor(articleID uint, userID uint) bool {
	var authorID uint
	err := s.db.Table("articles").
		Select("author_id").
		Where("id = ?", articleID).
		Scan(&authorID).Error
	return err == nil && authorID != 0 && authorID == userID
}

// isPublic 文章是否公开
func (s *PermissionService) isPublic(articleID uint) bool {
	var isPublic bool
	err := s.db.Table("articles").
		Select("is_public").
		Where("id = ?", articleID).
		Scan(&isPublic).Error
	return err == nil && isPublic
}

// CanView 查看权限：公开 或 作者 或 协作者
func (s *PermissionService) CanView(articleID uint, userID uint) bool {
	if s.isPublic(articleID) {
		return true
	}
	if userID == 0 {
		return false
	}
	return s.isAuthor(articleID, userID) || s.IsCollaborator(articleID, userID)
}

// CanEdit 编辑权限：作者 或 协作者
// 更新正文、恢复历史版本都走这里
func (s *PermissionService) CanEdit(articleID uint, userID uint) bool {
	if userID == 0 {
		return false
	}
	return s.isAuthor(articleID, userID) || s.IsCollaborator(articleID, userID)
}

// CanManageCollaborators 协作者管理权限：仅作者
func (s *PermissionService) CanManageCollaborators(articleID uint, userID uint) bool {
	if userID == 0 {
		return false
	}
	return s.isAuthor(articleID, userID)
}

// Decide 根据文章属性直接判定查看权限，不访问数据库
// 用于已经加载文章记录的调用方
func Decide(isPublic bool, authorID uint, userID uint, isCollaborator bool) bool {
	if isPublic {
		return true
	}
	if userID == 0 {
		return false
	}
	return authorID == userID || isCollaborator
}
