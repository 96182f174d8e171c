package article

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"coauthor/article-service/internal/dto"
	"coauthor/article-service/internal/middleware"
	articlemodel "coauthor/article-service/internal/model/article"
	"coauthor/article-service/internal/pkg/response"
)

// ArticleHandler 文章接口
type ArticleHandler struct {
	service     *ArticleService
	diffService *DiffService
}

func NewArticleHandler(db *gorm.DB, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		service:     NewArticleService(db, log),
		diffService: NewDiffService(db, log),
	}
}

func toArticleResponse(art *articlemodel.Article) dto.ArticleResponse {
	return dto.ArticleResponse{
		ID:             art.ID,
		Title:          art.Title,
		Content:        art.Content,
		AuthorID:       art.AuthorID,
		IsPublic:       art.IsPublic,
		CurrentVersion: art.CurrentVersion,
		CreatedAt:      art.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      art.UpdatedAt.Format(time.RFC3339),
	}
}

// articleID 解析路径中的文章ID
func articleID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		dto.ErrorResponse(c, response.InvalidInputError("无效的文章ID"))
		return 0, false
	}
	return uint(id), true
}

// Create 创建文章
// @Summary 创建文章
// @Description 创建文章并生成第1版快照
// @Tags article
// @Accept json
// @Produce json
// @Param request body dto.CreateArticleRequest true "文章信息"
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.ArticleResponse}
// @Router /articles [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userID := middleware.CurrentUserID(c)
	art, bizErr := h.service.Create(userID, &req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, toArticleResponse(art))
}

// List 文章列表
// @Summary 获取文章列表
// @Description 已认证时返回本人可见的全部文章；public_only=true 或未认证时只返回公开文章
// @Tags article
// @Produce json
// @Param public_only query bool false "只看公开文章"
// @Success 200 {object} response.Response{data=[]dto.ArticleResponse}
// @Router /articles [get]
func (h *ArticleHandler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	publicOnly := c.Query("public_only") == "true"

	articles, bizErr := h.service.List(userID, publicOnly)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	result := make([]dto.ArticleResponse, 0, len(articles))
	for i := range articles {
		result = append(result, toArticleResponse(&articles[i]))
	}
	dto.SuccessResponse(c, result)
}

// Get 文章详情
// @Summary 获取文章详情
// @Tags article
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response{data=dto.ArticleResponse}
// @Router /articles/{id} [get]
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	art, bizErr := h.service.Get(id, middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, toArticleResponse(art))
}

// Update 更新文章
// @Summary 更新文章
// @Description 正文与当前内容相同时不产生新版本，其余字段照常更新
// @Tags article
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Param request body dto.UpdateArticleRequest true "更新内容"
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.ArticleResponse}
// @Router /articles/{id} [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	art, bizErr := h.service.Update(id, middleware.CurrentUserID(c), &req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, toArticleResponse(art))
}

// AddCollaborator 添加协作者
// @Summary 添加协作者
// @Description 仅作者可操作，重复添加返回重复错误
// @Tags article
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Param request body dto.AddCollaboratorRequest true "协作者"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /articles/{id}/collaborate [post]
func (h *ArticleHandler) AddCollaborator(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	var req dto.AddCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	if bizErr := h.service.AddCollaborator(id, req.UserID, middleware.CurrentUserID(c)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"added": true})
}

// GetCollaborators 协作者列表
// @Summary 获取协作者列表
// @Tags article
// @Produce json
// @Param id path int true "文章ID"
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]dto.UserResponse}
// @Router /articles/{id}/collaborators [get]
func (h *ArticleHandler) GetCollaborators(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	users, bizErr := h.service.GetCollaborators(id, middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	result := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		})
	}
	dto.SuccessResponse(c, result)
}

// GetVersions 版本列表
// @Summary 获取版本列表
// @Description 版本号升序，附带编辑者用户名
// @Tags article
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response{data=[]dto.VersionResponse}
// @Router /articles/{id}/versions [get]
func (h *ArticleHandler) GetVersions(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	versions, bizErr := h.service.Versions(id, middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, versions)
}

// GetVersion 单个版本
// @Summary 获取指定版本
// @Tags article
// @Produce json
// @Param id path int true "文章ID"
// @Param number path int true "版本号"
// @Success 200 {object} response.Response{data=dto.VersionResponse}
// @Router /articles/{id}/versions/{number} [get]
func (h *ArticleHandler) GetVersion(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		dto.ErrorResponse(c, response.InvalidInputError("无效的版本号"))
		return
	}

	version, bizErr := h.service.Version(id, middleware.CurrentUserID(c), number)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, version)
}

// Restore 恢复历史版本
// @Summary 恢复到历史版本
// @Description 生成一个内容等于目标版本的新版本，从不截断版本历史
// @Tags article
// @Produce json
// @Param id path int true "文章ID"
// @Param number path int true "目标版本号"
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.ArticleResponse}
// @Router /articles/{id}/restore/{number} [post]
func (h *ArticleHandler) Restore(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		dto.ErrorResponse(c, response.InvalidInputError("无效的版本号"))
		return
	}

	art, bizErr := h.service.Restore(id, middleware.CurrentUserID(c), number)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, toArticleResponse(art))
}

// Compare 版本对比
// @Summary 对比两个版本
// @Description 按行位置对比，所有新增行在前、删除行在后
// @Tags article
// @Produce json
// @Param id path int true "文章ID"
// @Param v1 query int true "旧版本号"
// @Param v2 query int true "新版本号"
// @Success 200 {object} response.Response{data=dto.CompareResponse}
// @Router /articles/{id}/compare [get]
func (h *ArticleHandler) Compare(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	v1, err1 := strconv.Atoi(c.Query("v1"))
	v2, err2 := strconv.Atoi(c.Query("v2"))
	if err1 != nil || err2 != nil || v1 < 1 || v2 < 1 {
		dto.ErrorResponse(c, response.InvalidInputError("无效的版本号参数"))
		return
	}

	// 对比前先做一次查看权限检查
	if _, bizErr := h.service.Get(id, middleware.CurrentUserID(c)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	result, bizErr := h.diffService.CompareVersions(id, v1, v2)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

// History 编辑流水
// @Summary 获取文章编辑历史
// @Description 只追加的编辑流水，按发生顺序返回
// @Tags article
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} response.Response
// @Router /articles/{id}/history [get]
func (h *ArticleHandler) History(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	entries, bizErr := h.service.History(id, middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, entries)
}
