package analysis

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"coauthor/article-service/internal/article"
	"coauthor/article-service/internal/dto"
	"coauthor/article-service/internal/middleware"
	"coauthor/article-service/internal/pkg/response"
)

// AnalysisHandler 文本分析接口
// 分析与提问都要求对文章有查看权限，正文取当前版本
type AnalysisHandler struct {
	service        *AnalysisService
	articleService *article.ArticleService
}

func NewAnalysisHandler(service *AnalysisService, articleService *article.ArticleService) *AnalysisHandler {
	return &AnalysisHandler{
		service:        service,
		articleService: articleService,
	}
}

// Analyze 分析文章
// @Summary 分析文章正文
// @Description 结果按文章当前版本缓存；外部服务失败时返回降级文案
// @Tags analysis
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Param request body dto.AnalyzeRequest true "分析模式"
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.AnalysisResponse}
// @Router /articles/{id}/analyze [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		dto.ErrorResponse(c, response.InvalidInputError("无效的文章ID"))
		return
	}

	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	art, bizErr := h.articleService.Get(uint(id), middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	result := h.service.Analyze(c.Request.Context(), art.ID, art.CurrentVersion, art.Content, req.Mode)
	dto.SuccessResponse(c, result)
}

// Question 基于正文提问
// @Summary 基于文章正文提问
// @Tags analysis
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Param request body dto.QuestionRequest true "问题"
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.AnalysisResponse}
// @Router /articles/{id}/question [post]
func (h *AnalysisHandler) Question(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		dto.ErrorResponse(c, response.InvalidInputError("无效的文章ID"))
		return
	}

	var req dto.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	art, bizErr := h.articleService.Get(uint(id), middleware.CurrentUserID(c))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	result := h.service.Answer(c.Request.Context(), art.ID, art.Content, req.Question)
	dto.SuccessResponse(c, result)
}
