package notification

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"coauthor/article-service/internal/dto"
	"coauthor/article-service/internal/middleware"
	"coauthor/article-service/internal/pkg/response"
)

// NotificationHandler 通知接口
type NotificationHandler struct {
	service *NotificationService
}

func NewNotificationHandler(service *NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List 通知列表
// @Summary 获取当前用户通知列表
// @Description 按创建时间倒序返回，unread_only=true 时只返回未读
// @Tags notification
// @Produce json
// @Param unread_only query bool false "只看未读"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	unreadOnly := c.Query("unread_only") == "true"

	ns, bizErr := h.service.List(userID, unreadOnly)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, ns)
}

// MarkRead 标记单条已读
// @Summary 标记通知为已读
// @Description 只能操作属于自己的通知，重复标记视为成功
// @Tags notification
// @Produce json
// @Param id path int true "通知ID"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		dto.ErrorResponse(c, response.InvalidInputError("无效的通知ID"))
		return
	}

	if bizErr := h.service.MarkRead(userID, uint(id)); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"read": true})
}

// MarkAllRead 一键已读
// @Summary 标记全部通知为已读
// @Tags notification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	count, bizErr := h.service.MarkAllRead(userID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"updated": count})
}
