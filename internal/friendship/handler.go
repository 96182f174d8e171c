package friendship

import (
	"time"

	"github.com/gin-gonic/gin"

	"coauthor/article-service/internal/dto"
	"coauthor/article-service/internal/middleware"
)

// FriendshipHandler 好友接口
type FriendshipHandler struct {
	service *FriendshipService
}

func NewFriendshipHandler(service *FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{service: service}
}

// AddFriend 添加好友
// @Summary 添加好友
// @Description 好友关系无向，任一方向已存在时返回重复错误
// @Tags friendship
// @Accept json
// @Produce json
// @Param request body dto.AddFriendRequest true "好友ID"
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /friends [post]
func (h *FriendshipHandler) AddFriend(c *gin.Context) {
	var req dto.AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	userID := middleware.CurrentUserID(c)
	if bizErr := h.service.AddFriend(userID, req.FriendID); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, gin.H{"added": true})
}

// ListFriends 好友列表
// @Summary 获取好友列表
// @Tags friendship
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]dto.UserResponse}
// @Router /friends [get]
func (h *FriendshipHandler) ListFriends(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	users, bizErr := h.service.ListFriends(userID)
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
