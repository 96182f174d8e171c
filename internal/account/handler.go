package account

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"coauthor/article-service/internal/dto"
	"coauthor/article-service/internal/middleware"
	"coauthor/article-service/internal/model/user"
)

// AccountHandler 账户接口
type AccountHandler struct {
	service *AccountService
}

func NewAccountHandler(service *AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

func toUserResponse(u *user.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// Register 注册
// @Summary 用户注册
// @Description 创建新用户，用户名与邮箱必须唯一
// @Tags account
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 200 {object} response.Response
// @Router /register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, bizErr := h.service.Register(&req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, toUserResponse(u))
}

// Login 登录
// @Summary 用户登录
// @Description 邮箱密码登录，返回访问令牌并写入 cookie
// @Tags account
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} response.Response{data=dto.LoginResponse}
// @Router /login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	token, u, bizErr := h.service.Login(&req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	// 与 Authorization header 等效的 cookie 通道
	c.SetCookie("access_token", token, 24*3600, "/", "", false, true)

	dto.SuccessResponse(c, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(u),
	})
}

// Profile 当前用户资料
// @Summary 获取当前用户资料
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.UserResponse}
// @Router /profile [get]
func (h *AccountHandler) Profile(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	u, bizErr := h.service.Profile(userID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, toUserResponse(u))
}

// Search 搜索用户
// @Summary 按用户名搜索用户
// @Description 大小写不敏感子串匹配，最多返回 10 条，结果不含发起者本人
// @Tags account
// @Produce json
// @Param q query string false "用户名关键词"
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]dto.UserResponse}
// @Router /users/search [get]
func (h *AccountHandler) Search(c *gin.Context) {
	query := c.Query("q")
	excludeID := middleware.CurrentUserID(c)
	// 兼容显式传入 exclude_user_id 的调用方
	if raw := c.Query("exclude_user_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			excludeID = uint(id)
		}
	}

	users, bizErr := h.service.SearchUsers(query, excludeID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	dto.SuccessResponse(c, result)
}
