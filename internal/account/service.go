package account

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coauthor/article-service/internal/dto"
	"coauthor/article-service/internal/model/user"
	"coauthor/article-service/internal/pkg/response"
)

// 搜索结果上限
const searchLimit = 10

// AccountService 账户服务
type AccountService struct {
	userRepo *UserRepository
	log      zerolog.Logger
}

func NewAccountService(db *gorm.DB, log zerolog.Logger) *AccountService {
	return &AccountService{
		userRepo: NewUserRepository(db),
		log:      log.With().Str("service", "account").Logger(),
	}
}

// Register 注册新用户
// 用户名与邮箱均按精确匹配查重（大小写敏感），冲突时返回 Duplicate
func (s *AccountService) Register(req *dto.RegisterRequest) (*user.User, *response.BusinessError) {
	existing, err := s.userRepo.FindByUsernameOrEmail(req.Username, req.Email)
	if err == nil && existing != nil && existing.ID != 0 {
		if existing.Username == req.Username {
			return nil, response.DuplicateError("用户名已被占用")
		}
		return nil, response.DuplicateError("邮箱已被注册")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewBusinessError(
			response.WithErrorMessage("查询用户失败"),
			response.WithError(err),
		)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorMessage("密码处理失败"),
			response.WithError(err),
		)
	}

	u := &user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(u); err != nil {
		// 并发注册时唯一索引兜底
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return nil, response.DuplicateError("用户名或邮箱已被注册")
		}
		return nil, response.NewBusinessError(
			response.WithErrorMessage("创建用户失败"),
			response.WithError(err),
		)
	}

	s.log.Info().Uint("user_id", u.ID).Str("username", u.Username).Msg("user registered")
	return u, nil
}

// Login 邮箱+密码登录，成功返回访问令牌
// 邮箱不存在与密码错误返回同一错误，避免账号枚举
func (s *AccountService) Login(req *dto.LoginRequest) (string, *user.User, *response.BusinessError) {
	u, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("邮箱或密码错误"),
			)
		}
		return "", nil, response.NewBusinessError(
			response.WithErrorMessage("查询用户失败"),
			response.WithError(err),
		)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("邮箱或密码错误"),
		)
	}

	token, err := GenerateAccessToken(u)
	if err != nil {
		return "", nil, response.NewBusinessError(
			response.WithErrorMessage("令牌签发失败"),
			response.WithError(err),
		)
	}

	s.log.Info().Uint("user_id", u.ID).Msg("user logged in")
	return token, u, nil
}

// Profile 查询当前用户资料
func (s *AccountService) Profile(userID uint) (*user.User, *response.BusinessError) {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFoundError("用户不存在")
		}
		return nil, response.NewBusinessError(
			response.WithErrorMessage("查询用户失败"),
			response.WithError(err),
		)
	}
	return u, nil
}

// SearchUsers 用户名子串搜索（大小写不敏感），最多返回 10 条
// excludeID 非 0 时结果排除该用户（通常为发起者本人）
func (s *AccountService) SearchUsers(query string, excludeID uint) ([]user.User, *response.BusinessError) {
	users, err := s.userRepo.Search(query, excludeID, searchLimit)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorMessage("搜索用户失败"),
			response.WithError(err),
		)
	}
	return users, nil
}
