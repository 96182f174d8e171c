package account

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"coauthor/article-service/config"
	"coauthor/article-service/internal/middleware"
	"coauthor/article-service/internal/model/user"
)

// GenerateAccessToken 为用户签发访问令牌
func GenerateAccessToken(u *user.User) (string, error) {
	expireHours := config.Conf.JWT.ExpireTime
	if expireHours <= 0 {
		expireHours = 24
	}

	claims := middleware.Claims{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   u.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.JWT.Secret))
}
