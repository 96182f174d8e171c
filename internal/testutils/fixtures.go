package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coauthor/article-service/internal/model/article"
	"coauthor/article-service/internal/model/user"
)

// CreateTestUser creates a test user with unique username/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()
	username := fmt.Sprintf("test_user_%s", uniqueID)
	email := fmt.Sprintf("test_%s@example.com", uniqueID)

	hash, _ := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.MinCost)

	testUser := &user.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithUsername sets the username
func WithUsername(username string) UserOption {
	return func(u *user.User) {
		u.Username = username
	}
}

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *user.User) {
		u.Email = email
	}
}

// WithPassword sets the password hash from a plaintext password
func WithPassword(password string) UserOption {
	return func(u *user.User) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		u.PasswordHash = string(hash)
	}
}

// CreateTestArticle creates a test article with its initial version
func CreateTestArticle(db *gorm.DB, authorID uint, opts ...ArticleOption) *article.Article {
	uniqueID := uuid.New().String()
	title := fmt.Sprintf("Test Article %s", uniqueID)

	testArticle := &article.Article{
		Title:          title,
		Content:        "test content",
		AuthorID:       authorID,
		IsPublic:       false,
		CurrentVersion: 1,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	for _, opt := range opts {
		opt(testArticle)
	}

	if err := db.Create(testArticle).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test article: %v", err))
	}

	initialVersion := &article.ArticleVersion{
		ArticleID:     testArticle.ID,
		VersionNumber: 1,
		UserID:        authorID,
		Content:       testArticle.Content,
		Note:          "初始版本",
		CreatedAt:     time.Now(),
	}
	if err := db.Create(initialVersion).Error; err != nil {
		panic(fmt.Sprintf("Failed to create initial version: %v", err))
	}

	return testArticle
}

// ArticleOption configures test article
type ArticleOption func(*article.Article)

// WithTitle sets the article title
func WithTitle(title string) ArticleOption {
	return func(a *article.Article) {
		a.Title = title
	}
}

// WithContent sets the article content
func WithContent(content string) ArticleOption {
	return func(a *article.Article) {
		a.Content = content
	}
}

// WithPublic marks the article as public
func WithPublic() ArticleOption {
	return func(a *article.Article) {
		a.IsPublic = true
	}
}
