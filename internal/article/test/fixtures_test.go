package article_test

import (
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	articlePkg "coauthor/article-service/internal/article"
	"coauthor/article-service/internal/model/user"
	"coauthor/article-service/internal/testutils"
)

// ArticleTestFixture 共享测试数据结构
type ArticleTestFixture struct {
	DB             *gorm.DB
	Service        *articlePkg.ArticleService
	VersionService *articlePkg.VersionService
	DiffService    *articlePkg.DiffService

	// Users
	Author       *user.User
	Collaborator *user.User
	RegularUser  *user.User
}

// createArticleFixture 创建文章测试 fixture
func createArticleFixture(t *testing.T) *ArticleTestFixture {
	db := testutils.SetupTestDB(t)
	log := zerolog.Nop()

	return &ArticleTestFixture{
		DB:             db,
		Service:        articlePkg.NewArticleService(db, log),
		VersionService: articlePkg.NewVersionService(db, log),
		DiffService:    articlePkg.NewDiffService(db, log),
		Author:         testutils.CreateTestUser(db),
		Collaborator:   testutils.CreateTestUser(db),
		RegularUser:    testutils.CreateTestUser(db),
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
