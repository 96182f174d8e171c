package article_test

import (
	"testing"

	"coauthor/article-service/internal/dto"
	"coauthor/article-service/internal/pkg/response"
)

func TestCreateArticle(t *testing.T) {
	f := createArticleFixture(t)

	art, bizErr := f.Service.Create(f.Author.ID, &dto.CreateArticleRequest{
		Title:    "My Article",
		Content:  "line1\nline2",
		IsPublic: false,
	})
	if bizErr != nil {
		t.Fatalf("Create failed: %v", bizErr.Msg)
	}

	if art.CurrentVersion != 1 {
		t.Errorf("CurrentVersion = %d, want 1", art.CurrentVersion)
	}
	if art.AuthorID != f.Author.ID {
		t.Errorf("AuthorID = %d, want %d", art.AuthorID, f.Author.ID)
	}

	// 初始版本快照
	versions, bizErr := f.Service.Versions(art.ID, f.Author.ID)
	if bizErr != nil {
		t.Fatalf("Versions failed: %v", bizErr.Msg)
	}
	if len(versions) != 1 {
		t.Fatalf("version count = %d, want 1", len(versions))
	}
	if versions[0].VersionNumber != 1 || versions[0].Content != "line1\nline2" {
		t.Errorf("unexpected initial version: %+v", versions[0])
	}

	// add 流水
	entries, bizErr := f.Service.History(art.ID, f.Author.ID)
	if bizErr != nil {
		t.Fatalf("History failed: %v", bizErr.Msg)
	}
	if len(entries) != 1 || entries[0].Action != "add" {
		t.Errorf("expected single add history entry, got %+v", entries)
	}
}

func TestGetArticleAccess(t *testing.T) {
	f := createArticleFixture(t)

	art, bizErr := f.Service.Create(f.Author.ID, &dto.CreateArticleRequest{
		Title:   "Private",
		Content: "secret",
	})
	if bizErr != nil {
		t.Fatalf("Create failed: %v", bizErr.Msg)
	}

	// 作者可见
	if _, bizErr := f.Service.Get(art.ID, f.Author.ID); bizErr != nil {
		t.Errorf("author should see own article: %v", bizErr.Msg)
	}

	// 无关用户不可见
	_, bizErr = f.Service.Get(art.ID, f.RegularUser.ID)
	if bizErr == nil || bizErr.Code != response.Forbidden {
		t.Errorf("expected Forbidden for outsider, got %+v", bizErr)
	}

	// 匿名不可见
	_, bizErr = f.Service.Get(art.ID, 0)
	if bizErr == nil || bizErr.Code != response.Forbidden {
		t.Errorf("expected Forbidden for anonymous, got %+v", bizErr)
	}

	// 公开后任何人可见
	if _, bizErr := f.Service.Update(art.ID, f.Author.ID, &dto.UpdateArticleRequest{IsPublic: boolPtr(true)}); bizErr != nil {
		t.Fatalf("Update failed: %v", bizErr.Msg)
	}
	if _, bizErr := f.Service.Get(art.ID, 0); bizErr != nil {
		t.Errorf("public article should be visible anonymously: %v", bizErr.Msg)
	}

	// 不存在的文章
	_, bizErr = f.Service.Get(999999, f.Author.ID)
	if bizErr == nil || bizErr.Code != response.NotFound {
		t.Errorf("expected NotFound, got %+v", bizErr)
	}
}

func TestUpdateTitleDoesNotCreateVersion(t *testing.T) {
	f := createArticleFixture(t)

	art, _ := f.Service.Create(f.Author.ID, &dto.CreateArticleRequest{
		Title:   "Old Title",
		Content: "content",
	})

	updated, bizErr := f.Service.Update(art.ID, f.Author.ID, &dto.UpdateArticleRequest{
		Title: strPtr("New Title"),
	})
	if bizErr != nil {
		t.Fatalf("Update failed: %v", bizErr.Msg)
	}

	if updated.Title != "New Title" {
		t.Errorf("Title = %q, want %q", updated.Title, "New Title")
	}
	if updated.CurrentVersion != 1 {
		t.Errorf("title-only update bumped version to %d", updated.CurrentVersion)
	}
}

func TestUpdateForbiddenForOutsider(t *testing.T) {
	f := createArticleFixture(t)

	art, _ := f.Service.Create(f.Author.ID, &dto.CreateArticleRequest{
		Title:    "Public",
		Content:  "content",
		IsPublic: true,
	})

	// 公开只给查看权限，编辑仍需作者或协作者身份
	_, bizErr := f.Service.Update(art.ID, f.RegularUser.ID, &dto.UpdateArticleRequest{
		Content: strPtr("hacked"),
	})
	if bizErr == nil || bizErr.Code != response.Forbidden {
		t.Errorf("expected Forbidden, got %+v", bizErr)
	}
}

func TestListArticles(t *testing.T) {
	f := createArticleFixture(t)

	own, _ := f.Service.Create(f.Author.ID, &dto.CreateArticleRequest{Title: "mine", Content: "a"})
	pub, _ := f.Service.Create(f.RegularUser.ID, &dto.CreateArticleRequest{Title: "public", Content: "b", IsPublic: true})
	_, _ = f.Service.Create(f.RegularUser.ID, &dto.CreateArticleRequest{Title: "hidden", Content: "c"})

	visible, bizErr := f.Service.List(f.Author.ID, false)
	if bizErr != nil {
		t.Fatalf("List failed: %v", bizErr.Msg)
	}

	ids := make(map[uint]bool)
	for _, a := range visible {
		ids[a.ID] = true
	}
	if !ids[own.ID] || !ids[pub.ID] {
		t.Errorf("expected own and public articles in list, got %v", ids)
	}

	publicOnly, bizErr := f.Service.List(f.Author.ID, true)
	if bizErr != nil {
		t.Fatalf("List public failed: %v", bizErr.Msg)
	}
	for _, a := range publicOnly {
		if !a.IsPublic {
			t.Errorf("public_only list contains private article %d", a.ID)
		}
	}
}
