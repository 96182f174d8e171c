package article_test

import (
	"fmt"
	"testing"

	"coauthor/article-service/internal/dto"
	"coauthor/article-service/internal/pkg/response"
)

func TestContentUpdateCreatesVersion(t *testing.T) {
	f := createArticleFixture(t)

	art, _ := f.Service.Create(f.Author.ID, &dto.CreateArticleRequest{
		Title:   "Versioned",
		Content: "v1 content",
	})

	updated, bizErr := f.Service.Update(art.ID, f.Author.ID, &dto.UpdateArticleRequest{
		Content: strPtr("v2 content"),
		Note:    "second pass",
	})
	if bizErr != nil {
		t.Fatalf("Update failed: %v", bizErr.Msg)
	}

	if updated.CurrentVersion != 2 {
		t.Errorf("CurrentVersion = %d, want 2", updated.CurrentVersion)
	}
	if updated.Content != "v2 content" {
		t.Errorf("Content = %q, want %q", updated.Content, "v2 content")
	}

	versions, _ := f.Service.Versions(art.ID, f.Author.ID)
	if len(versions) != 2 {
		t.Fatalf("version count = %d, want 2", len(versions))
	}
	// 升序且连续
	for i, v := range versions {
		if v.VersionNumber != i+1 {
			t.Errorf("versions[%d].VersionNumber = %d, want %d", i, v.VersionNumber, i+1)
		}
	}
	if versions[1].Note != "second pass" {
		t.Errorf("Note = %q, want %q", versions[1].Note, "second pass")
	}
	if versions[1].Username != f.Author.Username {
		t.Errorf("Username = %q, want %q", versions[1].Username, f.Author.Username)
	}
}

func TestIdenticalContentCreatesNoVersion(t *testing.T) {
	f := createArticleFixture(t)

	art, _ := f.Service.Create(f.Author.ID, &dto.CreateArticleRequest{
		Title:   "Same",
		Content: "unchanged",
	})

	// 正文相同、标题不同：标题更新，版本不动
	updated, bizErr := f.Service.Update(art.ID, f.Author.ID, &dto.UpdateArticleRequest{
		Title:   strPtr("Renamed"),
		Content: strPtr("unchanged"),
	})
	if bizErr != nil {
		t.Fatalf("Update failed: %v", bizErr.Msg)
	}

	if updated.Title != "Renamed" {
		t.Errorf("Title = %q, want Renamed", updated.Title)
	}
	if updated.CurrentVersion != 1 {
		t.Errorf("CurrentVersion = %d, want 1", updated.CurrentVersion)
	}

	versions, _ := f.Service.Versions(art.ID, f.Author.ID)
	if len(versions) != 1 {
		t.Errorf("version count = %d, want 1", len(versions))
	}
}

func TestGetVersionNotFound(t *testing.T) {
	f := createArticleFixture(t)

	art, _ := f.Service.Create(f.Author.ID, &dto.CreateArticleRequest{
		Title:   "Single",
		Content: "only one",
	})

	_, bizErr := f.Service.Version(art.ID, f.Author.ID, 99)
	if bizErr == nil || bizErr.Code != response.NotFound {
		t.Errorf("expected NotFound for missing version, got %+v", bizErr)
	}
}

func TestRestoreAppendsForward(t *testing.T) {
	f := createArticleFixture(t)

	art, _ := f.Service.Create(f.Author.ID, &dto.CreateArticleRequest{
		Title:   "Restorable",
		Content: "version 1",
	})

	// 推进到第5版
	for i := 2; i <= 5; i++ {
		if _, bizErr := f.Service.Update(art.ID, f.Author.ID, &dto.UpdateArticleRequest{
			Content: strPtr(fmt.Sprintf("version %d", i)),
		}); bizErr != nil {
			t.Fatalf("Update to v%d failed: %v", i, bizErr.Msg)
		}
	}

	restored, bizErr := f.Service.Restore(art.ID, f.Author.ID, 2)
	if bizErr != nil {
		t.Fatalf("Restore failed: %v", bizErr.Msg)
	}

	// 恢复第2版生成第6版，不截断历史
	if restored.CurrentVersion != 6 {
		t.Errorf("CurrentVersion = %d, want 6", restored.CurrentVersion)
	}
	if restored.Content != "version 2" {
		t.Errorf("Content = %q, want %q", restored.Content, "version 2")
	}

	versions, _ := f.Service.Versions(art.ID, f.Author.ID)
	if len(versions) != 6 {
		t.Fatalf("version count = %d, want 6", len(versions))
	}
	if versions[5].Note != "Restored from version 2" {
		t.Errorf("restore note = %q", versions[5].Note)
	}

	// 再恢复当前内容等价的版本：正文相同，不产生新版本
	again, bizErr := f.Service.Restore(art.ID, f.Author.ID, 2)
	if bizErr != nil {
		t.Fatalf("second Restore failed: %v", bizErr.Msg)
	}
	if again.CurrentVersion != 6 {
		t.Errorf("restoring identical content bumped version to %d", again.CurrentVersion)
	}
}

func TestRestoreMissingVersion(t *testing.T) {
	f := createArticleFixture(t)

	art, _ := f.Service.Create(f.Author.ID, &dto.CreateArticleRequest{
		Title:   "Short",
		Content: "v1",
	})

	_, bizErr := f.Service.Restore(art.ID, f.Author.ID, 7)
	if bizErr == nil || bizErr.Code != response.NotFound {
		t.Errorf("expected NotFound, got %+v", bizErr)
	}
}

func TestCompareVersions(t *testing.T) {
	f := createArticleFixture(t)

	art, _ := f.Service.Create(f.Author.ID, &dto.CreateArticleRequest{
		Title:   "Diffable",
		Content: "line1\nline2",
	})
	if _, bizErr := f.Service.Update(art.ID, f.Author.ID, &dto.UpdateArticleRequest{
		Content: strPtr("line1\nlineX"),
	}); bizErr != nil {
		t.Fatalf("Update failed: %v", bizErr.Msg)
	}

	result, bizErr := f.DiffService.CompareVersions(art.ID, 1, 2)
	if bizErr != nil {
		t.Fatalf("CompareVersions failed: %v", bizErr.Msg)
	}

	if len(result.Differences) != 2 {
		t.Fatalf("differences = %d, want 2", len(result.Differences))
	}
	// 同一行两侧不同：先 added 后 deleted
	if result.Differences[0].Type != "added" || result.Differences[0].Content != "lineX" || result.Differences[0].LineNumber != 2 {
		t.Errorf("unexpected added entry: %+v", result.Differences[0])
	}
	if result.Differences[1].Type != "deleted" || result.Differences[1].Content != "line2" || result.Differences[1].LineNumber != 2 {
		t.Errorf("unexpected deleted entry: %+v", result.Differences[1])
	}

	// 版本号不存在
	_, bizErr = f.DiffService.CompareVersions(art.ID, 1, 9)
	if bizErr == nil || bizErr.Code != response.NotFound {
		t.Errorf("expected NotFound for missing version, got %+v", bizErr)
	}
}
