package notification

import (
	"testing"

	"github.com/rs/zerolog"

	"coauthor/article-service/internal/model/notification"
	"coauthor/article-service/internal/pkg/response"
	"coauthor/article-service/internal/testutils"
)

func TestNotifyAndList(t *testing.T) {
	db := testutils.SetupTestDB(t)
	s := NewNotificationService(db, zerolog.Nop())

	u := testutils.CreateTestUser(db)

	if err := s.Notify(u.ID, notification.TypeFriendRequest, "标题", "内容", ""); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if err := s.Notify(u.ID, notification.TypeArticleUpdate, "标题2", "内容2", `{"article_id":1}`); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	ns, bizErr := s.List(u.ID, false)
	if bizErr != nil {
		t.Fatalf("List failed: %v", bizErr.Msg)
	}
	if len(ns) != 2 {
		t.Fatalf("notification count = %d, want 2", len(ns))
	}
	for _, n := range ns {
		if n.Read {
			t.Errorf("new notification should be unread: %+v", n)
		}
	}
}

func TestMarkRead(t *testing.T) {
	db := testutils.SetupTestDB(t)
	s := NewNotificationService(db, zerolog.Nop())

	owner := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)

	if err := s.Notify(owner.ID, notification.TypeFriendRequest, "t", "m", ""); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	ns, _ := s.List(owner.ID, false)
	id := ns[0].ID

	// 他人不能标记
	bizErr := s.MarkRead(other.ID, id)
	if bizErr == nil || bizErr.Code != response.NotFound {
		t.Errorf("expected NotFound for foreign notification, got %+v", bizErr)
	}

	// 本人标记成功
	if bizErr := s.MarkRead(owner.ID, id); bizErr != nil {
		t.Fatalf("MarkRead failed: %v", bizErr.Msg)
	}

	// 重复标记幂等
	if bizErr := s.MarkRead(owner.ID, id); bizErr != nil {
		t.Errorf("repeated MarkRead should succeed, got %+v", bizErr)
	}

	unread, _ := s.List(owner.ID, true)
	if len(unread) != 0 {
		t.Errorf("unread count = %d, want 0", len(unread))
	}

	// 不存在的通知
	bizErr = s.MarkRead(owner.ID, 999999)
	if bizErr == nil || bizErr.Code != response.NotFound {
		t.Errorf("expected NotFound, got %+v", bizErr)
	}
}

func TestMarkAllRead(t *testing.T) {
	db := testutils.SetupTestDB(t)
	s := NewNotificationService(db, zerolog.Nop())

	u := testutils.CreateTestUser(db)
	for i := 0; i < 3; i++ {
		if err := s.Notify(u.ID, notification.TypeArticleUpdate, "t", "m", ""); err != nil {
			t.Fatalf("Notify failed: %v", err)
		}
	}

	count, bizErr := s.MarkAllRead(u.ID)
	if bizErr != nil {
		t.Fatalf("MarkAllRead failed: %v", bizErr.Msg)
	}
	if count != 3 {
		t.Errorf("updated = %d, want 3", count)
	}

	// 再来一次：没有未读可改
	count, _ = s.MarkAllRead(u.ID)
	if count != 0 {
		t.Errorf("second MarkAllRead updated = %d, want 0", count)
	}
}
