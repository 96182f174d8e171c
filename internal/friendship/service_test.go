package friendship

import (
	"testing"

	"github.com/rs/zerolog"

	"coauthor/article-service/internal/model/notification"
	notifPkg "coauthor/article-service/internal/notification"
	"coauthor/article-service/internal/pkg/response"
	"coauthor/article-service/internal/testutils"
)

func TestAddFriend(t *testing.T) {
	db := testutils.SetupTestDB(t)
	s := NewFriendshipService(db, zerolog.Nop())

	alice := testutils.CreateTestUser(db)
	bob := testutils.CreateTestUser(db)

	if bizErr := s.AddFriend(alice.ID, bob.ID); bizErr != nil {
		t.Fatalf("AddFriend failed: %v", bizErr.Msg)
	}

	// 双方列表都能看到对方
	aliceFriends, bizErr := s.ListFriends(alice.ID)
	if bizErr != nil {
		t.Fatalf("ListFriends failed: %v", bizErr.Msg)
	}
	if len(aliceFriends) != 1 || aliceFriends[0].ID != bob.ID {
		t.Errorf("alice friends = %+v, want [bob]", aliceFriends)
	}

	bobFriends, _ := s.ListFriends(bob.ID)
	if len(bobFriends) != 1 || bobFriends[0].ID != alice.ID {
		t.Errorf("bob friends = %+v, want [alice]", bobFriends)
	}

	// 被添加方收到通知
	notifService := notifPkg.NewNotificationService(db, zerolog.Nop())
	ns, _ := notifService.List(bob.ID, false)
	found := false
	for _, n := range ns {
		if n.Type == notification.TypeFriendRequest {
			found = true
		}
	}
	if !found {
		t.Errorf("expected friend_request notification for bob, got %+v", ns)
	}
}

func TestAddFriendDuplicateEitherDirection(t *testing.T) {
	db := testutils.SetupTestDB(t)
	s := NewFriendshipService(db, zerolog.Nop())

	alice := testutils.CreateTestUser(db)
	bob := testutils.CreateTestUser(db)

	if bizErr := s.AddFriend(alice.ID, bob.ID); bizErr != nil {
		t.Fatalf("AddFriend failed: %v", bizErr.Msg)
	}

	// 同方向重复
	bizErr := s.AddFriend(alice.ID, bob.ID)
	if bizErr == nil || bizErr.Code != response.Duplicate {
		t.Errorf("expected Duplicate, got %+v", bizErr)
	}

	// 反方向也算重复
	bizErr = s.AddFriend(bob.ID, alice.ID)
	if bizErr == nil || bizErr.Code != response.Duplicate {
		t.Errorf("expected Duplicate for reverse direction, got %+v", bizErr)
	}
}

func TestAddFriendSelf(t *testing.T) {
	db := testutils.SetupTestDB(t)
	s := NewFriendshipService(db, zerolog.Nop())

	alice := testutils.CreateTestUser(db)

	bizErr := s.AddFriend(alice.ID, alice.ID)
	if bizErr == nil || bizErr.Code != response.InvalidParameter {
		t.Errorf("expected InvalidParameter for self-friend, got %+v", bizErr)
	}
}

func TestAddFriendMissingUser(t *testing.T) {
	db := testutils.SetupTestDB(t)
	s := NewFriendshipService(db, zerolog.Nop())

	alice := testutils.CreateTestUser(db)

	bizErr := s.AddFriend(alice.ID, 999999)
	if bizErr == nil || bizErr.Code != response.NotFound {
		t.Errorf("expected NotFound, got %+v", bizErr)
	}
}
