package account

import (
	"testing"

	"github.com/rs/zerolog"

	"coauthor/article-service/config"
	"coauthor/article-service/internal/dto"
	"coauthor/article-service/internal/pkg/response"
	"coauthor/article-service/internal/testutils"
)

func setupAccountService(t *testing.T) *AccountService {
	t.Helper()
	db := testutils.SetupTestDB(t)

	// Login 需要 JWT 配置
	if config.Conf == nil {
		config.Conf = &config.AppConfig{}
	}
	if config.Conf.JWT.Secret == "" {
		config.Conf.JWT.Secret = "test-secret"
		config.Conf.JWT.ExpireTime = 1
	}

	return NewAccountService(db, zerolog.Nop())
}

func TestRegisterAndLogin(t *testing.T) {
	s := setupAccountService(t)

	u, bizErr := s.Register(&dto.RegisterRequest{
		Username: "alice_account_test",
		Email:    "alice_account_test@example.com",
		Password: "secret123",
	})
	if bizErr != nil {
		t.Fatalf("Register failed: %v", bizErr.Msg)
	}
	if u.ID == 0 {
		t.Fatal("expected assigned user ID")
	}
	if u.PasswordHash == "secret123" {
		t.Error("password stored in plaintext")
	}

	token, logged, bizErr := s.Login(&dto.LoginRequest{
		Email:    "alice_account_test@example.com",
		Password: "secret123",
	})
	if bizErr != nil {
		t.Fatalf("Login failed: %v", bizErr.Msg)
	}
	if token == "" {
		t.Error("expected non-empty token")
	}
	if logged.ID != u.ID {
		t.Errorf("logged in as user %d, want %d", logged.ID, u.ID)
	}

	// 密码错误
	_, _, bizErr = s.Login(&dto.LoginRequest{
		Email:    "alice_account_test@example.com",
		Password: "wrong",
	})
	if bizErr == nil || bizErr.Code != response.Unauthorized {
		t.Errorf("expected Unauthorized for wrong password, got %+v", bizErr)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	s := setupAccountService(t)

	req := &dto.RegisterRequest{
		Username: "bob_account_test",
		Email:    "bob_account_test@example.com",
		Password: "secret123",
	}
	if _, bizErr := s.Register(req); bizErr != nil {
		t.Fatalf("first Register failed: %v", bizErr.Msg)
	}

	// 用户名重复
	_, bizErr := s.Register(&dto.RegisterRequest{
		Username: "bob_account_test",
		Email:    "other@example.com",
		Password: "secret123",
	})
	if bizErr == nil || bizErr.Code != response.Duplicate {
		t.Errorf("expected Duplicate for username, got %+v", bizErr)
	}

	// 邮箱重复
	_, bizErr = s.Register(&dto.RegisterRequest{
		Username: "someone_else",
		Email:    "bob_account_test@example.com",
		Password: "secret123",
	})
	if bizErr == nil || bizErr.Code != response.Duplicate {
		t.Errorf("expected Duplicate for email, got %+v", bizErr)
	}

	// 查重是精确匹配：大小写不同的用户名不算重复
	if _, bizErr := s.Register(&dto.RegisterRequest{
		Username: "BOB_account_test",
		Email:    "bob_upper@example.com",
		Password: "secret123",
	}); bizErr != nil {
		t.Errorf("case-different username should register: %+v", bizErr)
	}
}

func TestSearchUsers(t *testing.T) {
	s := setupAccountService(t)

	requester, _ := s.Register(&dto.RegisterRequest{
		Username: "searcher_zed",
		Email:    "searcher_zed@example.com",
		Password: "secret123",
	})
	for _, name := range []string{"zed_one", "Zed_two", "unrelated_user"} {
		if _, bizErr := s.Register(&dto.RegisterRequest{
			Username: name,
			Email:    name + "@example.com",
			Password: "secret123",
		}); bizErr != nil {
			t.Fatalf("Register %s failed: %v", name, bizErr.Msg)
		}
	}

	// 大小写不敏感，且不含发起者
	users, bizErr := s.SearchUsers("zed", requester.ID)
	if bizErr != nil {
		t.Fatalf("SearchUsers failed: %v", bizErr.Msg)
	}
	names := make(map[string]bool)
	for _, u := range users {
		if u.ID == requester.ID {
			t.Error("search result contains the requester")
		}
		names[u.Username] = true
	}
	if !names["zed_one"] || !names["Zed_two"] {
		t.Errorf("expected case-insensitive matches, got %v", names)
	}
	if names["unrelated_user"] {
		t.Error("search matched unrelated user")
	}
}

func TestSearchUsersLimit(t *testing.T) {
	s := setupAccountService(t)

	for i := 0; i < 12; i++ {
		if _, bizErr := s.Register(&dto.RegisterRequest{
			Username: "bulk_user_" + string(rune('a'+i)),
			Email:    "bulk_" + string(rune('a'+i)) + "@example.com",
			Password: "secret123",
		}); bizErr != nil {
			t.Fatalf("Register failed: %v", bizErr.Msg)
		}
	}

	users, bizErr := s.SearchUsers("bulk_user", 0)
	if bizErr != nil {
		t.Fatalf("SearchUsers failed: %v", bizErr.Msg)
	}
	if len(users) > 10 {
		t.Errorf("result count = %d, want at most 10", len(users))
	}
}
