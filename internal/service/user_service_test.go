package service

import (
	"errors"
	"linkup_backend/internal/repository"
	"linkup_backend/internal/util"
	"strconv"
	"strings"
	"testing"
)

func newUserFixture(t *testing.T) *UserService {
	t.Helper()
	db := newTestDB(t)
	return NewUserService(repository.NewUserRepository(db))
}

func TestGenerateUsername(t *testing.T) {
	cases := []struct {
		name   string
		suffix int
		want   string
	}{
		{"Alice Zhang", 42, "alice42"},
		{"BOB", 7, "bob7"},
		{"Carol Anne Wang", 0, "carol0"},
	}
	for _, tc := range cases {
		if got := generateUsername(tc.name, tc.suffix); got != tc.want {
			t.Errorf("generateUsername(%q, %d) = %q, want %q", tc.name, tc.suffix, got, tc.want)
		}
	}
}

func TestCreateUser_GeneratesUsernameFromFirstWord(t *testing.T) {
	svc := newUserFixture(t)

	user, err := svc.CreateUser("alice@example.com", "Alice Zhang", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if !strings.HasPrefix(user.Username, "alice") {
		t.Fatalf("expected username starting with alice, got %q", user.Username)
	}
	suffix := strings.TrimPrefix(user.Username, "alice")
	if _, err := strconv.Atoi(suffix); err != nil {
		t.Fatalf("expected numeric suffix, got %q", user.Username)
	}
}

func TestCreateUser_SecondUserGetsDistinctUsername(t *testing.T) {
	svc := newUserFixture(t)

	first, err := svc.CreateUser("alice@example.com", "Alice Zhang", "")
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := svc.CreateUser("alice2@example.com", "Alice Wang", "")
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	// 随机后缀可能撞上，撞上时会带新后缀重试一次
	if first.Username == second.Username {
		t.Fatalf("expected distinct usernames, both got %q", first.Username)
	}
}

func TestExistsByEmail(t *testing.T) {
	svc := newUserFixture(t)

	exists, err := svc.ExistsByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatal("expected false for unknown email")
	}

	if _, err := svc.CreateUser("alice@example.com", "Alice Zhang", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	exists, err = svc.ExistsByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected true after creation")
	}
}

func TestGetDetails_NotFound(t *testing.T) {
	svc := newUserFixture(t)
	if _, err := svc.GetDetails("ghost@example.com"); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateOnlineStatus(t *testing.T) {
	svc := newUserFixture(t)

	created, err := svc.CreateUser("alice@example.com", "Alice Zhang", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.OnlineStatus {
		t.Fatal("expected offline on creation")
	}

	updated, err := svc.UpdateOnlineStatus("alice@example.com")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.OnlineStatus {
		t.Fatal("expected online after update")
	}
	if updated.LastOnline.IsZero() {
		t.Fatal("expected lastOnline refreshed")
	}

	if _, err := svc.UpdateOnlineStatus("ghost@example.com"); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
