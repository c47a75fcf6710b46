package service

import (
	"fmt"
	"linkup_backend/internal/model"
	"linkup_backend/internal/repository"
	"linkup_backend/pkg/database"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个用例一个独立的内存库，跑完随进程回收
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreateUser(t *testing.T, db *gorm.DB, name, email, username string) *model.User {
	t.Helper()
	user := &model.User{
		Name:       name,
		Email:      email,
		Username:   username,
		LastOnline: time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

// newFriendshipFixture 好友域测试的公共装配，Redis 传 nil 走纯 DB 路径
func newFriendshipFixture(t *testing.T) (*gorm.DB, *FriendshipService) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendshipRepository(db, nil)
	return db, NewFriendshipService(friendRepo, userRepo)
}
