package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"linkup_backend/internal/config"
	"linkup_backend/internal/model"
	"linkup_backend/internal/repository"
	"linkup_backend/internal/service"
	"linkup_backend/pkg/database"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 错误路径必须带上声明的状态码，不允许退化成 200

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{}
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour

	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendshipRepository(db, nil)
	postRepo := repository.NewPostRepository(db)

	userSvc := service.NewUserService(userRepo)
	friendSvc := service.NewFriendshipService(friendRepo, userRepo)
	postSvc := service.NewPostService(postRepo, userRepo)
	storageSvc := service.NewStorageService(cfg)

	friendCtrl := NewFriendController(friendSvc, userSvc)
	postCtrl := NewPostController(postSvc, storageSvc, cfg)

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/friends/request", friendCtrl.SendRequest)
		api.POST("/friends/accept", friendCtrl.AcceptRequest)
		api.POST("/friends/remove", friendCtrl.RemoveFriend)
		api.GET("/friends/all", friendCtrl.GetFriends)
		api.POST("/posts/likePost", postCtrl.Like)
		api.POST("/posts/unlikePost", postCtrl.Unlike)
	}
	return router, db
}

func seedUser(t *testing.T, db *gorm.DB, name, email, username string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: email, Username: username, LastOnline: time.Now()}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSendRequest_DuplicateReturns400WithExistsFlag(t *testing.T) {
	router, db := newTestRouter(t)
	alice := seedUser(t, db, "Alice Zhang", "alice@example.com", "alice42")
	bob := seedUser(t, db, "Bob Li", "bob@example.com", "bob7")

	body := map[string]interface{}{"fromUserId": alice.ID, "toUserId": bob.ID}

	if w := doJSON(t, router, http.MethodPost, "/api/friends/request", body); w.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	w := doJSON(t, router, http.MethodPost, "/api/friends/request", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate request: expected 400, got %d", w.Code)
	}
	var resp struct {
		Message string `json:"message"`
		Exists  bool   `json:"exists"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Exists || resp.Message == "" {
		t.Fatalf("expected {message, exists:true}, got %s", w.Body.String())
	}
}

func TestSendRequest_UnknownUserReturns404(t *testing.T) {
	router, db := newTestRouter(t)
	alice := seedUser(t, db, "Alice Zhang", "alice@example.com", "alice42")

	w := doJSON(t, router, http.MethodPost, "/api/friends/request",
		map[string]interface{}{"fromUserId": alice.ID, "toUserId": 999})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAcceptRequest_MissingFieldsReturns400(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/friends/accept",
		map[string]interface{}{"senderId": 1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}
}

func TestAcceptRequest_UnknownRequestReturns404(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/friends/accept",
		map[string]interface{}{"senderId": 1, "receiverId": 2, "requestId": "no-such"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRemoveFriend_UnknownUsernameReturns404(t *testing.T) {
	router, db := newTestRouter(t)
	seedUser(t, db, "Alice Zhang", "alice@example.com", "alice42")

	w := doJSON(t, router, http.MethodPost, "/api/friends/remove",
		map[string]interface{}{"myUserName": "alice42", "friendUserName": "ghost"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestLikePost_DuplicateReturns409(t *testing.T) {
	router, db := newTestRouter(t)
	alice := seedUser(t, db, "Alice Zhang", "alice@example.com", "alice42")

	post := &model.Post{UserID: alice.ID, Caption: "hi"}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}

	body := map[string]interface{}{"userId": alice.ID, "postId": post.ID}
	if w := doJSON(t, router, http.MethodPost, "/api/posts/likePost", body); w.Code != http.StatusOK {
		t.Fatalf("first like: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if w := doJSON(t, router, http.MethodPost, "/api/posts/likePost", body); w.Code != http.StatusConflict {
		t.Fatalf("duplicate like: expected 409, got %d", w.Code)
	}
}

func TestUnlikePost_MissingLikeReturns404(t *testing.T) {
	router, db := newTestRouter(t)
	alice := seedUser(t, db, "Alice Zhang", "alice@example.com", "alice42")

	post := &model.Post{UserID: alice.ID, Caption: "hi"}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}

	w := doJSON(t, router, http.MethodPost, "/api/posts/unlikePost",
		map[string]interface{}{"userId": alice.ID, "postId": post.ID})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetFriends_BidirectionalAfterAccept(t *testing.T) {
	router, db := newTestRouter(t)
	alice := seedUser(t, db, "Alice Zhang", "alice@example.com", "alice42")
	bob := seedUser(t, db, "Bob Li", "bob@example.com", "bob7")

	w := doJSON(t, router, http.MethodPost, "/api/friends/request",
		map[string]interface{}{"fromUserId": alice.ID, "toUserId": bob.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("request: %d (%s)", w.Code, w.Body.String())
	}
	var sent struct {
		FriendRequest model.FriendRequest `json:"friendRequest"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &sent); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(t, router, http.MethodPost, "/api/friends/accept", map[string]interface{}{
		"senderId": alice.ID, "receiverId": bob.ID, "requestId": sent.FriendRequest.ID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("accept: %d (%s)", w.Code, w.Body.String())
	}

	for _, tc := range []struct {
		userID uint
		friend string
	}{
		{alice.ID, "bob7"},
		{bob.ID, "alice42"},
	} {
		w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/friends/all?userId=%d", tc.userID), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("friends list: %d", w.Code)
		}
		var resp struct {
			Friends []model.User `json:"friends"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode friends: %v", err)
		}
		if len(resp.Friends) != 1 || resp.Friends[0].Username != tc.friend {
			t.Fatalf("expected friend %s for user %d, got %+v", tc.friend, tc.userID, resp.Friends)
		}
	}
}
