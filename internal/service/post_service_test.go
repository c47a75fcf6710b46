package service

import (
	"errors"
	"linkup_backend/internal/repository"
	"linkup_backend/internal/util"
	"testing"

	"gorm.io/gorm"
)

func newPostFixture(t *testing.T) (*gorm.DB, *PostService) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	return db, NewPostService(postRepo, userRepo)
}

func TestLike_UnknownUser(t *testing.T) {
	_, svc := newPostFixture(t)
	if _, err := svc.Like(999, "some-post"); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUnlike_MissingLike(t *testing.T) {
	db, svc := newPostFixture(t)
	alice := mustCreateUser(t, db, "Alice Zhang", "alice@example.com", "alice42")

	post, err := svc.CreatePost(alice.ID, "hi", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := svc.Unlike(alice.ID, post.ID); !errors.Is(err, util.ErrLikeNotFound) {
		t.Fatalf("expected ErrLikeNotFound, got %v", err)
	}
}

// 对应完整的点赞生命周期：发帖 -> 未点赞 -> 点赞 -> 重复点赞冲突 -> 取消
func TestFeed_LikeLifecycle(t *testing.T) {
	db, svc := newPostFixture(t)
	alice := mustCreateUser(t, db, "Alice Zhang", "alice@example.com", "alice42")

	post, err := svc.CreatePost(alice.ID, "hi", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	feed, err := svc.Feed(alice.ID)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("expected 1 post, got %d", len(feed))
	}
	if feed[0].Caption != "hi" || feed[0].LikesCount != 0 || feed[0].IsLikedByUser {
		t.Fatalf("unexpected initial feed entry: %+v", feed[0])
	}

	if _, err := svc.Like(alice.ID, post.ID); err != nil {
		t.Fatalf("like: %v", err)
	}

	feed, err = svc.Feed(alice.ID)
	if err != nil {
		t.Fatalf("feed after like: %v", err)
	}
	if feed[0].LikesCount != 1 || !feed[0].IsLikedByUser {
		t.Fatalf("expected likesCount=1 isLiked=true, got %+v", feed[0])
	}

	if _, err := svc.Like(alice.ID, post.ID); !errors.Is(err, util.ErrAlreadyLiked) {
		t.Fatalf("expected ErrAlreadyLiked, got %v", err)
	}

	if err := svc.Unlike(alice.ID, post.ID); err != nil {
		t.Fatalf("unlike: %v", err)
	}
	feed, _ = svc.Feed(alice.ID)
	if feed[0].LikesCount != 0 || feed[0].IsLikedByUser {
		t.Fatalf("expected like removed, got %+v", feed[0])
	}
}

func TestFeed_NewestFirstWithCounts(t *testing.T) {
	db, svc := newPostFixture(t)
	alice := mustCreateUser(t, db, "Alice Zhang", "alice@example.com", "alice42")
	bob := mustCreateUser(t, db, "Bob Li", "bob@example.com", "bob7")

	first, err := svc.CreatePost(alice.ID, "first", "")
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.CreatePost(bob.ID, "second", "")
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	if _, err := svc.Like(bob.ID, first.ID); err != nil {
		t.Fatalf("like: %v", err)
	}
	commentRepo := repository.NewCommentRepository(db)
	commentSvc := NewCommentService(commentRepo)
	if _, err := commentSvc.AddComment(alice.ID, second.ID, "nice"); err != nil {
		t.Fatalf("comment: %v", err)
	}

	// bob 的视角：点过 first 的赞
	feed, err := svc.Feed(bob.ID)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(feed))
	}

	byID := make(map[string]PostView, len(feed))
	for _, v := range feed {
		byID[v.ID] = v
	}
	if v := byID[first.ID]; v.LikesCount != 1 || !v.IsLikedByUser || v.User.Username != "alice42" {
		t.Fatalf("unexpected first view: %+v", v)
	}
	if v := byID[second.ID]; v.CommentsCount != 1 || v.LikesCount != 0 {
		t.Fatalf("unexpected second view: %+v", v)
	}
}

func TestDeletePost_NotFound(t *testing.T) {
	_, svc := newPostFixture(t)
	if err := svc.DeletePost("no-such-post"); !errors.Is(err, util.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCountByUser(t *testing.T) {
	db, svc := newPostFixture(t)
	alice := mustCreateUser(t, db, "Alice Zhang", "alice@example.com", "alice42")
	bob := mustCreateUser(t, db, "Bob Li", "bob@example.com", "bob7")

	for _, caption := range []string{"a", "b", "c"} {
		if _, err := svc.CreatePost(alice.ID, caption, ""); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := svc.CreatePost(bob.ID, "d", ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	count, err := svc.CountByUser(alice.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 posts for alice, got %d", count)
	}
}
