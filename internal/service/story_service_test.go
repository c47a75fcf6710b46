package service

import (
	"linkup_backend/internal/repository"
	"testing"
)

// 对应完整的故事可见性链路：U1 发故事 -> 接受好友 -> U2 可见、U1 自己不可见、外人不可见
func TestFriendStories_VisibilityScenario(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendshipRepository(db, nil)
	friendSvc := NewFriendshipService(friendRepo, userRepo)
	storySvc := NewStoryService(repository.NewStoryRepository(db), friendRepo)

	alice := mustCreateUser(t, db, "Alice Zhang", "alice@example.com", "alice42")
	bob := mustCreateUser(t, db, "Bob Li", "bob@example.com", "bob7")
	carol := mustCreateUser(t, db, "Carol Wang", "carol@example.com", "carol13")

	if _, err := storySvc.AddStory(alice.ID, "http://example.com/s1.png"); err != nil {
		t.Fatalf("add story: %v", err)
	}

	// 还不是好友，bob 看不到
	stories, err := storySvc.FriendStories(bob.ID)
	if err != nil {
		t.Fatalf("stories before accept: %v", err)
	}
	if len(stories) != 0 {
		t.Fatalf("expected no stories before friendship, got %d", len(stories))
	}

	req, err := friendSvc.SendRequest(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := friendSvc.AcceptRequest(alice.ID, bob.ID, req.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	stories, err = storySvc.FriendStories(bob.ID)
	if err != nil {
		t.Fatalf("stories after accept: %v", err)
	}
	if len(stories) != 1 || stories[0].UserID != alice.ID {
		t.Fatalf("expected alice's story visible to bob, got %+v", stories)
	}
	if stories[0].User.Username != "alice42" {
		t.Fatalf("expected author profile attached, got %+v", stories[0].User)
	}

	// 自己的故事不出现在自己的列表里
	own, err := storySvc.FriendStories(alice.ID)
	if err != nil {
		t.Fatalf("alice stories: %v", err)
	}
	if len(own) != 0 {
		t.Fatalf("expected alice not to see her own story, got %d", len(own))
	}

	// 外人也看不到
	outsider, err := storySvc.FriendStories(carol.ID)
	if err != nil {
		t.Fatalf("carol stories: %v", err)
	}
	if len(outsider) != 0 {
		t.Fatalf("expected no stories for non-friend, got %d", len(outsider))
	}
}
