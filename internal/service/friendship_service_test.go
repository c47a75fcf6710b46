package service

import (
	"errors"
	"linkup_backend/internal/model"
	"linkup_backend/internal/util"
	"testing"
)

func TestSendRequest_UnknownUser(t *testing.T) {
	db, svc := newFriendshipFixture(t)
	alice := mustCreateUser(t, db, "Alice Zhang", "alice@example.com", "alice42")

	if _, err := svc.SendRequest(alice.ID, 999); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.SendRequest(999, alice.ID); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSendRequest_DuplicateRejected(t *testing.T) {
	db, svc := newFriendshipFixture(t)
	alice := mustCreateUser(t, db, "Alice Zhang", "alice@example.com", "alice42")
	bob := mustCreateUser(t, db, "Bob Li", "bob@example.com", "bob7")

	first, err := svc.SendRequest(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	if first.Status != model.RequestPending {
		t.Fatalf("expected pending status, got %q", first.Status)
	}

	// 同一有序对重复申请：不建第二行
	if _, err := svc.SendRequest(alice.ID, bob.ID); !errors.Is(err, util.ErrRequestExists) {
		t.Fatalf("expected ErrRequestExists, got %v", err)
	}

	var count int64
	db.Model(&model.FriendRequest{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 request row, got %d", count)
	}
}

func TestSendRequest_DuplicateAfterAccept(t *testing.T) {
	// 重复检查覆盖任意状态，已接受的申请也挡住重发
	db, svc := newFriendshipFixture(t)
	alice := mustCreateUser(t, db, "Alice Zhang", "alice@example.com", "alice42")
	bob := mustCreateUser(t, db, "Bob Li", "bob@example.com", "bob7")

	req, err := svc.SendRequest(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.AcceptRequest(alice.ID, bob.ID, req.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if _, err := svc.SendRequest(alice.ID, bob.ID); !errors.Is(err, util.ErrRequestExists) {
		t.Fatalf("expected ErrRequestExists after accept, got %v", err)
	}
}

func TestAcceptRequest_CreatesBidirectionalFriendship(t *testing.T) {
	db, svc := newFriendshipFixture(t)
	alice := mustCreateUser(t, db, "Alice Zhang", "alice@example.com", "alice42")
	bob := mustCreateUser(t, db, "Bob Li", "bob@example.com", "bob7")

	req, err := svc.SendRequest(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	accepted, err := svc.AcceptRequest(alice.ID, bob.ID, req.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != model.RequestAccepted {
		t.Fatalf("expected accepted status, got %q", accepted.Status)
	}

	// 两个方向都能看到对方
	aliceFriends, err := svc.GetFriends(alice.ID)
	if err != nil {
		t.Fatalf("alice friends: %v", err)
	}
	if len(aliceFriends) != 1 || aliceFriends[0].ID != bob.ID {
		t.Fatalf("expected alice's friends to contain bob, got %+v", aliceFriends)
	}

	bobFriends, err := svc.GetFriends(bob.ID)
	if err != nil {
		t.Fatalf("bob friends: %v", err)
	}
	if len(bobFriends) != 1 || bobFriends[0].ID != alice.ID {
		t.Fatalf("expected bob's friends to contain alice, got %+v", bobFriends)
	}

	var rows int64
	db.Model(&model.Friend{}).Count(&rows)
	if rows != 2 {
		t.Fatalf("expected exactly 2 friend rows, got %d", rows)
	}
}

func TestAcceptRequest_DuplicateAcceptConverges(t *testing.T) {
	// 重复 accept 不应产生多余的边
	db, svc := newFriendshipFixture(t)
	alice := mustCreateUser(t, db, "Alice Zhang", "alice@example.com", "alice42")
	bob := mustCreateUser(t, db, "Bob Li", "bob@example.com", "bob7")

	req, err := svc.SendRequest(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if _, err := svc.AcceptRequest(alice.ID, bob.ID, req.ID); err != nil {
		t.Fatalf("first accept: %v", err)
	}
	if _, err := svc.AcceptRequest(alice.ID, bob.ID, req.ID); err != nil {
		t.Fatalf("second accept: %v", err)
	}

	var rows int64
	db.Model(&model.Friend{}).Count(&rows)
	if rows != 2 {
		t.Fatalf("expected exactly 2 friend rows after duplicate accept, got %d", rows)
	}
}

func TestAcceptRequest_NotFound(t *testing.T) {
	_, svc := newFriendshipFixture(t)
	if _, err := svc.AcceptRequest(1, 2, "no-such-request"); !errors.Is(err, util.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestGetPendingRequests_OnlyPendingForReceiver(t *testing.T) {
	db, svc := newFriendshipFixture(t)
	alice := mustCreateUser(t, db, "Alice Zhang", "alice@example.com", "alice42")
	bob := mustCreateUser(t, db, "Bob Li", "bob@example.com", "bob7")
	carol := mustCreateUser(t, db, "Carol Wang", "carol@example.com", "carol13")

	if _, err := svc.SendRequest(alice.ID, carol.ID); err != nil {
		t.Fatalf("alice->carol: %v", err)
	}
	accepted, err := svc.SendRequest(bob.ID, carol.ID)
	if err != nil {
		t.Fatalf("bob->carol: %v", err)
	}
	if _, err := svc.AcceptRequest(bob.ID, carol.ID, accepted.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	pending, err := svc.GetPendingRequests(carol.ID)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending request, got %d", len(pending))
	}
	if pending[0].SenderID != alice.ID {
		t.Fatalf("expected sender alice, got %d", pending[0].SenderID)
	}
	if pending[0].Sender.Username != "alice42" {
		t.Fatalf("expected sender profile expanded, got %+v", pending[0].Sender)
	}
}

func TestRemoveFriend_DeletesBothDirections(t *testing.T) {
	db, svc := newFriendshipFixture(t)
	alice := mustCreateUser(t, db, "Alice Zhang", "alice@example.com", "alice42")
	bob := mustCreateUser(t, db, "Bob Li", "bob@example.com", "bob7")

	req, err := svc.SendRequest(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.AcceptRequest(alice.ID, bob.ID, req.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if err := svc.RemoveFriend("alice42", "bob7"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	var rows int64
	db.Model(&model.Friend{}).Count(&rows)
	if rows != 0 {
		t.Fatalf("expected 0 friend rows after removal, got %d", rows)
	}
}

func TestRemoveFriend_UnknownUsername(t *testing.T) {
	db, svc := newFriendshipFixture(t)
	mustCreateUser(t, db, "Alice Zhang", "alice@example.com", "alice42")

	if err := svc.RemoveFriend("alice42", "ghost"); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSearchUsers_ExcludesSelf(t *testing.T) {
	db, svc := newFriendshipFixture(t)
	mustCreateUser(t, db, "Alice Zhang", "alice@example.com", "alice42")
	mustCreateUser(t, db, "Alina Chen", "alina@example.com", "alina9")
	mustCreateUser(t, db, "Bob Li", "bob@example.com", "bob7")

	results, err := svc.SearchUsers("ali", "alice42")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Username != "alina9" {
		t.Fatalf("expected only alina9, got %+v", results)
	}
}

func TestSuggestions_ExcludesSelfAndFriends(t *testing.T) {
	db, svc := newFriendshipFixture(t)
	alice := mustCreateUser(t, db, "Alice Zhang", "alice@example.com", "alice42")
	bob := mustCreateUser(t, db, "Bobby Li", "bob@example.com", "bobby7")
	mustCreateUser(t, db, "Bobbie Wu", "bobbie@example.com", "bobbie3")

	req, err := svc.SendRequest(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.AcceptRequest(alice.ID, bob.ID, req.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	// bobby7 已是好友，推荐里只剩 bobbie3
	results, err := svc.Suggestions("bob", alice.ID)
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	if len(results) != 1 || results[0].Username != "bobbie3" {
		t.Fatalf("expected only bobbie3, got %+v", results)
	}
}

func TestSuggestions_UnknownUser(t *testing.T) {
	_, svc := newFriendshipFixture(t)
	if _, err := svc.Suggestions("any", 404); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
