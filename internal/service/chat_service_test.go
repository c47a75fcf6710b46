package service

import (
	"linkup_backend/internal/repository"
	"linkup_backend/internal/util"
	"testing"
)

func TestCreateMessage_AndRoomHistory(t *testing.T) {
	db := newTestDB(t)
	svc := NewChatService(repository.NewChatRepository(db, nil))

	room := util.RoomID("alice42", "bob7")

	first, err := svc.CreateMessage("hello", "alice42", room, "2026-09-01 10:00:00")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected generated chat id")
	}
	if _, err := svc.CreateMessage("hi back", "bob7", room, "2026-09-01 10:00:05"); err != nil {
		t.Fatalf("create second: %v", err)
	}
	// 别的房间的消息不能串进来
	if _, err := svc.CreateMessage("other room", "carol13", util.RoomID("bob7", "carol13"), "2026-09-01 10:00:10"); err != nil {
		t.Fatalf("create other: %v", err)
	}

	chats, err := svc.GetRoomMessages(room)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(chats) != 2 {
		t.Fatalf("expected 2 messages in room, got %d", len(chats))
	}
	if chats[0].Message != "hello" || chats[0].UserName != "alice42" {
		t.Fatalf("unexpected first message: %+v", chats[0])
	}
}
