package service

import (
	"linkup_backend/internal/model"
	"linkup_backend/internal/repository"
)

type ChatService struct {
	ChatRepo *repository.ChatRepository
}

func NewChatService(chatRepo *repository.ChatRepository) *ChatService {
	return &ChatService{ChatRepo: chatRepo}
}

// CreateMessage 落库一条聊天记录
// 与 WebSocket 广播互相独立：广播成功不保证落库成功，反之亦然
func (s *ChatService) CreateMessage(message, userName, roomName, timeStr string) (*model.Chat, error) {
	chat := &model.Chat{
		Message:  message,
		UserName: userName,
		RoomName: roomName,
		Time:     timeStr,
	}
	if err := s.ChatRepo.Create(chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *ChatService) GetRoomMessages(roomName string) ([]model.Chat, error) {
	return s.ChatRepo.FindByRoom(roomName)
}
