package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"linkup_backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const roomCacheTTL = 10 * time.Minute

type ChatRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	ctx   context.Context
}

func NewChatRepository(db *gorm.DB, rdb *redis.Client) *ChatRepository {
	return &ChatRepository{
		DB:    db,
		Redis: rdb,
		ctx:   context.Background(),
	}
}

func (r *ChatRepository) Create(chat *model.Chat) error {
	err := r.DB.Create(chat).Error
	if err == nil && r.Redis != nil {
		// 新消息写入后失效房间历史缓存
		r.Redis.Del(r.ctx, r.roomKey(chat.RoomName))
	}
	return err
}

// FindByRoom 房间历史消息，带 Redis 缓存
func (r *ChatRepository) FindByRoom(roomName string) ([]model.Chat, error) {
	if r.Redis != nil {
		cached, err := r.Redis.Get(r.ctx, r.roomKey(roomName)).Result()
		if err == nil {
			var chats []model.Chat
			if json.Unmarshal([]byte(cached), &chats) == nil {
				return chats, nil
			}
		}
	}

	var chats []model.Chat
	err := r.DB.Where("room_name = ?", roomName).
		Order("created_at ASC").
		Find(&chats).Error
	if err != nil {
		return nil, err
	}

	if r.Redis != nil {
		if data, err := json.Marshal(chats); err == nil {
			r.Redis.Set(r.ctx, r.roomKey(roomName), data, roomCacheTTL)
		}
	}
	return chats, nil
}

func (r *ChatRepository) roomKey(roomName string) string {
	return fmt.Sprintf("chat:room:%s", roomName)
}
