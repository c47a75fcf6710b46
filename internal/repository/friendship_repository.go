package repository

import (
	"context"
	"fmt"
	"linkup_backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FriendshipRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	ctx   context.Context
}

func NewFriendshipRepository(db *gorm.DB, rdb *redis.Client) *FriendshipRepository {
	return &FriendshipRepository{
		DB:    db,
		Redis: rdb,
		ctx:   context.Background(),
	}
}

// CreateFriendship 在一个事务里写入两条方向行
// 复合主键 (user_id, friend_id) + DoNothing 保证并发 accept 收敛到同一条边
func (r *FriendshipRepository) CreateFriendship(f *model.Friend) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error; err != nil {
			return err
		}
		reverse := &model.Friend{
			UserID:   f.FriendID,
			FriendID: f.UserID,
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(reverse).Error
	})

	if err == nil && r.Redis != nil {
		// 清除关系缓存
		r.Redis.Del(r.ctx, fmt.Sprintf("relation:friends:%d", f.UserID))
		r.Redis.Del(r.ctx, fmt.Sprintf("relation:friends:%d", f.FriendID))
	}
	return err
}

func (r *FriendshipRepository) IsFriend(userID, friendID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Friend{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Count(&count).Error
	return count > 0, err
}

// GetFriends 正向读取好友列表，正确性依赖双向写入不变式
func (r *FriendshipRepository) GetFriends(userID uint) ([]model.User, error) {
	var friends []model.User
	err := r.DB.Select("users.id, users.username, users.picture, users.name, users.online_status").
		Joins("JOIN friends ON friends.friend_id = users.id").
		Where("friends.user_id = ?", userID).
		Find(&friends).Error
	return friends, err
}

// GetFriendIDs 取与 userID 相邻的所有用户 ID（行的任一端是 userID 时取另一端）
func (r *FriendshipRepository) GetFriendIDs(userID uint) ([]uint, error) {
	var rows []model.Friend
	if err := r.DB.Where("user_id = ? OR friend_id = ?", userID, userID).Find(&rows).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(rows))
	var ids []uint
	for _, row := range rows {
		other := row.FriendID
		if row.UserID != userID {
			other = row.UserID
		}
		if !seen[other] {
			seen[other] = true
			ids = append(ids, other)
		}
	}
	return ids, nil
}

// GetFriendIDsCached 好友 ID 列表 (带缓存)
func (r *FriendshipRepository) GetFriendIDsCached(userID uint) ([]uint, error) {
	if r.Redis == nil {
		return r.GetFriendIDs(userID)
	}

	key := fmt.Sprintf("relation:friends:%d", userID)
	cached, err := r.Redis.SMembers(r.ctx, key).Result()
	if err == nil && len(cached) > 0 {
		var ids []uint
		for _, s := range cached {
			var id uint
			fmt.Sscanf(s, "%d", &id)
			if id > 0 {
				ids = append(ids, id)
			}
		}
		return ids, nil
	}

	// 缓存失效，回源数据库
	ids, err := r.GetFriendIDs(userID)
	if err == nil && len(ids) > 0 {
		pipe := r.Redis.Pipeline()
		for _, id := range ids {
			pipe.SAdd(r.ctx, key, id)
		}
		pipe.Expire(r.ctx, key, 24*time.Hour)
		pipe.Exec(r.ctx)
	} else if err == nil {
		// 防止缓存穿透
		r.Redis.SAdd(r.ctx, key, 0)
		r.Redis.Expire(r.ctx, key, 5*time.Minute)
	}
	return ids, err
}

// DeleteFriendshipByUsernames 按用户名删除两条方向行，一个事务完成
func (r *FriendshipRepository) DeleteFriendshipByUsernames(usernameA, usernameB string) error {
	var userA, userB model.User
	if err := r.DB.Where("username = ?", usernameA).First(&userA).Error; err != nil {
		return err
	}
	if err := r.DB.Where("username = ?", usernameB).First(&userB).Error; err != nil {
		return err
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userA.ID, userB.ID, userB.ID, userA.ID).
			Delete(&model.Friend{}).Error
	})

	if err == nil && r.Redis != nil {
		r.Redis.Del(r.ctx, fmt.Sprintf("relation:friends:%d", userA.ID))
		r.Redis.Del(r.ctx, fmt.Sprintf("relation:friends:%d", userB.ID))
	}
	return err
}

// FriendEdge 全局好友图里的一条有向行（两端用户名）
type FriendEdge struct {
	UserUsername   string
	FriendUsername string
}

func (r *FriendshipRepository) AllEdges() ([]FriendEdge, error) {
	var edges []FriendEdge
	err := r.DB.Table("friends").
		Select("u.username AS user_username, f.username AS friend_username").
		Joins("JOIN users u ON u.id = friends.user_id").
		Joins("JOIN users f ON f.id = friends.friend_id").
		Scan(&edges).Error
	return edges, err
}

func (r *FriendshipRepository) CreateRequest(req *model.FriendRequest) error {
	return r.DB.Create(req).Error
}

func (r *FriendshipRepository) GetRequest(id string) (*model.FriendRequest, error) {
	var req model.FriendRequest
	err := r.DB.First(&req, "id = ?", id).Error
	return &req, err
}

// FindRequestByPair 查同一有序 (sender, receiver) 对是否已有申请（任意状态）
func (r *FriendshipRepository) FindRequestByPair(senderID, receiverID uint) (*model.FriendRequest, error) {
	var req model.FriendRequest
	err := r.DB.Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).First(&req).Error
	return &req, err
}

func (r *FriendshipRepository) UpdateRequestStatus(id string, status string) error {
	return r.DB.Model(&model.FriendRequest{}).Where("id = ?", id).Update("status", status).Error
}

func (r *FriendshipRepository) GetPendingRequests(userID uint) ([]model.FriendRequest, error) {
	var reqs []model.FriendRequest
	err := r.DB.Preload("Sender").Preload("Receiver").
		Where("receiver_id = ? AND status = ?", userID, model.RequestPending).
		Find(&reqs).Error
	return reqs, err
}
