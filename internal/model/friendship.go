package model

import "time"

// Friend 好友关系表
// 一条无向好友关系存两行（A→B 和 B→A），复合主键保证同方向不会重复插入
type Friend struct {
	UserID    uint      `gorm:"primaryKey" json:"userId"`
	FriendID  uint      `gorm:"primaryKey" json:"friendId"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:false" json:"-"`
	FriendRef User      `gorm:"foreignKey:FriendID;references:ID;constraint:false" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Friend) TableName() string {
	return "friends"
}

const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
)

// FriendRequest 好友申请表
type FriendRequest struct {
	UUIDBase
	SenderID   uint   `gorm:"index;not null" json:"senderId"`
	Sender     User   `gorm:"foreignKey:SenderID;references:ID;constraint:false" json:"sender,omitempty"`
	ReceiverID uint   `gorm:"index;not null" json:"receiverId"`
	Receiver   User   `gorm:"foreignKey:ReceiverID;references:ID;constraint:false" json:"receiver,omitempty"`
	Status     string `gorm:"size:20;default:'pending'" json:"status"`
}

func (FriendRequest) TableName() string {
	return "friend_requests"
}
