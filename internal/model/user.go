package model

import (
	"time"
)

// swagger:model User
type User struct {
	BaseModel
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;unique;not null" json:"email"`
	Username     string    `gorm:"size:100;unique;not null" json:"username"`
	Picture      string    `gorm:"size:255" json:"picture"`
	OnlineStatus bool      `gorm:"default:false" json:"onlineStatus"`
	LastOnline   time.Time `json:"lastOnline"`
}

func (User) TableName() string {
	return "users"
}

// PublicProfile 好友列表、搜索结果等场景下返回的公开信息
type PublicProfile struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Picture      string `json:"picture"`
	Name         string `json:"name,omitempty"`
	OnlineStatus bool   `json:"onlineStatus"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:           u.ID,
		Username:     u.Username,
		Picture:      u.Picture,
		Name:         u.Name,
		OnlineStatus: u.OnlineStatus,
	}
}
