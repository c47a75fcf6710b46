package model

// Chat 聊天消息记录
// 广播与落库互相独立：消息先走 WebSocket 转发，持久化由前端另发一次 HTTP 请求完成
type Chat struct {
	UUIDBase
	Message  string `gorm:"type:text;not null" json:"message"`
	UserName string `gorm:"size:100;index" json:"userName"`
	RoomName string `gorm:"size:210;index" json:"roomName"`
	Time     string `gorm:"size:50" json:"time"`
}

func (Chat) TableName() string {
	return "chats"
}
