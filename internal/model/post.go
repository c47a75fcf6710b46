package model

type Post struct {
	UUIDBase
	UserID  uint      `gorm:"index;not null" json:"userId"`
	User    User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Caption string    `gorm:"type:text" json:"caption"`
	Image   string    `gorm:"size:255" json:"image"`
	Likes   []Like    `gorm:"foreignKey:PostID" json:"-"`
	Replies []Comment `gorm:"foreignKey:PostID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

// Like 点赞表，(user_id, post_id) 唯一索引兜底并发下的重复点赞
type Like struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint   `gorm:"uniqueIndex:idx_user_post;not null" json:"userId"`
	PostID string `gorm:"uniqueIndex:idx_user_post;size:36;not null" json:"postId"`
}

func (Like) TableName() string {
	return "likes"
}

type Comment struct {
	UUIDBase
	PostID string `gorm:"index;size:36;not null" json:"postId"`
	UserID uint   `gorm:"index;not null" json:"userId"`
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Text   string `gorm:"type:text;not null" json:"text"`
}

func (Comment) TableName() string {
	return "comments"
}
