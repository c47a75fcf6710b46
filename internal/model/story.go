package model

type Story struct {
	UUIDBase
	UserID uint   `gorm:"index;not null" json:"userId"`
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Image  string `gorm:"size:255;not null" json:"image"`
}

func (Story) TableName() string {
	return "stories"
}
