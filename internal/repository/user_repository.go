package repository

import (
	"linkup_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) UsernameTaken(username string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// SearchByUsername 用户名大小写不敏感的子串匹配，排除请求者自己的用户名
func (r *UserRepository) SearchByUsername(query, excludeUsername string) ([]model.User, error) {
	var users []model.User
	searchTerm := "%" + query + "%"
	err := r.DB.Select("id, username, picture").
		Where("LOWER(username) LIKE LOWER(?)", searchTerm).
		Where("username <> ?", excludeUsername).
		Find(&users).Error
	return users, err
}

// SearchByUsernameExcludingIDs 同上，但按 ID 列表排除（自己 + 一跳好友）
func (r *UserRepository) SearchByUsernameExcludingIDs(query string, excludeIDs []uint) ([]model.User, error) {
	var users []model.User
	searchTerm := "%" + query + "%"
	err := r.DB.Select("id, username, picture").
		Where("LOWER(username) LIKE LOWER(?)", searchTerm).
		Where("id NOT IN ?", excludeIDs).
		Find(&users).Error
	return users, err
}

func (r *UserRepository) AllUsernames() ([]string, error) {
	var usernames []string
	err := r.DB.Model(&model.User{}).Order("username").Pluck("username", &usernames).Error
	return usernames, err
}

func (r *UserRepository) SetOnlineStatus(email string, online bool) (*model.User, error) {
	var user model.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	user.OnlineStatus = online
	user.LastOnline = time.Now()
	err := r.DB.Save(&user).Error
	return &user, err
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_online", time.Now()).Error
}
