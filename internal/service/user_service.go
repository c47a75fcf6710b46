package service

import (
	"errors"
	"linkup_backend/internal/model"
	"linkup_backend/internal/repository"
	"linkup_backend/internal/util"
	"math/rand"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) ExistsByEmail(email string) (bool, error) {
	return s.UserRepo.ExistsByEmail(email)
}

func (s *UserService) GetDetails(email string) (*model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

// CreateUser 外部登录成功后的首次建档
// 用户名取展示名第一个词的小写加随机数字后缀，撞库时换一个后缀重试一次；
// 第二次仍冲突就让数据库唯一索引报错
func (s *UserService) CreateUser(email, name, picture string) (*model.User, error) {
	username := generateUsername(name, rand.Intn(1000))

	taken, err := s.UserRepo.UsernameTaken(username)
	if err != nil {
		return nil, err
	}
	if taken {
		username = generateUsername(name, rand.Intn(1000)+1)
	}

	user := &model.User{
		Email:    email,
		Name:     name,
		Username: username,
		Picture:  picture,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateOnlineStatus(email string) (*model.User, error) {
	user, err := s.UserRepo.SetOnlineStatus(email, true)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func generateUsername(name string, suffix int) string {
	first := name
	if idx := strings.IndexByte(name, ' '); idx > 0 {
		first = name[:idx]
	}
	return strings.ToLower(first) + strconv.Itoa(suffix)
}
