package repository

import (
	"linkup_backend/internal/model"

	"gorm.io/gorm"
)

type StoryRepository struct {
	DB *gorm.DB
}

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{DB: db}
}

func (r *StoryRepository) Create(story *model.Story) error {
	return r.DB.Create(story).Error
}

// FindByUserIDs 指定作者集合的故事，最新在前
func (r *StoryRepository) FindByUserIDs(userIDs []uint) ([]model.Story, error) {
	if len(userIDs) == 0 {
		return []model.Story{}, nil
	}
	var stories []model.Story
	err := r.DB.Preload("User").
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Find(&stories).Error
	return stories, err
}
