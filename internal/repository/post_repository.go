package repository

import (
	"linkup_backend/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id string) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, "id = ?", id).Error
	return &post, err
}

func (r *PostRepository) Delete(id string) error {
	res := r.DB.Where("id = ?", id).Delete(&model.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PostRepository) AllNewestFirst() ([]model.Post, error) {
	var posts []model.Post
	err := r.DB.Preload("User").Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *PostRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Post{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// LikeCounts 按帖子聚合点赞数
func (r *PostRepository) LikeCounts() (map[string]int64, error) {
	type row struct {
		PostID string
		Count  int64
	}
	var rows []row
	err := r.DB.Model(&model.Like{}).
		Select("post_id, COUNT(*) AS count").
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, rec := range rows {
		counts[rec.PostID] = rec.Count
	}
	return counts, nil
}

// CommentCounts 按帖子聚合评论数
func (r *PostRepository) CommentCounts() (map[string]int64, error) {
	type row struct {
		PostID string
		Count  int64
	}
	var rows []row
	err := r.DB.Model(&model.Comment{}).
		Select("post_id, COUNT(*) AS count").
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, rec := range rows {
		counts[rec.PostID] = rec.Count
	}
	return counts, nil
}

// LikedPostIDs 某用户点过赞的帖子 ID 集合
func (r *PostRepository) LikedPostIDs(userID uint) (map[string]bool, error) {
	var ids []string
	err := r.DB.Model(&model.Like{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	liked := make(map[string]bool, len(ids))
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *PostRepository) HasLike(userID uint, postID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *PostRepository) CreateLike(like *model.Like) error {
	return r.DB.Create(like).Error
}

func (r *PostRepository) DeleteLike(userID uint, postID string) error {
	res := r.DB.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
