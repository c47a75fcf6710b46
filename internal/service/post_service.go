package service

import (
	"errors"
	"linkup_backend/internal/model"
	"linkup_backend/internal/repository"
	"linkup_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type PostService struct {
	PostRepo *repository.PostRepository
	UserRepo *repository.UserRepository
}

func NewPostService(postRepo *repository.PostRepository, userRepo *repository.UserRepository) *PostService {
	return &PostService{
		PostRepo: postRepo,
		UserRepo: userRepo,
	}
}

// PostView 信息流里的单条帖子，点赞原始行不外发，只给计数和布尔
type PostView struct {
	ID            string              `json:"id"`
	Caption       string              `json:"caption"`
	Image         string              `json:"image,omitempty"`
	UserID        uint                `json:"userId"`
	User          model.PublicProfile `json:"user"`
	LikesCount    int64               `json:"likesCount"`
	CommentsCount int64               `json:"commentsCount"`
	IsLikedByUser bool                `json:"isLikedByUser"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// Feed 全量帖子，按创建时间倒序，附带请求者视角的点赞状态
func (s *PostService) Feed(userID uint) ([]PostView, error) {
	posts, err := s.PostRepo.AllNewestFirst()
	if err != nil {
		return nil, err
	}

	likeCounts, err := s.PostRepo.LikeCounts()
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.PostRepo.CommentCounts()
	if err != nil {
		return nil, err
	}
	liked, err := s.PostRepo.LikedPostIDs(userID)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		views = append(views, PostView{
			ID:            p.ID,
			Caption:       p.Caption,
			Image:         p.Image,
			UserID:        p.UserID,
			User:          p.User.Public(),
			LikesCount:    likeCounts[p.ID],
			CommentsCount: commentCounts[p.ID],
			IsLikedByUser: liked[p.ID],
			CreatedAt:     p.CreatedAt,
		})
	}
	return views, nil
}

func (s *PostService) CreatePost(userID uint, caption, imageURL string) (*model.Post, error) {
	post := &model.Post{
		UserID:  userID,
		Caption: caption,
		Image:   imageURL,
	}
	if err := s.PostRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) CountByUser(userID uint) (int64, error) {
	return s.PostRepo.CountByUser(userID)
}

func (s *PostService) DeletePost(postID string) error {
	err := s.PostRepo.Delete(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrPostNotFound
	}
	return err
}

// Like 点赞，重复点赞返回 ErrAlreadyLiked 并且不建第二行
func (s *PostService) Like(userID uint, postID string) (*model.Like, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return nil, util.ErrUserNotFound
	}

	exists, err := s.PostRepo.HasLike(userID, postID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrAlreadyLiked
	}

	like := &model.Like{UserID: userID, PostID: postID}
	if err := s.PostRepo.CreateLike(like); err != nil {
		return nil, err
	}
	return like, nil
}

// Unlike 取消点赞，点赞行不存在时返回 ErrLikeNotFound
func (s *PostService) Unlike(userID uint, postID string) error {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return util.ErrUserNotFound
	}

	err := s.PostRepo.DeleteLike(userID, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrLikeNotFound
	}
	return err
}
