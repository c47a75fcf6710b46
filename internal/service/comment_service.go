package service

import (
	"linkup_backend/internal/model"
	"linkup_backend/internal/repository"
)

type CommentService struct {
	CommentRepo *repository.CommentRepository
}

func NewCommentService(commentRepo *repository.CommentRepository) *CommentService {
	return &CommentService{CommentRepo: commentRepo}
}

func (s *CommentService) AddComment(userID uint, postID, text string) (*model.Comment, error) {
	comment := &model.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
	}
	if err := s.CommentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) GetComments(postID string) ([]model.Comment, error) {
	return s.CommentRepo.FindByPost(postID)
}
