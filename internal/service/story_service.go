package service

import (
	"linkup_backend/internal/model"
	"linkup_backend/internal/repository"
)

type StoryService struct {
	StoryRepo  *repository.StoryRepository
	FriendRepo *repository.FriendshipRepository
}

func NewStoryService(storyRepo *repository.StoryRepository, friendRepo *repository.FriendshipRepository) *StoryService {
	return &StoryService{
		StoryRepo:  storyRepo,
		FriendRepo: friendRepo,
	}
}

func (s *StoryService) AddStory(userID uint, imageURL string) (*model.Story, error) {
	story := &model.Story{
		UserID: userID,
		Image:  imageURL,
	}
	if err := s.StoryRepo.Create(story); err != nil {
		return nil, err
	}
	return story, nil
}

// FriendStories 只返回一跳好友发布的故事，不含用户自己的
func (s *StoryService) FriendStories(userID uint) ([]model.Story, error) {
	friendIDs, err := s.FriendRepo.GetFriendIDsCached(userID)
	if err != nil {
		return nil, err
	}
	return s.StoryRepo.FindByUserIDs(friendIDs)
}
