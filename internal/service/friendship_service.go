package service

import (
	"errors"
	"linkup_backend/internal/model"
	"linkup_backend/internal/repository"
	"linkup_backend/internal/util"

	"gorm.io/gorm"
)

type FriendshipService struct {
	FriendRepo *repository.FriendshipRepository
	UserRepo   *repository.UserRepository
}

func NewFriendshipService(friendRepo *repository.FriendshipRepository, userRepo *repository.UserRepository) *FriendshipService {
	return &FriendshipService{
		FriendRepo: friendRepo,
		UserRepo:   userRepo,
	}
}

// SendRequest 发起好友申请
// 同一有序 (sender, receiver) 对已有申请时不再建行，返回 ErrRequestExists
func (s *FriendshipService) SendRequest(fromUserID, toUserID uint) (*model.FriendRequest, error) {
	if _, err := s.UserRepo.FindByID(fromUserID); err != nil {
		return nil, util.ErrUserNotFound
	}
	if _, err := s.UserRepo.FindByID(toUserID); err != nil {
		return nil, util.ErrUserNotFound
	}

	if _, err := s.FriendRepo.FindRequestByPair(fromUserID, toUserID); err == nil {
		return nil, util.ErrRequestExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	req := &model.FriendRequest{
		SenderID:   fromUserID,
		ReceiverID: toUserID,
		Status:     model.RequestPending,
	}
	if err := s.FriendRepo.CreateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

// AcceptRequest 接受申请并物化双向好友关系
// 成功返回后 listFriends 两个方向都能看到对方
func (s *FriendshipService) AcceptRequest(senderID, receiverID uint, requestID string) (*model.FriendRequest, error) {
	req, err := s.FriendRepo.GetRequest(requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.FriendRepo.UpdateRequestStatus(requestID, model.RequestAccepted); err != nil {
		return nil, err
	}
	req.Status = model.RequestAccepted

	isFriend, err := s.FriendRepo.IsFriend(senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if !isFriend {
		friendship := &model.Friend{
			UserID:   senderID,
			FriendID: receiverID,
		}
		if err := s.FriendRepo.CreateFriendship(friendship); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func (s *FriendshipService) GetPendingRequests(userID uint) ([]model.FriendRequest, error) {
	return s.FriendRepo.GetPendingRequests(userID)
}

func (s *FriendshipService) GetFriends(userID uint) ([]model.User, error) {
	return s.FriendRepo.GetFriends(userID)
}

func (s *FriendshipService) RemoveFriend(myUserName, friendUserName string) error {
	err := s.FriendRepo.DeleteFriendshipByUsernames(myUserName, friendUserName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrUserNotFound
	}
	return err
}

// SearchUsers 用户名子串匹配，只排除请求者自己，不做好友过滤
func (s *FriendshipService) SearchUsers(query, selfUsername string) ([]model.PublicProfile, error) {
	users, err := s.UserRepo.SearchByUsername(query, selfUsername)
	if err != nil {
		return nil, err
	}
	return toProfiles(users), nil
}

// Suggestions 同搜索，但额外排除自己和所有一跳好友
// 只排除一跳，不做好友的好友这类更深的遍历
func (s *FriendshipService) Suggestions(query string, userID uint) ([]model.PublicProfile, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return nil, util.ErrUserNotFound
	}

	friendIDs, err := s.FriendRepo.GetFriendIDsCached(userID)
	if err != nil {
		return nil, err
	}

	excludeIDs := append([]uint{userID}, friendIDs...)
	users, err := s.UserRepo.SearchByUsernameExcludingIDs(query, excludeIDs)
	if err != nil {
		return nil, err
	}
	return toProfiles(users), nil
}

func toProfiles(users []model.User) []model.PublicProfile {
	profiles := make([]model.PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, model.PublicProfile{
			ID:       users[i].ID,
			Username: users[i].Username,
			Picture:  users[i].Picture,
		})
	}
	return profiles
}
