package controller

import (
	"errors"
	"linkup_backend/internal/service"
	"linkup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// FriendController 处理好友关系相关的HTTP请求
type FriendController struct {
	FriendshipService *service.FriendshipService
	UserService       *service.UserService
}

func NewFriendController(friendshipService *service.FriendshipService, userService *service.UserService) *FriendController {
	return &FriendController{
		FriendshipService: friendshipService,
		UserService:       userService,
	}
}

// SendFriendRequestRequest 发送好友申请请求
type SendFriendRequestRequest struct {
	FromUserID uint `json:"fromUserId" binding:"required" example:"1"`
	ToUserID   uint `json:"toUserId" binding:"required" example:"2"`
}

// AcceptFriendRequestRequest 接受好友申请请求
type AcceptFriendRequestRequest struct {
	SenderID   uint   `json:"senderId" binding:"required" example:"1"`
	ReceiverID uint   `json:"receiverId" binding:"required" example:"2"`
	RequestID  string `json:"requestId" binding:"required" example:"uuid-req-123"`
}

// RemoveFriendRequest 删除好友请求
type RemoveFriendRequest struct {
	MyUserName     string `json:"myUserName" binding:"required" example:"alice42"`
	FriendUserName string `json:"friendUserName" binding:"required" example:"bob7"`
}

// SearchUsersRequest 搜索用户请求
type SearchUsersRequest struct {
	Username     string `json:"username" example:"ali"`
	SelfUsername string `json:"selfUsername" example:"bob7"`
}

// SuggestionsRequest 好友推荐请求
type SuggestionsRequest struct {
	Username string `json:"username" example:"ali"`
	UserID   uint   `json:"userId" binding:"required" example:"1"`
}

// OnlineStatusRequest 上线通知请求
type OnlineStatusRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SendRequest godoc
// @Summary 发送好友申请
// @Description 发起方向接收方发送好友申请，同一方向的重复申请返回 400 并带 exists 标记
// @Tags 好友
// @Accept  json
// @Produce  json
// @Param   request body SendFriendRequestRequest true "申请双方"
// @Success 200 {object} map[string]interface{} "{message, friendRequest}"
// @Failure 400 {object} map[string]interface{} "重复申请 {message, exists}"
// @Failure 404 {object} util.Response "用户不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/friends/request [post]
func (ctrl *FriendController) SendRequest(c *gin.Context) {
	var req SendFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	fr, err := ctrl.FriendshipService.SendRequest(req.FromUserID, req.ToUserID)
	if errors.Is(err, util.ErrUserNotFound) {
		util.NotFound(c, "User not found")
		return
	}
	if errors.Is(err, util.ErrRequestExists) {
		c.JSON(400, gin.H{
			"message": "Friend request already exists",
			"exists":  true,
		})
		return
	}
	if err != nil {
		util.LogInternalError(c, "Failed to create friend request", err)
		return
	}

	c.JSON(200, gin.H{
		"message":       "Friend request sent",
		"friendRequest": fr,
	})
}

// GetRequests godoc
// @Summary 获取待处理好友申请
// @Description 列出接收方为指定用户、状态为 pending 的申请，附带双方公开资料
// @Tags 好友
// @Produce  json
// @Param   userId query int true "接收方用户ID"
// @Success 200 {object} map[string]interface{} "{message, requests}"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/friends/requests [get]
func (ctrl *FriendController) GetRequests(c *gin.Context) {
	userID := util.MustParseUint(c.Query("userId"))
	if userID == 0 {
		util.BadRequest(c, "Valid userId is required")
		return
	}

	requests, err := ctrl.FriendshipService.GetPendingRequests(userID)
	if err != nil {
		util.LogInternalError(c, "Failed to fetch friend requests", err)
		return
	}

	c.JSON(200, gin.H{
		"message":  "Friend requests fetched",
		"requests": requests,
	})
}

// AcceptRequest godoc
// @Summary 接受好友申请
// @Description 把申请状态置为 accepted 并在一个事务里物化双向好友关系
// @Tags 好友
// @Accept  json
// @Produce  json
// @Param   request body AcceptFriendRequestRequest true "申请标识"
// @Success 200 {object} map[string]interface{} "{message, friendRequest}"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 404 {object} util.Response "申请不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/friends/accept [post]
func (ctrl *FriendController) AcceptRequest(c *gin.Context) {
	var req AcceptFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	fr, err := ctrl.FriendshipService.AcceptRequest(req.SenderID, req.ReceiverID, req.RequestID)
	if errors.Is(err, util.ErrRequestNotFound) {
		util.NotFound(c, "Friend request not found")
		return
	}
	if err != nil {
		util.LogInternalError(c, "Failed to accept friend request", err)
		return
	}

	c.JSON(200, gin.H{
		"message":       "Friend request accepted",
		"friendRequest": fr,
	})
}

// GetFriends godoc
// @Summary 获取好友列表
// @Description 正向读取好友关系，依赖接受时的双向写入保证完整
// @Tags 好友
// @Produce  json
// @Param   userId query int true "用户ID"
// @Success 200 {object} map[string]interface{} "{message, friends}"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/friends/all [get]
func (ctrl *FriendController) GetFriends(c *gin.Context) {
	userID := util.MustParseUint(c.Query("userId"))
	if userID == 0 {
		util.BadRequest(c, "Valid userId is required")
		return
	}

	friends, err := ctrl.FriendshipService.GetFriends(userID)
	if err != nil {
		util.LogInternalError(c, "Failed to fetch friends", err)
		return
	}

	c.JSON(200, gin.H{
		"message": "Friends fetched",
		"friends": friends,
	})
}

// RemoveFriend godoc
// @Summary 删除好友
// @Description 按用户名删除双向好友关系，两行在一个事务里删掉
// @Tags 好友
// @Accept  json
// @Produce  json
// @Param   request body RemoveFriendRequest true "双方用户名"
// @Success 200 {object} util.Response "已删除"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 404 {object} util.Response "用户不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/friends/remove [post]
func (ctrl *FriendController) RemoveFriend(c *gin.Context) {
	var req RemoveFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	err := ctrl.FriendshipService.RemoveFriend(req.MyUserName, req.FriendUserName)
	if errors.Is(err, util.ErrUserNotFound) {
		util.NotFound(c, "User not found")
		return
	}
	if err != nil {
		util.LogInternalError(c, "Failed to remove friend", err)
		return
	}

	c.JSON(200, gin.H{"message": "Friend removed"})
}

// SearchUsers godoc
// @Summary 搜索用户
// @Description 用户名大小写不敏感的子串匹配，排除请求者自己
// @Tags 好友
// @Accept  json
// @Produce  json
// @Param   request body SearchUsersRequest true "搜索条件"
// @Success 200 {array} model.PublicProfile "匹配用户"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/friends/search [post]
func (ctrl *FriendController) SearchUsers(c *gin.Context) {
	var req SearchUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	users, err := ctrl.FriendshipService.SearchUsers(req.Username, req.SelfUsername)
	if err != nil {
		util.LogInternalError(c, "Failed to search users", err)
		return
	}
	c.JSON(200, users)
}

// Suggestions godoc
// @Summary 好友推荐
// @Description 同搜索，但额外排除自己和所有一跳好友
// @Tags 好友
// @Accept  json
// @Produce  json
// @Param   request body SuggestionsRequest true "推荐条件"
// @Success 200 {array} model.PublicProfile "推荐用户"
// @Failure 404 {object} util.Response "用户不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/friends/suggestions [post]
func (ctrl *FriendController) Suggestions(c *gin.Context) {
	var req SuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	users, err := ctrl.FriendshipService.Suggestions(req.Username, req.UserID)
	if errors.Is(err, util.ErrUserNotFound) {
		util.NotFound(c, "User not found")
		return
	}
	if err != nil {
		util.LogInternalError(c, "Failed to fetch suggestions", err)
		return
	}
	c.JSON(200, users)
}

// OnlineStatus godoc
// @Summary 上线通知
// @Description 标记用户在线并刷新最后在线时间
// @Tags 好友
// @Accept  json
// @Produce  json
// @Param   request body OnlineStatusRequest true "用户邮箱"
// @Success 200 {object} map[string]interface{} "{message, user}"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 404 {object} util.Response "用户不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/friends/onlinestatus [post]
func (ctrl *FriendController) OnlineStatus(c *gin.Context) {
	var req OnlineStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user, err := ctrl.UserService.UpdateOnlineStatus(req.Email)
	if errors.Is(err, util.ErrUserNotFound) {
		util.NotFound(c, "User not found")
		return
	}
	if err != nil {
		util.LogInternalError(c, "Failed to update online status", err)
		return
	}

	c.JSON(200, gin.H{
		"message": "Online status updated",
		"user":    user,
	})
}
