package controller

import (
	"linkup_backend/internal/service"
	"linkup_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

// MessageController 处理聊天记录的HTTP读写
// 与 WebSocket 广播互相独立：落库失败不影响已经广播出去的消息
type MessageController struct {
	ChatService *service.ChatService
}

func NewMessageController(chatService *service.ChatService) *MessageController {
	return &MessageController{ChatService: chatService}
}

// CreateMessageRequest 落库聊天消息请求
type CreateMessageRequest struct {
	Message  string `json:"message" binding:"required" example:"hello"`
	UserName string `json:"userName" binding:"required" example:"alice42"`
	RoomName string `json:"roomName" binding:"required" example:"alice42-bob7"`
	Time     string `json:"time" example:"2026-09-01 10:00:00"`
}

// Create godoc
// @Summary 保存聊天消息
// @Tags 聊天记录
// @Accept  json
// @Produce  json
// @Param   request body CreateMessageRequest true "消息内容"
// @Success 200 {object} map[string]interface{} "{message, chat}"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/messages/create [post]
func (ctrl *MessageController) Create(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	if req.Time == "" {
		req.Time = time.Now().Format(util.TimeFormat)
	}

	chat, err := ctrl.ChatService.CreateMessage(req.Message, req.UserName, req.RoomName, req.Time)
	if err != nil {
		util.LogInternalError(c, "Failed to save chat message", err)
		return
	}

	c.JSON(200, gin.H{
		"message": "Chat message saved",
		"chat":    chat,
	})
}

// AllMessages godoc
// @Summary 获取房间聊天记录
// @Tags 聊天记录
// @Produce  json
// @Param   roomName query string true "房间名"
// @Success 200 {object} map[string]interface{} "{message, chats}"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/messages/allMessages [get]
func (ctrl *MessageController) AllMessages(c *gin.Context) {
	roomName := c.Query("roomName")
	if roomName == "" {
		util.BadRequest(c, "roomName is required")
		return
	}

	chats, err := ctrl.ChatService.GetRoomMessages(roomName)
	if err != nil {
		util.LogInternalError(c, "Failed to fetch chat messages", err)
		return
	}

	c.JSON(200, gin.H{
		"message": "Chat messages fetched",
		"chats":   chats,
	})
}
