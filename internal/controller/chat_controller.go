package controller

import (
	"linkup_backend/internal/service"
	"linkup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ChatController 处理实时聊天的 WebSocket 握手
type ChatController struct {
	Hub *service.ChatHub
}

func NewChatController(hub *service.ChatHub) *ChatController {
	return &ChatController{Hub: hub}
}

// HandleWS godoc
// @Summary WebSocket 连接
// @Description 建立 WebSocket 连接，支持 joinRoom / enter / message 事件的房间广播
// @Tags 实时聊天
// @Produce  json
// @Security ApiKeyAuth
// @Param   token query string true "JWT Token"
// @Success 101 {string} string "Switching Protocols"
// @Failure 401 {object} util.Response "未授权"
// @Router /ws [get]
func (ctrl *ChatController) HandleWS(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}
	service.ServeWs(ctrl.Hub, c.Writer, c.Request, claims.UserID, claims.Username)
}
