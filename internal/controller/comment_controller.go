package controller

import (
	"linkup_backend/internal/service"
	"linkup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CommentController 处理评论相关的HTTP请求
type CommentController struct {
	CommentService *service.CommentService
}

func NewCommentController(commentService *service.CommentService) *CommentController {
	return &CommentController{CommentService: commentService}
}

// AddCommentRequest 添加评论请求
type AddCommentRequest struct {
	UserID uint   `json:"userId" binding:"required" example:"1"`
	PostID string `json:"postId" binding:"required" example:"uuid-post-123"`
	Text   string `json:"text" binding:"required" example:"nice"`
}

// CommentsOfPostRequest 查询帖子评论请求
type CommentsOfPostRequest struct {
	PostID string `json:"postId" binding:"required" example:"uuid-post-123"`
}

// Add godoc
// @Summary 添加评论
// @Tags 评论
// @Accept  json
// @Produce  json
// @Param   request body AddCommentRequest true "评论内容"
// @Success 200 {object} map[string]interface{} "{message, comment}"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/comments/add [post]
func (ctrl *CommentController) Add(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	comment, err := ctrl.CommentService.AddComment(req.UserID, req.PostID, req.Text)
	if err != nil {
		util.LogInternalError(c, "Failed to add comment", err)
		return
	}

	c.JSON(200, gin.H{
		"message": "Comment added",
		"comment": comment,
	})
}

// All godoc
// @Summary 获取帖子评论
// @Description 按创建时间正序，附带评论者公开资料
// @Tags 评论
// @Accept  json
// @Produce  json
// @Param   request body CommentsOfPostRequest true "帖子ID"
// @Success 200 {object} map[string]interface{} "{message, comments}"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/comments/all [post]
func (ctrl *CommentController) All(c *gin.Context) {
	var req CommentsOfPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	comments, err := ctrl.CommentService.GetComments(req.PostID)
	if err != nil {
		util.LogInternalError(c, "Failed to fetch comments", err)
		return
	}

	c.JSON(200, gin.H{
		"message":  "Comments fetched",
		"comments": comments,
	})
}
