package controller

import (
	"errors"
	"fmt"
	"linkup_backend/internal/config"
	"linkup_backend/internal/service"
	"linkup_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

// PostController 处理帖子与点赞相关的HTTP请求
type PostController struct {
	PostService    *service.PostService
	StorageService *service.StorageService
	Config         *config.Config
}

func NewPostController(postService *service.PostService, storageService *service.StorageService, cfg *config.Config) *PostController {
	return &PostController{
		PostService:    postService,
		StorageService: storageService,
		Config:         cfg,
	}
}

// LikeRequest 点赞/取消点赞请求
type LikeRequest struct {
	UserID uint   `json:"userId" binding:"required" example:"1"`
	PostID string `json:"postId" binding:"required" example:"uuid-post-123"`
}

// CaptionOnlyPostRequest 纯文字帖子请求
type CaptionOnlyPostRequest struct {
	UserID  uint   `json:"userId" binding:"required" example:"1"`
	Caption string `json:"caption" binding:"required" example:"hi"`
}

// GenerateUploadURLRequest 预签名直传请求
type GenerateUploadURLRequest struct {
	FileName string `json:"fileName" binding:"required" example:"photo.png"`
}

// GetPosts godoc
// @Summary 获取信息流
// @Description 全量帖子按创建时间倒序，附带点赞数、评论数和请求者视角的点赞状态
// @Tags 帖子
// @Produce  json
// @Param   userId query int true "请求者用户ID"
// @Success 200 {object} map[string]interface{} "{message, posts}"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/posts/getPosts [get]
func (ctrl *PostController) GetPosts(c *gin.Context) {
	userID := util.MustParseUint(c.Query("userId"))
	if userID == 0 {
		util.BadRequest(c, "Valid userId is required")
		return
	}

	posts, err := ctrl.PostService.Feed(userID)
	if err != nil {
		util.LogInternalError(c, "Failed to fetch posts", err)
		return
	}

	c.JSON(200, gin.H{
		"message": "Posts fetched",
		"posts":   posts,
	})
}

// Count godoc
// @Summary 获取用户发帖数
// @Tags 帖子
// @Produce  json
// @Param   userId query int true "用户ID"
// @Success 200 {object} map[string]interface{} "{message, count}"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/posts/count [get]
func (ctrl *PostController) Count(c *gin.Context) {
	userID := util.MustParseUint(c.Query("userId"))
	if userID == 0 {
		util.BadRequest(c, "Valid userId is required")
		return
	}

	count, err := ctrl.PostService.CountByUser(userID)
	if err != nil {
		util.LogInternalError(c, "Failed to count posts", err)
		return
	}

	c.JSON(200, gin.H{
		"message": "Post count fetched",
		"count":   count,
	})
}

// Like godoc
// @Summary 点赞
// @Description 用户不存在返回 404，重复点赞返回 409
// @Tags 帖子
// @Accept  json
// @Produce  json
// @Param   request body LikeRequest true "点赞请求"
// @Success 200 {object} util.Response "已点赞"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 404 {object} util.Response "用户不存在"
// @Failure 409 {object} util.Response "重复点赞"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/posts/likePost [post]
func (ctrl *PostController) Like(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	_, err := ctrl.PostService.Like(req.UserID, req.PostID)
	if errors.Is(err, util.ErrUserNotFound) {
		util.NotFound(c, "User not found")
		return
	}
	if errors.Is(err, util.ErrAlreadyLiked) {
		util.Conflict(c, "Post already liked")
		return
	}
	if err != nil {
		util.LogInternalError(c, "Failed to like post", err)
		return
	}

	c.JSON(200, gin.H{"message": "Post liked"})
}

// Unlike godoc
// @Summary 取消点赞
// @Description 点赞记录不存在时返回 404
// @Tags 帖子
// @Accept  json
// @Produce  json
// @Param   request body LikeRequest true "取消点赞请求"
// @Success 200 {object} util.Response "已取消"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 404 {object} util.Response "用户或点赞记录不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/posts/unlikePost [post]
func (ctrl *PostController) Unlike(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	err := ctrl.PostService.Unlike(req.UserID, req.PostID)
	if errors.Is(err, util.ErrUserNotFound) {
		util.NotFound(c, "User not found")
		return
	}
	if errors.Is(err, util.ErrLikeNotFound) {
		util.NotFound(c, "Like not found")
		return
	}
	if err != nil {
		util.LogInternalError(c, "Failed to unlike post", err)
		return
	}

	c.JSON(200, gin.H{"message": "Post unliked"})
}

// Delete godoc
// @Summary 删除帖子
// @Tags 帖子
// @Produce  json
// @Param   postId query string true "帖子ID"
// @Success 200 {object} util.Response "已删除"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 404 {object} util.Response "帖子不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/posts/deletePost [delete]
func (ctrl *PostController) Delete(c *gin.Context) {
	postID := c.Query("postId")
	if postID == "" {
		util.BadRequest(c, "postId is required")
		return
	}

	err := ctrl.PostService.DeletePost(postID)
	if errors.Is(err, util.ErrPostNotFound) {
		util.NotFound(c, "Post not found")
		return
	}
	if err != nil {
		util.LogInternalError(c, "Failed to delete post", err)
		return
	}

	c.JSON(200, gin.H{"message": "Post deleted"})
}

// Upload godoc
// @Summary 发布带图帖子
// @Description multipart 上传，只接受 PNG/JPEG（嗅探文件头），本地存储时 URL 由请求协议和主机拼出
// @Tags 帖子
// @Accept  multipart/form-data
// @Produce  json
// @Param   image formData file true "图片"
// @Param   userId formData int true "用户ID"
// @Param   caption formData string false "文案"
// @Success 200 {object} map[string]interface{} "{message, post}"
// @Failure 400 {object} util.Response "参数或文件类型错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/posts/uploadPost [post]
func (ctrl *PostController) Upload(c *gin.Context) {
	userID := util.MustParseUint(c.PostForm("userId"))
	if userID == 0 {
		util.BadRequest(c, "Valid userId is required")
		return
	}
	caption := c.PostForm("caption")

	imageURL, err := ctrl.saveImage(c)
	if err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	post, err := ctrl.PostService.CreatePost(userID, caption, imageURL)
	if err != nil {
		util.LogInternalError(c, "Failed to create post", err)
		return
	}

	c.JSON(200, gin.H{
		"message": "Post created",
		"post":    post,
	})
}

// UploadWithoutImage godoc
// @Summary 发布纯文字帖子
// @Tags 帖子
// @Accept  json
// @Produce  json
// @Param   request body CaptionOnlyPostRequest true "文字帖子"
// @Success 200 {object} map[string]interface{} "{message, post}"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/posts/uploadWithoutImage [post]
func (ctrl *PostController) UploadWithoutImage(c *gin.Context) {
	var req CaptionOnlyPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	post, err := ctrl.PostService.CreatePost(req.UserID, req.Caption, "")
	if err != nil {
		util.LogInternalError(c, "Failed to create post", err)
		return
	}

	c.JSON(200, gin.H{
		"message": "Post created",
		"post":    post,
	})
}

// GenerateUploadURL godoc
// @Summary 生成预签名直传地址
// @Description 对象存储（MinIO/OSS）返回限时 PUT 地址，本地存储不支持
// @Tags 帖子
// @Accept  json
// @Produce  json
// @Param   request body GenerateUploadURLRequest true "文件名"
// @Success 200 {object} map[string]interface{} "{message, uploadUrl, objectName}"
// @Failure 400 {object} util.Response "参数错误或存储不支持"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/posts/generateUploadUrl [post]
func (ctrl *PostController) GenerateUploadURL(c *gin.Context) {
	var req GenerateUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	objectName := ctrl.StorageService.ObjectName(req.FileName)
	uploadURL, err := ctrl.StorageService.PresignedUploadURL(c.Request.Context(), objectName, 15*time.Minute)
	if errors.Is(err, service.ErrPresignNotSupported) {
		util.BadRequest(c, "Direct upload is not supported by the current storage")
		return
	}
	if err != nil {
		util.LogInternalError(c, "Failed to generate upload URL", err)
		return
	}

	c.JSON(200, gin.H{
		"message":    "Upload URL generated",
		"uploadUrl":  uploadURL,
		"objectName": objectName,
	})
}

// saveImage 校验并保存 multipart 图片，返回可访问的 URL
func (ctrl *PostController) saveImage(c *gin.Context) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", errors.New("image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	mimeType, err := util.ValidateMimeType(file, util.AllowedImageTypes)
	if err != nil {
		return "", err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return "", err
	}

	objectName := ctrl.StorageService.ObjectName(fileHeader.Filename)
	storedURL, err := ctrl.StorageService.Upload(c.Request.Context(), objectName, file, fileHeader.Size, mimeType)
	if err != nil {
		return "", err
	}

	// 本地存储返回相对路径，用请求的协议和主机拼成完整地址
	if ctrl.Config.Storage.Type == util.StorageLocal {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		return fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, storedURL), nil
	}
	return storedURL, nil
}
