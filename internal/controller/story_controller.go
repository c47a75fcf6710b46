package controller

import (
	"errors"
	"fmt"
	"linkup_backend/internal/config"
	"linkup_backend/internal/service"
	"linkup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// StoryController 处理故事相关的HTTP请求
type StoryController struct {
	StoryService   *service.StoryService
	StorageService *service.StorageService
	Config         *config.Config
}

func NewStoryController(storyService *service.StoryService, storageService *service.StorageService, cfg *config.Config) *StoryController {
	return &StoryController{
		StoryService:   storyService,
		StorageService: storageService,
		Config:         cfg,
	}
}

// FriendStoriesRequest 查询好友故事请求
type FriendStoriesRequest struct {
	UserID uint `json:"userId" binding:"required" example:"1"`
}

// Add godoc
// @Summary 发布故事
// @Description multipart 上传图片，只接受 PNG/JPEG
// @Tags 故事
// @Accept  multipart/form-data
// @Produce  json
// @Param   image formData file true "图片"
// @Param   userId formData int true "用户ID"
// @Success 200 {object} map[string]interface{} "{message, story}"
// @Failure 400 {object} util.Response "参数或文件类型错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/stories/add [post]
func (ctrl *StoryController) Add(c *gin.Context) {
	userID := util.MustParseUint(c.PostForm("userId"))
	if userID == 0 {
		util.BadRequest(c, "Valid userId is required")
		return
	}

	imageURL, err := ctrl.saveImage(c)
	if err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	story, err := ctrl.StoryService.AddStory(userID, imageURL)
	if err != nil {
		util.LogInternalError(c, "Failed to create story", err)
		return
	}

	c.JSON(200, gin.H{
		"message": "Story created",
		"story":   story,
	})
}

// All godoc
// @Summary 获取好友故事
// @Description 只返回一跳好友发布的故事，不含用户自己的
// @Tags 故事
// @Accept  json
// @Produce  json
// @Param   request body FriendStoriesRequest true "用户ID"
// @Success 200 {object} map[string]interface{} "{message, stories}"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/stories/all [post]
func (ctrl *StoryController) All(c *gin.Context) {
	var req FriendStoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	stories, err := ctrl.StoryService.FriendStories(req.UserID)
	if err != nil {
		util.LogInternalError(c, "Failed to fetch stories", err)
		return
	}

	c.JSON(200, gin.H{
		"message": "Stories fetched",
		"stories": stories,
	})
}

func (ctrl *StoryController) saveImage(c *gin.Context) (string, error) {
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

	if ctrl.Config.Storage.Type == util.StorageLocal {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		return fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, storedURL), nil
	}
	return storedURL, nil
}
