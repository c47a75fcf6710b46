package controller

import (
	"errors"
	"linkup_backend/internal/config"
	"linkup_backend/internal/service"
	"linkup_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserController 处理用户相关的HTTP请求
type UserController struct {
	UserService *service.UserService
	Config      *config.Config
}

func NewUserController(userService *service.UserService, cfg *config.Config) *UserController {
	return &UserController{
		UserService: userService,
		Config:      cfg,
	}
}

// CreateUserRequest 外部登录成功后的建档请求
type CreateUserRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name" binding:"required"`
	Picture string `json:"picture"`
}

// GetUser godoc
// @Summary 检查用户是否存在
// @Description 按邮箱检查用户是否已建档，返回布尔值
// @Tags 用户
// @Produce  json
// @Param   email query string true "用户邮箱"
// @Success 200 {boolean} bool "是否存在"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/users/getUser [get]
func (ctrl *UserController) GetUser(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		util.BadRequest(c, "Email is required")
		return
	}

	exists, err := ctrl.UserService.ExistsByEmail(email)
	if err != nil {
		util.LogInternalError(c, "Failed to check user existence", err)
		return
	}
	c.JSON(200, exists)
}

// CreateUser godoc
// @Summary 创建用户
// @Description 外部登录成功后首次建档，自动生成用户名并签发 WebSocket 用的 JWT
// @Tags 用户
// @Accept  json
// @Produce  json
// @Param   request body CreateUserRequest true "建档请求"
// @Success 200 {object} map[string]interface{} "{message, user, token}"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/users/createUser [post]
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user, err := ctrl.UserService.CreateUser(req.Email, req.Name, req.Picture)
	if err != nil {
		util.LogInternalError(c, "Failed to create user", err)
		return
	}

	token, err := util.GenerateJWT(user.ID, user.Username, user.Email, ctrl.Config.JWT.Secret, ctrl.Config.JWT.ExpireTime)
	if err != nil {
		util.LogInternalError(c, "Failed to issue token", err)
		return
	}

	c.JSON(200, gin.H{
		"message": "User created successfully",
		"user":    user,
		"token":   token,
	})
}

// GetDetails godoc
// @Summary 获取用户详情
// @Description 按邮箱获取完整用户记录
// @Tags 用户
// @Produce  json
// @Param   email query string true "用户邮箱"
// @Success 200 {object} model.User "用户记录"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/users/details [get]
func (ctrl *UserController) GetDetails(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		util.BadRequest(c, "Email is required")
		return
	}

	user, err := ctrl.UserService.GetDetails(email)
	if errors.Is(err, util.ErrUserNotFound) {
		util.NotFound(c, "User not found")
		return
	}
	if err != nil {
		util.LogInternalError(c, "Failed to fetch user details", err)
		return
	}
	c.JSON(200, user)
}
