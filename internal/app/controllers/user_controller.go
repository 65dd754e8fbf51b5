package controllers

import (
	"strconv"

	"oksms-http-service/internal/domain/services"
	"oksms-http-service/internal/domain/services/container"
	"oksms-http-service/internal/error/code"
	"oksms-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceUserController 定义系统用户控制器接口
type InterfaceUserController interface {
	GetUsers()
	GetUser()
	CreateUser()
	UpdateUser()
	DeleteUser()
}

// UserController 处理系统用户相关的请求
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController 创建一个新的用户控制器
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// UserRequest 表示用户创建请求
type UserRequest struct {
	Username string `json:"username" binding:"required" example:"manager1"`
	Email    string `json:"email" binding:"required,email" example:"manager1@oksms.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
	Role     string `json:"role" example:"manager"` // admin, manager
}

// UserUpdateRequest 表示用户更新请求
type UserUpdateRequest struct {
	Username string `json:"username" example:"manager1"`
	Email    string `json:"email" example:"manager1@oksms.com"`
	Password string `json:"password" example:""`
	Role     string `json:"role" example:"manager"`
}

// HandleUserFunc 返回一个处理用户请求的Gin处理函数
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "getUser":
			controller.GetUser()
		case "createUser":
			controller.CreateUser()
		case "updateUser":
			controller.UpdateUser()
		case "deleteUser":
			controller.DeleteUser()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetUsers 获取所有系统用户
// @Summary 获取所有用户
// @Description 获取系统中所有后台用户的列表
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /users [get]
func (c *UserController) GetUsers() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	users, total, err := userService.GetAllUsers(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取用户列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        users,
	})
}

// 2. GetUser 获取单个用户详情
// @Summary 获取用户详情
// @Description 根据ID获取用户详细信息
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetUser() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的用户ID")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(uint(id))
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, user)
}

// 3. CreateUser 创建新用户
// @Summary 创建用户
// @Description 创建一个新的后台用户，用户名和邮箱必须唯一
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body UserRequest true "用户信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users [post]
func (c *UserController) CreateUser() {
	var req UserRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.Register(req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Created(c.Ctx, user)
}

// 4. UpdateUser 更新用户信息
// @Summary 更新用户
// @Description 更新后台用户信息，密码传空则保持不变
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Param user body UserUpdateRequest true "用户信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) UpdateUser() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的用户ID")
		return
	}

	var req UserUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.Username != "" {
		updates["username"] = req.Username
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Password != "" {
		updates["password"] = req.Password
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.UpdateUser(uint(id), updates)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, user)
}

// 5. DeleteUser 删除用户
// @Summary 删除用户
// @Description 删除后台用户
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的用户ID")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.DeleteUser(uint(id)); err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "用户已删除"})
}
