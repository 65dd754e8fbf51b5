package controllers

import (
	"oksms-http-service/internal/domain/services"
	"oksms-http-service/internal/domain/services/container"
	"oksms-http-service/internal/error/code"
	"oksms-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceJWTController 定义认证控制器接口
type InterfaceJWTController interface {
	Login()
}

// JWTController 处理身份验证请求
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController 创建一个新的认证控制器
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginResponse 表示登录响应
type LoginResponse struct {
	Code    int         `json:"code" example:"100000"`
	Message string      `json:"message" example:"Login successful"`
	Data    interface{} `json:"data"`
}

// LoginData 表示登录成功后返回的数据
type LoginData struct {
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	UserID   uint   `json:"user_id" example:"1"`
	Role     string `json:"role" example:"admin"`
	Username string `json:"username" example:"admin"`
}

// ErrorResponse 表示错误响应
type ErrorResponse struct {
	Code    int         `json:"code" example:"401"`
	Message string      `json:"message" example:"Invalid username or password"`
	Data    interface{} `json:"data"`
}

// HandleJWTFunc 返回一个处理JWT认证请求的Gin处理函数
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Login 处理用户登录
// @Summary      User Login
// @Description  Process user login and return JWT token with different permissions based on user role
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  LoginResponse{data=LoginData}  "Success response with token"
// @Failure      400  {object}  ErrorResponse  "Bad request"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	user, err := userService.Authenticate(req.Username, req.Password)
	if err != nil {
		// 用户不存在和密码错误对外表现一致，避免账号枚举
		response.FailWithMessage(c.Ctx, code.ErrUserPasswordIncorrect, "用户名或密码错误", nil)
		return
	}

	token, err := jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "生成令牌失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token":    token,
		"user_id":  user.ID,
		"role":     user.Role,
		"username": user.Username,
	})
}
