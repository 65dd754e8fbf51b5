package middleware

import (
	"net/http"
	"strings"

	"oksms-http-service/internal/domain/models"
	"oksms-http-service/internal/domain/services"
	"oksms-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// authenticate 校验令牌并把claims写入上下文，失败时返回false
func authenticate(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Authorization header is required",
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}

	tokenString := extractToken(authHeader)
	token, err := jwtService.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Invalid token",
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Invalid token claims",
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}

	c.Set("userID", claims["user_id"])
	c.Set("role", claims["role"])
	c.Set("claims", claims)
	return claims, true
}

// AuthenticateManager 验证经理权限（admin和manager都放行）
func AuthenticateManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c)
		if !ok {
			return
		}

		role, exists := claims["role"].(string)
		if !exists || (role != models.RoleAdmin && role != models.RoleManager) {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires manager role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AuthenticateSystemAdmin 验证系统管理员权限
func AuthenticateSystemAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c)
		if !ok {
			return
		}

		// 检查是否是系统管理员
		if role, exists := claims["role"].(string); !exists || role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Insufficient permissions: requires system admin role",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
