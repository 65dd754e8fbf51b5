package controllers

import (
	"github.com/gin-gonic/gin"

	"oksms-http-service/internal/domain/services"
	"oksms-http-service/internal/domain/services/container"
	"oksms-http-service/internal/error/response"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct{}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController() *HealthCheckController {
	return &HealthCheckController{}
}

// Ping 健康检查端点
func (h *HealthCheckController) Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// HandleHealthFunc 返回带依赖检查的健康检查处理函数
func HandleHealthFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result := gin.H{
			"status":   "healthy",
			"database": "up",
			"redis":    "up",
		}

		db := container.GetDB()
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			result["status"] = "degraded"
			result["database"] = "down"
		}

		redisService := container.GetService("redis").(services.InterfaceRedisService)
		if err := redisService.Ping(); err != nil {
			result["status"] = "degraded"
			result["redis"] = "down"
		}

		response.Success(ctx, result)
	}
}
