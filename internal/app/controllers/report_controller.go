package controllers

import (
	"oksms-http-service/internal/domain/services"
	"oksms-http-service/internal/domain/services/container"
	"oksms-http-service/internal/error/code"
	"oksms-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceReportController 定义报表控制器接口
type InterfaceReportController interface {
	GetArrearsReport()
}

// ReportController 处理报表相关的请求
type ReportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReportController 创建一个新的报表控制器
func NewReportController(ctx *gin.Context, container *container.ServiceContainer) *ReportController {
	return &ReportController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleReportFunc 返回一个处理报表请求的Gin处理函数
func HandleReportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReportController(ctx, container)

		switch method {
		case "getArrearsReport":
			controller.GetArrearsReport()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetArrearsReport 获取欠款报表
// @Summary 获取欠款报表
// @Description 获取所有欠款租户的汇总报表，只包含余额大于零的租户
// @Tags Report
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /reports/arrears [get]
func (c *ReportController) GetArrearsReport() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	rows, err := reportService.GenerateArrearsReport()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "生成欠款报表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"count": len(rows),
		"data":  rows,
	})
}
