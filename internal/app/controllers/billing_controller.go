package controllers

import (
	"strconv"

	"oksms-http-service/internal/app/middleware"
	"oksms-http-service/internal/domain/services"
	"oksms-http-service/internal/domain/services/container"
	"oksms-http-service/internal/error/code"
	"oksms-http-service/internal/error/response"
	"oksms-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InterfaceBillingController 定义账单控制器接口
type InterfaceBillingController interface {
	GenerateCharges()
	GetCharges()
	GetCharge()
}

// BillingController 处理月度账单相关的请求
type BillingController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBillingController 创建一个新的账单控制器
func NewBillingController(ctx *gin.Context, container *container.ServiceContainer) *BillingController {
	return &BillingController{
		Ctx:       ctx,
		Container: container,
	}
}

// GenerateChargesRequest 表示账单生成请求
type GenerateChargesRequest struct {
	Month     string           `json:"month" binding:"required" example:"January"`
	Year      int              `json:"year" binding:"required" example:"2025"`
	WaterBill *decimal.Decimal `json:"water_bill" example:"500"` // 为空时使用配置的默认水费
}

// HandleBillingFunc 返回一个处理账单请求的Gin处理函数
func HandleBillingFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBillingController(ctx, container)

		switch method {
		case "generateCharges":
			controller.GenerateCharges()
		case "getCharges":
			controller.GetCharges()
		case "getCharge":
			controller.GetCharge()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GenerateCharges 生成月度账单
// @Summary 生成月度账单
// @Description 为全部有效入住生成指定账期的月度账单，已有账单的入住跳过，操作幂等
// @Tags Billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateChargesRequest true "账期信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /billing/generate [post]
func (c *BillingController) GenerateCharges() {
	var req GenerateChargesRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	waterBill := decimal.Zero
	if req.WaterBill != nil {
		waterBill = *req.WaterBill
	} else {
		cfg := c.Container.GetService("config").(*config.Config)
		parsed, err := decimal.NewFromString(cfg.DefaultWaterBill)
		if err != nil {
			response.FailWithMessage(c.Ctx, code.ErrValidation, "默认水费配置不合法: "+cfg.DefaultWaterBill, nil)
			return
		}
		waterBill = parsed
	}

	billingService := c.Container.GetService("billing").(services.InterfaceBillingService)
	created, err := billingService.GenerateMonthlyCharges(req.Month, req.Year, waterBill)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "生成账单失败: "+err.Error(), nil)
		return
	}

	if created > 0 {
		// 新账单影响欠款报表，清除两级缓存
		reportService := c.Container.GetService("report").(services.InterfaceReportService)
		reportService.InvalidateArrearsCache()
		middleware.PurgeCache()
	}

	response.Success(c.Ctx, gin.H{
		"month":   req.Month,
		"year":    req.Year,
		"created": created,
	})
}

// 2. GetCharges 获取所有月度账单
// @Summary 获取所有账单
// @Description 获取系统中所有月度账单的列表
// @Tags Billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /billing/charges [get]
func (c *BillingController) GetCharges() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	billingService := c.Container.GetService("billing").(services.InterfaceBillingService)
	charges, total, err := billingService.GetAllCharges(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取账单列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        charges,
	})
}

// 3. GetCharge 获取单个账单详情
// @Summary 获取账单详情
// @Description 根据ID获取月度账单详细信息
// @Tags Billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "账单ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /billing/charges/{id} [get]
func (c *BillingController) GetCharge() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的账单ID")
		return
	}

	billingService := c.Container.GetService("billing").(services.InterfaceBillingService)
	charge, err := billingService.GetChargeByID(uint(id))
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, charge)
}
