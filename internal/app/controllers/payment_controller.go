package controllers

import (
	"strconv"
	"time"

	"oksms-http-service/internal/app/middleware"
	"oksms-http-service/internal/domain/services"
	"oksms-http-service/internal/domain/services/container"
	"oksms-http-service/internal/error/code"
	"oksms-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InterfacePaymentController 定义付款控制器接口
type InterfacePaymentController interface {
	RecordPayment()
	GetPayments()
	GetPayment()
}

// PaymentController 处理付款相关的请求
type PaymentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPaymentController 创建一个新的付款控制器
func NewPaymentController(ctx *gin.Context, container *container.ServiceContainer) *PaymentController {
	return &PaymentController{
		Ctx:       ctx,
		Container: container,
	}
}

// PaymentRequest 表示付款记录请求
// 租户从账单推导，不接受客户端传入
type PaymentRequest struct {
	MonthlyChargeID uint            `json:"monthly_charge_id" binding:"required" example:"1"`
	Amount          decimal.Decimal `json:"amount" binding:"required" example:"3500"`
	Method          string          `json:"method" binding:"required" example:"mpesa"` // mpesa, cash, bank
	MpesaReceipt    string          `json:"mpesa_receipt" example:"QK12XY34ZA"`
	PaymentDate     string          `json:"payment_date" example:"2025-01-05"` // 为空时使用当前日期
}

// HandlePaymentFunc 返回一个处理付款请求的Gin处理函数
func HandlePaymentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPaymentController(ctx, container)

		switch method {
		case "recordPayment":
			controller.RecordPayment()
		case "getPayments":
			controller.GetPayments()
		case "getPayment":
			controller.GetPayment()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. RecordPayment 记录付款
// @Summary 记录付款
// @Description 针对指定月度账单记录一笔付款，付款归属租户由账单推导
// @Tags Payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentRequest true "付款信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /payments [post]
func (c *PaymentController) RecordPayment() {
	var req PaymentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	paymentDate := time.Now()
	if req.PaymentDate != "" {
		parsed, err := time.Parse(dateLayout, req.PaymentDate)
		if err != nil {
			response.Fail(c.Ctx, code.ErrDateFormat, nil)
			return
		}
		paymentDate = parsed
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payment, err := paymentService.RecordPayment(services.RecordPaymentInput{
		MonthlyChargeID: req.MonthlyChargeID,
		Amount:          req.Amount,
		Method:          req.Method,
		MpesaReceipt:    req.MpesaReceipt,
		PaymentDate:     paymentDate,
	})
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	// 付款影响欠款报表，清除两级缓存
	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	reportService.InvalidateArrearsCache()
	middleware.PurgeCache()

	response.Created(c.Ctx, payment)
}

// 2. GetPayments 获取所有付款记录
// @Summary 获取所有付款记录
// @Description 获取系统中所有付款记录的列表
// @Tags Payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /payments [get]
func (c *PaymentController) GetPayments() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payments, total, err := paymentService.GetAllPayments(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取付款记录失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        payments,
	})
}

// 3. GetPayment 获取单个付款记录详情
// @Summary 获取付款详情
// @Description 根据ID获取付款记录详细信息
// @Tags Payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "付款记录ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /payments/{id} [get]
func (c *PaymentController) GetPayment() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的付款记录ID")
		return
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payment, err := paymentService.GetPaymentByID(uint(id))
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, payment)
}
