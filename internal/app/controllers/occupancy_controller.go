package controllers

import (
	"strconv"

	"oksms-http-service/internal/domain/services"
	"oksms-http-service/internal/domain/services/container"
	"oksms-http-service/internal/error/code"
	"oksms-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceOccupancyController 定义入住控制器接口
type InterfaceOccupancyController interface {
	GetOccupancies()
	GetOccupancy()
	DeleteOccupancy()
	GetOccupancyCharges()
}

// OccupancyController 处理入住记录相关的请求
// 入住的创建和结束走租户控制器的入住/换房/退房操作
type OccupancyController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewOccupancyController 创建一个新的入住控制器
func NewOccupancyController(ctx *gin.Context, container *container.ServiceContainer) *OccupancyController {
	return &OccupancyController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleOccupancyFunc 返回一个处理入住请求的Gin处理函数
func HandleOccupancyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewOccupancyController(ctx, container)

		switch method {
		case "getOccupancies":
			controller.GetOccupancies()
		case "getOccupancy":
			controller.GetOccupancy()
		case "deleteOccupancy":
			controller.DeleteOccupancy()
		case "getOccupancyCharges":
			controller.GetOccupancyCharges()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetOccupancies 获取所有入住记录
// @Summary 获取所有入住记录
// @Description 获取系统中所有入住记录的列表
// @Tags Occupancy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /occupancies [get]
func (c *OccupancyController) GetOccupancies() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	occupancyService := c.Container.GetService("occupancy").(services.InterfaceOccupancyService)
	occupancies, total, err := occupancyService.GetAllOccupancies(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取入住记录失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        occupancies,
	})
}

// 2. GetOccupancy 获取单个入住记录详情
// @Summary 获取入住记录详情
// @Description 根据ID获取入住记录详细信息
// @Tags Occupancy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "入住记录ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /occupancies/{id} [get]
func (c *OccupancyController) GetOccupancy() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的入住记录ID")
		return
	}

	occupancyService := c.Container.GetService("occupancy").(services.InterfaceOccupancyService)
	occupancy, err := occupancyService.GetOccupancyByID(uint(id))
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, occupancy)
}

// 3. DeleteOccupancy 删除入住记录
// @Summary 删除入住记录
// @Description 删除入住记录，有效入住被删除时房间同时释放
// @Tags Occupancy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "入住记录ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /occupancies/{id} [delete]
func (c *OccupancyController) DeleteOccupancy() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的入住记录ID")
		return
	}

	occupancyService := c.Container.GetService("occupancy").(services.InterfaceOccupancyService)
	if err := occupancyService.DeleteOccupancy(uint(id)); err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "入住记录已删除"})
}

// 4. GetOccupancyCharges 获取入住的全部账单
// @Summary 获取入住账单
// @Description 获取指定入住记录的全部月度账单
// @Tags Occupancy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "入住记录ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /occupancies/{id}/charges [get]
func (c *OccupancyController) GetOccupancyCharges() {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的入住记录ID")
		return
	}

	billingService := c.Container.GetService("billing").(services.InterfaceBillingService)
	charges, err := billingService.GetOccupancyCharges(uint(id))
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, charges)
}
