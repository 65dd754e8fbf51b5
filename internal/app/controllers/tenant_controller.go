package controllers

import (
	"strconv"
	"time"

	"oksms-http-service/internal/domain/services"
	"oksms-http-service/internal/domain/services/container"
	"oksms-http-service/internal/error/code"
	"oksms-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// 入住和账单相关日期统一使用该格式
const dateLayout = "2006-01-02"

// InterfaceTenantController 定义租户控制器接口
type InterfaceTenantController interface {
	GetTenants()
	GetTenant()
	UpdateTenant()
	DeleteTenant()
	GetTenantOccupancies()
	CheckIn()
	SwitchRoom()
	CheckOut()
	GetTenantLedger()
}

// TenantController 处理租户相关的请求
type TenantController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTenantController 创建一个新的租户控制器
func NewTenantController(ctx *gin.Context, container *container.ServiceContainer) *TenantController {
	return &TenantController{
		Ctx:       ctx,
		Container: container,
	}
}

// CheckInRequest 表示新租户入住请求
type CheckInRequest struct {
	Name         string          `json:"name" binding:"required" example:"John Otieno"`
	Email        string          `json:"email" binding:"required,email" example:"john@oksms.com"`
	Phone        string          `json:"phone" example:"+254700000001"`
	NationalID   string          `json:"national_id" binding:"required" example:"12345678"`
	RoomID       uint            `json:"room_id" binding:"required" example:"1"`
	AgreedRent   decimal.Decimal `json:"agreed_rent" binding:"required" example:"3500"`
	StartDate    string          `json:"start_date" binding:"required" example:"2025-01-01"`
	CheckInNotes string          `json:"check_in_notes" example:"Deposit paid in full"`
}

// SwitchRoomRequest 表示换房请求
type SwitchRoomRequest struct {
	NewRoomID     uint            `json:"new_room_id" binding:"required" example:"2"`
	AgreedRent    decimal.Decimal `json:"agreed_rent" binding:"required" example:"4000"`
	SwitchDate    string          `json:"switch_date" binding:"required" example:"2025-03-01"`
	CheckInNotes  string          `json:"check_in_notes" example:""`
	CheckOutNotes string          `json:"check_out_notes" example:""`
}

// CheckOutRequest 表示退房请求
type CheckOutRequest struct {
	EndDate string `json:"end_date" binding:"required" example:"2025-06-30"`
	Notes   string `json:"notes" example:""`
}

// TenantUpdateRequest 表示租户信息更新请求
type TenantUpdateRequest struct {
	Name       string `json:"name" example:"John Otieno"`
	Email      string `json:"email" example:"john@oksms.com"`
	Phone      string `json:"phone" example:"+254700000001"`
	NationalID string `json:"national_id" example:"12345678"`
}

// HandleTenantFunc 返回一个处理租户请求的Gin处理函数
func HandleTenantFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTenantController(ctx, container)

		switch method {
		case "getTenants":
			controller.GetTenants()
		case "getTenant":
			controller.GetTenant()
		case "updateTenant":
			controller.UpdateTenant()
		case "deleteTenant":
			controller.DeleteTenant()
		case "getTenantOccupancies":
			controller.GetTenantOccupancies()
		case "checkIn":
			controller.CheckIn()
		case "switchRoom":
			controller.SwitchRoom()
		case "checkOut":
			controller.CheckOut()
		case "getTenantLedger":
			controller.GetTenantLedger()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// tenantIDParam 解析路径中的租户ID
func (c *TenantController) tenantIDParam() (uint, bool) {
	id, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.ParamError(c.Ctx, "无效的租户ID")
		return 0, false
	}
	return uint(id), true
}

// 1. GetTenants 获取所有租户列表
// @Summary 获取所有租户
// @Description 获取系统中所有租户的列表
// @Tags Tenant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /tenants [get]
func (c *TenantController) GetTenants() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenants, total, err := tenantService.GetAllTenants(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取租户列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        tenants,
	})
}

// 2. GetTenant 获取单个租户详情
// @Summary 获取租户详情
// @Description 根据ID获取租户详细信息
// @Tags Tenant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "租户ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tenants/{id} [get]
func (c *TenantController) GetTenant() {
	tenantID, ok := c.tenantIDParam()
	if !ok {
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, err := tenantService.GetTenantByID(tenantID)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, tenant)
}

// 3. UpdateTenant 更新租户信息
// @Summary 更新租户
// @Description 更新租户联系信息，邮箱和身份证号保持唯一
// @Tags Tenant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "租户ID"
// @Param tenant body TenantUpdateRequest true "租户信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /tenants/{id} [put]
func (c *TenantController) UpdateTenant() {
	tenantID, ok := c.tenantIDParam()
	if !ok {
		return
	}

	var req TenantUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.NationalID != "" {
		updates["national_id"] = req.NationalID
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	tenant, err := tenantService.UpdateTenant(tenantID, updates)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, tenant)
}

// 4. DeleteTenant 删除租户
// @Summary 删除租户
// @Description 删除租户，历史入住和财务记录保留
// @Tags Tenant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "租户ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /tenants/{id} [delete]
func (c *TenantController) DeleteTenant() {
	tenantID, ok := c.tenantIDParam()
	if !ok {
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	if err := tenantService.DeleteTenant(tenantID); err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "租户已删除"})
}

// 5. GetTenantOccupancies 获取租户的入住历史
// @Summary 获取租户入住历史
// @Description 获取指定租户的全部入住记录，按入住日期排序
// @Tags Tenant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "租户ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tenants/{id}/occupancies [get]
func (c *TenantController) GetTenantOccupancies() {
	tenantID, ok := c.tenantIDParam()
	if !ok {
		return
	}

	tenantService := c.Container.GetService("tenant").(services.InterfaceTenantService)
	occupancies, err := tenantService.GetTenantOccupancies(tenantID)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, occupancies)
}

// 6. CheckIn 新租户入住
// @Summary 新租户入住
// @Description 登记新租户并入住指定房间，租户创建、入住记录和房间状态变更在同一事务内完成
// @Tags Tenant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CheckInRequest true "入住信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /tenants/check-in [post]
func (c *TenantController) CheckIn() {
	var req CheckInRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDateFormat, nil)
		return
	}

	occupancyService := c.Container.GetService("occupancy").(services.InterfaceOccupancyService)
	tenant, occupancy, err := occupancyService.CheckInNewTenant(services.CheckInInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		NationalID:   req.NationalID,
		RoomID:       req.RoomID,
		AgreedRent:   req.AgreedRent,
		StartDate:    startDate,
		CheckInNotes: req.CheckInNotes,
	})
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Created(c.Ctx, gin.H{
		"tenant":    tenant,
		"occupancy": occupancy,
	})
}

// 7. SwitchRoom 换房
// @Summary 租户换房
// @Description 结束当前入住并入住新房间，旧房间释放、新房间占用在同一事务内完成
// @Tags Tenant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "租户ID"
// @Param request body SwitchRoomRequest true "换房信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /tenants/{id}/switch-room [post]
func (c *TenantController) SwitchRoom() {
	tenantID, ok := c.tenantIDParam()
	if !ok {
		return
	}

	var req SwitchRoomRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	switchDate, err := time.Parse(dateLayout, req.SwitchDate)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDateFormat, nil)
		return
	}

	occupancyService := c.Container.GetService("occupancy").(services.InterfaceOccupancyService)
	result, err := occupancyService.SwitchRoom(services.SwitchRoomInput{
		TenantID:      tenantID,
		NewRoomID:     req.NewRoomID,
		AgreedRent:    req.AgreedRent,
		SwitchDate:    switchDate,
		CheckInNotes:  req.CheckInNotes,
		CheckOutNotes: req.CheckOutNotes,
	})
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, result)
}

// 8. CheckOut 退房
// @Summary 租户退房
// @Description 结束租户的有效入住并释放房间
// @Tags Tenant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "租户ID"
// @Param request body CheckOutRequest true "退房信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /tenants/{id}/check-out [post]
func (c *TenantController) CheckOut() {
	tenantID, ok := c.tenantIDParam()
	if !ok {
		return
	}

	var req CheckOutRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDateFormat, nil)
		return
	}

	occupancyService := c.Container.GetService("occupancy").(services.InterfaceOccupancyService)
	occupancy, err := occupancyService.CheckOut(tenantID, endDate, req.Notes)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, occupancy)
}

// 9. GetTenantLedger 获取租户财务台账
// @Summary 获取租户台账
// @Description 获取租户的完整财务台账，账单和付款按日期升序合并展示
// @Tags Tenant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "租户ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tenants/{id}/ledger [get]
func (c *TenantController) GetTenantLedger() {
	tenantID, ok := c.tenantIDParam()
	if !ok {
		return
	}

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	ledger, err := reportService.GetTenantLedger(tenantID)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, ledger)
}
