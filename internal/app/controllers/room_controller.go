package controllers

import (
	"strconv"

	"oksms-http-service/internal/domain/models"
	"oksms-http-service/internal/domain/services"
	"oksms-http-service/internal/domain/services/container"
	"oksms-http-service/internal/error/code"
	"oksms-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InterfaceRoomController 定义房间控制器接口
type InterfaceRoomController interface {
	GetRooms()
	GetRoom()
	CreateRoom()
	UpdateRoom()
	DeleteRoom()
	GetRoomOccupancies()
}

// RoomController 处理房间相关的请求
type RoomController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRoomController 创建一个新的房间控制器
func NewRoomController(ctx *gin.Context, container *container.ServiceContainer) *RoomController {
	return &RoomController{
		Ctx:       ctx,
		Container: container,
	}
}

// RoomRequest 表示房间请求
type RoomRequest struct {
	RoomNumber  string          `json:"room_number" binding:"required" example:"A1"`
	Capacity    int             `json:"capacity" example:"1"`
	DefaultRent decimal.Decimal `json:"default_rent" example:"3500"`
}

// RoomUpdateRequest 表示房间更新请求
type RoomUpdateRequest struct {
	RoomNumber  string           `json:"room_number" example:"A1"`
	Capacity    *int             `json:"capacity" example:"2"`
	DefaultRent *decimal.Decimal `json:"default_rent" example:"4000"`
}

// HandleRoomFunc 返回一个处理房间请求的Gin处理函数
func HandleRoomFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRoomController(ctx, container)

		switch method {
		case "getRooms":
			controller.GetRooms()
		case "getRoom":
			controller.GetRoom()
		case "createRoom":
			controller.CreateRoom()
		case "updateRoom":
			controller.UpdateRoom()
		case "deleteRoom":
			controller.DeleteRoom()
		case "getRoomOccupancies":
			controller.GetRoomOccupancies()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetRooms 获取所有房间列表
// @Summary 获取所有房间
// @Description 获取系统中所有房间的列表
// @Tags Room
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /rooms [get]
func (c *RoomController) GetRooms() {
	// 获取分页参数
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	rooms, total, err := roomService.GetAllRooms(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取房间列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        rooms,
	})
}

// 2. GetRoom 获取单个房间详情
// @Summary 获取房间详情
// @Description 根据ID获取房间详细信息
// @Tags Room
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "房间ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoom() {
	id := c.Ctx.Param("id")
	roomID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的房间ID")
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	room, err := roomService.GetRoomByID(uint(roomID))
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, room)
}

// 3. CreateRoom 创建新房间
// @Summary 创建房间
// @Description 创建一个新的房间，房间号必须唯一
// @Tags Room
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param room body RoomRequest true "房间信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /rooms [post]
func (c *RoomController) CreateRoom() {
	var req RoomRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	room := &models.Room{
		RoomNumber:  req.RoomNumber,
		Capacity:    req.Capacity,
		DefaultRent: req.DefaultRent,
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	if err := roomService.CreateRoom(room); err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Created(c.Ctx, room)
}

// 4. UpdateRoom 更新房间信息
// @Summary 更新房间
// @Description 更新房间信息，状态字段由入住流程维护，不接受直接修改
// @Tags Room
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "房间ID"
// @Param room body RoomUpdateRequest true "房间信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /rooms/{id} [put]
func (c *RoomController) UpdateRoom() {
	id := c.Ctx.Param("id")
	roomID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的房间ID")
		return
	}

	var req RoomUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.RoomNumber != "" {
		updates["room_number"] = req.RoomNumber
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.DefaultRent != nil {
		updates["default_rent"] = *req.DefaultRent
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	room, err := roomService.UpdateRoom(uint(roomID), updates)
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, room)
}

// 5. DeleteRoom 删除房间
// @Summary 删除房间
// @Description 删除房间，有租户在住的房间不能删除
// @Tags Room
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "房间ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /rooms/{id} [delete]
func (c *RoomController) DeleteRoom() {
	id := c.Ctx.Param("id")
	roomID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的房间ID")
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	if err := roomService.DeleteRoom(uint(roomID)); err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "房间已删除"})
}

// 6. GetRoomOccupancies 获取房间的入住历史
// @Summary 获取房间入住历史
// @Description 获取指定房间的全部入住记录
// @Tags Room
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "房间ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /rooms/{id}/occupancies [get]
func (c *RoomController) GetRoomOccupancies() {
	id := c.Ctx.Param("id")
	roomID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的房间ID")
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	occupancies, err := roomService.GetRoomOccupancies(uint(roomID))
	if err != nil {
		response.Fail(c.Ctx, serviceErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, occupancies)
}
