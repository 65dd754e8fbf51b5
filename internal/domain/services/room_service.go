package services

import (
	"errors"
	"oksms-http-service/internal/domain/models"
	"oksms-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceRoomService 定义房间服务接口
type InterfaceRoomService interface {
	GetAllRooms(page, pageSize int) ([]models.Room, int64, error)
	GetRoomByID(id uint) (*models.Room, error)
	CreateRoom(room *models.Room) error
	UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error)
	DeleteRoom(id uint) error
	GetRoomOccupancies(roomID uint) ([]models.Occupancy, error)
}

// RoomService 提供房间相关的服务
// 房间状态只由入住服务写入，这里不提供修改status的入口
type RoomService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRoomService 创建一个新的房间服务
func NewRoomService(db *gorm.DB, cfg *config.Config) InterfaceRoomService {
	return &RoomService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllRooms 获取所有房间列表，支持分页
// 带出当前在住的入住记录和租户，空置房间的入住列表为空
func (s *RoomService) GetAllRooms(page, pageSize int) ([]models.Room, int64, error) {
	var rooms []models.Room
	var total int64

	// 获取总数
	if err := s.DB.Model(&models.Room{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	offset := (page - 1) * pageSize
	if err := s.DB.Preload("Occupancies", "end_date IS NULL").
		Preload("Occupancies.Tenant").
		Limit(pageSize).Offset(offset).Find(&rooms).Error; err != nil {
		return nil, 0, err
	}

	return rooms, total, nil
}

// 2. GetRoomByID 根据ID获取房间
func (s *RoomService) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// 3. CreateRoom 创建新房间
func (s *RoomService) CreateRoom(room *models.Room) error {
	// 验证房间号唯一性
	var count int64
	if err := s.DB.Model(&models.Room{}).Where("room_number = ?", room.RoomNumber).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrRoomAlreadyExist
	}

	// 设置默认状态
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if room.Capacity <= 0 {
		room.Capacity = 1
	}

	return s.DB.Create(room).Error
}

// 4. UpdateRoom 更新房间信息（房间号、容量、默认租金）
func (s *RoomService) UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error) {
	room, err := s.GetRoomByID(id)
	if err != nil {
		return nil, err
	}

	// 如果更新房间号，需要检查唯一性
	if roomNumber, ok := updates["room_number"].(string); ok && roomNumber != room.RoomNumber {
		var count int64
		if err := s.DB.Model(&models.Room{}).Where("room_number = ? AND id != ?", roomNumber, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrRoomAlreadyExist
		}
	}

	// 状态由入住服务维护，禁止通过更新接口修改
	delete(updates, "status")

	if err := s.DB.Model(room).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新获取更新后的房间信息
	return s.GetRoomByID(id)
}

// 5. DeleteRoom 删除房间
func (s *RoomService) DeleteRoom(id uint) error {
	room, err := s.GetRoomByID(id)
	if err != nil {
		return err
	}

	// 检查是否有有效入住
	var activeCount int64
	if err := s.DB.Model(&models.Occupancy{}).Where("room_id = ? AND end_date IS NULL", id).Count(&activeCount).Error; err != nil {
		return err
	}
	if activeCount > 0 {
		return ErrRoomStillOccupied
	}

	return s.DB.Delete(room).Error
}

// 6. GetRoomOccupancies 获取房间的入住记录
func (s *RoomService) GetRoomOccupancies(roomID uint) ([]models.Occupancy, error) {
	// 检查房间是否存在
	if _, err := s.GetRoomByID(roomID); err != nil {
		return nil, err
	}

	var occupancies []models.Occupancy
	if err := s.DB.Where("room_id = ?", roomID).Order("start_date").Find(&occupancies).Error; err != nil {
		return nil, err
	}

	return occupancies, nil
}
