package services

import (
	"errors"
	"fmt"
	"time"

	"oksms-http-service/internal/domain/models"
	"oksms-http-service/internal/infrastructure/config"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CheckInInput 新租户入住的输入参数
type CheckInInput struct {
	Name         string
	Email        string
	Phone        string
	NationalID   string
	RoomID       uint
	AgreedRent   decimal.Decimal
	StartDate    time.Time
	CheckInNotes string
}

// SwitchRoomInput 换房的输入参数
type SwitchRoomInput struct {
	TenantID      uint
	NewRoomID     uint
	AgreedRent    decimal.Decimal
	SwitchDate    time.Time
	CheckInNotes  string // 为空时自动生成
	CheckOutNotes string // 为空时自动生成
}

// SwitchRoomResult 换房结果
type SwitchRoomResult struct {
	Tenant       *models.Tenant    `json:"tenant"`
	OldOccupancy *models.Occupancy `json:"old_occupancy"`
	OldRoom      *models.Room      `json:"old_room"`
	NewOccupancy *models.Occupancy `json:"new_occupancy"`
	NewRoom      *models.Room      `json:"new_room"`
}

// InterfaceOccupancyService 定义入住生命周期服务接口
// 房间状态(available/occupied)的全部写路径都集中在这里
type InterfaceOccupancyService interface {
	CheckInNewTenant(input CheckInInput) (*models.Tenant, *models.Occupancy, error)
	SwitchRoom(input SwitchRoomInput) (*SwitchRoomResult, error)
	CheckOut(tenantID uint, endDate time.Time, notes string) (*models.Occupancy, error)
	GetAllOccupancies(page, pageSize int) ([]models.Occupancy, int64, error)
	GetOccupancyByID(id uint) (*models.Occupancy, error)
	GetActiveOccupancyByTenant(tenantID uint) (*models.Occupancy, error)
	DeleteOccupancy(id uint) error
}

// OccupancyService 提供入住生命周期相关的服务
type OccupancyService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewOccupancyService 创建一个新的入住服务
func NewOccupancyService(db *gorm.DB, cfg *config.Config) InterfaceOccupancyService {
	return &OccupancyService{
		DB:     db,
		Config: cfg,
	}
}

// lockRoom 在事务内对房间行加锁后读取
// 并发入住时两个请求对同一房间的可用性检查必须串行化
func lockRoom(tx *gorm.DB, roomID uint) (*models.Room, error) {
	var room models.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// 1. CheckInNewTenant 新租户入住
// 创建租户、创建入住、房间置为occupied，三个写入在一个事务内完成
func (s *OccupancyService) CheckInNewTenant(input CheckInInput) (*models.Tenant, *models.Occupancy, error) {
	var tenant models.Tenant
	var occupancy models.Occupancy

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// 锁定目标房间并检查可用性
		room, err := lockRoom(tx, input.RoomID)
		if err != nil {
			return err
		}
		if room.Status != models.RoomStatusAvailable {
			return ErrRoomNotAvailable
		}

		// 检查租户身份唯一性（身份证号和邮箱）
		var count int64
		if err := tx.Model(&models.Tenant{}).
			Where("national_id = ? OR email = ?", input.NationalID, input.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrTenantAlreadyExist
		}

		// 创建租户
		tenant = models.Tenant{
			Name:       input.Name,
			Email:      input.Email,
			Phone:      input.Phone,
			NationalID: input.NationalID,
		}
		if err := tx.Create(&tenant).Error; err != nil {
			return err
		}

		// 创建入住记录
		occupancy = models.Occupancy{
			TenantID:     tenant.ID,
			RoomID:       room.ID,
			AgreedRent:   input.AgreedRent,
			StartDate:    input.StartDate,
			CheckInNotes: input.CheckInNotes,
		}
		if err := tx.Create(&occupancy).Error; err != nil {
			return err
		}

		// 房间置为occupied
		if err := tx.Model(room).Update("status", models.RoomStatusOccupied).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &tenant, &occupancy, nil
}

// 2. SwitchRoom 换房
// 结束当前入住、释放旧房间、创建新入住、占用新房间，全部在一个事务内完成
func (s *OccupancyService) SwitchRoom(input SwitchRoomInput) (*SwitchRoomResult, error) {
	var result SwitchRoomResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// 验证租户存在
		var tenant models.Tenant
		if err := tx.First(&tenant, input.TenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTenantNotFound
			}
			return err
		}

		// 查找租户的有效入住
		var oldOccupancy models.Occupancy
		if err := tx.Where("tenant_id = ? AND end_date IS NULL", input.TenantID).First(&oldOccupancy).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActiveOccupancy
			}
			return err
		}

		// 禁止换到当前所在房间
		if input.NewRoomID == oldOccupancy.RoomID {
			return ErrSameRoomSwitch
		}

		// 锁定新房间并检查可用性
		newRoom, err := lockRoom(tx, input.NewRoomID)
		if err != nil {
			return err
		}
		if newRoom.Status != models.RoomStatusAvailable {
			return ErrRoomNotAvailable
		}

		// 锁定旧房间
		oldRoom, err := lockRoom(tx, oldOccupancy.RoomID)
		if err != nil {
			return err
		}

		// 结束当前入住
		checkOutNotes := input.CheckOutNotes
		if checkOutNotes == "" {
			checkOutNotes = fmt.Sprintf("Tenant switched to room %s on %s.", newRoom.RoomNumber, input.SwitchDate.Format("2006-01-02"))
		}
		switchDate := input.SwitchDate
		oldOccupancy.EndDate = &switchDate
		oldOccupancy.CheckOutNotes = checkOutNotes
		if err := tx.Save(&oldOccupancy).Error; err != nil {
			return err
		}

		// 释放旧房间
		if err := tx.Model(oldRoom).Update("status", models.RoomStatusAvailable).Error; err != nil {
			return err
		}

		// 创建新入住
		checkInNotes := input.CheckInNotes
		if checkInNotes == "" {
			checkInNotes = fmt.Sprintf("Tenant switched from room %s on %s.", oldRoom.RoomNumber, input.SwitchDate.Format("2006-01-02"))
		}
		newOccupancy := models.Occupancy{
			TenantID:     input.TenantID,
			RoomID:       newRoom.ID,
			AgreedRent:   input.AgreedRent,
			StartDate:    input.SwitchDate,
			CheckInNotes: checkInNotes,
		}
		if err := tx.Create(&newOccupancy).Error; err != nil {
			return err
		}

		// 占用新房间
		if err := tx.Model(newRoom).Update("status", models.RoomStatusOccupied).Error; err != nil {
			return err
		}

		result = SwitchRoomResult{
			Tenant:       &tenant,
			OldOccupancy: &oldOccupancy,
			OldRoom:      oldRoom,
			NewOccupancy: &newOccupancy,
			NewRoom:      newRoom,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// 3. CheckOut 退房
// 结束有效入住并释放房间，不创建新入住
func (s *OccupancyService) CheckOut(tenantID uint, endDate time.Time, notes string) (*models.Occupancy, error) {
	var occupancy models.Occupancy

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ? AND end_date IS NULL", tenantID).First(&occupancy).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActiveOccupancy
			}
			return err
		}

		room, err := lockRoom(tx, occupancy.RoomID)
		if err != nil {
			return err
		}

		checkOutNotes := notes
		if checkOutNotes == "" {
			checkOutNotes = fmt.Sprintf("Tenant checked out of room %s on %s.", room.RoomNumber, endDate.Format("2006-01-02"))
		}
		occupancy.EndDate = &endDate
		occupancy.CheckOutNotes = checkOutNotes
		if err := tx.Save(&occupancy).Error; err != nil {
			return err
		}

		return tx.Model(room).Update("status", models.RoomStatusAvailable).Error
	})
	if err != nil {
		return nil, err
	}

	return &occupancy, nil
}

// 4. GetAllOccupancies 获取所有入住记录，支持分页
func (s *OccupancyService) GetAllOccupancies(page, pageSize int) ([]models.Occupancy, int64, error) {
	var occupancies []models.Occupancy
	var total int64

	if err := s.DB.Model(&models.Occupancy{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Preload("Tenant").Preload("Room").Limit(pageSize).Offset(offset).Find(&occupancies).Error; err != nil {
		return nil, 0, err
	}

	return occupancies, total, nil
}

// 5. GetOccupancyByID 根据ID获取入住记录
func (s *OccupancyService) GetOccupancyByID(id uint) (*models.Occupancy, error) {
	var occupancy models.Occupancy
	if err := s.DB.Preload("Tenant").Preload("Room").First(&occupancy, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOccupancyNotFound
		}
		return nil, err
	}
	return &occupancy, nil
}

// 6. GetActiveOccupancyByTenant 获取租户的有效入住
func (s *OccupancyService) GetActiveOccupancyByTenant(tenantID uint) (*models.Occupancy, error) {
	var occupancy models.Occupancy
	if err := s.DB.Where("tenant_id = ? AND end_date IS NULL", tenantID).First(&occupancy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveOccupancy
		}
		return nil, err
	}
	return &occupancy, nil
}

// 7. DeleteOccupancy 删除入住记录
// 账单和付款保留作为历史数据；删除有效入住时同时释放房间
func (s *OccupancyService) DeleteOccupancy(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var occupancy models.Occupancy
		if err := tx.First(&occupancy, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOccupancyNotFound
			}
			return err
		}

		// 有效入住被删除时房间回到available
		if occupancy.EndDate == nil {
			room, err := lockRoom(tx, occupancy.RoomID)
			if err != nil {
				return err
			}
			if err := tx.Model(room).Update("status", models.RoomStatusAvailable).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&occupancy).Error
	})
}
