package services

import (
	"errors"
	"oksms-http-service/internal/domain/models"
	"oksms-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceTenantService 定义租户服务接口
type InterfaceTenantService interface {
	GetAllTenants(page, pageSize int) ([]models.Tenant, int64, error)
	GetTenantByID(id uint) (*models.Tenant, error)
	UpdateTenant(id uint, updates map[string]interface{}) (*models.Tenant, error)
	DeleteTenant(id uint) error
	GetTenantOccupancies(tenantID uint) ([]models.Occupancy, error)
}

// TenantService 提供租户相关的服务
// 租户的创建只发生在入住服务的入住操作中
type TenantService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTenantService 创建一个新的租户服务
func NewTenantService(db *gorm.DB, cfg *config.Config) InterfaceTenantService {
	return &TenantService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllTenants 获取所有租户列表，支持分页
func (s *TenantService) GetAllTenants(page, pageSize int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64

	if err := s.DB.Model(&models.Tenant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&tenants).Error; err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}

// 2. GetTenantByID 根据ID获取租户
// 带出按入住日期排序的全部入住及对应房间，最后一条即最近所在房间
func (s *TenantService) GetTenantByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.DB.Preload("Occupancies", func(db *gorm.DB) *gorm.DB {
		return db.Order("start_date")
	}).Preload("Occupancies.Room").First(&tenant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

// 3. UpdateTenant 更新租户信息
func (s *TenantService) UpdateTenant(id uint, updates map[string]interface{}) (*models.Tenant, error) {
	tenant, err := s.GetTenantByID(id)
	if err != nil {
		return nil, err
	}

	// 如果更新邮箱或身份证号，需要检查唯一性
	if email, ok := updates["email"].(string); ok && email != tenant.Email {
		var count int64
		if err := s.DB.Model(&models.Tenant{}).Where("email = ? AND id != ?", email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrTenantAlreadyExist
		}
	}
	if nationalID, ok := updates["national_id"].(string); ok && nationalID != tenant.NationalID {
		var count int64
		if err := s.DB.Model(&models.Tenant{}).Where("national_id = ? AND id != ?", nationalID, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrTenantAlreadyExist
		}
	}

	if err := s.DB.Model(tenant).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetTenantByID(id)
}

// 4. DeleteTenant 删除租户
// 在住租户需要先退房，否则房间状态会指向已删除的租户；
// 历史入住、账单和付款保留作为历史数据
func (s *TenantService) DeleteTenant(id uint) error {
	tenant, err := s.GetTenantByID(id)
	if err != nil {
		return err
	}

	var activeCount int64
	if err := s.DB.Model(&models.Occupancy{}).Where("tenant_id = ? AND end_date IS NULL", id).Count(&activeCount).Error; err != nil {
		return err
	}
	if activeCount > 0 {
		return ErrTenantStillActive
	}

	return s.DB.Delete(tenant).Error
}

// 5. GetTenantOccupancies 获取租户的全部入住记录（按入住日期排序）
func (s *TenantService) GetTenantOccupancies(tenantID uint) ([]models.Occupancy, error) {
	if _, err := s.GetTenantByID(tenantID); err != nil {
		return nil, err
	}

	var occupancies []models.Occupancy
	if err := s.DB.Where("tenant_id = ?", tenantID).Order("start_date").Find(&occupancies).Error; err != nil {
		return nil, err
	}

	return occupancies, nil
}
