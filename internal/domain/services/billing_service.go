package services

import (
	"errors"
	"strings"
	"time"

	"oksms-http-service/internal/domain/models"
	"oksms-http-service/internal/infrastructure/config"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InterfaceBillingService 定义账单生成服务接口
type InterfaceBillingService interface {
	GenerateMonthlyCharges(month string, year int, waterBill decimal.Decimal) (int, error)
	GetAllCharges(page, pageSize int) ([]models.MonthlyCharge, int64, error)
	GetChargeByID(id uint) (*models.MonthlyCharge, error)
	GetOccupancyCharges(occupancyID uint) ([]models.MonthlyCharge, error)
}

// BillingService 提供月度账单生成和查询服务
type BillingService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewBillingService 创建一个新的账单服务
func NewBillingService(db *gorm.DB, cfg *config.Config) InterfaceBillingService {
	return &BillingService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GenerateMonthlyCharges 为指定账期生成月度账单
// 遍历调用时刻的全部有效入住；同账期已有账单的入住静默跳过（幂等），
// 重复调用不产生重复账单也不报错。返回新创建的账单数量。
// 租金在生成时从入住约定租金复制，之后约定租金变化不回溯修改。
func (s *BillingService) GenerateMonthlyCharges(month string, year int, waterBill decimal.Decimal) (int, error) {
	created := 0

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var activeOccupancies []models.Occupancy
		if err := tx.Where("end_date IS NULL").Find(&activeOccupancies).Error; err != nil {
			return err
		}

		chargeDate := time.Now()

		for _, o := range activeOccupancies {
			// 同账期已有账单则跳过
			var count int64
			if err := tx.Model(&models.MonthlyCharge{}).
				Where("occupancy_id = ? AND month = ? AND year = ?", o.ID, month, year).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			charge := models.MonthlyCharge{
				OccupancyID:  o.ID,
				Month:        month,
				Year:         year,
				RentAmount:   o.AgreedRent,
				WaterBill:    waterBill,
				OtherCharges: decimal.Zero,
				ChargeDate:   chargeDate,
			}
			if err := tx.Create(&charge).Error; err != nil {
				// 并发生成时唯一约束兜底，同样按跳过处理
				if isDuplicateKeyError(err) {
					continue
				}
				return err
			}
			created++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}

// 2. GetAllCharges 获取所有月度账单，支持分页
func (s *BillingService) GetAllCharges(page, pageSize int) ([]models.MonthlyCharge, int64, error) {
	var charges []models.MonthlyCharge
	var total int64

	if err := s.DB.Model(&models.MonthlyCharge{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Preload("Occupancy").Limit(pageSize).Offset(offset).Find(&charges).Error; err != nil {
		return nil, 0, err
	}

	return charges, total, nil
}

// 3. GetChargeByID 根据ID获取月度账单
func (s *BillingService) GetChargeByID(id uint) (*models.MonthlyCharge, error) {
	var charge models.MonthlyCharge
	if err := s.DB.Preload("Occupancy").First(&charge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChargeNotFound
		}
		return nil, err
	}
	return &charge, nil
}

// 4. GetOccupancyCharges 获取某个入住的全部账单
func (s *BillingService) GetOccupancyCharges(occupancyID uint) ([]models.MonthlyCharge, error) {
	var count int64
	if err := s.DB.Model(&models.Occupancy{}).Where("id = ?", occupancyID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrOccupancyNotFound
	}

	var charges []models.MonthlyCharge
	if err := s.DB.Where("occupancy_id = ?", occupancyID).Order("charge_date").Find(&charges).Error; err != nil {
		return nil, err
	}

	return charges, nil
}

// isDuplicateKeyError 判断是否为唯一约束冲突
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
