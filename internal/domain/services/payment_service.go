package services

import (
	"errors"
	"time"

	"oksms-http-service/internal/domain/models"
	"oksms-http-service/internal/infrastructure/config"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecordPaymentInput 记录付款的输入参数
type RecordPaymentInput struct {
	MonthlyChargeID uint
	Amount          decimal.Decimal
	Method          string // mpesa, cash, bank
	MpesaReceipt    string
	PaymentDate     time.Time
}

// InterfacePaymentService 定义付款服务接口
type InterfacePaymentService interface {
	RecordPayment(input RecordPaymentInput) (*models.Payment, error)
	GetAllPayments(page, pageSize int) ([]models.Payment, int64, error)
	GetPaymentByID(id uint) (*models.Payment, error)
}

// PaymentService 提供付款记录和查询服务
type PaymentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPaymentService 创建一个新的付款服务
func NewPaymentService(db *gorm.DB, cfg *config.Config) InterfacePaymentService {
	return &PaymentService{
		DB:     db,
		Config: cfg,
	}
}

// 1. RecordPayment 针对指定月度账单记录一笔付款
// 付款归属的租户从账单的入住关系推导，不取自客户端输入。
// 金额不与账单总额校验，部分付款和超额付款都照实记录，对账属于报表层。
func (s *PaymentService) RecordPayment(input RecordPaymentInput) (*models.Payment, error) {
	if !models.IsValidPaymentMethod(input.Method) {
		return nil, ErrPaymentMethodInvalid
	}

	var payment models.Payment

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// 账单必须存在，同时带出入住关系用于推导租户
		var charge models.MonthlyCharge
		if err := tx.Preload("Occupancy").First(&charge, input.MonthlyChargeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrChargeNotFound
			}
			return err
		}

		chargeID := charge.ID
		payment = models.Payment{
			TenantID:        charge.Occupancy.TenantID,
			MonthlyChargeID: &chargeID,
			Amount:          input.Amount,
			Method:          input.Method,
			MpesaReceipt:    input.MpesaReceipt,
			PaymentDate:     input.PaymentDate,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

// 2. GetAllPayments 获取所有付款记录，支持分页
func (s *PaymentService) GetAllPayments(page, pageSize int) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	if err := s.DB.Model(&models.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

// 3. GetPaymentByID 根据ID获取付款记录
func (s *PaymentService) GetPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.Preload("MonthlyCharge").First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}
