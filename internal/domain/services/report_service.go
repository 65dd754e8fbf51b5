package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"oksms-http-service/internal/domain/models"
	"oksms-http-service/internal/infrastructure/config"
	"oksms-http-service/pkg/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 欠款报表的缓存键和有效期
const (
	arrearsReportCacheKey = "report:arrears"
	arrearsReportCacheTTL = 30 * time.Second
)

// 台账条目类型
const (
	LedgerEntryCharge  = "charge"
	LedgerEntryPayment = "payment"
)

// LedgerEntry 租户台账中的一行，账单和付款合并后的统一视图
type LedgerEntry struct {
	Type        string          `json:"type"` // charge 或 payment
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	ReferenceID uint            `json:"reference_id"`
}

// TenantLedger 租户的完整财务台账
type TenantLedger struct {
	Tenant      *models.Tenant  `json:"tenant"`
	Entries     []LedgerEntry   `json:"entries"`
	TotalBilled decimal.Decimal `json:"total_billed"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Balance     decimal.Decimal `json:"balance"`
}

// ArrearsRow 欠款报表中的一行
type ArrearsRow struct {
	TenantID    uint            `json:"tenant_id"`
	TenantName  string          `json:"tenant_name"`
	Phone       string          `json:"phone"`
	RoomNumber  string          `json:"room_number"`
	TotalBilled decimal.Decimal `json:"total_billed"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Balance     decimal.Decimal `json:"balance"`
}

// InterfaceReportService 定义报表服务接口
type InterfaceReportService interface {
	GetTenantLedger(tenantID uint) (*TenantLedger, error)
	GenerateArrearsReport() ([]ArrearsRow, error)
	InvalidateArrearsCache()
}

// ReportService 提供台账和欠款报表服务
// 所有金额聚合基于已落库的账单和付款，服务本身不产生任何写入
type ReportService struct {
	DB           *gorm.DB
	Config       *config.Config
	RedisService InterfaceRedisService
}

// NewReportService 创建一个新的报表服务
// redisService 可以为nil，此时欠款报表不走缓存
func NewReportService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService) InterfaceReportService {
	return &ReportService{
		DB:           db,
		Config:       cfg,
		RedisService: redisService,
	}
}

// 1. GetTenantLedger 获取租户的完整财务台账
// 汇总租户名下全部入住的账单和付款，按日期升序排列；
// 同一天的条目账单排在付款之前
func (s *ReportService) GetTenantLedger(tenantID uint) (*TenantLedger, error) {
	var tenant models.Tenant
	if err := s.DB.First(&tenant, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	// 租户名下全部入住的账单
	var charges []models.MonthlyCharge
	if err := s.DB.Joins("JOIN occupancies ON occupancies.id = monthly_charges.occupancy_id").
		Where("occupancies.tenant_id = ?", tenantID).
		Find(&charges).Error; err != nil {
		return nil, err
	}

	var payments []models.Payment
	if err := s.DB.Where("tenant_id = ?", tenantID).Find(&payments).Error; err != nil {
		return nil, err
	}

	ledger := &TenantLedger{
		Tenant:      &tenant,
		Entries:     make([]LedgerEntry, 0, len(charges)+len(payments)),
		TotalBilled: decimal.Zero,
		TotalPaid:   decimal.Zero,
	}

	for _, c := range charges {
		total := c.TotalAmount()
		ledger.TotalBilled = ledger.TotalBilled.Add(total)
		ledger.Entries = append(ledger.Entries, LedgerEntry{
			Type:        LedgerEntryCharge,
			Amount:      total,
			Date:        c.ChargeDate,
			Description: fmt.Sprintf("%s %d charge", c.Month, c.Year),
			ReferenceID: c.ID,
		})
	}
	for _, p := range payments {
		ledger.TotalPaid = ledger.TotalPaid.Add(p.Amount)
		ledger.Entries = append(ledger.Entries, LedgerEntry{
			Type:        LedgerEntryPayment,
			Amount:      p.Amount,
			Date:        p.PaymentDate,
			Description: p.Method + " payment",
			ReferenceID: p.ID,
		})
	}

	// 日期升序；同日期账单在前
	sort.SliceStable(ledger.Entries, func(i, j int) bool {
		di, dj := ledger.Entries[i].Date, ledger.Entries[j].Date
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return ledger.Entries[i].Type == LedgerEntryCharge && ledger.Entries[j].Type == LedgerEntryPayment
	})

	ledger.Balance = ledger.TotalBilled.Sub(ledger.TotalPaid)
	return ledger, nil
}

// 2. GenerateArrearsReport 生成欠款报表
// 只包含余额大于零的租户；结果缓存30秒
func (s *ReportService) GenerateArrearsReport() ([]ArrearsRow, error) {
	if s.RedisService != nil {
		var cached []ArrearsRow
		if err := s.RedisService.Get(arrearsReportCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	var tenants []models.Tenant
	if err := s.DB.Find(&tenants).Error; err != nil {
		return nil, err
	}

	rows := make([]ArrearsRow, 0)
	for _, t := range tenants {
		var charges []models.MonthlyCharge
		if err := s.DB.Joins("JOIN occupancies ON occupancies.id = monthly_charges.occupancy_id").
			Where("occupancies.tenant_id = ?", t.ID).
			Find(&charges).Error; err != nil {
			return nil, err
		}

		billed := decimal.Zero
		for _, c := range charges {
			billed = billed.Add(c.TotalAmount())
		}

		var payments []models.Payment
		if err := s.DB.Where("tenant_id = ?", t.ID).Find(&payments).Error; err != nil {
			return nil, err
		}
		paid := decimal.Zero
		for _, p := range payments {
			paid = paid.Add(p.Amount)
		}

		balance := billed.Sub(paid)
		if !balance.IsPositive() {
			continue
		}

		// 当前所在房间；已退房的租户该列为空
		roomNumber := ""
		var active models.Occupancy
		if err := s.DB.Preload("Room").
			Where("tenant_id = ? AND end_date IS NULL", t.ID).
			First(&active).Error; err == nil {
			roomNumber = active.Room.RoomNumber
		}

		rows = append(rows, ArrearsRow{
			TenantID:    t.ID,
			TenantName:  t.Name,
			Phone:       t.Phone,
			RoomNumber:  roomNumber,
			TotalBilled: billed,
			TotalPaid:   paid,
			Balance:     balance,
		})
	}

	if s.RedisService != nil {
		if err := s.RedisService.Set(arrearsReportCacheKey, rows, arrearsReportCacheTTL); err != nil {
			logger.Warning("缓存欠款报表失败: %v", err)
		}
	}

	return rows, nil
}

// 3. InvalidateArrearsCache 作废欠款报表缓存
// 新账单或新付款落库后调用，避免报表返回过期数据
func (s *ReportService) InvalidateArrearsCache() {
	if s.RedisService == nil {
		return
	}
	if err := s.RedisService.Delete(arrearsReportCacheKey); err != nil {
		logger.Warning("清除欠款报表缓存失败: %v", err)
	}
}
