package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyCharge 表示某个入住在某个账期的月度账单
// (occupancy_id, month, year) 唯一约束防止同一账期重复生成
type MonthlyCharge struct {
	BaseModel
	OccupancyID  uint            `gorm:"not null;uniqueIndex:uniq_monthly_charge" json:"occupancy_id"`
	Month        string          `gorm:"type:varchar(20);not null;uniqueIndex:uniq_monthly_charge" json:"month"`
	Year         int             `gorm:"not null;uniqueIndex:uniq_monthly_charge" json:"year"`
	RentAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"rent_amount"` // 生成时从入住约定租金复制，之后不再重算
	WaterBill    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"water_bill"`
	OtherCharges decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"other_charges"`
	ChargeDate   time.Time       `gorm:"type:date;not null" json:"charge_date"`

	// 关联关系
	Occupancy *Occupancy `gorm:"foreignKey:OccupancyID" json:"occupancy,omitempty"`
	Payments  []Payment  `gorm:"foreignKey:MonthlyChargeID" json:"payments,omitempty"`
}

// TotalAmount 账单总额（租金+水费+其他费用）
func (m *MonthlyCharge) TotalAmount() decimal.Decimal {
	return m.RentAmount.Add(m.WaterBill).Add(m.OtherCharges)
}
