package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Occupancy 表示一段租户与房间的绑定关系
// EndDate 为空表示该入住仍然有效
type Occupancy struct {
	BaseModel
	TenantID      uint            `gorm:"not null;index" json:"tenant_id"`
	RoomID        uint            `gorm:"not null;index" json:"room_id"`
	AgreedRent    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"agreed_rent"` // 入住时约定的租金，与房间默认租金无关
	StartDate     time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate       *time.Time      `gorm:"type:date" json:"end_date"` // null 表示在住
	CheckInNotes  string          `gorm:"type:text" json:"check_in_notes"`
	CheckOutNotes string          `gorm:"type:text" json:"check_out_notes"`

	// 关联关系
	Tenant         *Tenant         `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Room           *Room           `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	MonthlyCharges []MonthlyCharge `gorm:"foreignKey:OccupancyID" json:"monthly_charges,omitempty"`
}

// IsActive 判断入住是否仍然有效
func (o *Occupancy) IsActive() bool {
	return o.EndDate == nil
}
