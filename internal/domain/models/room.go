package models

import "github.com/shopspring/decimal"

// 房间状态
const (
	RoomStatusAvailable = "available"
	RoomStatusOccupied  = "occupied"
)

// Room 表示出租房间信息
type Room struct {
	BaseModel
	RoomNumber  string          `gorm:"type:varchar(10);unique;not null" json:"room_number"`    // 房间号，如"A12"
	Capacity    int             `gorm:"not null;default:1" json:"capacity"`                     // 可住人数
	DefaultRent decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"default_rent"`        // 默认月租金
	Status      string          `gorm:"type:varchar(20);not null;default:'available'" json:"status"` // 状态：available, occupied

	// 关联关系
	Occupancies []Occupancy `gorm:"foreignKey:RoomID" json:"occupancies,omitempty"` // 房间的入住记录（一对多）
}
