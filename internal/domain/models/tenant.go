package models

// Tenant 表示租户身份信息
type Tenant struct {
	BaseModel
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	Email      string `gorm:"type:varchar(100);unique;not null" json:"email"`
	Phone      string `gorm:"type:varchar(20)" json:"phone"`
	NationalID string `gorm:"type:varchar(20);unique;not null" json:"national_id"` // 身份证号，唯一

	// 关联关系
	Occupancies []Occupancy `gorm:"foreignKey:TenantID" json:"occupancies,omitempty"` // 租户的入住记录（一对多）
	Payments    []Payment   `gorm:"foreignKey:TenantID" json:"payments,omitempty"`    // 租户的付款记录（一对多）
}
