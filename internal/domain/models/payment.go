package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// 付款方式
const (
	PaymentMethodMpesa = "mpesa"
	PaymentMethodCash  = "cash"
	PaymentMethodBank  = "bank"
)

// Payment 表示针对某张月度账单的一笔付款
// 付款一经创建不可修改，更正通过补偿记录完成
type Payment struct {
	BaseModel
	TenantID        uint            `gorm:"not null;index" json:"tenant_id"` // 从账单的入住关系推导，不取自客户端
	MonthlyChargeID *uint           `gorm:"index" json:"monthly_charge_id,omitempty"` // 为空表示预付款，尚未挂到具体账单
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method          string          `gorm:"type:varchar(10);not null" json:"method"` // mpesa, cash, bank
	MpesaReceipt    string          `gorm:"type:varchar(100)" json:"mpesa_receipt,omitempty"`
	PaymentDate     time.Time       `gorm:"type:date;not null" json:"payment_date"`

	// 关联关系
	Tenant        *Tenant        `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	MonthlyCharge *MonthlyCharge `gorm:"foreignKey:MonthlyChargeID" json:"monthly_charge,omitempty"`
}

// IsValidPaymentMethod 判断付款方式是否合法
func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodMpesa, PaymentMethodCash, PaymentMethodBank:
		return true
	}
	return false
}
