package services

import (
	"testing"
	"time"

	"oksms-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ledgerFixture 入住一个租户、生成两期账单并记录一笔付款
func ledgerFixture(t *testing.T, db *gorm.DB) (*models.Tenant, *models.Occupancy) {
	room := mustCreateRoom(t, db, "A1", "3500")
	tenant, occupancy := mustCheckIn(t, db, room.ID, "John", "john@oksms.com", "12345678", "3500")

	billing := NewBillingService(db, testConfig())
	_, err := billing.GenerateMonthlyCharges("January", 2025, mustDecimal(t, "500"))
	require.NoError(t, err)
	_, err = billing.GenerateMonthlyCharges("February", 2025, mustDecimal(t, "500"))
	require.NoError(t, err)

	return tenant, occupancy
}

func TestGetTenantLedger(t *testing.T) {
	db := setupTestDB(t)
	tenant, occupancy := ledgerFixture(t, db)

	// 账单日期在生成时刻，付款插入更早和更晚各一笔验证排序
	var charges []models.MonthlyCharge
	require.NoError(t, db.Where("occupancy_id = ?", occupancy.ID).Find(&charges).Error)
	require.Len(t, charges, 2)

	chargeDate := charges[0].ChargeDate
	earlier := chargeDate.Add(-48 * time.Hour)
	later := chargeDate.Add(48 * time.Hour)

	paymentSvc := NewPaymentService(db, testConfig())
	_, err := paymentSvc.RecordPayment(RecordPaymentInput{
		MonthlyChargeID: charges[0].ID,
		Amount:          mustDecimal(t, "1000"),
		Method:          models.PaymentMethodCash,
		PaymentDate:     later,
	})
	require.NoError(t, err)
	_, err = paymentSvc.RecordPayment(RecordPaymentInput{
		MonthlyChargeID: charges[0].ID,
		Amount:          mustDecimal(t, "2000"),
		Method:          models.PaymentMethodMpesa,
		PaymentDate:     earlier,
	})
	require.NoError(t, err)

	svc := NewReportService(db, testConfig(), nil)
	ledger, err := svc.GetTenantLedger(tenant.ID)
	require.NoError(t, err)

	require.Len(t, ledger.Entries, 4)

	// 日期升序
	for i := 1; i < len(ledger.Entries); i++ {
		assert.False(t, ledger.Entries[i].Date.Before(ledger.Entries[i-1].Date))
	}
	// 最早的是提前的付款，随后是同日的两期账单，最后是延后的付款
	assert.Equal(t, LedgerEntryPayment, ledger.Entries[0].Type)
	assert.Equal(t, LedgerEntryCharge, ledger.Entries[1].Type)
	assert.Equal(t, LedgerEntryCharge, ledger.Entries[2].Type)
	assert.Equal(t, LedgerEntryPayment, ledger.Entries[3].Type)

	// 汇总：2期 x (3500+500) 账单，3000付款
	assert.True(t, ledger.TotalBilled.Equal(mustDecimal(t, "8000")))
	assert.True(t, ledger.TotalPaid.Equal(mustDecimal(t, "3000")))
	assert.True(t, ledger.Balance.Equal(mustDecimal(t, "5000")))
}

func TestGetTenantLedgerTieBreak(t *testing.T) {
	db := setupTestDB(t)
	tenant, occupancy := ledgerFixture(t, db)

	// 把两期账单固定到同一时刻，付款也用同一时刻：账单排在付款前
	sameDate := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&models.MonthlyCharge{}).
		Where("occupancy_id = ?", occupancy.ID).
		Update("charge_date", sameDate).Error)

	var charge models.MonthlyCharge
	require.NoError(t, db.Where("occupancy_id = ?", occupancy.ID).First(&charge).Error)

	paymentSvc := NewPaymentService(db, testConfig())
	_, err := paymentSvc.RecordPayment(RecordPaymentInput{
		MonthlyChargeID: charge.ID,
		Amount:          mustDecimal(t, "4000"),
		Method:          models.PaymentMethodMpesa,
		PaymentDate:     sameDate,
	})
	require.NoError(t, err)

	svc := NewReportService(db, testConfig(), nil)
	ledger, err := svc.GetTenantLedger(tenant.ID)
	require.NoError(t, err)

	require.Len(t, ledger.Entries, 3)
	assert.Equal(t, LedgerEntryCharge, ledger.Entries[0].Type)
	assert.Equal(t, LedgerEntryCharge, ledger.Entries[1].Type)
	assert.Equal(t, LedgerEntryPayment, ledger.Entries[2].Type)
}

func TestGetTenantLedgerIncludesOtherCharges(t *testing.T) {
	db := setupTestDB(t)
	tenant, occupancy := ledgerFixture(t, db)

	// 手工调整的杂费与租金、水费一同计入账单总额
	var charge models.MonthlyCharge
	require.NoError(t, db.Where("occupancy_id = ?", occupancy.ID).First(&charge).Error)
	require.NoError(t, db.Model(&charge).Update("other_charges", mustDecimal(t, "250")).Error)

	svc := NewReportService(db, testConfig(), nil)
	ledger, err := svc.GetTenantLedger(tenant.ID)
	require.NoError(t, err)

	// 2期 x (3500+500) + 250杂费
	assert.True(t, ledger.TotalBilled.Equal(mustDecimal(t, "8250")))

	rows, err := svc.GenerateArrearsReport()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Balance.Equal(mustDecimal(t, "8250")))
}

func TestGetTenantLedgerNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig(), nil)

	_, err := svc.GetTenantLedger(999)
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestGenerateArrearsReport(t *testing.T) {
	db := setupTestDB(t)
	billing := NewBillingService(db, testConfig())
	paymentSvc := NewPaymentService(db, testConfig())

	roomA := mustCreateRoom(t, db, "A1", "3500")
	roomB := mustCreateRoom(t, db, "B2", "4000")
	tenantA, occupancyA := mustCheckIn(t, db, roomA.ID, "John", "john@oksms.com", "11111111", "3500")
	_, occupancyB := mustCheckIn(t, db, roomB.ID, "Mary", "mary@oksms.com", "22222222", "4000")

	_, err := billing.GenerateMonthlyCharges("January", 2025, mustDecimal(t, "500"))
	require.NoError(t, err)

	// Mary全额付清，John只付了一部分
	var chargeA, chargeB models.MonthlyCharge
	require.NoError(t, db.Where("occupancy_id = ?", occupancyA.ID).First(&chargeA).Error)
	require.NoError(t, db.Where("occupancy_id = ?", occupancyB.ID).First(&chargeB).Error)

	_, err = paymentSvc.RecordPayment(RecordPaymentInput{
		MonthlyChargeID: chargeA.ID,
		Amount:          mustDecimal(t, "1000"),
		Method:          models.PaymentMethodCash,
		PaymentDate:     time.Now(),
	})
	require.NoError(t, err)
	_, err = paymentSvc.RecordPayment(RecordPaymentInput{
		MonthlyChargeID: chargeB.ID,
		Amount:          mustDecimal(t, "4500"),
		Method:          models.PaymentMethodMpesa,
		PaymentDate:     time.Now(),
	})
	require.NoError(t, err)

	svc := NewReportService(db, testConfig(), nil)
	rows, err := svc.GenerateArrearsReport()
	require.NoError(t, err)

	// 只有John欠款
	require.Len(t, rows, 1)
	assert.Equal(t, tenantA.ID, rows[0].TenantID)
	assert.Equal(t, "A1", rows[0].RoomNumber)
	assert.True(t, rows[0].TotalBilled.Equal(mustDecimal(t, "4000")))
	assert.True(t, rows[0].TotalPaid.Equal(mustDecimal(t, "1000")))
	assert.True(t, rows[0].Balance.Equal(mustDecimal(t, "3000")))
}

func TestGenerateArrearsReportEmptyWhenSettled(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db, testConfig(), nil)

	// 没有账单就没有欠款
	mustCreateRoom(t, db, "A1", "3500")
	rows, err := svc.GenerateArrearsReport()
	require.NoError(t, err)
	assert.Empty(t, rows)
}
