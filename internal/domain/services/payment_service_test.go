package services

import (
	"testing"
	"time"

	"oksms-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPayment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig())
	billing := NewBillingService(db, testConfig())
	room := mustCreateRoom(t, db, "A1", "3500")
	tenant, occupancy := mustCheckIn(t, db, room.ID, "John", "john@oksms.com", "12345678", "3500")

	_, err := billing.GenerateMonthlyCharges("January", 2025, mustDecimal(t, "500"))
	require.NoError(t, err)

	var charge models.MonthlyCharge
	require.NoError(t, db.Where("occupancy_id = ?", occupancy.ID).First(&charge).Error)

	payment, err := svc.RecordPayment(RecordPaymentInput{
		MonthlyChargeID: charge.ID,
		Amount:          mustDecimal(t, "4000"),
		Method:          models.PaymentMethodMpesa,
		MpesaReceipt:    "QK12XY34ZA",
		PaymentDate:     time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// 租户从账单的入住关系推导
	assert.Equal(t, tenant.ID, payment.TenantID)
	require.NotNil(t, payment.MonthlyChargeID)
	assert.Equal(t, charge.ID, *payment.MonthlyChargeID)
	assert.Equal(t, "QK12XY34ZA", payment.MpesaReceipt)
}

func TestRecordPaymentChargeNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig())

	_, err := svc.RecordPayment(RecordPaymentInput{
		MonthlyChargeID: 999,
		Amount:          mustDecimal(t, "1000"),
		Method:          models.PaymentMethodCash,
		PaymentDate:     time.Now(),
	})
	assert.ErrorIs(t, err, ErrChargeNotFound)
}

func TestRecordPaymentInvalidMethod(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig())

	_, err := svc.RecordPayment(RecordPaymentInput{
		MonthlyChargeID: 1,
		Amount:          mustDecimal(t, "1000"),
		Method:          "cheque",
		PaymentDate:     time.Now(),
	})
	assert.ErrorIs(t, err, ErrPaymentMethodInvalid)
}

func TestRecordPaymentPartialAndOverpayment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig())
	billing := NewBillingService(db, testConfig())
	room := mustCreateRoom(t, db, "A1", "3500")
	_, occupancy := mustCheckIn(t, db, room.ID, "John", "john@oksms.com", "12345678", "3500")

	_, err := billing.GenerateMonthlyCharges("January", 2025, mustDecimal(t, "500"))
	require.NoError(t, err)

	var charge models.MonthlyCharge
	require.NoError(t, db.Where("occupancy_id = ?", occupancy.ID).First(&charge).Error)

	// 部分付款和超额付款都照实记录
	_, err = svc.RecordPayment(RecordPaymentInput{
		MonthlyChargeID: charge.ID,
		Amount:          mustDecimal(t, "1000"),
		Method:          models.PaymentMethodCash,
		PaymentDate:     time.Now(),
	})
	require.NoError(t, err)

	_, err = svc.RecordPayment(RecordPaymentInput{
		MonthlyChargeID: charge.ID,
		Amount:          mustDecimal(t, "99999"),
		Method:          models.PaymentMethodBank,
		PaymentDate:     time.Now(),
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Payment{}).Where("monthly_charge_id = ?", charge.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestGetPaymentByID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig())

	_, err := svc.GetPaymentByID(1)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
