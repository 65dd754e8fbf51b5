package services

import (
	"testing"
	"time"

	"oksms-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateTenantUniqueness(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(db, testConfig())
	roomA := mustCreateRoom(t, db, "A1", "3500")
	roomB := mustCreateRoom(t, db, "B2", "4000")
	tenantA, _ := mustCheckIn(t, db, roomA.ID, "John", "john@oksms.com", "11111111", "3500")
	mustCheckIn(t, db, roomB.ID, "Mary", "mary@oksms.com", "22222222", "4000")

	// 改成别人的邮箱或身份证号被拒绝
	_, err := svc.UpdateTenant(tenantA.ID, map[string]interface{}{"email": "mary@oksms.com"})
	assert.ErrorIs(t, err, ErrTenantAlreadyExist)

	_, err = svc.UpdateTenant(tenantA.ID, map[string]interface{}{"national_id": "22222222"})
	assert.ErrorIs(t, err, ErrTenantAlreadyExist)

	// 正常更新
	updated, err := svc.UpdateTenant(tenantA.ID, map[string]interface{}{"phone": "+254711111111"})
	require.NoError(t, err)
	assert.Equal(t, "+254711111111", updated.Phone)
}

func TestGetTenantByIDIncludesLatestRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(db, testConfig())
	occupancySvc := NewOccupancyService(db, testConfig())
	roomA := mustCreateRoom(t, db, "A1", "3500")
	roomB := mustCreateRoom(t, db, "B2", "4000")
	tenant, _ := mustCheckIn(t, db, roomA.ID, "John", "john@oksms.com", "12345678", "3500")

	_, err := occupancySvc.SwitchRoom(SwitchRoomInput{
		TenantID:   tenant.ID,
		NewRoomID:  roomB.ID,
		AgreedRent: mustDecimal(t, "4000"),
		SwitchDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// 入住按日期排序，最后一条带出最近所在房间
	got, err := svc.GetTenantByID(tenant.ID)
	require.NoError(t, err)
	require.Len(t, got.Occupancies, 2)
	latest := got.Occupancies[len(got.Occupancies)-1]
	require.NotNil(t, latest.Room)
	assert.Equal(t, "B2", latest.Room.RoomNumber)
	assert.True(t, latest.IsActive())
}

func TestDeleteTenantBlockedWhenActive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(db, testConfig())
	occupancySvc := NewOccupancyService(db, testConfig())
	room := mustCreateRoom(t, db, "A1", "3500")
	tenant, _ := mustCheckIn(t, db, room.ID, "John", "john@oksms.com", "12345678", "3500")

	// 在住期间不能删除，房间状态不受影响
	assert.ErrorIs(t, svc.DeleteTenant(tenant.ID), ErrTenantStillActive)

	var got models.Room
	require.NoError(t, db.First(&got, room.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, got.Status)

	// 退房后可以删除
	_, err := occupancySvc.CheckOut(tenant.ID, time.Now(), "")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteTenant(tenant.ID))
}

func TestDeleteTenantKeepsHistory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(db, testConfig())
	occupancySvc := NewOccupancyService(db, testConfig())
	billing := NewBillingService(db, testConfig())
	room := mustCreateRoom(t, db, "A1", "3500")
	tenant, occupancy := mustCheckIn(t, db, room.ID, "John", "john@oksms.com", "12345678", "3500")

	_, err := billing.GenerateMonthlyCharges("January", 2025, mustDecimal(t, "500"))
	require.NoError(t, err)
	_, err = occupancySvc.CheckOut(tenant.ID, time.Now(), "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTenant(tenant.ID))

	_, err = svc.GetTenantByID(tenant.ID)
	assert.ErrorIs(t, err, ErrTenantNotFound)

	// 入住和账单保留作为历史数据
	var occupancyCount, chargeCount int64
	require.NoError(t, db.Model(&models.Occupancy{}).Where("id = ?", occupancy.ID).Count(&occupancyCount).Error)
	require.NoError(t, db.Model(&models.MonthlyCharge{}).Count(&chargeCount).Error)
	assert.Equal(t, int64(1), occupancyCount)
	assert.Equal(t, int64(1), chargeCount)
}

func TestGetTenantOccupanciesOrdered(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTenantService(db, testConfig())
	occupancySvc := NewOccupancyService(db, testConfig())
	roomA := mustCreateRoom(t, db, "A1", "3500")
	roomB := mustCreateRoom(t, db, "B2", "4000")
	tenant, _ := mustCheckIn(t, db, roomA.ID, "John", "john@oksms.com", "12345678", "3500")

	_, err := occupancySvc.SwitchRoom(SwitchRoomInput{
		TenantID:   tenant.ID,
		NewRoomID:  roomB.ID,
		AgreedRent: mustDecimal(t, "4000"),
		SwitchDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	occupancies, err := svc.GetTenantOccupancies(tenant.ID)
	require.NoError(t, err)
	require.Len(t, occupancies, 2)
	assert.Equal(t, roomA.ID, occupancies[0].RoomID)
	assert.Equal(t, roomB.ID, occupancies[1].RoomID)

	_, err = svc.GetTenantOccupancies(999)
	assert.ErrorIs(t, err, ErrTenantNotFound)
}
