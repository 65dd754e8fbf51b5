package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"oksms-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// injectCreateFailure 在指定表的插入前注入错误，用于验证事务回滚
func injectCreateFailure(t *testing.T, db *gorm.DB, table string) {
	err := db.Callback().Create().Before("gorm:create").Register("test_inject_failure", func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			tx.AddError(errors.New("injected failure"))
		}
	})
	require.NoError(t, err)
}

func TestCheckInNewTenant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOccupancyService(db, testConfig())
	room := mustCreateRoom(t, db, "A1", "3500")

	tenant, occupancy, err := svc.CheckInNewTenant(CheckInInput{
		Name:         "John Otieno",
		Email:        "john@oksms.com",
		Phone:        "+254700000001",
		NationalID:   "12345678",
		RoomID:       room.ID,
		AgreedRent:   mustDecimal(t, "3500"),
		StartDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckInNotes: "Deposit paid",
	})
	require.NoError(t, err)
	require.NotNil(t, tenant)
	require.NotNil(t, occupancy)

	assert.Equal(t, tenant.ID, occupancy.TenantID)
	assert.Equal(t, room.ID, occupancy.RoomID)
	assert.Nil(t, occupancy.EndDate)
	assert.True(t, occupancy.IsActive())

	var updated models.Room
	require.NoError(t, db.First(&updated, room.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, updated.Status)
}

func TestCheckInNewTenantRoomNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOccupancyService(db, testConfig())

	_, _, err := svc.CheckInNewTenant(CheckInInput{
		Name:       "John",
		Email:      "john@oksms.com",
		NationalID: "12345678",
		RoomID:     999,
		AgreedRent: mustDecimal(t, "3500"),
		StartDate:  time.Now(),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCheckInNewTenantRoomOccupied(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOccupancyService(db, testConfig())
	room := mustCreateRoom(t, db, "A1", "3500")
	mustCheckIn(t, db, room.ID, "First", "first@oksms.com", "11111111", "3500")

	_, _, err := svc.CheckInNewTenant(CheckInInput{
		Name:       "Second",
		Email:      "second@oksms.com",
		NationalID: "22222222",
		RoomID:     room.ID,
		AgreedRent: mustDecimal(t, "3500"),
		StartDate:  time.Now(),
	})
	assert.ErrorIs(t, err, ErrRoomNotAvailable)

	// 失败的入住不应留下租户记录
	var count int64
	require.NoError(t, db.Model(&models.Tenant{}).Where("email = ?", "second@oksms.com").Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckInNewTenantDuplicateIdentity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOccupancyService(db, testConfig())
	roomA := mustCreateRoom(t, db, "A1", "3500")
	roomB := mustCreateRoom(t, db, "A2", "3500")
	mustCheckIn(t, db, roomA.ID, "John", "john@oksms.com", "12345678", "3500")

	// 相同身份证号
	_, _, err := svc.CheckInNewTenant(CheckInInput{
		Name:       "Impostor",
		Email:      "other@oksms.com",
		NationalID: "12345678",
		RoomID:     roomB.ID,
		AgreedRent: mustDecimal(t, "3500"),
		StartDate:  time.Now(),
	})
	assert.ErrorIs(t, err, ErrTenantAlreadyExist)

	// 相同邮箱
	_, _, err = svc.CheckInNewTenant(CheckInInput{
		Name:       "Impostor",
		Email:      "john@oksms.com",
		NationalID: "87654321",
		RoomID:     roomB.ID,
		AgreedRent: mustDecimal(t, "3500"),
		StartDate:  time.Now(),
	})
	assert.ErrorIs(t, err, ErrTenantAlreadyExist)

	// 目标房间保持可用
	var updated models.Room
	require.NoError(t, db.First(&updated, roomB.ID).Error)
	assert.Equal(t, models.RoomStatusAvailable, updated.Status)
}

func TestCheckInNewTenantRollback(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOccupancyService(db, testConfig())
	room := mustCreateRoom(t, db, "A1", "3500")

	injectCreateFailure(t, db, "occupancies")

	_, _, err := svc.CheckInNewTenant(CheckInInput{
		Name:       "John",
		Email:      "john@oksms.com",
		NationalID: "12345678",
		RoomID:     room.ID,
		AgreedRent: mustDecimal(t, "3500"),
		StartDate:  time.Now(),
	})
	require.Error(t, err)

	// 整个事务回滚：租户不存在，房间保持可用
	var tenantCount int64
	require.NoError(t, db.Model(&models.Tenant{}).Count(&tenantCount).Error)
	assert.Zero(t, tenantCount)

	var updated models.Room
	require.NoError(t, db.First(&updated, room.ID).Error)
	assert.Equal(t, models.RoomStatusAvailable, updated.Status)
}

func TestCheckInNewTenantConcurrentSameRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOccupancyService(db, testConfig())
	room := mustCreateRoom(t, db, "A1", "3500")

	var wg sync.WaitGroup
	results := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			inputs := []CheckInInput{
				{Name: "First", Email: "first@oksms.com", NationalID: "11111111"},
				{Name: "Second", Email: "second@oksms.com", NationalID: "22222222"},
			}
			input := inputs[n]
			input.RoomID = room.ID
			input.AgreedRent = mustDecimal(t, "3500")
			input.StartDate = time.Now()
			_, _, results[n] = svc.CheckInNewTenant(input)
		}(i)
	}
	wg.Wait()

	// 恰好一个成功，另一个因房间不可用失败
	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrRoomNotAvailable)
		}
	}
	assert.Equal(t, 1, succeeded)

	var occupancyCount int64
	require.NoError(t, db.Model(&models.Occupancy{}).Where("room_id = ? AND end_date IS NULL", room.ID).Count(&occupancyCount).Error)
	assert.Equal(t, int64(1), occupancyCount)
}

func TestSwitchRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOccupancyService(db, testConfig())
	roomA := mustCreateRoom(t, db, "A1", "3500")
	roomB := mustCreateRoom(t, db, "B2", "4000")
	tenant, oldOccupancy := mustCheckIn(t, db, roomA.ID, "John", "john@oksms.com", "12345678", "3500")

	switchDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.SwitchRoom(SwitchRoomInput{
		TenantID:   tenant.ID,
		NewRoomID:  roomB.ID,
		AgreedRent: mustDecimal(t, "4000"),
		SwitchDate: switchDate,
	})
	require.NoError(t, err)

	// 旧入住结束并带自动生成的备注
	assert.Equal(t, oldOccupancy.ID, result.OldOccupancy.ID)
	require.NotNil(t, result.OldOccupancy.EndDate)
	assert.True(t, result.OldOccupancy.EndDate.Equal(switchDate))
	assert.Contains(t, result.OldOccupancy.CheckOutNotes, "switched to room B2")
	assert.Contains(t, result.NewOccupancy.CheckInNotes, "switched from room A1")

	// 新入住有效且使用新租金
	assert.Nil(t, result.NewOccupancy.EndDate)
	assert.True(t, result.NewOccupancy.AgreedRent.Equal(mustDecimal(t, "4000")))

	// 房间状态互换
	var a, b models.Room
	require.NoError(t, db.First(&a, roomA.ID).Error)
	require.NoError(t, db.First(&b, roomB.ID).Error)
	assert.Equal(t, models.RoomStatusAvailable, a.Status)
	assert.Equal(t, models.RoomStatusOccupied, b.Status)

	// 租户始终只有一个有效入住
	var activeCount int64
	require.NoError(t, db.Model(&models.Occupancy{}).Where("tenant_id = ? AND end_date IS NULL", tenant.ID).Count(&activeCount).Error)
	assert.Equal(t, int64(1), activeCount)
}

func TestSwitchRoomSameRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOccupancyService(db, testConfig())
	room := mustCreateRoom(t, db, "A1", "3500")
	tenant, _ := mustCheckIn(t, db, room.ID, "John", "john@oksms.com", "12345678", "3500")

	_, err := svc.SwitchRoom(SwitchRoomInput{
		TenantID:   tenant.ID,
		NewRoomID:  room.ID,
		AgreedRent: mustDecimal(t, "3500"),
		SwitchDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrSameRoomSwitch)
}

func TestSwitchRoomTargetOccupied(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOccupancyService(db, testConfig())
	roomA := mustCreateRoom(t, db, "A1", "3500")
	roomB := mustCreateRoom(t, db, "B2", "4000")
	tenantA, occupancyA := mustCheckIn(t, db, roomA.ID, "John", "john@oksms.com", "11111111", "3500")
	mustCheckIn(t, db, roomB.ID, "Mary", "mary@oksms.com", "22222222", "4000")

	_, err := svc.SwitchRoom(SwitchRoomInput{
		TenantID:   tenantA.ID,
		NewRoomID:  roomB.ID,
		AgreedRent: mustDecimal(t, "4000"),
		SwitchDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrRoomNotAvailable)

	// 原入住保持有效
	var unchanged models.Occupancy
	require.NoError(t, db.First(&unchanged, occupancyA.ID).Error)
	assert.Nil(t, unchanged.EndDate)
}

func TestSwitchRoomNoActiveOccupancy(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOccupancyService(db, testConfig())
	roomA := mustCreateRoom(t, db, "A1", "3500")
	roomB := mustCreateRoom(t, db, "B2", "4000")
	tenant, _ := mustCheckIn(t, db, roomA.ID, "John", "john@oksms.com", "12345678", "3500")

	_, err := svc.CheckOut(tenant.ID, time.Now(), "")
	require.NoError(t, err)

	_, err = svc.SwitchRoom(SwitchRoomInput{
		TenantID:   tenant.ID,
		NewRoomID:  roomB.ID,
		AgreedRent: mustDecimal(t, "4000"),
		SwitchDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrNoActiveOccupancy)
}

func TestSwitchRoomRollback(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOccupancyService(db, testConfig())
	roomA := mustCreateRoom(t, db, "A1", "3500")
	roomB := mustCreateRoom(t, db, "B2", "4000")
	tenant, occupancyA := mustCheckIn(t, db, roomA.ID, "John", "john@oksms.com", "12345678", "3500")

	// 新入住插入失败，换房必须整体回滚
	injectCreateFailure(t, db, "occupancies")

	_, err := svc.SwitchRoom(SwitchRoomInput{
		TenantID:   tenant.ID,
		NewRoomID:  roomB.ID,
		AgreedRent: mustDecimal(t, "4000"),
		SwitchDate: time.Now(),
	})
	require.Error(t, err)

	var unchanged models.Occupancy
	require.NoError(t, db.First(&unchanged, occupancyA.ID).Error)
	assert.Nil(t, unchanged.EndDate)

	var a, b models.Room
	require.NoError(t, db.First(&a, roomA.ID).Error)
	require.NoError(t, db.First(&b, roomB.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, a.Status)
	assert.Equal(t, models.RoomStatusAvailable, b.Status)
}

func TestCheckOut(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOccupancyService(db, testConfig())
	room := mustCreateRoom(t, db, "A1", "3500")
	tenant, _ := mustCheckIn(t, db, room.ID, "John", "john@oksms.com", "12345678", "3500")

	endDate := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	occupancy, err := svc.CheckOut(tenant.ID, endDate, "")
	require.NoError(t, err)
	require.NotNil(t, occupancy.EndDate)
	assert.True(t, occupancy.EndDate.Equal(endDate))
	assert.Contains(t, occupancy.CheckOutNotes, "checked out of room A1")

	var updated models.Room
	require.NoError(t, db.First(&updated, room.ID).Error)
	assert.Equal(t, models.RoomStatusAvailable, updated.Status)

	// 重复退房报无有效入住
	_, err = svc.CheckOut(tenant.ID, endDate, "")
	assert.ErrorIs(t, err, ErrNoActiveOccupancy)
}

func TestDeleteOccupancyFreesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOccupancyService(db, testConfig())
	room := mustCreateRoom(t, db, "A1", "3500")
	_, occupancy := mustCheckIn(t, db, room.ID, "John", "john@oksms.com", "12345678", "3500")

	// 先生成一笔账单，验证删除入住后账单保留
	billing := NewBillingService(db, testConfig())
	created, err := billing.GenerateMonthlyCharges("January", 2025, mustDecimal(t, "500"))
	require.NoError(t, err)
	require.Equal(t, 1, created)

	require.NoError(t, svc.DeleteOccupancy(occupancy.ID))

	var updated models.Room
	require.NoError(t, db.First(&updated, room.ID).Error)
	assert.Equal(t, models.RoomStatusAvailable, updated.Status)

	var chargeCount int64
	require.NoError(t, db.Model(&models.MonthlyCharge{}).Count(&chargeCount).Error)
	assert.Equal(t, int64(1), chargeCount)

	assert.ErrorIs(t, svc.DeleteOccupancy(occupancy.ID), ErrOccupancyNotFound)
}
