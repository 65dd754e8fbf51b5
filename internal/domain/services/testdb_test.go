package services

import (
	"testing"
	"time"

	"oksms-http-service/internal/domain/models"
	"oksms-http-service/internal/infrastructure/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 创建内存数据库并迁移全部模型
// 单连接保证内存库在多goroutine下仍是同一个库，事务天然串行
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Tenant{},
		&models.Occupancy{},
		&models.MonthlyCharge{},
		&models.Payment{},
	)
	require.NoError(t, err)

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:         "test-secret-key",
		DefaultWaterBill:     "500",
		DefaultAdminPassword: "admin123",
	}
}

// mustCreateRoom 插入一个可用房间
func mustCreateRoom(t *testing.T, db *gorm.DB, number string, rent string) *models.Room {
	room := &models.Room{
		RoomNumber:  number,
		Capacity:    1,
		DefaultRent: mustDecimal(t, rent),
		Status:      models.RoomStatusAvailable,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

// mustCheckIn 通过入住服务登记一个新租户
func mustCheckIn(t *testing.T, db *gorm.DB, roomID uint, name, email, nationalID, rent string) (*models.Tenant, *models.Occupancy) {
	svc := NewOccupancyService(db, testConfig())
	tenant, occupancy, err := svc.CheckInNewTenant(CheckInInput{
		Name:       name,
		Email:      email,
		Phone:      "+254700000000",
		NationalID: nationalID,
		RoomID:     roomID,
		AgreedRent: mustDecimal(t, rent),
		StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return tenant, occupancy
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
