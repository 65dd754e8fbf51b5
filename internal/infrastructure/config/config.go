package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Database
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBMigrationMode string // 数据库迁移模式: "auto"(默认), "alter"(修改), "drop"(删除重建)

	// Server
	ServerPort string

	// Redis
	RedisHost string
	RedisPort string
	RedisDB   int

	// JWT Authentication
	JWTSecretKey string

	// 账单生成
	DefaultWaterBill string // 未提供水费时的默认值，十进制字符串

	// Admin
	DefaultAdminPassword string
}

// LoadConfig loads config from environment variables based on ENV_TYPE
func LoadConfig() *Config {
	// Get environment type (default to LOCAL if not set)
	envType := getEnv("ENV_TYPE", "LOCAL")
	prefix := ""

	// Set prefix based on environment type
	if strings.ToUpper(envType) == "LOCAL" {
		prefix = "LOCAL_"
	} else if strings.ToUpper(envType) == "SERVER" {
		prefix = "SERVER_"
	} else {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	fmt.Printf("Loading configuration for environment: %s\n", envType)

	return &Config{
		// Environment type
		EnvType: envType,

		// Database config - use environment-specific variables if available
		DBHost:          getEnvRequired(prefix + "DB_HOST"),
		DBUser:          getEnvRequired(prefix + "DB_USER"),
		DBPassword:      getEnvRequired(prefix + "DB_PASSWORD"),
		DBName:          getEnvRequired(prefix + "DB_NAME"),
		DBPort:          getEnvRequired(prefix + "DB_PORT"),
		DBMigrationMode: getEnv(prefix+"DB_MIGRATION_MODE", "auto"),

		// Server config
		ServerPort: getEnv(prefix+"SERVER_PORT", getEnv("SERVER_PORT", "8080")),

		// Redis config
		RedisHost: getEnv(prefix+"REDIS_HOST", getEnv("REDIS_HOST", "localhost")),
		RedisPort: getEnv(prefix+"REDIS_PORT", getEnv("REDIS_PORT", "6379")),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		// JWT Config
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "oksms-secret-key-change-in-production"),

		// 账单配置
		DefaultWaterBill: getEnv("DEFAULT_WATER_BILL", "0"),

		// Admin Config
		DefaultAdminPassword: getEnvRequired("DEFAULT_ADMIN_PASSWORD"),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true&multiStatements=true"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// 要求必须提供环境变量的辅助函数
func getEnvRequired(key string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	panic(fmt.Sprintf("Required environment variable %s is not set", key))
}
