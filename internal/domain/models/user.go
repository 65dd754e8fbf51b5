package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 系统用户角色
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User represents system operators (admins and managers)
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(50);unique;not null" json:"username"`
	Email     string    `gorm:"type:varchar(100);unique;not null" json:"email"`
	Password  string    `gorm:"type:varchar(100);not null" json:"-"` // 不在JSON中暴露密码
	Role      string    `gorm:"type:varchar(20);not null;default:'manager'" json:"role"` // admin, manager
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate 是一个GORM钩子，在创建新记录前运行
func (u *User) BeforeCreate(tx *gorm.DB) error {
	// 如果提供了密码，对其进行哈希处理
	if u.Password != "" {
		hashedPassword, err := HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}

// BeforeSave 是一个GORM钩子，在保存记录前运行
func (u *User) BeforeSave(tx *gorm.DB) error {
	// 如果提供了密码且不是已哈希的，对其进行哈希处理
	if u.Password != "" && len(u.Password) < 60 {
		hashedPassword, err := HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}

// HashPassword 使用 bcrypt 对密码进行哈希处理
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash 比较密码和哈希值
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
