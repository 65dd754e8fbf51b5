package services

import (
	"errors"

	"oksms-http-service/internal/domain/models"
	"oksms-http-service/internal/infrastructure/config"
	"oksms-http-service/pkg/logger"

	"gorm.io/gorm"
)

// InterfaceUserService 定义系统用户服务接口
type InterfaceUserService interface {
	Register(username, email, password, role string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	GetAllUsers(page, pageSize int) ([]models.User, int64, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(id uint) error
	EnsureDefaultAdmin() error
}

// UserService 提供系统用户（管理员/经理）相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的用户服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1. Register 注册一个新的系统用户
func (s *UserService) Register(username, email, password, role string) (*models.User, error) {
	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserAlreadyExist
	}

	if role == "" {
		role = models.RoleManager
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: password, // BeforeCreate钩子负责加密
		Role:     role,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// 2. Authenticate 校验用户名和密码
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !models.CheckPasswordHash(password, user.Password) {
		return nil, ErrUserPasswordIncorrect
	}

	return &user, nil
}

// 3. GetAllUsers 获取所有系统用户，支持分页
func (s *UserService) GetAllUsers(page, pageSize int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := s.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// 4. GetUserByID 根据ID获取系统用户
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// 5. UpdateUser 更新系统用户信息
func (s *UserService) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	// 用户名和邮箱的唯一性复查
	if username, ok := updates["username"].(string); ok && username != user.Username {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("username = ? AND id != ?", username, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrUserAlreadyExist
		}
	}
	if email, ok := updates["email"].(string); ok && email != user.Email {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("email = ? AND id != ?", email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrUserAlreadyExist
		}
	}

	// 密码走模型钩子重新加密
	if password, ok := updates["password"].(string); ok && password != "" {
		hashed, err := models.HashPassword(password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetUserByID(id)
}

// 6. DeleteUser 删除系统用户
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	return s.DB.Delete(user).Error
}

// 7. EnsureDefaultAdmin 确保默认管理员账号存在
// 服务启动时调用，没有任何admin账号时用配置的默认密码创建一个
func (s *UserService) EnsureDefaultAdmin() error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := models.User{
		Username: "admin",
		Email:    "admin@oksms.com",
		Password: s.Config.DefaultAdminPassword,
		Role:     models.RoleAdmin,
	}
	if err := s.DB.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("已创建默认管理员账号: admin")
	return nil
}
