package services

import (
	"testing"

	"oksms-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user, err := svc.Register("manager1", "manager1@oksms.com", "secret123", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, user.Role)
	// 密码落库前已加密
	assert.NotEqual(t, "secret123", user.Password)

	authed, err := svc.Authenticate("manager1", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = svc.Authenticate("manager1", "wrong")
	assert.ErrorIs(t, err, ErrUserPasswordIncorrect)

	_, err = svc.Authenticate("nobody", "secret123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRegisterDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	_, err := svc.Register("manager1", "manager1@oksms.com", "secret123", "")
	require.NoError(t, err)

	_, err = svc.Register("manager1", "other@oksms.com", "secret123", "")
	assert.ErrorIs(t, err, ErrUserAlreadyExist)

	_, err = svc.Register("other", "manager1@oksms.com", "secret123", "")
	assert.ErrorIs(t, err, ErrUserAlreadyExist)
}

func TestEnsureDefaultAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	require.NoError(t, svc.EnsureDefaultAdmin())

	admin, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// 幂等：重复调用不创建第二个管理员
	require.NoError(t, svc.EnsureDefaultAdmin())
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateUserPasswordRehash(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user, err := svc.Register("manager1", "manager1@oksms.com", "secret123", "")
	require.NoError(t, err)

	_, err = svc.UpdateUser(user.ID, map[string]interface{}{"password": "newpass456"})
	require.NoError(t, err)

	_, err = svc.Authenticate("manager1", "secret123")
	assert.ErrorIs(t, err, ErrUserPasswordIncorrect)

	_, err = svc.Authenticate("manager1", "newpass456")
	assert.NoError(t, err)
}
