package controllers

import (
	"errors"

	"oksms-http-service/internal/domain/services"
	"oksms-http-service/internal/error/code"
)

// serviceErrorCode 把服务层的哨兵错误映射为业务错误码
// 未识别的错误统一按数据库错误处理
func serviceErrorCode(err error) int {
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		return code.ErrRoomNotFound
	case errors.Is(err, services.ErrRoomAlreadyExist):
		return code.ErrRoomAlreadyExist
	case errors.Is(err, services.ErrRoomNotAvailable):
		return code.ErrRoomNotAvailable
	case errors.Is(err, services.ErrRoomStillOccupied):
		return code.ErrRoomStillOccupied
	case errors.Is(err, services.ErrTenantNotFound):
		return code.ErrTenantNotFound
	case errors.Is(err, services.ErrTenantAlreadyExist):
		return code.ErrTenantAlreadyExist
	case errors.Is(err, services.ErrTenantStillActive):
		return code.ErrTenantStillActive
	case errors.Is(err, services.ErrOccupancyNotFound):
		return code.ErrOccupancyNotFound
	case errors.Is(err, services.ErrNoActiveOccupancy):
		return code.ErrNoActiveOccupancy
	case errors.Is(err, services.ErrSameRoomSwitch):
		return code.ErrSameRoomSwitch
	case errors.Is(err, services.ErrChargeNotFound):
		return code.ErrChargeNotFound
	case errors.Is(err, services.ErrPaymentNotFound):
		return code.ErrPaymentNotFound
	case errors.Is(err, services.ErrPaymentMethodInvalid):
		return code.ErrPaymentMethodInvalid
	case errors.Is(err, services.ErrUserNotFound):
		return code.ErrUserNotFound
	case errors.Is(err, services.ErrUserAlreadyExist):
		return code.ErrUserAlreadyExist
	case errors.Is(err, services.ErrUserPasswordIncorrect):
		return code.ErrUserPasswordIncorrect
	default:
		return code.ErrDatabase
	}
}
