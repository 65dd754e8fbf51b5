package services

import "errors"

// 业务错误哨兵，控制器通过 errors.Is 映射到错误码
var (
	ErrRoomNotFound      = errors.New("房间不存在")
	ErrRoomAlreadyExist  = errors.New("房间号已存在")
	ErrRoomNotAvailable  = errors.New("房间不可用")
	ErrRoomStillOccupied = errors.New("房间仍有租户在住，无法删除")

	ErrTenantNotFound     = errors.New("租户不存在")
	ErrTenantAlreadyExist = errors.New("租户身份信息已登记")
	ErrTenantStillActive  = errors.New("租户仍有有效入住，无法删除")

	ErrOccupancyNotFound = errors.New("入住记录不存在")
	ErrNoActiveOccupancy = errors.New("租户没有有效入住")
	ErrSameRoomSwitch    = errors.New("租户已在该房间，无法换房")

	ErrChargeNotFound = errors.New("月度账单不存在")

	ErrPaymentNotFound      = errors.New("付款记录不存在")
	ErrPaymentMethodInvalid = errors.New("付款方式不合法")

	ErrUserNotFound          = errors.New("用户不存在")
	ErrUserAlreadyExist      = errors.New("用户已存在")
	ErrUserPasswordIncorrect = errors.New("用户名或密码错误")
)
