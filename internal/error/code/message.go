package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "成功",
	ErrUnknown:          "未知错误",
	ErrBind:             "请求参数绑定错误",
	ErrValidation:       "请求参数验证错误",
	ErrDateFormat:       "日期格式错误，请使用ISO格式(YYYY-MM-DD)",
	ErrTokenInvalid:     "无效的认证令牌",
	ErrPermissionDenied: "权限不足",
	ErrTooManyRequests:  "请求频率过高",

	// 用户相关错误码
	ErrUserNotFound:          "用户不存在",
	ErrUserAlreadyExist:      "用户已存在",
	ErrUserPasswordIncorrect: "用户密码错误",

	// 房间相关错误码
	ErrRoomNotFound:      "房间不存在",
	ErrRoomAlreadyExist:  "房间号已存在",
	ErrRoomNotAvailable:  "房间不可用",
	ErrRoomStillOccupied: "房间仍有租户在住，无法删除",

	// 租户相关错误码
	ErrTenantNotFound:     "租户不存在",
	ErrTenantAlreadyExist: "租户身份信息已登记",
	ErrTenantStillActive:  "租户仍有有效入住，无法删除",

	// 入住相关错误码
	ErrOccupancyNotFound: "入住记录不存在",
	ErrNoActiveOccupancy: "租户没有有效入住",
	ErrSameRoomSwitch:    "租户已在该房间，无法换房",

	// 账单相关错误码
	ErrChargeNotFound: "月度账单不存在",

	// 付款相关错误码
	ErrPaymentNotFound:      "付款记录不存在",
	ErrPaymentMethodInvalid: "付款方式不合法",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrDateFormat:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// 用户相关错误码
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusConflict,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// 房间相关错误码
	ErrRoomNotFound:      StatusNotFound,
	ErrRoomAlreadyExist:  StatusConflict,
	ErrRoomNotAvailable:  StatusConflict,
	ErrRoomStillOccupied: StatusConflict,

	// 租户相关错误码
	ErrTenantNotFound:     StatusNotFound,
	ErrTenantAlreadyExist: StatusConflict,
	ErrTenantStillActive:  StatusConflict,

	// 入住相关错误码
	ErrOccupancyNotFound: StatusNotFound,
	ErrNoActiveOccupancy: StatusConflict,
	ErrSameRoomSwitch:    StatusConflict,

	// 账单相关错误码
	ErrChargeNotFound: StatusNotFound,

	// 付款相关错误码
	ErrPaymentNotFound:      StatusNotFound,
	ErrPaymentMethodInvalid: StatusBadRequest,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
