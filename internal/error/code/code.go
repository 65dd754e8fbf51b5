package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 状态冲突.
	StatusConflict = 409
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrDateFormat - 400: 日期格式错误.
	ErrDateFormat
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: 权限不足.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 409: 用户已存在.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: 用户密码错误.
	ErrUserPasswordIncorrect
)

// 房间相关错误码 (102xxx).
const (
	// ErrRoomNotFound - 404: 房间不存在.
	ErrRoomNotFound int = iota + 102000
	// ErrRoomAlreadyExist - 409: 房间号已存在.
	ErrRoomAlreadyExist
	// ErrRoomNotAvailable - 409: 房间不可用.
	ErrRoomNotAvailable
	// ErrRoomStillOccupied - 409: 房间仍有租户在住.
	ErrRoomStillOccupied
)

// 租户相关错误码 (103xxx).
const (
	// ErrTenantNotFound - 404: 租户不存在.
	ErrTenantNotFound int = iota + 103000
	// ErrTenantAlreadyExist - 409: 租户身份信息已登记.
	ErrTenantAlreadyExist
	// ErrTenantStillActive - 409: 租户仍有有效入住.
	ErrTenantStillActive
)

// 入住相关错误码 (104xxx).
const (
	// ErrOccupancyNotFound - 404: 入住记录不存在.
	ErrOccupancyNotFound int = iota + 104000
	// ErrNoActiveOccupancy - 409: 租户没有有效入住.
	ErrNoActiveOccupancy
	// ErrSameRoomSwitch - 409: 不能换到当前所在房间.
	ErrSameRoomSwitch
)

// 账单相关错误码 (105xxx).
const (
	// ErrChargeNotFound - 404: 月度账单不存在.
	ErrChargeNotFound int = iota + 105000
)

// 付款相关错误码 (106xxx).
const (
	// ErrPaymentNotFound - 404: 付款记录不存在.
	ErrPaymentNotFound int = iota + 106000
	// ErrPaymentMethodInvalid - 400: 付款方式不合法.
	ErrPaymentMethodInvalid
)

// 数据库相关错误码 (107xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 107000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
