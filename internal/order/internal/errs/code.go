package errs

var (
	SystemError          = ErrorCode{Code: 500401, Msg: "系统错误"}
	OrderNotFound        = ErrorCode{Code: 404401, Msg: "订单不存在"}
	CustomerNotFound     = ErrorCode{Code: 404402, Msg: "客户不存在"}
	AddressNotFound      = ErrorCode{Code: 404403, Msg: "收货地址不存在"}
	ProductNotFound      = ErrorCode{Code: 404404, Msg: "商品不存在"}
	InvalidOrderItems    = ErrorCode{Code: 400401, Msg: "订单商品非法"}
	InsufficientStock    = ErrorCode{Code: 400402, Msg: "商品库存不足"}
	DuplicateRequest     = ErrorCode{Code: 409401, Msg: "重复请求"}
	TransitionNotAllowed = ErrorCode{Code: 409402, Msg: "订单状态不允许变更"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
