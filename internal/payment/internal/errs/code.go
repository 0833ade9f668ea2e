package errs

var (
	SystemError      = ErrorCode{Code: 500501, Msg: "系统错误"}
	OrderNotFound    = ErrorCode{Code: 404501, Msg: "订单不存在"}
	PaymentNotFound  = ErrorCode{Code: 404502, Msg: "支付记录不存在"}
	AmountMismatch   = ErrorCode{Code: 400501, Msg: "支付金额与订单应付金额不一致"}
	DuplicatePayment = ErrorCode{Code: 409501, Msg: "订单已存在关联支付"}
	NotCODPayment    = ErrorCode{Code: 409502, Msg: "非货到付款支付"}
	OrderNotShipped  = ErrorCode{Code: 409503, Msg: "订单不在已发货状态"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
