package errs

var (
	SystemError       = ErrorCode{Code: 500301, Msg: "系统错误"}
	ProductNotFound   = ErrorCode{Code: 404301, Msg: "商品不存在"}
	InvalidQuantity   = ErrorCode{Code: 400301, Msg: "购买数量非法"}
	InsufficientStock = ErrorCode{Code: 400302, Msg: "商品库存不足"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
