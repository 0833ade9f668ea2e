package web

import (
	"github.com/ecodeclub/eshop/internal/payment/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	paymentNotFoundResult = ginx.Result{
		Code: errs.PaymentNotFound.Code,
		Msg:  errs.PaymentNotFound.Msg,
	}
	amountMismatchResult = ginx.Result{
		Code: errs.AmountMismatch.Code,
		Msg:  errs.AmountMismatch.Msg,
	}
	duplicatePaymentResult = ginx.Result{
		Code: errs.DuplicatePayment.Code,
		Msg:  errs.DuplicatePayment.Msg,
	}
	notCODPaymentResult = ginx.Result{
		Code: errs.NotCODPayment.Code,
		Msg:  errs.NotCODPayment.Msg,
	}
	orderNotShippedResult = ginx.Result{
		Code: errs.OrderNotShipped.Code,
		Msg:  errs.OrderNotShipped.Msg,
	}
)
