// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/eshop/internal/payment/internal/domain"
	"github.com/ecodeclub/eshop/internal/payment/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/pay", ginx.BS[PayReq](h.Pay))
	g.POST("/cod/complete", ginx.BS[CompleteCODPaymentReq](h.CompleteCOD))
	g.POST("/detail", ginx.BS[RetrievePaymentDetailReq](h.RetrievePaymentDetail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Pay 对订单发起支付
func (h *Handler) Pay(ctx *ginx.Context, req PayReq, sess session.Session) (ginx.Result, error) {
	pmt, err := h.svc.ProcessPayment(ctx.Request.Context(), sess.Claims().Uid, req.OrderID, req.Method, req.Amount)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, fmt.Errorf("发起支付失败: %w", err)
	case errors.Is(err, service.ErrAmountMismatch):
		return amountMismatchResult, fmt.Errorf("发起支付失败: %w", err)
	case errors.Is(err, service.ErrDuplicatePayment):
		return duplicatePaymentResult, fmt.Errorf("发起支付失败: %w", err)
	case err != nil:
		return systemErrorResult, fmt.Errorf("发起支付失败: %w", err)
	}
	return ginx.Result{
		Data: PayResp{Payment: toPaymentVO(pmt)},
	}, nil
}

// CompleteCOD 货到付款收款后标记完成
func (h *Handler) CompleteCOD(ctx *ginx.Context, req CompleteCODPaymentReq, sess session.Session) (ginx.Result, error) {
	pmt, err := h.svc.CompleteCODPayment(ctx.Request.Context(), req.PaymentID, req.OrderID)
	switch {
	case errors.Is(err, service.ErrOrderNotFound), errors.Is(err, service.ErrPaymentNotFound):
		return paymentNotFoundResult, fmt.Errorf("确认货到付款失败: %w", err)
	case errors.Is(err, service.ErrOrderNotShipped):
		return orderNotShippedResult, fmt.Errorf("确认货到付款失败: %w", err)
	case errors.Is(err, service.ErrNotCODPayment):
		return notCODPaymentResult, fmt.Errorf("确认货到付款失败: %w", err)
	case err != nil:
		return systemErrorResult, fmt.Errorf("确认货到付款失败: %w", err)
	}
	return ginx.Result{
		Data: CompleteCODPaymentResp{Payment: toPaymentVO(pmt)},
	}, nil
}

// RetrievePaymentDetail 查看订单的支付详情
func (h *Handler) RetrievePaymentDetail(ctx *ginx.Context, req RetrievePaymentDetailReq, sess session.Session) (ginx.Result, error) {
	pmt, err := h.svc.FindPaymentByOrderID(ctx.Request.Context(), req.OrderID)
	if errors.Is(err, service.ErrPaymentNotFound) {
		return paymentNotFoundResult, fmt.Errorf("支付未找到: %w", err)
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找支付失败: %w", err)
	}
	if pmt.CustomerID != sess.Claims().Uid {
		return paymentNotFoundResult, fmt.Errorf("支付不属于当前用户")
	}
	return ginx.Result{
		Data: RetrievePaymentDetailResp{Payment: toPaymentVO(pmt)},
	}, nil
}

func toPaymentVO(pmt domain.Payment) Payment {
	return Payment{
		ID:          pmt.ID,
		SN:          pmt.SN,
		OrderID:     pmt.OrderID,
		Method:      pmt.Method,
		Amount:      pmt.Amount,
		TxnID:       pmt.TxnID,
		PaymentDate: pmt.PaymentDate,
		Status:      pmt.Status.ToUint8(),
	}
}
