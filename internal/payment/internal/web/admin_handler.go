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
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/status", ginx.B[UpdatePaymentStatusReq](h.UpdateStatus))
}

// UpdateStatus 人工覆写支付状态, 不校验变更合法性
func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdatePaymentStatusReq) (ginx.Result, error) {
	err := h.svc.UpdatePaymentStatus(ctx.Request.Context(), req.PaymentID,
		domain.PaymentStatus(req.Status), req.TxnID)
	if errors.Is(err, service.ErrPaymentNotFound) {
		return paymentNotFoundResult, fmt.Errorf("支付未找到: %w", err)
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("覆写支付状态失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
