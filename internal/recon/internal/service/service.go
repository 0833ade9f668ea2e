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

package service

import (
	"context"
	"fmt"

	"github.com/ecodeclub/eshop/internal/payment"
	"github.com/gotomicro/ego/core/elog"
)

type Service interface {
	// Reconcile 执行一轮对账, 向后台网关确认待定支付并推进订单
	Reconcile(ctx context.Context, limit int) (payment.ReconcileResult, error)
}

func NewService(paymentSvc payment.Service) Service {
	return &service{
		paymentSvc: paymentSvc,
		l:          elog.DefaultLogger,
	}
}

type service struct {
	paymentSvc payment.Service
	l          *elog.Component
}

func (s *service) Reconcile(ctx context.Context, limit int) (payment.ReconcileResult, error) {
	result, err := s.paymentSvc.ReconcilePendingPayments(ctx, limit)
	if err != nil {
		return payment.ReconcileResult{}, fmt.Errorf("对账失败: %w", err)
	}
	s.l.Info("对账完成",
		elog.Int("scanned", result.Scanned),
		elog.Int("confirmed", result.Confirmed),
		elog.Int("failed", result.Failed))
	return result, nil
}
