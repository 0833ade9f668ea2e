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
	"errors"
	"testing"

	"github.com/ecodeclub/eshop/internal/payment"
	paymentmocks "github.com/ecodeclub/eshop/internal/payment/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Reconcile(t *testing.T) {
	t.Parallel()

	t.Run("对账成功_透传统计", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		paymentSvc := paymentmocks.NewMockService(ctrl)
		paymentSvc.EXPECT().ReconcilePendingPayments(gomock.Any(), 100).
			Return(payment.ReconcileResult{Scanned: 3, Confirmed: 2, Failed: 1}, nil)
		svc := NewService(paymentSvc)

		result, err := svc.Reconcile(context.Background(), 100)

		require.NoError(t, err)
		assert.Equal(t, payment.ReconcileResult{Scanned: 3, Confirmed: 2, Failed: 1}, result)
	})

	t.Run("对账失败_错误上抛", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		paymentSvc := paymentmocks.NewMockService(ctrl)
		mockErr := errors.New("数据库不可用")
		paymentSvc.EXPECT().ReconcilePendingPayments(gomock.Any(), 100).
			Return(payment.ReconcileResult{}, mockErr)
		svc := NewService(paymentSvc)

		_, err := svc.Reconcile(context.Background(), 100)

		assert.ErrorIs(t, err, mockErr)
	})
}
