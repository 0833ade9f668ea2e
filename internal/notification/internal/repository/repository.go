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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/eshop/internal/notification/internal/domain"
	"github.com/ecodeclub/eshop/internal/notification/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("支付记录不存在")

type NotificationRepository interface {
	FindPaymentByOrderID(ctx context.Context, orderID int64) (domain.Payment, error)
}

func NewNotificationRepository(d dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{dao: d}
}

type notificationRepository struct {
	dao dao.NotificationDAO
}

func (n *notificationRepository) FindPaymentByOrderID(ctx context.Context, orderID int64) (domain.Payment, error) {
	pmt, err := n.dao.FindPaymentByOrderID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Payment{}, ErrPaymentNotFound
	}
	if err != nil {
		return domain.Payment{}, err
	}
	return domain.Payment{
		SN:     pmt.SN,
		Method: pmt.Method,
		Amount: pmt.Amount,
		Status: pmt.Status,
	}, nil
}
