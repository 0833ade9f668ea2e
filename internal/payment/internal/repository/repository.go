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
	"database/sql"
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/payment/internal/domain"
	"github.com/ecodeclub/eshop/internal/payment/internal/repository/dao"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound  = errors.New("支付记录不存在")
	ErrOrderNotFound    = errors.New("订单不存在")
	ErrDuplicatePayment = errors.New("订单已存在关联支付")
)

type PaymentRepository interface {
	// Transaction fn内通过传入的Repository访问数据库时共享同一事务
	Transaction(ctx context.Context, fn func(txRepo PaymentRepository) error) error

	CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	UpdatePayment(ctx context.Context, pmt domain.Payment) error
	FindPaymentByID(ctx context.Context, id int64) (domain.Payment, error)
	FindPaymentByOrderID(ctx context.Context, orderID int64) (domain.Payment, error)
	FindPendingNonCODPayments(ctx context.Context, limit int) ([]domain.Payment, error)

	FindOrderByIDForUpdate(ctx context.Context, orderID int64) (domain.Order, error)
	FindOrderByID(ctx context.Context, orderID int64) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status uint8) error
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func (p *paymentRepository) Transaction(ctx context.Context, fn func(txRepo PaymentRepository) error) error {
	return p.dao.Transaction(ctx, func(txDAO dao.PaymentDAO) error {
		return fn(&paymentRepository{dao: txDAO})
	})
}

func (p *paymentRepository) CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	id, err := p.dao.CreatePayment(ctx, p.toEntity(pmt))
	if errors.Is(err, dao.ErrDuplicatedPayment) {
		return domain.Payment{}, fmt.Errorf("%w: %w", ErrDuplicatePayment, err)
	}
	if err != nil {
		return domain.Payment{}, err
	}
	pmt.ID = id
	return pmt, nil
}

func (p *paymentRepository) UpdatePayment(ctx context.Context, pmt domain.Payment) error {
	return p.dao.UpdatePayment(ctx, p.toEntity(pmt))
}

func (p *paymentRepository) FindPaymentByID(ctx context.Context, id int64) (domain.Payment, error) {
	pmt, err := p.dao.FindPaymentByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Payment{}, ErrPaymentNotFound
	}
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(pmt), nil
}

func (p *paymentRepository) FindPaymentByOrderID(ctx context.Context, orderID int64) (domain.Payment, error) {
	pmt, err := p.dao.FindPaymentByOrderID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Payment{}, ErrPaymentNotFound
	}
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(pmt), nil
}

func (p *paymentRepository) FindPendingNonCODPayments(ctx context.Context, limit int) ([]domain.Payment, error) {
	pmts, err := p.dao.FindPendingNonCODPayments(ctx, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(pmts, func(_ int, src dao.Payment) domain.Payment {
		return p.toDomain(src)
	}), nil
}

func (p *paymentRepository) FindOrderByIDForUpdate(ctx context.Context, orderID int64) (domain.Order, error) {
	o, err := p.dao.FindOrderByIDForUpdate(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	return p.toOrderDomain(o), nil
}

func (p *paymentRepository) FindOrderByID(ctx context.Context, orderID int64) (domain.Order, error) {
	o, err := p.dao.FindOrderByID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	return p.toOrderDomain(o), nil
}

func (p *paymentRepository) UpdateOrderStatus(ctx context.Context, orderID int64, status uint8) error {
	return p.dao.UpdateOrderStatus(ctx, orderID, status)
}

func (p *paymentRepository) toEntity(pmt domain.Payment) dao.Payment {
	return dao.Payment{
		Id:          pmt.ID,
		SN:          pmt.SN,
		OrderId:     pmt.OrderID,
		CustomerId:  pmt.CustomerID,
		Method:      pmt.Method,
		Amount:      pmt.Amount,
		TxnId:       sql.NullString{String: pmt.TxnID, Valid: pmt.TxnID != ""},
		PaymentDate: pmt.PaymentDate,
		Status:      pmt.Status.ToUint8(),
	}
}

func (p *paymentRepository) toDomain(pmt dao.Payment) domain.Payment {
	return domain.Payment{
		ID:          pmt.Id,
		SN:          pmt.SN,
		OrderID:     pmt.OrderId,
		CustomerID:  pmt.CustomerId,
		Method:      pmt.Method,
		Amount:      pmt.Amount,
		TxnID:       pmt.TxnId.String,
		PaymentDate: pmt.PaymentDate,
		Status:      domain.PaymentStatus(pmt.Status),
		Ctime:       pmt.Ctime,
		Utime:       pmt.Utime,
	}
}

func (p *paymentRepository) toOrderDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:          o.Id,
		SN:          o.SN,
		CustomerID:  o.CustomerId,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
	}
}
