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
	"fmt"
	"time"

	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/payment/internal/domain"
	"github.com/ecodeclub/eshop/internal/payment/internal/event"
	"github.com/ecodeclub/eshop/internal/payment/internal/repository"
	"github.com/ecodeclub/eshop/internal/payment/internal/service/gateway"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go -mock_names=Service=MockService,OrderConfirmationNotifier=MockOrderConfirmationNotifier Service,OrderConfirmationNotifier

var (
	ErrOrderNotFound    = repository.ErrOrderNotFound
	ErrPaymentNotFound  = repository.ErrPaymentNotFound
	ErrAmountMismatch   = errors.New("支付金额与订单应付金额不一致")
	ErrDuplicatePayment = repository.ErrDuplicatePayment
	ErrNotCODPayment    = errors.New("非货到付款支付")
	ErrOrderNotShipped  = errors.New("订单不在已发货状态")
)

// OrderConfirmationNotifier 订单确认通知, 提交事务后尽力而为地调用
type OrderConfirmationNotifier interface {
	SendOrderConfirmation(ctx context.Context, orderID int64) error
}

// ReconcileResult 一轮对账的统计
type ReconcileResult struct {
	Scanned   int
	Confirmed int
	Failed    int
}

type Service interface {
	// ProcessPayment 同一事务内锁定订单行并推进支付与订单状态。
	// 订单已有支付时, 仅当该支付已失败且订单仍待支付才允许原地重试
	ProcessPayment(ctx context.Context, customerID, orderID int64, method string, amount int64) (domain.Payment, error)
	// UpdatePaymentStatus 管理端覆写, 不校验当前状态是否允许变更
	UpdatePaymentStatus(ctx context.Context, paymentID int64, status domain.PaymentStatus, txnID string) error
	CompleteCODPayment(ctx context.Context, paymentID, orderID int64) (domain.Payment, error)
	FindPaymentByID(ctx context.Context, id int64) (domain.Payment, error)
	FindPaymentByOrderID(ctx context.Context, orderID int64) (domain.Payment, error)
	// ReconcilePendingPayments 单轮对账: 锁定待确认的非货到付款支付,
	// 逐笔询问后台网关并落库, 提交后通知已确认订单
	ReconcilePendingPayments(ctx context.Context, limit int) (ReconcileResult, error)
}

func NewService(repo repository.PaymentRepository,
	gateways gateway.Simulators,
	producer event.PaymentEventProducer,
	notifier OrderConfirmationNotifier,
	snGenerator *sequencenumber.Generator) Service {
	return &service{
		repo:        repo,
		gateways:    gateways,
		producer:    producer,
		notifier:    notifier,
		snGenerator: snGenerator,
		l:           elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.PaymentRepository
	gateways    gateway.Simulators
	producer    event.PaymentEventProducer
	notifier    OrderConfirmationNotifier
	snGenerator *sequencenumber.Generator
	l           *elog.Component
}

func (s *service) ProcessPayment(ctx context.Context, customerID, orderID int64, method string, amount int64) (domain.Payment, error) {
	var (
		pmt       domain.Payment
		confirmed bool
	)
	err := s.repo.Transaction(ctx, func(tx repository.PaymentRepository) error {
		o, err := tx.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o.CustomerID != customerID {
			return fmt.Errorf("%w: 订单ID %d", ErrOrderNotFound, orderID)
		}
		if amount != o.TotalAmount {
			return fmt.Errorf("%w: 期望 %d, 实际 %d", ErrAmountMismatch, o.TotalAmount, amount)
		}

		pmt, err = s.preparePayment(ctx, tx, o, customerID, orderID, method, amount)
		if err != nil {
			return err
		}

		if domain.IsCashOnDelivery(method) {
			// 货到付款: 支付保持待确认, 订单直接进入备货
			if err = s.persist(ctx, tx, &pmt); err != nil {
				return err
			}
			if err = tx.UpdateOrderStatus(ctx, orderID, order.StatusProcessing.ToUint8()); err != nil {
				return err
			}
			confirmed = true
			return nil
		}

		status, err := s.gateways.Inline.Authorize(ctx, amount, method)
		if err != nil {
			return fmt.Errorf("调用支付网关失败: %w", err)
		}
		pmt.Status = status
		if status == domain.PaymentStatusCompleted {
			pmt.TxnID = s.snGenerator.TransactionID()
			if err = tx.UpdateOrderStatus(ctx, orderID, order.StatusShipped.ToUint8()); err != nil {
				return err
			}
		}
		return s.persist(ctx, tx, &pmt)
	})
	if err != nil {
		return domain.Payment{}, err
	}
	if confirmed {
		s.notify(ctx, orderID)
	}
	s.produceSettlementEvent(ctx, pmt)
	return pmt, nil
}

// preparePayment 复用已失败支付或新建支付行, 发起时间重置为当前时间
func (s *service) preparePayment(ctx context.Context, tx repository.PaymentRepository,
	o domain.Order, customerID, orderID int64, method string, amount int64) (domain.Payment, error) {
	now := time.Now().UnixMilli()
	existing, err := tx.FindPaymentByOrderID(ctx, orderID)
	switch {
	case err == nil:
		if existing.Status == domain.PaymentStatusFailed &&
			o.Status == order.StatusPending.ToUint8() {
			existing.Method = method
			existing.Amount = amount
			existing.TxnID = ""
			existing.PaymentDate = now
			existing.Status = domain.PaymentStatusPending
			return existing, nil
		}
		return domain.Payment{}, fmt.Errorf("%w: 订单ID %d", ErrDuplicatePayment, orderID)
	case errors.Is(err, repository.ErrPaymentNotFound):
		return domain.Payment{
			SN:          s.snGenerator.PaymentSN(customerID),
			OrderID:     orderID,
			CustomerID:  customerID,
			Method:      method,
			Amount:      amount,
			PaymentDate: now,
			Status:      domain.PaymentStatusPending,
		}, nil
	default:
		return domain.Payment{}, err
	}
}

func (s *service) persist(ctx context.Context, tx repository.PaymentRepository, pmt *domain.Payment) error {
	if pmt.ID == 0 {
		created, err := tx.CreatePayment(ctx, *pmt)
		if err != nil {
			return err
		}
		*pmt = created
		return nil
	}
	return tx.UpdatePayment(ctx, *pmt)
}

func (s *service) UpdatePaymentStatus(ctx context.Context, paymentID int64, status domain.PaymentStatus, txnID string) error {
	var (
		pmt              domain.Payment
		confirmedOrderID int64
	)
	err := s.repo.Transaction(ctx, func(tx repository.PaymentRepository) error {
		var err error
		pmt, err = tx.FindPaymentByID(ctx, paymentID)
		if err != nil {
			return err
		}
		pmt.Status = status
		if txnID != "" {
			pmt.TxnID = txnID
		}
		if status == domain.PaymentStatusCompleted && !domain.IsCashOnDelivery(pmt.Method) {
			if pmt.TxnID == "" {
				pmt.TxnID = s.snGenerator.TransactionID()
			}
			if err = tx.UpdateOrderStatus(ctx, pmt.OrderID, order.StatusProcessing.ToUint8()); err != nil {
				return err
			}
			confirmedOrderID = pmt.OrderID
		}
		return tx.UpdatePayment(ctx, pmt)
	})
	if err != nil {
		return err
	}
	if confirmedOrderID != 0 {
		s.notify(ctx, confirmedOrderID)
	}
	s.produceSettlementEvent(ctx, pmt)
	return nil
}

func (s *service) CompleteCODPayment(ctx context.Context, paymentID, orderID int64) (domain.Payment, error) {
	var pmt domain.Payment
	err := s.repo.Transaction(ctx, func(tx repository.PaymentRepository) error {
		o, err := tx.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		pmt, err = tx.FindPaymentByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if pmt.OrderID != orderID {
			return fmt.Errorf("%w: 支付ID %d 与订单ID %d 不关联", ErrPaymentNotFound, paymentID, orderID)
		}
		if o.Status != order.StatusShipped.ToUint8() {
			return fmt.Errorf("%w: 当前状态 %d", ErrOrderNotShipped, o.Status)
		}
		if !domain.IsCashOnDelivery(pmt.Method) {
			return fmt.Errorf("%w: %s", ErrNotCODPayment, pmt.Method)
		}
		pmt.Status = domain.PaymentStatusCompleted
		pmt.PaymentDate = time.Now().UnixMilli()
		if err = tx.UpdatePayment(ctx, pmt); err != nil {
			return err
		}
		return tx.UpdateOrderStatus(ctx, orderID, order.StatusDelivered.ToUint8())
	})
	if err != nil {
		return domain.Payment{}, err
	}
	s.notify(ctx, orderID)
	s.produceSettlementEvent(ctx, pmt)
	return pmt, nil
}

func (s *service) FindPaymentByID(ctx context.Context, id int64) (domain.Payment, error) {
	return s.repo.FindPaymentByID(ctx, id)
}

func (s *service) FindPaymentByOrderID(ctx context.Context, orderID int64) (domain.Payment, error) {
	return s.repo.FindPaymentByOrderID(ctx, orderID)
}

func (s *service) ReconcilePendingPayments(ctx context.Context, limit int) (ReconcileResult, error) {
	var (
		result          ReconcileResult
		confirmedOrders []int64
		settled         []domain.Payment
	)
	err := s.repo.Transaction(ctx, func(tx repository.PaymentRepository) error {
		pmts, err := tx.FindPendingNonCODPayments(ctx, limit)
		if err != nil {
			return err
		}
		result.Scanned = len(pmts)
		for _, pmt := range pmts {
			status, err := s.gateways.Background.Authorize(ctx, pmt.Amount, pmt.Method)
			if err != nil {
				return fmt.Errorf("调用支付网关失败: %w", err)
			}
			switch status {
			case domain.PaymentStatusCompleted:
				// 后台确认不补交易号, 交易号只在同步支付或人工确认时生成
				pmt.Status = domain.PaymentStatusCompleted
				if err = tx.UpdatePayment(ctx, pmt); err != nil {
					return err
				}
				if err = tx.UpdateOrderStatus(ctx, pmt.OrderID, order.StatusProcessing.ToUint8()); err != nil {
					return err
				}
				confirmedOrders = append(confirmedOrders, pmt.OrderID)
				settled = append(settled, pmt)
				result.Confirmed++
			case domain.PaymentStatusFailed:
				pmt.Status = domain.PaymentStatusFailed
				if err = tx.UpdatePayment(ctx, pmt); err != nil {
					return err
				}
				settled = append(settled, pmt)
				result.Failed++
			default:
				// 仍然待确认, 留给下一轮
			}
		}
		return nil
	})
	if err != nil {
		return ReconcileResult{}, err
	}
	// 单个订单通知失败不阻塞其余订单
	for _, oid := range confirmedOrders {
		s.notify(ctx, oid)
	}
	for _, pmt := range settled {
		s.produceSettlementEvent(ctx, pmt)
	}
	return result, nil
}

func (s *service) notify(ctx context.Context, orderID int64) {
	if err := s.notifier.SendOrderConfirmation(ctx, orderID); err != nil {
		s.l.Error("发送订单确认通知失败",
			elog.FieldErr(err),
			elog.Int64("order_id", orderID))
	}
}

// produceSettlementEvent 只发结算定论, 待确认状态不发
func (s *service) produceSettlementEvent(ctx context.Context, pmt domain.Payment) {
	if pmt.Status != domain.PaymentStatusCompleted && pmt.Status != domain.PaymentStatusFailed {
		return
	}
	evt := event.PaymentEvent{
		OrderID:   pmt.OrderID,
		PaymentSN: pmt.SN,
		Status:    pmt.Status.ToUint8(),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.l.Error("发送支付结算事件失败",
			elog.FieldErr(err),
			elog.String("payment_sn", pmt.SN))
	}
}
