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
	"sort"
	"testing"

	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/payment/internal/domain"
	"github.com/ecodeclub/eshop/internal/payment/internal/event"
	evtmocks "github.com/ecodeclub/eshop/internal/payment/internal/event/mocks"
	"github.com/ecodeclub/eshop/internal/payment/internal/repository"
	"github.com/ecodeclub/eshop/internal/payment/internal/service/gateway"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakePaymentRepository 以内存表模拟支付与订单存储, Transaction直接在自身上执行
type fakePaymentRepository struct {
	orders   map[int64]domain.Order
	payments map[int64]domain.Payment
	nextID   int64
}

func newFakePaymentRepository() *fakePaymentRepository {
	return &fakePaymentRepository{
		orders:   make(map[int64]domain.Order),
		payments: make(map[int64]domain.Payment),
		nextID:   1,
	}
}

func (f *fakePaymentRepository) Transaction(_ context.Context, fn func(txRepo repository.PaymentRepository) error) error {
	return fn(f)
}

func (f *fakePaymentRepository) CreatePayment(_ context.Context, pmt domain.Payment) (domain.Payment, error) {
	pmt.ID = f.nextID
	f.nextID++
	f.payments[pmt.ID] = pmt
	return pmt, nil
}

func (f *fakePaymentRepository) UpdatePayment(_ context.Context, pmt domain.Payment) error {
	f.payments[pmt.ID] = pmt
	return nil
}

func (f *fakePaymentRepository) FindPaymentByID(_ context.Context, id int64) (domain.Payment, error) {
	pmt, ok := f.payments[id]
	if !ok {
		return domain.Payment{}, repository.ErrPaymentNotFound
	}
	return pmt, nil
}

func (f *fakePaymentRepository) FindPaymentByOrderID(_ context.Context, orderID int64) (domain.Payment, error) {
	for _, pmt := range f.payments {
		if pmt.OrderID == orderID {
			return pmt, nil
		}
	}
	return domain.Payment{}, repository.ErrPaymentNotFound
}

func (f *fakePaymentRepository) FindPendingNonCODPayments(_ context.Context, limit int) ([]domain.Payment, error) {
	res := make([]domain.Payment, 0, len(f.payments))
	for _, pmt := range f.payments {
		if pmt.Status == domain.PaymentStatusPending && !domain.IsCashOnDelivery(pmt.Method) {
			res = append(res, pmt)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (f *fakePaymentRepository) FindOrderByIDForUpdate(_ context.Context, orderID int64) (domain.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return domain.Order{}, repository.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakePaymentRepository) FindOrderByID(ctx context.Context, orderID int64) (domain.Order, error) {
	return f.FindOrderByIDForUpdate(ctx, orderID)
}

func (f *fakePaymentRepository) UpdateOrderStatus(_ context.Context, orderID int64, status uint8) error {
	o := f.orders[orderID]
	o.Status = status
	f.orders[orderID] = o
	return nil
}

// notifierRecorder 记录被通知的订单ID, 不能用paymentmocks以免形成循环依赖
type notifierRecorder struct {
	orderIDs []int64
}

func (n *notifierRecorder) SendOrderConfirmation(_ context.Context, orderID int64) error {
	n.orderIDs = append(n.orderIDs, orderID)
	return nil
}

func fixedGateway(status domain.PaymentStatus) gateway.Simulator {
	return gateway.NewRandomSimulatorWith(0, nil, status, func() int { return 1 })
}

func newTestService(t *testing.T, repo repository.PaymentRepository,
	inline, background domain.PaymentStatus) (Service, *notifierRecorder, *[]event.PaymentEvent) {
	t.Helper()
	ctrl := gomock.NewController(t)
	events := make([]event.PaymentEvent, 0, 4)
	producer := evtmocks.NewMockPaymentEventProducer(ctrl)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, evt event.PaymentEvent) error {
			events = append(events, evt)
			return nil
		}).AnyTimes()
	notifier := &notifierRecorder{}
	gateways := gateway.Simulators{
		Inline:     fixedGateway(inline),
		Background: fixedGateway(background),
	}
	svc := NewService(repo, gateways, producer, notifier, sequencenumber.NewGenerator())
	return svc, notifier, &events
}

func TestService_ProcessPayment(t *testing.T) {
	t.Parallel()

	const txnIDPattern = `^TXN-[0-9A-F]{12}$`

	t.Run("金额不一致_不生成支付记录", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusPending.ToUint8()}
		svc, notifier, events := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		_, err := svc.ProcessPayment(context.Background(), 11, 100, "CreditCard", 17999)

		assert.ErrorIs(t, err, ErrAmountMismatch)
		assert.Empty(t, repo.payments)
		assert.Equal(t, order.StatusPending.ToUint8(), repo.orders[100].Status)
		assert.Empty(t, notifier.orderIDs)
		assert.Empty(t, *events)
	})

	t.Run("订单不存在", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		svc, _, _ := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		_, err := svc.ProcessPayment(context.Background(), 11, 100, "CreditCard", 18000)

		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("订单不属于当前客户", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusPending.ToUint8()}
		svc, _, _ := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		_, err := svc.ProcessPayment(context.Background(), 22, 100, "CreditCard", 18000)

		assert.ErrorIs(t, err, ErrOrderNotFound)
		assert.Empty(t, repo.payments)
	})

	t.Run("货到付款_订单进入备货并发送通知", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusPending.ToUint8()}
		svc, notifier, events := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		pmt, err := svc.ProcessPayment(context.Background(), 11, 100, "COD", 18000)

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPending, pmt.Status)
		assert.Empty(t, pmt.TxnID)
		assert.NotEmpty(t, pmt.SN)
		assert.Equal(t, order.StatusProcessing.ToUint8(), repo.orders[100].Status)
		assert.Equal(t, []int64{100}, notifier.orderIDs)
		// 支付尚未有定论, 不发送结算事件
		assert.Empty(t, *events)
	})

	t.Run("货到付款_方式大小写不敏感", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusPending.ToUint8()}
		svc, notifier, _ := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		pmt, err := svc.ProcessPayment(context.Background(), 11, 100, "cashOnDelivery", 18000)

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPending, pmt.Status)
		assert.Equal(t, order.StatusProcessing.ToUint8(), repo.orders[100].Status)
		assert.Equal(t, []int64{100}, notifier.orderIDs)
	})

	t.Run("在线支付成功_订单发货并生成交易号", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusPending.ToUint8()}
		svc, notifier, events := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		pmt, err := svc.ProcessPayment(context.Background(), 11, 100, "CreditCard", 18000)

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, pmt.Status)
		assert.Regexp(t, txnIDPattern, pmt.TxnID)
		assert.Equal(t, order.StatusShipped.ToUint8(), repo.orders[100].Status)
		// 订单确认通知只在订单进入备货时发送
		assert.Empty(t, notifier.orderIDs)
		require.Len(t, *events, 1)
		assert.Equal(t, event.PaymentEvent{
			OrderID:   100,
			PaymentSN: pmt.SN,
			Status:    domain.PaymentStatusCompleted.ToUint8(),
		}, (*events)[0])
	})

	t.Run("在线支付失败_订单保持待支付", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusPending.ToUint8()}
		svc, notifier, events := newTestService(t, repo, domain.PaymentStatusFailed, domain.PaymentStatusPending)

		pmt, err := svc.ProcessPayment(context.Background(), 11, 100, "CreditCard", 18000)

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusFailed, pmt.Status)
		assert.Empty(t, pmt.TxnID)
		assert.Equal(t, order.StatusPending.ToUint8(), repo.orders[100].Status)
		assert.Empty(t, notifier.orderIDs)
		require.Len(t, *events, 1)
		assert.Equal(t, domain.PaymentStatusFailed.ToUint8(), (*events)[0].Status)
	})

	t.Run("在线支付待确认_留给对账", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusPending.ToUint8()}
		svc, notifier, events := newTestService(t, repo, domain.PaymentStatusPending, domain.PaymentStatusPending)

		pmt, err := svc.ProcessPayment(context.Background(), 11, 100, "CreditCard", 18000)

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPending, pmt.Status)
		assert.Equal(t, order.StatusPending.ToUint8(), repo.orders[100].Status)
		assert.Len(t, repo.payments, 1)
		assert.Empty(t, notifier.orderIDs)
		assert.Empty(t, *events)
	})

	t.Run("订单已有未失败支付_冲突", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusPending.ToUint8()}
		repo.payments[7] = domain.Payment{ID: 7, SN: "sn-7", OrderID: 100, CustomerID: 11,
			Method: "CreditCard", Amount: 18000, Status: domain.PaymentStatusPending}
		svc, _, _ := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		_, err := svc.ProcessPayment(context.Background(), 11, 100, "CreditCard", 18000)

		assert.ErrorIs(t, err, ErrDuplicatePayment)
		assert.Len(t, repo.payments, 1)
	})

	t.Run("已失败支付_原地重试复用支付行", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusPending.ToUint8()}
		repo.payments[7] = domain.Payment{ID: 7, SN: "sn-7", OrderID: 100, CustomerID: 11,
			Method: "CreditCard", Amount: 18000, Status: domain.PaymentStatusFailed}
		svc, _, _ := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		pmt, err := svc.ProcessPayment(context.Background(), 11, 100, "DebitCard", 18000)

		require.NoError(t, err)
		assert.Equal(t, int64(7), pmt.ID)
		assert.Equal(t, "sn-7", pmt.SN)
		assert.Equal(t, "DebitCard", pmt.Method)
		assert.Equal(t, domain.PaymentStatusCompleted, pmt.Status)
		assert.Regexp(t, txnIDPattern, pmt.TxnID)
		assert.Len(t, repo.payments, 1)
		assert.Equal(t, order.StatusShipped.ToUint8(), repo.orders[100].Status)
	})

	t.Run("订单已不在待支付_失败支付也不允许重试", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusProcessing.ToUint8()}
		repo.payments[7] = domain.Payment{ID: 7, SN: "sn-7", OrderID: 100, CustomerID: 11,
			Method: "CreditCard", Amount: 18000, Status: domain.PaymentStatusFailed}
		svc, _, _ := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		_, err := svc.ProcessPayment(context.Background(), 11, 100, "CreditCard", 18000)

		assert.ErrorIs(t, err, ErrDuplicatePayment)
	})
}

func TestService_CompleteCODPayment(t *testing.T) {
	t.Parallel()

	t.Run("确认收款_订单送达", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusShipped.ToUint8()}
		repo.payments[7] = domain.Payment{ID: 7, SN: "sn-7", OrderID: 100, CustomerID: 11,
			Method: "COD", Amount: 18000, Status: domain.PaymentStatusPending}
		svc, notifier, events := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		pmt, err := svc.CompleteCODPayment(context.Background(), 7, 100)

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, pmt.Status)
		assert.NotZero(t, pmt.PaymentDate)
		assert.Equal(t, order.StatusDelivered.ToUint8(), repo.orders[100].Status)
		assert.Equal(t, []int64{100}, notifier.orderIDs)
		require.Len(t, *events, 1)
		assert.Equal(t, domain.PaymentStatusCompleted.ToUint8(), (*events)[0].Status)
	})

	t.Run("订单未发货", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusProcessing.ToUint8()}
		repo.payments[7] = domain.Payment{ID: 7, OrderID: 100, CustomerID: 11,
			Method: "COD", Amount: 18000, Status: domain.PaymentStatusPending}
		svc, notifier, _ := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		_, err := svc.CompleteCODPayment(context.Background(), 7, 100)

		assert.ErrorIs(t, err, ErrOrderNotShipped)
		assert.Equal(t, domain.PaymentStatusPending, repo.payments[7].Status)
		assert.Empty(t, notifier.orderIDs)
	})

	t.Run("非货到付款支付", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusShipped.ToUint8()}
		repo.payments[7] = domain.Payment{ID: 7, OrderID: 100, CustomerID: 11,
			Method: "CreditCard", Amount: 18000, Status: domain.PaymentStatusPending}
		svc, _, _ := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		_, err := svc.CompleteCODPayment(context.Background(), 7, 100)

		assert.ErrorIs(t, err, ErrNotCODPayment)
	})

	t.Run("支付与订单不关联", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusShipped.ToUint8()}
		repo.payments[7] = domain.Payment{ID: 7, OrderID: 200, CustomerID: 11,
			Method: "COD", Amount: 18000, Status: domain.PaymentStatusPending}
		svc, _, _ := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		_, err := svc.CompleteCODPayment(context.Background(), 7, 100)

		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})
}

func TestService_UpdatePaymentStatus(t *testing.T) {
	t.Parallel()

	t.Run("确认在线支付_补交易号并推进订单", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusPending.ToUint8()}
		repo.payments[7] = domain.Payment{ID: 7, SN: "sn-7", OrderID: 100, CustomerID: 11,
			Method: "CreditCard", Amount: 18000, Status: domain.PaymentStatusPending}
		svc, notifier, events := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		err := svc.UpdatePaymentStatus(context.Background(), 7, domain.PaymentStatusCompleted, "")

		require.NoError(t, err)
		got := repo.payments[7]
		assert.Equal(t, domain.PaymentStatusCompleted, got.Status)
		assert.Regexp(t, `^TXN-[0-9A-F]{12}$`, got.TxnID)
		assert.Equal(t, order.StatusProcessing.ToUint8(), repo.orders[100].Status)
		assert.Equal(t, []int64{100}, notifier.orderIDs)
		require.Len(t, *events, 1)
	})

	t.Run("指定交易号覆盖", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusPending.ToUint8()}
		repo.payments[7] = domain.Payment{ID: 7, SN: "sn-7", OrderID: 100, CustomerID: 11,
			Method: "CreditCard", Amount: 18000, Status: domain.PaymentStatusPending}
		svc, _, _ := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		err := svc.UpdatePaymentStatus(context.Background(), 7, domain.PaymentStatusCompleted, "TXN-MANUAL000001")

		require.NoError(t, err)
		assert.Equal(t, "TXN-MANUAL000001", repo.payments[7].TxnID)
	})

	t.Run("标记失败_不动订单", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusPending.ToUint8()}
		repo.payments[7] = domain.Payment{ID: 7, SN: "sn-7", OrderID: 100, CustomerID: 11,
			Method: "CreditCard", Amount: 18000, Status: domain.PaymentStatusPending}
		svc, notifier, events := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		err := svc.UpdatePaymentStatus(context.Background(), 7, domain.PaymentStatusFailed, "")

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusFailed, repo.payments[7].Status)
		assert.Equal(t, order.StatusPending.ToUint8(), repo.orders[100].Status)
		assert.Empty(t, notifier.orderIDs)
		require.Len(t, *events, 1)
	})

	t.Run("确认货到付款_不推进订单", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusShipped.ToUint8()}
		repo.payments[7] = domain.Payment{ID: 7, SN: "sn-7", OrderID: 100, CustomerID: 11,
			Method: "COD", Amount: 18000, Status: domain.PaymentStatusPending}
		svc, notifier, _ := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		err := svc.UpdatePaymentStatus(context.Background(), 7, domain.PaymentStatusCompleted, "")

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, repo.payments[7].Status)
		assert.Empty(t, repo.payments[7].TxnID)
		assert.Equal(t, order.StatusShipped.ToUint8(), repo.orders[100].Status)
		assert.Empty(t, notifier.orderIDs)
	})

	t.Run("支付记录不存在", func(t *testing.T) {
		t.Parallel()
		repo := newFakePaymentRepository()
		svc, _, _ := newTestService(t, repo, domain.PaymentStatusCompleted, domain.PaymentStatusPending)

		err := svc.UpdatePaymentStatus(context.Background(), 7, domain.PaymentStatusCompleted, "")

		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})
}

func TestService_ReconcilePendingPayments(t *testing.T) {
	t.Parallel()

	newPendingSet := func() *fakePaymentRepository {
		repo := newFakePaymentRepository()
		repo.orders[100] = domain.Order{ID: 100, CustomerID: 11, TotalAmount: 18000, Status: order.StatusPending.ToUint8()}
		repo.orders[200] = domain.Order{ID: 200, CustomerID: 22, TotalAmount: 5000, Status: order.StatusPending.ToUint8()}
		repo.orders[300] = domain.Order{ID: 300, CustomerID: 33, TotalAmount: 9900, Status: order.StatusProcessing.ToUint8()}
		repo.payments[1] = domain.Payment{ID: 1, SN: "sn-1", OrderID: 100, CustomerID: 11,
			Method: "CreditCard", Amount: 18000, Status: domain.PaymentStatusPending}
		repo.payments[2] = domain.Payment{ID: 2, SN: "sn-2", OrderID: 200, CustomerID: 22,
			Method: "DebitCard", Amount: 5000, Status: domain.PaymentStatusPending}
		// 货到付款不参与对账
		repo.payments[3] = domain.Payment{ID: 3, SN: "sn-3", OrderID: 300, CustomerID: 33,
			Method: "COD", Amount: 9900, Status: domain.PaymentStatusPending}
		return repo
	}

	t.Run("网关确认成功_订单进入备货并逐单通知", func(t *testing.T) {
		t.Parallel()
		repo := newPendingSet()
		svc, notifier, events := newTestService(t, repo, domain.PaymentStatusPending, domain.PaymentStatusCompleted)

		result, err := svc.ReconcilePendingPayments(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, ReconcileResult{Scanned: 2, Confirmed: 2, Failed: 0}, result)
		assert.Equal(t, domain.PaymentStatusCompleted, repo.payments[1].Status)
		// 后台确认不生成交易号
		assert.Empty(t, repo.payments[1].TxnID)
		assert.Equal(t, domain.PaymentStatusCompleted, repo.payments[2].Status)
		assert.Equal(t, order.StatusProcessing.ToUint8(), repo.orders[100].Status)
		assert.Equal(t, order.StatusProcessing.ToUint8(), repo.orders[200].Status)
		assert.Equal(t, []int64{100, 200}, notifier.orderIDs)
		assert.Len(t, *events, 2)
		// 货到付款支付保持原样
		assert.Equal(t, domain.PaymentStatusPending, repo.payments[3].Status)
	})

	t.Run("网关确认失败_只落支付状态", func(t *testing.T) {
		t.Parallel()
		repo := newPendingSet()
		svc, notifier, events := newTestService(t, repo, domain.PaymentStatusPending, domain.PaymentStatusFailed)

		result, err := svc.ReconcilePendingPayments(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, ReconcileResult{Scanned: 2, Confirmed: 0, Failed: 2}, result)
		assert.Equal(t, domain.PaymentStatusFailed, repo.payments[1].Status)
		assert.Equal(t, domain.PaymentStatusFailed, repo.payments[2].Status)
		assert.Equal(t, order.StatusPending.ToUint8(), repo.orders[100].Status)
		assert.Equal(t, order.StatusPending.ToUint8(), repo.orders[200].Status)
		assert.Empty(t, notifier.orderIDs)
		assert.Len(t, *events, 2)
	})

	t.Run("网关仍未定论_本轮不动", func(t *testing.T) {
		t.Parallel()
		repo := newPendingSet()
		svc, notifier, events := newTestService(t, repo, domain.PaymentStatusPending, domain.PaymentStatusPending)

		result, err := svc.ReconcilePendingPayments(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, ReconcileResult{Scanned: 2, Confirmed: 0, Failed: 0}, result)
		assert.Equal(t, domain.PaymentStatusPending, repo.payments[1].Status)
		assert.Equal(t, order.StatusPending.ToUint8(), repo.orders[100].Status)
		assert.Empty(t, notifier.orderIDs)
		assert.Empty(t, *events)
	})

	t.Run("limit限制单轮扫描数量", func(t *testing.T) {
		t.Parallel()
		repo := newPendingSet()
		svc, _, _ := newTestService(t, repo, domain.PaymentStatusPending, domain.PaymentStatusCompleted)

		result, err := svc.ReconcilePendingPayments(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, ReconcileResult{Scanned: 1, Confirmed: 1, Failed: 0}, result)
		assert.Equal(t, domain.PaymentStatusCompleted, repo.payments[1].Status)
		assert.Equal(t, domain.PaymentStatusPending, repo.payments[2].Status)
	})
}
