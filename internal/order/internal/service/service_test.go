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
	"testing"
	"time"

	"github.com/ecodeclub/eshop/internal/cart"
	cartmocks "github.com/ecodeclub/eshop/internal/cart/mocks"
	"github.com/ecodeclub/eshop/internal/customer"
	customermocks "github.com/ecodeclub/eshop/internal/customer/mocks"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/eshop/internal/product"
	productmocks "github.com/ecodeclub/eshop/internal/product/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeOrderRepository 记录CreateOrder收到的订单, 未覆盖的方法保持panic
type fakeOrderRepository struct {
	repository.OrderRepository
	created   domain.Order
	gotCartID int64
	found     domain.Order
	findErr   error
	updated   []domain.OrderStatus
}

func (f *fakeOrderRepository) CreateOrder(_ context.Context, order domain.Order, cartID int64) (domain.Order, error) {
	f.created = order
	f.gotCartID = cartID
	order.ID = 1
	return order, nil
}

func (f *fakeOrderRepository) FindOrderByID(_ context.Context, _ int64) (domain.Order, error) {
	return f.found, f.findErr
}

func (f *fakeOrderRepository) UpdateOrderStatus(_ context.Context, _ int64, status domain.OrderStatus) error {
	f.updated = append(f.updated, status)
	return nil
}

func testGenerator() *sequencenumber.Generator {
	return sequencenumber.NewGeneratorWith(
		func() time.Time {
			return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
		},
		func(min, max int64) int64 {
			return 1234
		})
}

func TestService_CreateOrder(t *testing.T) {
	t.Parallel()

	okCustomer := func(ctrl *gomock.Controller) customer.Service {
		mockSvc := customermocks.NewMockService(ctrl)
		mockSvc.EXPECT().Profile(gomock.Any(), int64(7)).
			Return(customer.Customer{ID: 7}, nil).AnyTimes()
		mockSvc.EXPECT().AddressBelongsTo(gomock.Any(), int64(3), int64(7)).
			Return(customer.Address{ID: 3, CustomerID: 7}, nil).AnyTimes()
		return mockSvc
	}
	noActiveCart := func(ctrl *gomock.Controller) cart.Service {
		mockSvc := cartmocks.NewMockService(ctrl)
		mockSvc.EXPECT().ActiveCart(gomock.Any(), int64(7)).
			Return(cart.Cart{}, cart.ErrNoActiveCart).AnyTimes()
		return mockSvc
	}

	testCases := []struct {
		name        string
		customerSvc func(ctrl *gomock.Controller) customer.Service
		productSvc  func(ctrl *gomock.Controller) product.Service
		cartSvc     func(ctrl *gomock.Controller) cart.Service
		items       []CreateOrderItem
		wantErr     error
		assertOrder func(t *testing.T, order domain.Order)
	}{
		{
			name:        "下单成功_金额按当前价格与折扣计算",
			customerSvc: okCustomer,
			productSvc: func(ctrl *gomock.Controller) product.Service {
				mockSvc := productmocks.NewMockService(ctrl)
				mockSvc.EXPECT().FindProductByID(gomock.Any(), int64(100)).
					Return(product.Product{
						ID:              100,
						Name:            "机械键盘",
						Price:           10000,
						Stock:           10,
						DiscountPercent: 10,
					}, nil)
				return mockSvc
			},
			cartSvc: noActiveCart,
			items:   []CreateOrderItem{{ProductID: 100, Quantity: 2}},
			assertOrder: func(t *testing.T, order domain.Order) {
				assert.Equal(t, "ORD-20240115-103000-1234", order.SN)
				assert.Equal(t, int64(20000), order.TotalBaseAmount)
				assert.Equal(t, int64(2000), order.TotalDiscountAmount)
				assert.Equal(t, int64(18000), order.TotalAmount)
				assert.Equal(t, domain.OrderStatusPending, order.Status)
				require.Len(t, order.Items, 1)
				assert.Equal(t, int64(10000), order.Items[0].UnitPrice)
				assert.Equal(t, int64(18000), order.Items[0].TotalPrice)
			},
		},
		{
			name: "客户不存在_不再校验地址与商品",
			customerSvc: func(ctrl *gomock.Controller) customer.Service {
				mockSvc := customermocks.NewMockService(ctrl)
				mockSvc.EXPECT().Profile(gomock.Any(), int64(7)).
					Return(customer.Customer{}, customer.ErrCustomerNotFound)
				return mockSvc
			},
			productSvc: func(ctrl *gomock.Controller) product.Service {
				return productmocks.NewMockService(ctrl)
			},
			cartSvc: func(ctrl *gomock.Controller) cart.Service {
				return cartmocks.NewMockService(ctrl)
			},
			items:   []CreateOrderItem{{ProductID: 100, Quantity: 1}},
			wantErr: ErrCustomerNotFound,
		},
		{
			name: "地址不属于客户",
			customerSvc: func(ctrl *gomock.Controller) customer.Service {
				mockSvc := customermocks.NewMockService(ctrl)
				mockSvc.EXPECT().Profile(gomock.Any(), int64(7)).
					Return(customer.Customer{ID: 7}, nil)
				mockSvc.EXPECT().AddressBelongsTo(gomock.Any(), int64(3), int64(7)).
					Return(customer.Address{}, customer.ErrAddressNotFound)
				return mockSvc
			},
			productSvc: func(ctrl *gomock.Controller) product.Service {
				return productmocks.NewMockService(ctrl)
			},
			cartSvc: func(ctrl *gomock.Controller) cart.Service {
				return cartmocks.NewMockService(ctrl)
			},
			items:   []CreateOrderItem{{ProductID: 100, Quantity: 1}},
			wantErr: ErrAddressNotFound,
		},
		{
			name:        "商品不存在",
			customerSvc: okCustomer,
			productSvc: func(ctrl *gomock.Controller) product.Service {
				mockSvc := productmocks.NewMockService(ctrl)
				mockSvc.EXPECT().FindProductByID(gomock.Any(), int64(999)).
					Return(product.Product{}, product.ErrProductNotFound)
				return mockSvc
			},
			cartSvc: func(ctrl *gomock.Controller) cart.Service {
				return cartmocks.NewMockService(ctrl)
			},
			items:   []CreateOrderItem{{ProductID: 999, Quantity: 1}},
			wantErr: ErrProductNotFound,
		},
		{
			name:        "库存不足",
			customerSvc: okCustomer,
			productSvc: func(ctrl *gomock.Controller) product.Service {
				mockSvc := productmocks.NewMockService(ctrl)
				mockSvc.EXPECT().FindProductByID(gomock.Any(), int64(100)).
					Return(product.Product{ID: 100, Price: 10000, Stock: 1}, nil)
				return mockSvc
			},
			cartSvc: func(ctrl *gomock.Controller) cart.Service {
				return cartmocks.NewMockService(ctrl)
			},
			items:   []CreateOrderItem{{ProductID: 100, Quantity: 5}},
			wantErr: ErrInsufficientStock,
		},
		{
			name:        "购买数量非法",
			customerSvc: okCustomer,
			productSvc: func(ctrl *gomock.Controller) product.Service {
				return productmocks.NewMockService(ctrl)
			},
			cartSvc: func(ctrl *gomock.Controller) cart.Service {
				return cartmocks.NewMockService(ctrl)
			},
			items:   []CreateOrderItem{{ProductID: 100, Quantity: 0}},
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "订单中没有商品",
			customerSvc: func(ctrl *gomock.Controller) customer.Service {
				return customermocks.NewMockService(ctrl)
			},
			productSvc: func(ctrl *gomock.Controller) product.Service {
				return productmocks.NewMockService(ctrl)
			},
			cartSvc: func(ctrl *gomock.Controller) cart.Service {
				return cartmocks.NewMockService(ctrl)
			},
			items:   []CreateOrderItem{},
			wantErr: ErrNoOrderItems,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := &fakeOrderRepository{}
			svc := NewService(repo, tc.customerSvc(ctrl), tc.productSvc(ctrl), tc.cartSvc(ctrl), testGenerator())
			order, err := svc.CreateOrder(context.Background(), 7, 3, tc.items)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.assertOrder(t, order)
		})
	}
}

func TestService_CreateOrder_RetiresActiveCart(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerSvc := customermocks.NewMockService(ctrl)
	customerSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(customer.Customer{ID: 7}, nil)
	customerSvc.EXPECT().AddressBelongsTo(gomock.Any(), int64(3), int64(7)).
		Return(customer.Address{ID: 3, CustomerID: 7}, nil)

	productSvc := productmocks.NewMockService(ctrl)
	productSvc.EXPECT().FindProductByID(gomock.Any(), int64(100)).
		Return(product.Product{ID: 100, Price: 500, Stock: 3}, nil)

	cartSvc := cartmocks.NewMockService(ctrl)
	cartSvc.EXPECT().ActiveCart(gomock.Any(), int64(7)).
		Return(cart.Cart{ID: 42, CustomerID: 7}, nil)

	repo := &fakeOrderRepository{}
	svc := NewService(repo, customerSvc, productSvc, cartSvc, testGenerator())
	_, err := svc.CreateOrder(context.Background(), 7, 3,
		[]CreateOrderItem{{ProductID: 100, Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(42), repo.gotCartID)
}

func TestService_UpdateOrderStatus(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := &fakeOrderRepository{
		found: domain.Order{ID: 1, Status: domain.OrderStatusPending},
	}
	svc := NewService(repo,
		customermocks.NewMockService(ctrl),
		productmocks.NewMockService(ctrl),
		cartmocks.NewMockService(ctrl),
		testGenerator())

	// 变更规则表为空, 任何手工变更都会被拒绝
	for _, target := range []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusProcessing,
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
	} {
		err := svc.UpdateOrderStatus(context.Background(), 1, target)
		assert.ErrorIs(t, err, ErrTransitionNotAllowed)
	}
	assert.Empty(t, repo.updated)
}

func TestService_UpdateOrderStatus_OrderNotFound(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := &fakeOrderRepository{findErr: repository.ErrOrderNotFound}
	svc := NewService(repo,
		customermocks.NewMockService(ctrl),
		productmocks.NewMockService(ctrl),
		cartmocks.NewMockService(ctrl),
		testGenerator())

	err := svc.UpdateOrderStatus(context.Background(), 404, domain.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
