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

	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/customer"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"github.com/ecodeclub/eshop/internal/pkg/pricing"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/eshop/internal/product"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -mock_names=Service=MockService Service

var (
	ErrCustomerNotFound     = customer.ErrCustomerNotFound
	ErrAddressNotFound      = customer.ErrAddressNotFound
	ErrProductNotFound      = product.ErrProductNotFound
	ErrOrderNotFound        = repository.ErrOrderNotFound
	ErrInsufficientStock    = repository.ErrInsufficientStock
	ErrNoOrderItems         = errors.New("订单中没有商品")
	ErrInvalidQuantity      = errors.New("购买数量非法")
	ErrTransitionNotAllowed = errors.New("订单状态不允许变更")
)

// CreateOrderItem 下单请求中的一条商品
type CreateOrderItem struct {
	ProductID int64
	Quantity  int64
}

type Service interface {
	// CreateOrder 校验顺序: 客户 -> 地址 -> 逐个商品(存在、数量、库存)
	CreateOrder(ctx context.Context, customerID, addressID int64, items []CreateOrderItem) (domain.Order, error)
	FindOrder(ctx context.Context, orderID, customerID int64) (domain.Order, error)
	FindOrderByID(ctx context.Context, orderID int64) (domain.Order, error)
	ListOrders(ctx context.Context, offset, limit int, customerID int64) ([]domain.Order, int64, error)
	ListAllOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	// UpdateOrderStatus 管理端手工改单, 受变更规则表约束
	UpdateOrderStatus(ctx context.Context, orderID int64, newStatus domain.OrderStatus) error
}

func NewService(repo repository.OrderRepository,
	customerSvc customer.Service,
	productSvc product.Service,
	cartSvc cart.Service,
	snGenerator *sequencenumber.Generator) Service {
	return &service{
		repo:        repo,
		customerSvc: customerSvc,
		productSvc:  productSvc,
		cartSvc:     cartSvc,
		snGenerator: snGenerator,
		// 目前不开放任何手工变更路径, 订单状态只能由支付流程驱动
		allowedStatusTransitions: map[domain.OrderStatus][]domain.OrderStatus{},
	}
}

type service struct {
	repo                     repository.OrderRepository
	customerSvc              customer.Service
	productSvc               product.Service
	cartSvc                  cart.Service
	snGenerator              *sequencenumber.Generator
	allowedStatusTransitions map[domain.OrderStatus][]domain.OrderStatus
}

func (s *service) CreateOrder(ctx context.Context, customerID, addressID int64, items []CreateOrderItem) (domain.Order, error) {
	if len(items) == 0 {
		return domain.Order{}, ErrNoOrderItems
	}
	if _, err := s.customerSvc.Profile(ctx, customerID); err != nil {
		return domain.Order{}, fmt.Errorf("校验客户失败: %w", err)
	}
	if _, err := s.customerSvc.AddressBelongsTo(ctx, addressID, customerID); err != nil {
		return domain.Order{}, fmt.Errorf("校验收货地址失败: %w", err)
	}

	orderItems, err := s.buildOrderItems(ctx, items)
	if err != nil {
		return domain.Order{}, err
	}

	var totalBase, totalDiscount, totalAmount int64
	for _, item := range orderItems {
		base := pricing.LineBase(item.UnitPrice, item.Quantity)
		totalBase += base
		totalDiscount += item.Discount
		totalAmount += item.TotalPrice
	}

	order := domain.Order{
		SN:                  s.snGenerator.OrderSN(),
		CustomerID:          customerID,
		AddressID:           addressID,
		TotalBaseAmount:     totalBase,
		TotalDiscountAmount: totalDiscount,
		TotalAmount:         totalAmount,
		Status:              domain.OrderStatusPending,
		Items:               orderItems,
	}
	return s.repo.CreateOrder(ctx, order, s.activeCartID(ctx, customerID))
}

func (s *service) buildOrderItems(ctx context.Context, items []CreateOrderItem) ([]domain.OrderItem, error) {
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: 商品ID %d", ErrInvalidQuantity, item.ProductID)
		}
		p, err := s.productSvc.FindProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("校验商品失败: %w", err)
		}
		if p.Stock < item.Quantity {
			return nil, fmt.Errorf("%w: 商品ID %d", ErrInsufficientStock, item.ProductID)
		}
		base := pricing.LineBase(p.Price, item.Quantity)
		discount := pricing.LineDiscount(base, p.DiscountPercent)
		orderItems = append(orderItems, domain.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    item.Quantity,
			UnitPrice:   p.Price,
			Discount:    discount,
			TotalPrice:  pricing.LineTotal(base, discount),
		})
	}
	return orderItems, nil
}

// activeCartID 下单时顺带结算客户的未结算购物车, 查不到时返回0表示不处理
func (s *service) activeCartID(ctx context.Context, customerID int64) int64 {
	c, err := s.cartSvc.ActiveCart(ctx, customerID)
	if err != nil {
		return 0
	}
	return c.ID
}

func (s *service) FindOrder(ctx context.Context, orderID, customerID int64) (domain.Order, error) {
	return s.repo.FindOrderByIDAndCustomerID(ctx, orderID, customerID)
}

func (s *service) FindOrderByID(ctx context.Context, orderID int64) (domain.Order, error) {
	return s.repo.FindOrderByID(ctx, orderID)
}

func (s *service) ListOrders(ctx context.Context, offset, limit int, customerID int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrdersByCustomerID(ctx, offset, limit, customerID)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrdersByCustomerID(ctx, customerID)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListAllOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrders(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrders(ctx)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) UpdateOrderStatus(ctx context.Context, orderID int64, newStatus domain.OrderStatus) error {
	order, err := s.repo.FindOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	for _, allowed := range s.allowedStatusTransitions[order.Status] {
		if allowed == newStatus {
			return s.repo.UpdateOrderStatus(ctx, orderID, newStatus)
		}
	}
	return fmt.Errorf("%w: %d -> %d", ErrTransitionNotAllowed, order.Status, newStatus)
}
