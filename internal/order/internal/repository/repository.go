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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/dao"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound     = errors.New("订单不存在")
	ErrInsufficientStock = dao.ErrInsufficientStock
)

type OrderRepository interface {
	// CreateOrder 订单落库、库存扣减与购物车结算在同一事务内完成
	CreateOrder(ctx context.Context, order domain.Order, cartID int64) (domain.Order, error)
	FindOrderByIDAndCustomerID(ctx context.Context, id, customerID int64) (domain.Order, error)
	FindOrderByID(ctx context.Context, id int64) (domain.Order, error)
	ListOrdersByCustomerID(ctx context.Context, offset, limit int, customerID int64) ([]domain.Order, error)
	TotalOrdersByCustomerID(ctx context.Context, customerID int64) (int64, error)
	ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, error)
	TotalOrders(ctx context.Context) (int64, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order, cartID int64) (domain.Order, error) {
	decrements := slice.Map(order.Items, func(_ int, src domain.OrderItem) dao.StockDecrement {
		return dao.StockDecrement{
			ProductID: src.ProductID,
			Quantity:  src.Quantity,
		}
	})
	oid, err := o.d.CreateOrder(ctx, o.toOrderEntity(order), o.toOrderItemEntities(order.Items), decrements, cartID)
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) FindOrderByIDAndCustomerID(ctx context.Context, id, customerID int64) (domain.Order, error) {
	order, err := o.d.FindOrderByIDAndCustomerID(ctx, id, customerID)
	if err != nil {
		return domain.Order{}, o.mapNotFound(err)
	}
	items, err := o.d.FindOrderItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) FindOrderByID(ctx context.Context, id int64) (domain.Order, error) {
	order, err := o.d.FindOrderByID(ctx, id)
	if err != nil {
		return domain.Order{}, o.mapNotFound(err)
	}
	items, err := o.d.FindOrderItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) ListOrdersByCustomerID(ctx context.Context, offset, limit int, customerID int64) ([]domain.Order, error) {
	os, err := o.d.ListOrdersByCustomerID(ctx, offset, limit, customerID)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(_ int, src dao.Order) domain.Order {
		return o.toOrderDomain(src, nil)
	}), nil
}

func (o *orderRepository) TotalOrdersByCustomerID(ctx context.Context, customerID int64) (int64, error) {
	return o.d.TotalOrdersByCustomerID(ctx, customerID)
}

func (o *orderRepository) ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	os, err := o.d.ListOrders(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(_ int, src dao.Order) domain.Order {
		return o.toOrderDomain(src, nil)
	}), nil
}

func (o *orderRepository) TotalOrders(ctx context.Context) (int64, error) {
	return o.d.TotalOrders(ctx)
}

func (o *orderRepository) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	return o.d.UpdateOrderStatus(ctx, id, status.ToUint8())
}

func (o *orderRepository) mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	return err
}

func (o *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:                  order.ID,
		SN:                  order.SN,
		CustomerId:          order.CustomerID,
		AddressId:           order.AddressID,
		TotalBaseAmount:     order.TotalBaseAmount,
		TotalDiscountAmount: order.TotalDiscountAmount,
		TotalAmount:         order.TotalAmount,
		Status:              order.Status.ToUint8(),
	}
}

func (o *orderRepository) toOrderItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(_ int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			ProductId:   src.ProductID,
			ProductName: src.ProductName,
			Quantity:    src.Quantity,
			UnitPrice:   src.UnitPrice,
			Discount:    src.Discount,
			TotalPrice:  src.TotalPrice,
		}
	})
}

func (o *orderRepository) toOrderDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:                  order.Id,
		SN:                  order.SN,
		CustomerID:          order.CustomerId,
		AddressID:           order.AddressId,
		TotalBaseAmount:     order.TotalBaseAmount,
		TotalDiscountAmount: order.TotalDiscountAmount,
		TotalAmount:         order.TotalAmount,
		Status:              domain.OrderStatus(order.Status),
		Items: slice.Map(items, func(_ int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				ID:          src.Id,
				OrderID:     src.OrderId,
				ProductID:   src.ProductId,
				ProductName: src.ProductName,
				Quantity:    src.Quantity,
				UnitPrice:   src.UnitPrice,
				Discount:    src.Discount,
				TotalPrice:  src.TotalPrice,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
