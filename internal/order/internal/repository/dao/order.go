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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrInsufficientStock = errors.New("商品库存不足")

// StockDecrement 建单时需要扣减的库存
type StockDecrement struct {
	ProductID int64
	Quantity  int64
}

type OrderDAO interface {
	// CreateOrder 同一事务内插入订单及订单项、扣减库存、结算购物车,
	// 任一商品库存不足时整体回滚并返回ErrInsufficientStock
	CreateOrder(ctx context.Context, o Order, items []OrderItem,
		decrements []StockDecrement, cartID int64) (int64, error)
	FindOrderByIDAndCustomerID(ctx context.Context, id, customerID int64) (Order, error)
	FindOrderByID(ctx context.Context, id int64) (Order, error)
	FindOrderItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	ListOrdersByCustomerID(ctx context.Context, offset, limit int, customerID int64) ([]Order, error)
	TotalOrdersByCustomerID(ctx context.Context, customerID int64) (int64, error)
	ListOrders(ctx context.Context, offset, limit int) ([]Order, error)
	TotalOrders(ctx context.Context) (int64, error)
	UpdateOrderStatus(ctx context.Context, id int64, status uint8) error
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &orderGORMDAO{db: db}
}

type orderGORMDAO struct {
	db *egorm.Component
}

func (g *orderGORMDAO) CreateOrder(ctx context.Context, o Order, items []OrderItem,
	decrements []StockDecrement, cartID int64) (int64, error) {
	var oid int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		for _, d := range decrements {
			// 条件扣减保证库存不为负, 并发下单时后到者直接失败
			res := tx.Table("products").
				Where("id = ? AND stock >= ?", d.ProductID, d.Quantity).
				Update("stock", gorm.Expr("stock - ?", d.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInsufficientStock
			}
		}
		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		oid = o.Id
		for i := range items {
			items[i].OrderId = oid
			items[i].Ctime, items[i].Utime = now, now
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		if cartID != 0 {
			// 下单来自购物车时将其标记为已结算
			return tx.Table("carts").Where("id = ?", cartID).
				Updates(map[string]any{
					"checked_out": true,
					"utime":       now,
				}).Error
		}
		return nil
	})
	return oid, err
}

func (g *orderGORMDAO) FindOrderByIDAndCustomerID(ctx context.Context, id, customerID int64) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&o).Error
	return o, err
}

func (g *orderGORMDAO) FindOrderByID(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

func (g *orderGORMDAO) FindOrderItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var items []OrderItem
	err := g.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (g *orderGORMDAO) ListOrdersByCustomerID(ctx context.Context, offset, limit int, customerID int64) ([]Order, error) {
	var os []Order
	err := g.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&os).Error
	return os, err
}

func (g *orderGORMDAO) TotalOrdersByCustomerID(ctx context.Context, customerID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).
		Where("customer_id = ?", customerID).
		Select("COUNT(id)").Count(&count).Error
	return count, err
}

func (g *orderGORMDAO) ListOrders(ctx context.Context, offset, limit int) ([]Order, error) {
	var os []Order
	err := g.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&os).Error
	return os, err
}

func (g *orderGORMDAO) TotalOrders(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).
		Select("COUNT(id)").Count(&count).Error
	return count, err
}

func (g *orderGORMDAO) UpdateOrderStatus(ctx context.Context, id int64, status uint8) error {
	return g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{})
}

type Order struct {
	Id                  int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN                  string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	CustomerId          int64  `gorm:"not null;index:idx_customer_id;comment:客户ID"`
	AddressId           int64  `gorm:"not null;comment:收货地址ID"`
	TotalBaseAmount     int64  `gorm:"not null;comment:折扣前总价;单位为分, 999表示9.99元"`
	TotalDiscountAmount int64  `gorm:"not null;comment:折扣总额;单位为分, 999表示9.99元"`
	TotalAmount         int64  `gorm:"not null;comment:应付总额;单位为分, 999表示9.99元"`
	Status              uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status;comment:订单状态 1=待支付 2=备货中 3=已发货 4=已送达"`
	Ctime               int64
	Utime               int64
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId     int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	ProductId   int64  `gorm:"not null;index:idx_product_id;comment:商品ID"`
	ProductName string `gorm:"type:varchar(255);not null;comment:下单时商品名称快照"`
	Quantity    int64  `gorm:"not null;comment:购买数量"`
	UnitPrice   int64  `gorm:"not null;comment:下单时商品单价;单位为分, 999表示9.99元"`
	Discount    int64  `gorm:"not null;comment:折扣金额;单位为分"`
	TotalPrice  int64  `gorm:"not null;comment:应付金额;单位为分"`
	Ctime       int64
	Utime       int64
}

func (OrderItem) TableName() string {
	return "order_items"
}
