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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type CartDAO interface {
	FindActiveCartByCustomerID(ctx context.Context, customerID int64) (Cart, []CartItem, error)
	// UpsertCartItem 没有未结算购物车时先创建一个, 再插入或累加条目
	UpsertCartItem(ctx context.Context, customerID int64, item CartItem) (int64, error)
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &cartGORMDAO{db: db}
}

type cartGORMDAO struct {
	db *egorm.Component
}

func (g *cartGORMDAO) FindActiveCartByCustomerID(ctx context.Context, customerID int64) (Cart, []CartItem, error) {
	var c Cart
	err := g.db.WithContext(ctx).
		Where("customer_id = ? AND checked_out = ?", customerID, false).
		First(&c).Error
	if err != nil {
		return Cart{}, nil, err
	}
	var items []CartItem
	err = g.db.WithContext(ctx).Where("cart_id = ?", c.Id).Find(&items).Error
	if err != nil {
		return Cart{}, nil, err
	}
	return c, items, nil
}

func (g *cartGORMDAO) UpsertCartItem(ctx context.Context, customerID int64, item CartItem) (int64, error) {
	var cartID int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var c Cart
		err := tx.Where("customer_id = ? AND checked_out = ?", customerID, false).
			First(&c).Error
		if err == gorm.ErrRecordNotFound {
			c = Cart{
				CustomerId: customerID,
				CheckedOut: false,
				Ctime:      now,
				Utime:      now,
			}
			if err = tx.Create(&c).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		cartID = c.Id

		var existing CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cartID, item.ProductId).
			First(&existing).Error
		switch err {
		case nil:
			// 同一商品重复加购, 数量与金额累加, 单价保留首次加购时的快照
			return tx.Model(&CartItem{}).Where("id = ?", existing.Id).
				Updates(map[string]any{
					"quantity":    gorm.Expr("quantity + ?", item.Quantity),
					"discount":    gorm.Expr("discount + ?", item.Discount),
					"total_price": gorm.Expr("total_price + ?", item.TotalPrice),
					"utime":       now,
				}).Error
		case gorm.ErrRecordNotFound:
			item.CartId = cartID
			item.Ctime = now
			item.Utime = now
			if err = tx.Create(&item).Error; err != nil {
				return err
			}
			return tx.Model(&Cart{}).Where("id = ?", cartID).
				Update("utime", now).Error
		default:
			return err
		}
	})
	return cartID, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Cart{}, &CartItem{})
}

type Cart struct {
	Id         int64 `gorm:"primaryKey;autoIncrement;comment:购物车自增ID"`
	CustomerId int64 `gorm:"not null;index:idx_customer_id;comment:客户ID"`
	CheckedOut bool  `gorm:"not null;default:false;comment:是否已结算下单"`
	Ctime      int64
	Utime      int64
}

func (Cart) TableName() string {
	return "carts"
}

type CartItem struct {
	Id         int64 `gorm:"primaryKey;autoIncrement;comment:购物车条目自增ID"`
	CartId     int64 `gorm:"not null;uniqueIndex:uniq_cart_id_product_id;comment:购物车ID"`
	ProductId  int64 `gorm:"not null;uniqueIndex:uniq_cart_id_product_id;comment:商品ID"`
	Quantity   int64 `gorm:"not null;comment:购买数量"`
	UnitPrice  int64 `gorm:"not null;comment:加购时商品单价, 单位为分"`
	Discount   int64 `gorm:"not null;comment:折扣金额, 单位为分"`
	TotalPrice int64 `gorm:"not null;comment:应付金额, 单位为分"`
	Ctime      int64
	Utime      int64
}

func (CartItem) TableName() string {
	return "cart_items"
}
