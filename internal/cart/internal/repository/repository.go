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
	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository/dao"
	"gorm.io/gorm"
)

var ErrNoActiveCart = errors.New("没有未结算的购物车")

type CartRepository interface {
	FindActiveCartByCustomerID(ctx context.Context, customerID int64) (domain.Cart, error)
	AddItem(ctx context.Context, customerID int64, item domain.CartItem) (int64, error)
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{dao: d}
}

type cartRepository struct {
	dao dao.CartDAO
}

func (r *cartRepository) FindActiveCartByCustomerID(ctx context.Context, customerID int64) (domain.Cart, error) {
	c, items, err := r.dao.FindActiveCartByCustomerID(ctx, customerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Cart{}, ErrNoActiveCart
	}
	if err != nil {
		return domain.Cart{}, err
	}
	return r.toDomain(c, items), nil
}

func (r *cartRepository) AddItem(ctx context.Context, customerID int64, item domain.CartItem) (int64, error) {
	return r.dao.UpsertCartItem(ctx, customerID, dao.CartItem{
		ProductId:  item.ProductID,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		Discount:   item.Discount,
		TotalPrice: item.TotalPrice,
	})
}

func (r *cartRepository) toDomain(c dao.Cart, items []dao.CartItem) domain.Cart {
	return domain.Cart{
		ID:         c.Id,
		CustomerID: c.CustomerId,
		CheckedOut: c.CheckedOut,
		Items: slice.Map(items, func(_ int, src dao.CartItem) domain.CartItem {
			return domain.CartItem{
				ID:         src.Id,
				CartID:     src.CartId,
				ProductID:  src.ProductId,
				Quantity:   src.Quantity,
				UnitPrice:  src.UnitPrice,
				Discount:   src.Discount,
				TotalPrice: src.TotalPrice,
			}
		}),
		Ctime: c.Ctime,
		Utime: c.Utime,
	}
}
