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

	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository"
	"github.com/ecodeclub/eshop/internal/pkg/pricing"
	"github.com/ecodeclub/eshop/internal/product"
)

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go -mock_names=Service=MockService Service

var (
	ErrNoActiveCart        = repository.ErrNoActiveCart
	ErrProductNotFound     = product.ErrProductNotFound
	ErrInvalidQuantity     = errors.New("购买数量非法")
	ErrInsufficientStock   = errors.New("商品库存不足")
	ErrCartAlreadyCheckout = errors.New("购物车已结算")
)

type Service interface {
	// AddItem 加购时按当前商品价格生成价格快照
	AddItem(ctx context.Context, customerID, productID, quantity int64) (int64, error)
	ActiveCart(ctx context.Context, customerID int64) (domain.Cart, error)
}

func NewService(repo repository.CartRepository, productSvc product.Service) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
	}
}

type service struct {
	repo       repository.CartRepository
	productSvc product.Service
}

func (s *service) AddItem(ctx context.Context, customerID, productID, quantity int64) (int64, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	p, err := s.productSvc.FindProductByID(ctx, productID)
	if err != nil {
		return 0, err
	}
	if p.Stock < quantity {
		return 0, ErrInsufficientStock
	}
	base := pricing.LineBase(p.Price, quantity)
	discount := pricing.LineDiscount(base, p.DiscountPercent)
	return s.repo.AddItem(ctx, customerID, domain.CartItem{
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  p.Price,
		Discount:   discount,
		TotalPrice: pricing.LineTotal(base, discount),
	})
}

func (s *service) ActiveCart(ctx context.Context, customerID int64) (domain.Cart, error) {
	return s.repo.FindActiveCartByCustomerID(ctx, customerID)
}
