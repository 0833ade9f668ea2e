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

package web

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("/add", ginx.BS[AddCartItemReq](h.AddItem))
	g.POST("/detail", ginx.S(h.RetrieveCartDetail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// AddItem 加购商品, 同一商品重复加购时数量累加
func (h *Handler) AddItem(ctx *ginx.Context, req AddCartItemReq, sess session.Session) (ginx.Result, error) {
	cartID, err := h.svc.AddItem(ctx.Request.Context(), sess.Claims().Uid, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		return invalidQuantityResult, fmt.Errorf("购买数量非法: %d", req.Quantity)
	case errors.Is(err, service.ErrProductNotFound):
		return productNotFoundResult, fmt.Errorf("商品未找到: %w", err)
	case errors.Is(err, service.ErrInsufficientStock):
		return insufficientStockResult, fmt.Errorf("商品库存不足: %w", err)
	case err != nil:
		return systemErrorResult, fmt.Errorf("加购失败: %w", err)
	}
	return ginx.Result{
		Data: AddCartItemResp{CartID: cartID},
	}, nil
}

// RetrieveCartDetail 查看当前未结算购物车
func (h *Handler) RetrieveCartDetail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.ActiveCart(ctx.Request.Context(), sess.Claims().Uid)
	if errors.Is(err, service.ErrNoActiveCart) {
		// 空购物车不算错误
		return ginx.Result{Data: RetrieveCartDetailResp{}}, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找购物车失败: %w", err)
	}
	return ginx.Result{
		Data: RetrieveCartDetailResp{Cart: toCartVO(c)},
	}, nil
}

func toCartVO(c domain.Cart) Cart {
	return Cart{
		ID:          c.ID,
		TotalAmount: c.TotalAmount(),
		Items: slice.Map(c.Items, func(idx int, src domain.CartItem) CartItem {
			return CartItem{
				ProductID:  src.ProductID,
				Quantity:   src.Quantity,
				UnitPrice:  src.UnitPrice,
				Discount:   src.Discount,
				TotalPrice: src.TotalPrice,
			}
		}),
		Utime: c.Utime,
	}
}
