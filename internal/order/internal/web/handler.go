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
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.Service
	cache ecache.Cache
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CreateOrder 创建订单
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return duplicateRequestResult, fmt.Errorf("请求ID错误: %w", err)
	}
	items := slice.Map(req.Items, func(_ int, src OrderItem) service.CreateOrderItem {
		return service.CreateOrderItem{
			ProductID: src.ProductID,
			Quantity:  src.Quantity,
		}
	})
	order, err := h.svc.CreateOrder(ctx.Request.Context(), sess.Claims().Uid, req.AddressID, items)
	switch {
	case errors.Is(err, service.ErrCustomerNotFound):
		return customerNotFoundResult, fmt.Errorf("创建订单失败: %w", err)
	case errors.Is(err, service.ErrAddressNotFound):
		return addressNotFoundResult, fmt.Errorf("创建订单失败: %w", err)
	case errors.Is(err, service.ErrProductNotFound):
		return productNotFoundResult, fmt.Errorf("创建订单失败: %w", err)
	case errors.Is(err, service.ErrNoOrderItems), errors.Is(err, service.ErrInvalidQuantity):
		return invalidOrderItemsResult, fmt.Errorf("创建订单失败: %w", err)
	case errors.Is(err, service.ErrInsufficientStock):
		return insufficientStockResult, fmt.Errorf("创建订单失败: %w", err)
	case err != nil:
		return systemErrorResult, fmt.Errorf("创建订单失败: %w", err)
	}
	return ginx.Result{
		Data: CreateOrderResp{Order: toOrderVO(order)},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := h.createOrderRequestKey(requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) createOrderRequestKey(requestID string) string {
	return fmt.Sprintf("order:create:%s", requestID)
}

// RetrieveOrderDetail 查看订单详情
func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrder(ctx.Request.Context(), req.OrderID, sess.Claims().Uid)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, fmt.Errorf("订单未找到: %w", err)
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找订单失败: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{Order: toOrderVO(order)},
	}, nil
}

// ListOrders 分页查询用户订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	list, total, err := h.svc.ListOrders(ctx.Request.Context(), req.Offset, req.Limit, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询订单列表失败: %w", err)
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(list, func(_ int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func toOrderVO(order domain.Order) Order {
	return Order{
		ID:                  order.ID,
		SN:                  order.SN,
		AddressID:           order.AddressID,
		TotalBaseAmount:     order.TotalBaseAmount,
		TotalDiscountAmount: order.TotalDiscountAmount,
		TotalAmount:         order.TotalAmount,
		Status:              order.Status.ToUint8(),
		Items: slice.Map(order.Items, func(_ int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductID:   src.ProductID,
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
