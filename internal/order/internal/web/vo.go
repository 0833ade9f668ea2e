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

// CreateOrderReq 创建订单请求
type CreateOrderReq struct {
	RequestID string      `json:"requestID"` // 请求去重,防止订单重复提交
	AddressID int64       `json:"addressId"`
	Items     []OrderItem `json:"items"`
}

type CreateOrderResp struct {
	Order Order `json:"order"`
}

// RetrieveOrderDetailReq 查看订单详情
type RetrieveOrderDetailReq struct {
	OrderID int64 `json:"orderId"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

// ListOrdersReq 分页查询订单
type ListOrdersReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

// UpdateOrderStatusReq 管理端手工改单
type UpdateOrderStatusReq struct {
	OrderID int64 `json:"orderId"`
	Status  uint8 `json:"status"`
}

type Order struct {
	ID                  int64       `json:"id"`
	SN                  string      `json:"sn"`
	AddressID           int64       `json:"addressId"`
	TotalBaseAmount     int64       `json:"totalBaseAmount"`
	TotalDiscountAmount int64       `json:"totalDiscountAmount"`
	TotalAmount         int64       `json:"totalAmount"`
	Status              uint8       `json:"status"`
	Items               []OrderItem `json:"items"`
	Ctime               int64       `json:"ctime"`
	Utime               int64       `json:"utime"`
}

type OrderItem struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice,omitempty"`
	Discount    int64  `json:"discount,omitempty"`
	TotalPrice  int64  `json:"totalPrice,omitempty"`
}
