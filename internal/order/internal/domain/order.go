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

package domain

type OrderStatus uint8

const (
	// OrderStatusPending 已下单, 等待支付
	OrderStatusPending OrderStatus = 1
	// OrderStatusProcessing 货到付款备货中
	OrderStatusProcessing OrderStatus = 2
	// OrderStatusShipped 支付成功, 已发货
	OrderStatusShipped OrderStatus = 3
	// OrderStatusDelivered 已送达
	OrderStatusDelivered OrderStatus = 4
)

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

type Order struct {
	ID         int64
	SN         string
	CustomerID int64
	AddressID  int64
	// TotalBaseAmount 折扣前总价, 单位为分, 999表示9.99元
	TotalBaseAmount int64
	// TotalDiscountAmount 折扣总额, 单位为分
	TotalDiscountAmount int64
	// TotalAmount 应付总额, 单位为分
	TotalAmount int64
	Status      OrderStatus
	Items       []OrderItem
	Ctime       int64
	Utime       int64
}

// OrderItem 下单时按商品当前价格生成快照, 商品后续改价不影响已有订单
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int64
	// UnitPrice 下单时商品单价, 单位为分
	UnitPrice int64
	// Discount 该条目折扣金额, 单位为分
	Discount int64
	// TotalPrice 单价*数量-折扣, 单位为分
	TotalPrice int64
}
