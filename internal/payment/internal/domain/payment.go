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

import "strings"

// PaymentStatus 取值不连续, 只作枚举使用, 不作大小比较
type PaymentStatus uint8

const (
	PaymentStatusPending   PaymentStatus = 1
	PaymentStatusCompleted PaymentStatus = 5
	PaymentStatusFailed    PaymentStatus = 6
)

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

type Payment struct {
	ID         int64
	SN         string
	OrderID    int64
	CustomerID int64
	// Method 支付方式, 如 COD、CreditCard
	Method string
	// Amount 支付金额, 单位为分, 999表示9.99元
	Amount int64
	// TxnID 第三方交易ID, 支付完成前为空
	TxnID string
	// PaymentDate 最近一次发起支付的时间
	PaymentDate int64
	Status      PaymentStatus
	Ctime       int64
	Utime       int64
}

// IsCashOnDelivery 货到付款的两种写法都认, 不区分大小写
func IsCashOnDelivery(method string) bool {
	return strings.EqualFold(method, "COD") || strings.EqualFold(method, "CashOnDelivery")
}

// Order 支付视角下的订单行, 与订单模块共享同一张表
type Order struct {
	ID          int64
	SN          string
	CustomerID  int64
	TotalAmount int64
	Status      uint8
}
