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

type Cart struct {
	ID         int64
	CustomerID int64
	CheckedOut bool
	Items      []CartItem
	Ctime      int64
	Utime      int64
}

// TotalAmount 购物车内所有条目的应付金额之和
func (c Cart) TotalAmount() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.TotalPrice
	}
	return total
}

// CartItem 价格字段是加购时的快照, 商品后续改价不影响购物车
type CartItem struct {
	ID        int64
	CartID    int64
	ProductID int64
	Quantity  int64
	// UnitPrice 加购时商品单价, 单位为分
	UnitPrice int64
	// Discount 该条目的折扣金额, 单位为分
	Discount int64
	// TotalPrice 单价*数量-折扣, 单位为分
	TotalPrice int64
}
