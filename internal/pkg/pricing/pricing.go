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

// Package pricing 金额统一以分为单位, 999表示9.99元
package pricing

// LineBase 计算单行原价
func LineBase(unitPrice, quantity int64) int64 {
	return unitPrice * quantity
}

// LineDiscount 按百分比折扣计算单行折扣金额, 四舍五入到分
func LineDiscount(base, discountPercent int64) int64 {
	return (base*discountPercent + 50) / 100
}

// LineTotal 计算单行实付金额
func LineTotal(base, discount int64) int64 {
	return base - discount
}
