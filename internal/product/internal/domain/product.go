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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusOffShelf Status = 1
	StatusOnShelf  Status = 2
)

type Product struct {
	ID          int64
	SN          string
	CategoryID  int64
	Name        string
	Description string
	// Price 单价, 单位为分, 999表示9.99元
	Price int64
	// Stock 当前库存数量, 任何时刻不允许为负
	Stock int64
	// DiscountPercent 折扣百分比, 0-100的整数
	DiscountPercent int64
	Status          Status
	Ctime           int64
	Utime           int64
}

type Category struct {
	ID     int64
	Name   string
	Status Status
}
