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

// AddCartItemReq 加购请求
type AddCartItemReq struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type AddCartItemResp struct {
	CartID int64 `json:"cartId"`
}

type RetrieveCartDetailResp struct {
	Cart Cart `json:"cart"`
}

type Cart struct {
	ID          int64      `json:"id"`
	TotalAmount int64      `json:"totalAmount"`
	Items       []CartItem `json:"items"`
	Utime       int64      `json:"utime"`
}

type CartItem struct {
	ProductID  int64 `json:"productId"`
	Quantity   int64 `json:"quantity"`
	UnitPrice  int64 `json:"unitPrice"`
	Discount   int64 `json:"discount"`
	TotalPrice int64 `json:"totalPrice"`
}
