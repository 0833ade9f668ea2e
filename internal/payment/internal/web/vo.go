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

// PayReq 发起支付
type PayReq struct {
	OrderID int64  `json:"orderId"`
	Method  string `json:"method"`
	Amount  int64  `json:"amount"`
}

type PayResp struct {
	Payment Payment `json:"payment"`
}

// CompleteCODPaymentReq 货到付款收款确认
type CompleteCODPaymentReq struct {
	PaymentID int64 `json:"paymentId"`
	OrderID   int64 `json:"orderId"`
}

type CompleteCODPaymentResp struct {
	Payment Payment `json:"payment"`
}

// RetrievePaymentDetailReq 按订单查支付
type RetrievePaymentDetailReq struct {
	OrderID int64 `json:"orderId"`
}

type RetrievePaymentDetailResp struct {
	Payment Payment `json:"payment"`
}

// UpdatePaymentStatusReq 管理端覆写支付状态
type UpdatePaymentStatusReq struct {
	PaymentID int64  `json:"paymentId"`
	Status    uint8  `json:"status"`
	TxnID     string `json:"txnId,omitempty"`
}

type Payment struct {
	ID          int64  `json:"id"`
	SN          string `json:"sn"`
	OrderID     int64  `json:"orderId"`
	Method      string `json:"method"`
	Amount      int64  `json:"amount"`
	TxnID       string `json:"txnId,omitempty"`
	PaymentDate int64  `json:"paymentDate"`
	Status      uint8  `json:"status"`
}
