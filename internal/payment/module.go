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

package payment

import (
	"time"

	"github.com/ecodeclub/eshop/internal/payment/internal/domain"
	"github.com/ecodeclub/eshop/internal/payment/internal/event"
	"github.com/ecodeclub/eshop/internal/payment/internal/service"
	"github.com/ecodeclub/eshop/internal/payment/internal/service/gateway"
	"github.com/ecodeclub/eshop/internal/payment/internal/web"
)

// TopicPaymentEvents 结算事件主题, 组装层建Topic时用
const TopicPaymentEvents = event.PaymentEventName

type (
	Payment         = domain.Payment
	Status          = domain.PaymentStatus
	Service         = service.Service
	ReconcileResult = service.ReconcileResult
	Notifier        = service.OrderConfirmationNotifier
	Handler         = web.Handler
	AdminHandler    = web.AdminHandler

	GatewaySimulator  = gateway.Simulator
	GatewaySimulators = gateway.Simulators
	GatewayBand       = gateway.Band
)

const (
	StatusPending   = domain.PaymentStatusPending
	StatusCompleted = domain.PaymentStatusCompleted
	StatusFailed    = domain.PaymentStatusFailed
)

var (
	ErrOrderNotFound    = service.ErrOrderNotFound
	ErrPaymentNotFound  = service.ErrPaymentNotFound
	ErrAmountMismatch   = service.ErrAmountMismatch
	ErrDuplicatePayment = service.ErrDuplicatePayment
)

// NewRandomGatewaySimulator 供组装层按配置的概率分布构造网关实例
func NewRandomGatewaySimulator(latency time.Duration, bands []GatewayBand, fallback Status) GatewaySimulator {
	return gateway.NewRandomSimulator(latency, bands, fallback)
}

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
