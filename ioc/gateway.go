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

package ioc

import (
	"time"

	"github.com/ecodeclub/eshop/internal/payment"
	"github.com/gotomicro/ego/core/econf"
)

// InitGatewaySimulators 同步路径和对账路径各一个网关实例, 概率分布来自配置。
// 随机数取自 [1, 100], 区间上限之外由fallback状态兜底
func InitGatewaySimulators() payment.GatewaySimulators {
	type Config struct {
		Inline struct {
			LatencyMs     int `yaml:"latencyMs"`
			CompletedUpTo int `yaml:"completedUpTo"`
			PendingUpTo   int `yaml:"pendingUpTo"`
		} `yaml:"inline"`
		Background struct {
			CompletedUpTo int `yaml:"completedUpTo"`
			FailedUpTo    int `yaml:"failedUpTo"`
		} `yaml:"background"`
	}
	var cfg Config
	err := econf.UnmarshalKey("gateway", &cfg)
	if err != nil {
		panic(err)
	}
	inline := payment.NewRandomGatewaySimulator(
		time.Duration(cfg.Inline.LatencyMs)*time.Millisecond,
		[]payment.GatewayBand{
			{UpTo: cfg.Inline.CompletedUpTo, Status: payment.StatusCompleted},
			{UpTo: cfg.Inline.PendingUpTo, Status: payment.StatusPending},
		},
		payment.StatusFailed)
	background := payment.NewRandomGatewaySimulator(0,
		[]payment.GatewayBand{
			{UpTo: cfg.Background.CompletedUpTo, Status: payment.StatusCompleted},
			{UpTo: cfg.Background.FailedUpTo, Status: payment.StatusFailed},
		},
		payment.StatusPending)
	return payment.GatewaySimulators{
		Inline:     inline,
		Background: background,
	}
}
