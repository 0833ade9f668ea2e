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

package gateway

import (
	"context"
	"math/rand"
	"time"

	"github.com/ecodeclub/eshop/internal/payment/internal/domain"
)

// Simulator 模拟第三方支付网关, 授权结果按配置的概率分布随机给出
type Simulator interface {
	Authorize(ctx context.Context, amount int64, method string) (domain.PaymentStatus, error)
}

// Simulators 同步请求路径与后台对账路径各用一个实例, 概率分布独立配置
type Simulators struct {
	Inline     Simulator
	Background Simulator
}

// Band 随机数落在 (前一个UpTo, UpTo] 区间时返回对应状态
type Band struct {
	UpTo   int
	Status domain.PaymentStatus
}

type RandomSimulator struct {
	latency  time.Duration
	bands    []Band
	fallback domain.PaymentStatus
	randFn   func() int
}

// NewRandomSimulator 随机数均匀取自 [1, 100]
func NewRandomSimulator(latency time.Duration, bands []Band, fallback domain.PaymentStatus) *RandomSimulator {
	return NewRandomSimulatorWith(latency, bands, fallback, func() int {
		return rand.Intn(100) + 1
	})
}

func NewRandomSimulatorWith(latency time.Duration, bands []Band,
	fallback domain.PaymentStatus, randFn func() int) *RandomSimulator {
	return &RandomSimulator{
		latency:  latency,
		bands:    bands,
		fallback: fallback,
		randFn:   randFn,
	}
}

func (s *RandomSimulator) Authorize(ctx context.Context, _ int64, _ string) (domain.PaymentStatus, error) {
	// 模拟网关的网络往返耗时
	if s.latency > 0 {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(s.latency):
		}
	}
	draw := s.randFn()
	for _, band := range s.bands {
		if draw <= band.UpTo {
			return band.Status, nil
		}
	}
	return s.fallback, nil
}
