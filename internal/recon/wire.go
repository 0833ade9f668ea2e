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

//go:build wireinject

package recon

import (
	"github.com/ecodeclub/eshop/internal/payment"
	"github.com/ecodeclub/eshop/internal/recon/internal/job"
	"github.com/ecodeclub/eshop/internal/recon/internal/service"
	"github.com/google/wire"
)

type (
	Service                     = service.Service
	ReconcilePendingPaymentsJob = job.ReconcilePendingPaymentsJob
)

type Module struct {
	Svc Service
	Job *ReconcilePendingPaymentsJob
}

func InitModule(p *payment.Module) *Module {
	wire.Build(
		service.NewService,
		initReconcilePendingPaymentsJob,
		wire.FieldsOf(new(*payment.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initReconcilePendingPaymentsJob(svc service.Service) *ReconcilePendingPaymentsJob {
	// 单轮扫描上限, 防止一次对账占用锁太久
	limit := 100
	return job.NewReconcilePendingPaymentsJob(svc, limit)
}
