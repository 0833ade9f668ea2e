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

package job

import (
	"context"

	"github.com/ecodeclub/eshop/internal/recon/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ReconcilePendingPaymentsJob)(nil)

type ReconcilePendingPaymentsJob struct {
	svc   service.Service
	limit int
}

func NewReconcilePendingPaymentsJob(svc service.Service, limit int) *ReconcilePendingPaymentsJob {
	return &ReconcilePendingPaymentsJob{
		svc:   svc,
		limit: limit,
	}
}

func (r *ReconcilePendingPaymentsJob) Name() string {
	return "reconcile_pending_payments_job"
}

func (r *ReconcilePendingPaymentsJob) Run(ctx context.Context) error {
	_, err := r.svc.Reconcile(ctx, r.limit)
	return err
}
