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

package notification

import (
	"github.com/ecodeclub/eshop/internal/customer"
	"github.com/ecodeclub/eshop/internal/notification/internal/repository"
	"github.com/ecodeclub/eshop/internal/notification/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/notification/internal/service"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/pkg/email"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	orderModule *order.Module,
	customerModule *customer.Module,
	emailSvc email.Service) *Module {
	wire.Build(
		dao.NewNotificationGORMDAO,
		repository.NewNotificationRepository,
		service.NewService,
		wire.FieldsOf(new(*order.Module), "Svc"),
		wire.FieldsOf(new(*customer.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
