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

package service

import (
	"context"

	"github.com/ecodeclub/eshop/internal/customer/internal/domain"
	"github.com/ecodeclub/eshop/internal/customer/internal/repository"
)

var (
	ErrCustomerNotFound = repository.ErrCustomerNotFound
	ErrAddressNotFound  = repository.ErrAddressNotFound
)

//go:generate mockgen -source=./service.go -package=customermocks -destination=../../mocks/customer.mock.go Service
type Service interface {
	Profile(ctx context.Context, id int64) (domain.Customer, error)
	FindAddressByID(ctx context.Context, id int64) (domain.Address, error)
	// AddressBelongsTo 校验地址存在且归属于指定客户, 不满足时返回 ErrAddressNotFound
	AddressBelongsTo(ctx context.Context, addressID, customerID int64) (domain.Address, error)
}

func NewService(repo repository.CustomerRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CustomerRepository
}

func (s *service) Profile(ctx context.Context, id int64) (domain.Customer, error) {
	return s.repo.FindCustomerByID(ctx, id)
}

func (s *service) FindAddressByID(ctx context.Context, id int64) (domain.Address, error) {
	return s.repo.FindAddressByID(ctx, id)
}

func (s *service) AddressBelongsTo(ctx context.Context, addressID, customerID int64) (domain.Address, error) {
	address, err := s.repo.FindAddressByID(ctx, addressID)
	if err != nil {
		return domain.Address{}, err
	}
	if address.CustomerID != customerID {
		return domain.Address{}, ErrAddressNotFound
	}
	return address, nil
}
