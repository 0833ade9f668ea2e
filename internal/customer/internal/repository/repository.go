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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/eshop/internal/customer/internal/domain"
	"github.com/ecodeclub/eshop/internal/customer/internal/repository/dao"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("客户不存在")
	ErrAddressNotFound  = errors.New("地址不存在")
)

type CustomerRepository interface {
	FindCustomerByID(ctx context.Context, id int64) (domain.Customer, error)
	FindAddressByID(ctx context.Context, id int64) (domain.Address, error)
}

func NewRepository(d dao.CustomerDAO) CustomerRepository {
	return &customerRepository{d: d}
}

type customerRepository struct {
	d dao.CustomerDAO
}

func (c *customerRepository) FindCustomerByID(ctx context.Context, id int64) (domain.Customer, error) {
	customer, err := c.d.FindCustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Customer{}, ErrCustomerNotFound
		}
		return domain.Customer{}, err
	}
	return c.toCustomerDomain(customer), nil
}

func (c *customerRepository) FindAddressByID(ctx context.Context, id int64) (domain.Address, error) {
	address, err := c.d.FindAddressByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Address{}, ErrAddressNotFound
		}
		return domain.Address{}, err
	}
	return c.toAddressDomain(address), nil
}

func (c *customerRepository) toCustomerDomain(customer dao.Customer) domain.Customer {
	return domain.Customer{
		ID:        customer.Id,
		Email:     customer.Email,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Ctime:     customer.Ctime,
		Utime:     customer.Utime,
	}
}

func (c *customerRepository) toAddressDomain(address dao.Address) domain.Address {
	return domain.Address{
		ID:         address.Id,
		CustomerID: address.CustomerId,
		Line1:      address.Line1,
		City:       address.City,
		Country:    address.Country,
	}
}
