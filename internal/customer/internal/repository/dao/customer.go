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

package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

type CustomerDAO interface {
	FindCustomerByID(ctx context.Context, id int64) (Customer, error)
	FindAddressByID(ctx context.Context, id int64) (Address, error)
}

type CustomerGORMDAO struct {
	db *egorm.Component
}

func NewCustomerGORMDAO(db *egorm.Component) CustomerDAO {
	return &CustomerGORMDAO{db: db}
}

func (d *CustomerGORMDAO) FindCustomerByID(ctx context.Context, id int64) (Customer, error) {
	var res Customer
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *CustomerGORMDAO) FindAddressByID(ctx context.Context, id int64) (Address, error) {
	var res Address
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Customer{}, &Address{})
}

type Customer struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:客户自增ID"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_customer_email;comment:客户邮箱"`
	FirstName string `gorm:"type:varchar(50);not null;comment:名"`
	LastName  string `gorm:"type:varchar(50);not null;comment:姓"`
	Ctime     int64
	Utime     int64
}

type Address struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:地址自增ID"`
	CustomerId int64  `gorm:"not null;index:idx_address_customer_id;comment:客户自增ID"`
	Line1      string `gorm:"type:varchar(255);not null;comment:街道地址"`
	City       string `gorm:"type:varchar(100);not null;comment:城市"`
	Country    string `gorm:"type:varchar(100);not null;comment:国家"`
	Ctime      int64
	Utime      int64
}
