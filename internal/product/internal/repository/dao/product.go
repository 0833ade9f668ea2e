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
	"time"

	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ego-component/egorm"
)

type ProductDAO interface {
	FindProductByID(ctx context.Context, id int64) (Product, error)
	FindCategoryByID(ctx context.Context, id int64) (Category, error)
	CreateProduct(ctx context.Context, p Product) (int64, error)
	CreateCategory(ctx context.Context, c Category) (int64, error)
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) FindProductByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ? AND status = ?", id, domain.StatusOnShelf.ToUint8()).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindCategoryByID(ctx context.Context, id int64) (Category, error) {
	var res Category
	err := d.db.WithContext(ctx).Where("id = ? AND status = ?", id, domain.StatusOnShelf.ToUint8()).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) CreateProduct(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *ProductGORMDAO) CreateCategory(ctx context.Context, c Category) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := d.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Product{}, &Category{})
}

type Product struct {
	Id              int64  `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	SN              string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_sn;comment:商品序列号"`
	CategoryId      int64  `gorm:"not null;index:idx_category_id;comment:分类自增ID"`
	Name            string `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description     string `gorm:"not null;comment:商品描述"`
	Price           int64  `gorm:"not null;comment:商品单价;单位为分, 999表示9.99元"`
	Stock           int64  `gorm:"not null;comment:库存数量, 仅创建订单时扣减"`
	DiscountPercent int64  `gorm:"not null;default:0;comment:折扣百分比, 0-100"`
	Status          uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime           int64
	Utime           int64
}

type Category struct {
	Id     int64  `gorm:"primaryKey;autoIncrement;comment:分类自增ID"`
	Name   string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_category_name;comment:分类名称"`
	Status uint8  `gorm:"type:tinyint unsigned;not null;default:2;comment:状态 1=下架 2=上架"`
	Ctime  int64
	Utime  int64
}
