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

	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/dao"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("商品不存在")
	ErrCategoryNotFound = errors.New("分类不存在")
)

type ProductRepository interface {
	FindProductByID(ctx context.Context, id int64) (domain.Product, error)
	FindCategoryByID(ctx context.Context, id int64) (domain.Category, error)
}

func NewRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{d: d}
}

type productRepository struct {
	d dao.ProductDAO
}

func (p *productRepository) FindProductByID(ctx context.Context, id int64) (domain.Product, error) {
	product, err := p.d.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, err
	}
	return p.toProductDomain(product), nil
}

func (p *productRepository) FindCategoryByID(ctx context.Context, id int64) (domain.Category, error) {
	category, err := p.d.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Category{}, ErrCategoryNotFound
		}
		return domain.Category{}, err
	}
	return domain.Category{
		ID:     category.Id,
		Name:   category.Name,
		Status: domain.Status(category.Status),
	}, nil
}

func (p *productRepository) toProductDomain(product dao.Product) domain.Product {
	return domain.Product{
		ID:              product.Id,
		SN:              product.SN,
		CategoryID:      product.CategoryId,
		Name:            product.Name,
		Description:     product.Description,
		Price:           product.Price,
		Stock:           product.Stock,
		DiscountPercent: product.DiscountPercent,
		Status:          domain.Status(product.Status),
		Ctime:           product.Ctime,
		Utime:           product.Utime,
	}
}
