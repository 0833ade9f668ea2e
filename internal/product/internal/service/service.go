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

	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/repository"
)

var (
	ErrProductNotFound  = repository.ErrProductNotFound
	ErrCategoryNotFound = repository.ErrCategoryNotFound
)

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go Service
type Service interface {
	// FindProductByID 仅返回上架状态的商品
	FindProductByID(ctx context.Context, id int64) (domain.Product, error)
	FindCategoryByID(ctx context.Context, id int64) (domain.Category, error)
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) FindProductByID(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindProductByID(ctx, id)
}

func (s *service) FindCategoryByID(ctx context.Context, id int64) (domain.Category, error) {
	return s.repo.FindCategoryByID(ctx, id)
}
