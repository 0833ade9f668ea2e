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
	"testing"

	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/product"
	productmocks "github.com/ecodeclub/eshop/internal/product/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeCartRepository 记录AddItem收到的价格快照
type fakeCartRepository struct {
	gotCustomerID int64
	gotItem       domain.CartItem
}

func (f *fakeCartRepository) FindActiveCartByCustomerID(_ context.Context, _ int64) (domain.Cart, error) {
	return domain.Cart{}, nil
}

func (f *fakeCartRepository) AddItem(_ context.Context, customerID int64, item domain.CartItem) (int64, error) {
	f.gotCustomerID = customerID
	f.gotItem = item
	return 1, nil
}

func TestService_AddItem(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		productSvc func(ctrl *gomock.Controller) product.Service
		productID  int64
		quantity   int64
		wantErr    error
		wantItem   domain.CartItem
	}{
		{
			name: "加购成功_生成价格快照",
			productSvc: func(ctrl *gomock.Controller) product.Service {
				mockSvc := productmocks.NewMockService(ctrl)
				mockSvc.EXPECT().FindProductByID(gomock.Any(), int64(100)).
					Return(product.Product{
						ID:              100,
						Price:           10000,
						Stock:           10,
						DiscountPercent: 10,
					}, nil)
				return mockSvc
			},
			productID: 100,
			quantity:  2,
			wantItem: domain.CartItem{
				ProductID:  100,
				Quantity:   2,
				UnitPrice:  10000,
				Discount:   2000,
				TotalPrice: 18000,
			},
		},
		{
			name: "购买数量为零",
			productSvc: func(ctrl *gomock.Controller) product.Service {
				return productmocks.NewMockService(ctrl)
			},
			productID: 100,
			quantity:  0,
			wantErr:   ErrInvalidQuantity,
		},
		{
			name: "商品不存在",
			productSvc: func(ctrl *gomock.Controller) product.Service {
				mockSvc := productmocks.NewMockService(ctrl)
				mockSvc.EXPECT().FindProductByID(gomock.Any(), int64(999)).
					Return(product.Product{}, product.ErrProductNotFound)
				return mockSvc
			},
			productID: 999,
			quantity:  1,
			wantErr:   product.ErrProductNotFound,
		},
		{
			name: "库存不足",
			productSvc: func(ctrl *gomock.Controller) product.Service {
				mockSvc := productmocks.NewMockService(ctrl)
				mockSvc.EXPECT().FindProductByID(gomock.Any(), int64(100)).
					Return(product.Product{
						ID:    100,
						Price: 10000,
						Stock: 1,
					}, nil)
				return mockSvc
			},
			productID: 100,
			quantity:  3,
			wantErr:   ErrInsufficientStock,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := &fakeCartRepository{}
			svc := NewService(repo, tc.productSvc(ctrl))
			_, err := svc.AddItem(context.Background(), 7, tc.productID, tc.quantity)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), repo.gotCustomerID)
			assert.Equal(t, tc.wantItem, repo.gotItem)
		})
	}
}
