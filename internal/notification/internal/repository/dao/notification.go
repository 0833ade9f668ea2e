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
	"database/sql"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type NotificationDAO interface {
	FindPaymentByOrderID(ctx context.Context, orderID int64) (Payment, error)
}

func NewNotificationGORMDAO(db *egorm.Component) NotificationDAO {
	return &notificationGORMDAO{db: db}
}

type notificationGORMDAO struct {
	db *gorm.DB
}

func (g *notificationGORMDAO) FindPaymentByOrderID(ctx context.Context, orderID int64) (Payment, error) {
	var pmt Payment
	err := g.db.WithContext(ctx).Where("order_id = ?", orderID).First(&pmt).Error
	return pmt, err
}

// Payment 只读payments表, 建表归支付模块管
type Payment struct {
	Id      int64  `gorm:"primaryKey"`
	SN      string `gorm:"column:sn"`
	OrderId int64
	Method  string
	Amount  int64
	TxnId   sql.NullString `gorm:"column:txn_id"`
	Status  uint8
}

func (Payment) TableName() string {
	return "payments"
}
