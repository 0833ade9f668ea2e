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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/eshop/internal/payment/internal/domain"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDuplicatedPayment = errors.New("支付记录重复")

type PaymentDAO interface {
	// Transaction fn内通过传入的DAO访问数据库时共享同一事务
	Transaction(ctx context.Context, fn func(txDAO PaymentDAO) error) error

	CreatePayment(ctx context.Context, pmt Payment) (int64, error)
	UpdatePayment(ctx context.Context, pmt Payment) error
	FindPaymentByID(ctx context.Context, id int64) (Payment, error)
	FindPaymentByOrderID(ctx context.Context, orderID int64) (Payment, error)
	// FindPendingNonCODPayments 对账用, 加行锁防止与同步支付请求并发改同一行
	FindPendingNonCODPayments(ctx context.Context, limit int) ([]Payment, error)

	// 订单行与订单模块共享orders表, 支付状态机需要在自己的事务内锁定并推进它
	FindOrderByIDForUpdate(ctx context.Context, orderID int64) (Order, error)
	FindOrderByID(ctx context.Context, orderID int64) (Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status uint8) error
}

func NewPaymentGORMDAO(db *egorm.Component) PaymentDAO {
	return &paymentGORMDAO{db: db}
}

type paymentGORMDAO struct {
	db *gorm.DB
}

func (g *paymentGORMDAO) Transaction(ctx context.Context, fn func(txDAO PaymentDAO) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&paymentGORMDAO{db: tx})
	})
}

func (g *paymentGORMDAO) CreatePayment(ctx context.Context, pmt Payment) (int64, error) {
	now := time.Now().UnixMilli()
	pmt.Ctime, pmt.Utime = now, now
	err := g.db.WithContext(ctx).Create(&pmt).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, fmt.Errorf("%w: 订单ID %d", ErrDuplicatedPayment, pmt.OrderId)
			}
		}
		return 0, err
	}
	return pmt.Id, nil
}

func (g *paymentGORMDAO) UpdatePayment(ctx context.Context, pmt Payment) error {
	return g.db.WithContext(ctx).Model(&Payment{}).
		Where("id = ?", pmt.Id).
		Updates(map[string]any{
			"method":       pmt.Method,
			"amount":       pmt.Amount,
			"txn_id":       pmt.TxnId,
			"payment_date": pmt.PaymentDate,
			"status":       pmt.Status,
			"utime":        time.Now().UnixMilli(),
		}).Error
}

func (g *paymentGORMDAO) FindPaymentByID(ctx context.Context, id int64) (Payment, error) {
	var pmt Payment
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&pmt).Error
	return pmt, err
}

func (g *paymentGORMDAO) FindPaymentByOrderID(ctx context.Context, orderID int64) (Payment, error) {
	var pmt Payment
	err := g.db.WithContext(ctx).Where("order_id = ?", orderID).First(&pmt).Error
	return pmt, err
}

func (g *paymentGORMDAO) FindPendingNonCODPayments(ctx context.Context, limit int) ([]Payment, error) {
	var pmts []Payment
	err := g.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status = ? AND UPPER(method) NOT IN (?)",
			domain.PaymentStatusPending.ToUint8(), []string{"COD", "CASHONDELIVERY"}).
		Order("id ASC").
		Limit(limit).
		Find(&pmts).Error
	return pmts, err
}

func (g *paymentGORMDAO) FindOrderByIDForUpdate(ctx context.Context, orderID int64) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", orderID).
		First(&o).Error
	return o, err
}

func (g *paymentGORMDAO) FindOrderByID(ctx context.Context, orderID int64) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	return o, err
}

func (g *paymentGORMDAO) UpdateOrderStatus(ctx context.Context, orderID int64, status uint8) error {
	return g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Payment{})
}

type Payment struct {
	Id          int64          `gorm:"primaryKey;autoIncrement;comment:支付自增ID"`
	SN          string         `gorm:"column:sn;type:varchar(255);not null;uniqueIndex:uniq_payment_sn;comment:支付序列号"`
	OrderId     int64          `gorm:"not null;uniqueIndex:uniq_order_id;comment:订单自增ID, 一单一付"`
	CustomerId  int64          `gorm:"not null;index:idx_customer_id;comment:客户ID"`
	Method      string         `gorm:"type:varchar(64);not null;comment:支付方式"`
	Amount      int64          `gorm:"not null;comment:支付金额;单位为分, 999表示9.99元"`
	TxnId       sql.NullString `gorm:"column:txn_id;type:varchar(64);comment:第三方交易ID"`
	PaymentDate int64          `gorm:"not null;comment:最近一次发起支付的时间"`
	Status      uint8          `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status;comment:支付状态 1=待确认 5=已完成 6=已失败"`
	Ctime       int64
	Utime       int64
}

func (Payment) TableName() string {
	return "payments"
}

// Order 只读写orders表中支付状态机关心的列
type Order struct {
	Id          int64  `gorm:"primaryKey"`
	SN          string `gorm:"column:sn"`
	CustomerId  int64
	TotalAmount int64
	Status      uint8
	Utime       int64
}

func (Order) TableName() string {
	return "orders"
}
