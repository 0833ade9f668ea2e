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
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/ecodeclub/eshop/internal/customer"
	"github.com/ecodeclub/eshop/internal/notification/internal/repository"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/pkg/email"
)

//go:generate mockgen -source=./service.go -package=notificationmocks -destination=../../mocks/notification.mock.go -mock_names=Service=MockService Service

type Service interface {
	// SendOrderConfirmation 渲染并发送订单确认邮件。
	// 不校验订单状态, 是否该发由调用方决定
	SendOrderConfirmation(ctx context.Context, orderID int64) error
}

func NewService(orderSvc order.Service,
	customerSvc customer.Service,
	repo repository.NotificationRepository,
	emailSvc email.Service) Service {
	return &service{
		orderSvc:    orderSvc,
		customerSvc: customerSvc,
		repo:        repo,
		emailSvc:    emailSvc,
		tmpl:        template.Must(template.New("order-confirmation").Funcs(tmplFuncs).Parse(confirmationTmpl)),
	}
}

type service struct {
	orderSvc    order.Service
	customerSvc customer.Service
	repo        repository.NotificationRepository
	emailSvc    email.Service
	tmpl        *template.Template
}

func (s *service) SendOrderConfirmation(ctx context.Context, orderID int64) error {
	o, err := s.orderSvc.FindOrderByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("查找订单失败: %w", err)
	}
	c, err := s.customerSvc.Profile(ctx, o.CustomerID)
	if err != nil {
		return fmt.Errorf("查找客户失败: %w", err)
	}
	addr, err := s.customerSvc.FindAddressByID(ctx, o.AddressID)
	if err != nil {
		return fmt.Errorf("查找收货地址失败: %w", err)
	}
	pmt, err := s.repo.FindPaymentByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("查找支付记录失败: %w", err)
	}

	body, err := s.render(o, c, addr, pmt.Method)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("订单确认 - %s", o.SN)
	if err = s.emailSvc.Send(ctx, subject, c.Email, body); err != nil {
		return fmt.Errorf("发送确认邮件失败: %w", err)
	}
	return nil
}

type confirmationData struct {
	CustomerName string
	OrderSN      string
	OrderDate    string
	Address      customer.Address
	Items        []order.OrderItem
	BaseAmount   int64
	Discount     int64
	Total        int64
	Method       string
}

func (s *service) render(o order.Order, c customer.Customer, addr customer.Address, method string) ([]byte, error) {
	data := confirmationData{
		CustomerName: fmt.Sprintf("%s %s", c.FirstName, c.LastName),
		OrderSN:      o.SN,
		OrderDate:    time.UnixMilli(o.Ctime).UTC().Format("2006-01-02 15:04:05"),
		Address:      addr,
		Items:        o.Items,
		BaseAmount:   o.TotalBaseAmount,
		Discount:     o.TotalDiscountAmount,
		Total:        o.TotalAmount,
		Method:       method,
	}
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("渲染确认邮件失败: %w", err)
	}
	return buf.Bytes(), nil
}

var tmplFuncs = template.FuncMap{
	// 金额以分存储, 展示时转为元
	"money": func(cents int64) string {
		return fmt.Sprintf("%.2f", float64(cents)/100)
	},
}

const confirmationTmpl = `<html>
<body>
<h2>{{.CustomerName}}, 您的订单已确认</h2>
<p>订单号: {{.OrderSN}}</p>
<p>下单时间: {{.OrderDate}}</p>
<p>收货地址: {{.Address.Line1}}, {{.Address.City}}, {{.Address.Country}}</p>
<table border="1" cellpadding="4" cellspacing="0">
  <tr><th>商品</th><th>数量</th><th>单价</th><th>折扣</th><th>小计</th></tr>
  {{range .Items}}
  <tr>
    <td>{{.ProductName}}</td>
    <td>{{.Quantity}}</td>
    <td>{{money .UnitPrice}}</td>
    <td>{{money .Discount}}</td>
    <td>{{money .TotalPrice}}</td>
  </tr>
  {{end}}
</table>
<p>商品总额: {{money .BaseAmount}}</p>
<p>优惠金额: {{money .Discount}}</p>
<p><strong>应付金额: {{money .Total}}</strong></p>
<p>支付方式: {{.Method}}</p>
</body>
</html>`
