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

package sequencenumber

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// NowFunc 定义生成当前时间的函数类型
type NowFunc func() time.Time

// RandFunc 定义生成 [min, max] 区间内随机数的函数类型
type RandFunc func(min, max int64) int64

// Generator 生成订单号、支付序列号及第三方交易ID
type Generator struct {
	nowFunc  NowFunc
	randFunc RandFunc
}

// NewGeneratorWith 创建一个Generator实例
func NewGeneratorWith(nowFunc NowFunc, randFunc RandFunc) *Generator {
	return &Generator{
		nowFunc:  nowFunc,
		randFunc: randFunc,
	}
}

// NewGenerator 创建一个Generator实例, 随机数来自加密安全的随机源
func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, cryptoRandInt64)
}

// OrderSN 生成订单号, 格式为 ORD-yyyyMMdd-HHmmss-XXXX, XXXX为四位随机数
func (g *Generator) OrderSN() string {
	now := g.nowFunc().UTC()
	return fmt.Sprintf("ORD-%s-%04d", now.Format("20060102-150405"), g.randFunc(1000, 9999))
}

// PaymentSN 使用ID生成支付序列号
func (g *Generator) PaymentSN(id int64) string {
	timestamp := g.nowFunc().UnixMilli()
	lastFour := fmt.Sprintf("%04d", id%10000)
	return fmt.Sprintf("%d%s%s", timestamp, lastFour, shortuuid.New())
}

// TransactionID 生成第三方交易ID, 格式为 TXN-前缀加12位大写十六进制字符
func (g *Generator) TransactionID() string {
	var buf [6]byte
	_, _ = rand.Read(buf[:])
	return fmt.Sprintf("TXN-%s", strings.ToUpper(hex.EncodeToString(buf[:])))
}

func cryptoRandInt64(min, max int64) int64 {
	var buf [8]byte
	_, _ = rand.Read(buf[:])
	n := int64(binary.BigEndian.Uint64(buf[:]) >> 1)
	return n%(max-min+1) + min
}
