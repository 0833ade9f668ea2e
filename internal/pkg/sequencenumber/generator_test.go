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
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_OrderSN(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		now    time.Time
		rand   int64
		wantSN string
	}{
		{
			name:   "固定时间及随机数",
			now:    time.Date(2024, 3, 1, 9, 30, 15, 0, time.UTC),
			rand:   4321,
			wantSN: "ORD-20240301-093015-4321",
		},
		{
			name:   "随机数为区间下界",
			now:    time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			rand:   1000,
			wantSN: "ORD-20241231-235959-1000",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := NewGeneratorWith(func() time.Time { return tc.now }, func(min, max int64) int64 { return tc.rand })
			assert.Equal(t, tc.wantSN, g.OrderSN())
		})
	}
}

func TestGenerator_OrderSN_Format(t *testing.T) {
	t.Parallel()
	g := NewGenerator()
	re := regexp.MustCompile(`^ORD-\d{8}-\d{6}-\d{4}$`)
	for i := 0; i < 100; i++ {
		sn := g.OrderSN()
		assert.Regexp(t, re, sn)
	}
}

func TestGenerator_TransactionID_Format(t *testing.T) {
	t.Parallel()
	g := NewGenerator()
	re := regexp.MustCompile(`^TXN-[0-9A-F]{12}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, re, g.TransactionID())
	}
}

func TestCryptoRandInt64_Range(t *testing.T) {
	t.Parallel()
	for i := 0; i < 1000; i++ {
		n := cryptoRandInt64(1000, 9999)
		assert.GreaterOrEqual(t, n, int64(1000))
		assert.LessOrEqual(t, n, int64(9999))
	}
}
