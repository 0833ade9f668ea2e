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

package ioc

import (
	"testing"

	"github.com/ecodeclub/eshop/internal/payment"
	"github.com/stretchr/testify/assert"
)

func TestWithSettlementTopic(t *testing.T) {
	t.Parallel()

	t.Run("配置缺少结算主题_自动补上", func(t *testing.T) {
		t.Parallel()
		got := withSettlementTopic([]kafkaTopic{{Name: "other_events", Partitions: 2}})
		assert.Equal(t, []kafkaTopic{
			{Name: "other_events", Partitions: 2},
			{Name: payment.TopicPaymentEvents, Partitions: 1},
		}, got)
	})

	t.Run("配置已有结算主题_保持原样", func(t *testing.T) {
		t.Parallel()
		topics := []kafkaTopic{{Name: payment.TopicPaymentEvents, Partitions: 2}}
		assert.Equal(t, topics, withSettlementTopic(topics))
	})

	t.Run("空配置_只建结算主题", func(t *testing.T) {
		t.Parallel()
		got := withSettlementTopic(nil)
		assert.Equal(t, []kafkaTopic{{Name: payment.TopicPaymentEvents, Partitions: 1}}, got)
	})
}
