package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func TestGormTracingPlugin_Initialize(t *testing.T) {
	t.Parallel()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, NewGormTracingPlugin().Initialize(db))

	type registration struct {
		get  func(string) func(*gorm.DB)
		name string
	}
	regs := []registration{
		{db.Callback().Query().Get, "tracing:before_query"},
		{db.Callback().Query().Get, "tracing:after_query"},
		{db.Callback().Create().Get, "tracing:before_create"},
		{db.Callback().Create().Get, "tracing:after_create"},
		{db.Callback().Update().Get, "tracing:before_update"},
		{db.Callback().Update().Get, "tracing:after_update"},
		{db.Callback().Delete().Get, "tracing:before_delete"},
		{db.Callback().Delete().Get, "tracing:after_delete"},
		{db.Callback().Raw().Get, "tracing:before_raw"},
		{db.Callback().Raw().Get, "tracing:after_raw"},
	}
	for _, reg := range regs {
		assert.NotNil(t, reg.get(reg.name), reg.name)
	}

	// DryRun下跑一遍回调链, span的开启与关闭不应该影响查询本身
	type payment struct {
		ID int64
	}
	var rows []payment
	tx := db.Session(&gorm.Session{DryRun: true}).Where("status = ?", 1).Find(&rows)
	assert.NoError(t, tx.Error)
}
