package database

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const instrumentationName = "internal/pkg/database/tracing"

// GormTracingPlugin 实现gorm.Plugin接口,
// 为订单创建和支付结算这类多行事务里的每条SQL生成一个客户端span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

// Initialize 在每类GORM操作前后注册追踪回调
func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	var err error
	register := func(e error) {
		if err == nil {
			err = e
		}
	}
	register(cb.Query().Before("gorm:query").Register("tracing:before_query", p.before("SELECT")))
	register(cb.Query().After("gorm:query").Register("tracing:after_query", p.after))
	register(cb.Create().Before("gorm:create").Register("tracing:before_create", p.before("INSERT")))
	register(cb.Create().After("gorm:create").Register("tracing:after_create", p.after))
	register(cb.Update().Before("gorm:update").Register("tracing:before_update", p.before("UPDATE")))
	register(cb.Update().After("gorm:update").Register("tracing:after_update", p.after))
	register(cb.Delete().Before("gorm:delete").Register("tracing:before_delete", p.before("DELETE")))
	register(cb.Delete().After("gorm:delete").Register("tracing:after_delete", p.after))
	register(cb.Raw().Before("gorm:raw").Register("tracing:before_raw", p.before("SQL")))
	register(cb.Raw().After("gorm:raw").Register("tracing:after_raw", p.after))
	return err
}

func (p *GormTracingPlugin) before(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx := context.Background()
		if db.Statement.Context != nil {
			ctx = db.Statement.Context
		}
		ctx, span := p.tracer.Start(ctx,
			fmt.Sprintf("%s %s", db.Statement.Table, op),
			trace.WithSpanKind(trace.SpanKindClient))
		// 把带span的ctx写回Statement, 事务内后续SQL挂到同一条链路上
		db.Statement.Context = ctx
		db.Set("tracing:span", span)
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	v, ok := db.Get("tracing:span")
	if !ok {
		return
	}
	span, ok := v.(trace.Span)
	if !ok {
		return
	}
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.String("db.system", "mysql"),
	}
	if db.Statement.Table != "" {
		attrs = append(attrs, attribute.String("db.table", db.Statement.Table))
	}
	if stmt := db.Statement.SQL.String(); stmt != "" {
		attrs = append(attrs, attribute.String("db.statement", stmt))
	}
	if db.Statement.RowsAffected > 0 {
		attrs = append(attrs, attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	span.SetAttributes(attrs...)

	// 查不到记录是正常业务分支, 不算span错误
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
