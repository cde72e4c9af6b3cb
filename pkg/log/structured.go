package log

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robotnik-ag/robotnik/pkg/requestid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// StructuredLogger traces named operations of a component. Steps are logged at
// debug level, successes at info and failures at error.
type StructuredLogger struct {
	name   string
	fields []zap.Field
}

// NewDebugLogger returns a StructuredLogger writing to the global zap logger under name.
func NewDebugLogger(name string) *StructuredLogger {
	return &StructuredLogger{name: name}
}

// WithContext attaches the request id found in ctx, if any.
func (l *StructuredLogger) WithContext(ctx context.Context) *StructuredLogger {
	fields := append([]zap.Field{}, l.fields...)
	if id := requestid.FromContext(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	return &StructuredLogger{name: l.name, fields: fields}
}

func (l *StructuredLogger) Operation(name string) *OperationBuilder {
	fields := append([]zap.Field{}, l.fields...)
	return &OperationBuilder{
		logger:    l,
		operation: name,
		fields:    append(fields, zap.String("operation", name)),
	}
}

func (l *StructuredLogger) base() *zap.Logger {
	return zap.L().Named(l.name)
}

type OperationBuilder struct {
	logger    *StructuredLogger
	operation string
	fields    []zap.Field
}

func (b *OperationBuilder) WithString(key, value string) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value))
	return b
}

func (b *OperationBuilder) WithInt(key string, value int) *OperationBuilder {
	b.fields = append(b.fields, zap.Int(key, value))
	return b
}

func (b *OperationBuilder) WithFloat(key string, value float64) *OperationBuilder {
	b.fields = append(b.fields, zap.Float64(key, value))
	return b
}

func (b *OperationBuilder) WithUUID(key string, value uuid.UUID) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value.String()))
	return b
}

func (b *OperationBuilder) Build() *OperationTracer {
	return &OperationTracer{
		logger:    b.logger.base(),
		operation: b.operation,
		fields:    b.fields,
		start:     time.Now(),
	}
}

// OperationTracer emits the events of a single operation run.
type OperationTracer struct {
	logger    *zap.Logger
	operation string
	fields    []zap.Field
	start     time.Time
}

func (t *OperationTracer) Step(name string) *Event {
	return t.event(zapcore.DebugLevel, t.operation+": "+name, zap.String("step", name))
}

func (t *OperationTracer) Success() *Event {
	return t.event(zapcore.InfoLevel, t.operation+": success", zap.Duration("elapsed", time.Since(t.start)))
}

func (t *OperationTracer) Error(err error) *Event {
	return t.event(zapcore.ErrorLevel, t.operation+": failed", zap.Error(err), zap.Duration("elapsed", time.Since(t.start)))
}

func (t *OperationTracer) event(level zapcore.Level, msg string, extra ...zap.Field) *Event {
	fields := make([]zap.Field, 0, len(t.fields)+len(extra))
	fields = append(fields, t.fields...)
	fields = append(fields, extra...)
	return &Event{logger: t.logger, level: level, msg: msg, fields: fields}
}

// Event is a pending log line; nothing is written until Log is called.
type Event struct {
	logger *zap.Logger
	level  zapcore.Level
	msg    string
	fields []zap.Field
}

func (e *Event) WithString(key, value string) *Event {
	e.fields = append(e.fields, zap.String(key, value))
	return e
}

func (e *Event) WithInt(key string, value int) *Event {
	e.fields = append(e.fields, zap.Int(key, value))
	return e
}

func (e *Event) WithFloat(key string, value float64) *Event {
	e.fields = append(e.fields, zap.Float64(key, value))
	return e
}

func (e *Event) WithUUID(key string, value uuid.UUID) *Event {
	e.fields = append(e.fields, zap.String(key, value.String()))
	return e
}

func (e *Event) Log() {
	if ce := e.logger.Check(e.level, e.msg); ce != nil {
		ce.Write(e.fields...)
	}
}
