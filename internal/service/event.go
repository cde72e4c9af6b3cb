package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/robotnik-ag/robotnik/internal/events"
	"go.uber.org/zap"
)

// EventWriter queues analytics events. *events.EventProducer implements it.
type EventWriter interface {
	Write(ctx context.Context, kind string, body io.Reader) error
}

type noopEventWriter struct{}

func (noopEventWriter) Write(context.Context, string, io.Reader) error { return nil }

// pushEvent never fails the caller; analytics are best effort.
func pushEvent(ctx context.Context, w EventWriter, kind string, event any) {
	data, err := json.Marshal(event)
	if err != nil {
		zap.S().Named("service_events").Errorw("failed to marshal event", "error", err, "event_kind", kind)
		return
	}

	if err := w.Write(ctx, kind, bytes.NewBuffer(data)); err != nil {
		zap.S().Named("service_events").Errorw("failed to write event", "error", err, "event_kind", kind)
	}
}

var (
	_ EventWriter = (*events.EventProducer)(nil)
)
