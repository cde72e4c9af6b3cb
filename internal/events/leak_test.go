package events

import (
	"bytes"
	"context"
	"testing"

	"go.uber.org/goleak"
)

func TestProducerStopsOnClose(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	w := newTestWriter()
	ep := NewEventProducer(w)
	for i := 0; i < 10; i++ {
		if err := ep.Write(context.Background(), EstimationMessageKind, bytes.NewReader([]byte("{}"))); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if err := ep.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if got := len(w.Events()); got != 10 {
		t.Fatalf("expected pending events to be delivered on close, got %d", got)
	}
}
