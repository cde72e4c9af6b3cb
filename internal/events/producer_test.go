package events

import (
	"bytes"
	"context"
	"sync"
	"sync/atomic"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("producer", func() {
	It("delivers events in order", func() {
		w := newTestWriter()
		ep := NewEventProducer(w, WithOutputTopic("test.topic"), WithSource("test.source"))

		Expect(ep.Write(context.TODO(), EstimationMessageKind, bytes.NewReader([]byte(`{"profile":"roi"}`)))).To(Succeed())
		Expect(ep.Write(context.TODO(), WaitlistMessageKind, bytes.NewReader([]byte(`{"signup_id":"1"}`)))).To(Succeed())

		Eventually(w.Events).Should(HaveLen(2))
		events := w.Events()
		Expect(events[0].Type()).To(Equal(EstimationMessageKind))
		Expect(events[0].Source()).To(Equal("test.source"))
		Expect(events[0].DataContentType()).To(Equal(cloudevents.ApplicationJSON))
		Expect(string(events[0].Data())).To(Equal(`{"profile":"roi"}`))
		Expect(events[1].Type()).To(Equal(WaitlistMessageKind))
		Expect(w.Topics()).To(ConsistOf("test.topic", "test.topic"))

		Expect(ep.Close()).To(Succeed())
		Expect(w.closed).To(BeTrue())
	})

	It("rejects writes after close", func() {
		ep := NewEventProducer(newTestWriter())
		Expect(ep.Close()).To(Succeed())
		Expect(ep.Close()).To(Succeed())

		err := ep.Write(context.TODO(), EstimationMessageKind, bytes.NewReader([]byte("{}")))
		Expect(err).To(MatchError(ErrProducerClosed))
	})

	It("delivers every accepted write when closed concurrently", func() {
		w := newTestWriter()
		ep := NewEventProducer(w)

		var (
			wg       sync.WaitGroup
			accepted atomic.Int32
			rejected atomic.Int32
		)
		start := make(chan struct{})
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				<-start
				for j := 0; j < 20; j++ {
					err := ep.Write(context.TODO(), EstimationMessageKind, bytes.NewReader([]byte("{}")))
					if err != nil {
						Expect(err).To(MatchError(ErrProducerClosed))
						rejected.Add(1)
						continue
					}
					accepted.Add(1)
				}
			}()
		}

		close(start)
		Expect(ep.Close()).To(Succeed())
		wg.Wait()

		Expect(accepted.Load() + rejected.Load()).To(Equal(int32(1000)))
		Expect(w.Events()).To(HaveLen(int(accepted.Load())))
	})
})

type testwriter struct {
	mu     sync.Mutex
	events []cloudevents.Event
	topics []string
	closed bool
}

func newTestWriter() *testwriter {
	return &testwriter{}
}

func (t *testwriter) Write(ctx context.Context, topic string, e cloudevents.Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, e)
	t.topics = append(t.topics, topic)
	return nil
}

func (t *testwriter) Events() []cloudevents.Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]cloudevents.Event(nil), t.events...)
}

func (t *testwriter) Topics() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.topics...)
}

func (t *testwriter) Close(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}
