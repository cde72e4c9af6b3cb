package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/robotnik-ag/robotnik/internal/estimation"
	"github.com/robotnik-ag/robotnik/internal/events"
	"github.com/robotnik-ag/robotnik/internal/service"
)

type recordedEvent struct {
	kind string
	data []byte
}

type recordingEventWriter struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (w *recordingEventWriter) Write(_ context.Context, kind string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = append(w.events, recordedEvent{kind: kind, data: data})
	return w.err
}

var _ = Describe("analytics events", func() {
	var writer *recordingEventWriter

	BeforeEach(func() {
		writer = &recordingEventWriter{}
	})

	It("publishes an event per estimation", func() {
		srv := service.NewEstimationService(estimation.DefaultCatalog(), service.WithEstimationEvents(writer))

		_, err := srv.Calculate(context.Background(), "", nil)
		Expect(err).ToNot(HaveOccurred())

		Expect(writer.events).To(HaveLen(1))
		Expect(writer.events[0].kind).To(Equal(events.EstimationMessageKind))
		var ev events.EstimationEvent
		Expect(json.Unmarshal(writer.events[0].data, &ev)).To(Succeed())
		Expect(ev).To(Equal(events.EstimationEvent{Profile: "roi", LandSize: 30, RobotCount: 1, SavingsPerSeason: 3980}))
	})

	It("does not publish failed estimations", func() {
		srv := service.NewEstimationService(estimation.DefaultCatalog(), service.WithEstimationEvents(writer))

		_, err := srv.Calculate(context.Background(), "orchard", nil)
		Expect(err).To(HaveOccurred())
		Expect(writer.events).To(BeEmpty())
	})

	It("publishes signups without contact details", func() {
		srv := service.NewWaitlistService(&recordingNotifier{}, service.WithWaitlistEvents(writer))

		result, err := srv.Join(context.Background(), testSignup().SignupForm)
		Expect(err).ToNot(HaveOccurred())

		Expect(writer.events).To(HaveLen(1))
		Expect(writer.events[0].kind).To(Equal(events.WaitlistMessageKind))
		Expect(string(writer.events[0].data)).ToNot(ContainSubstring("ana@farm.bg"))
		var ev events.SignupEvent
		Expect(json.Unmarshal(writer.events[0].data, &ev)).To(Succeed())
		Expect(ev.SignupID).To(Equal(result.Signup.ID.String()))
		Expect(ev.FarmSize).To(Equal("12"))
		Expect(ev.Notified).To(BeTrue())
	})

	It("ignores event delivery failures", func() {
		writer.err = errors.New("queue full")
		srv := service.NewWaitlistService(&recordingNotifier{}, service.WithWaitlistEvents(writer))

		result, err := srv.Join(context.Background(), testSignup().SignupForm)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Notified).To(BeTrue())
	})
})
