package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/robotnik-ag/robotnik/internal/service"
	"github.com/sony/gobreaker"
)

type recordingNotifier struct {
	signups []service.Signup
	err     error
}

func (n *recordingNotifier) Notify(_ context.Context, signup service.Signup) error {
	n.signups = append(n.signups, signup)
	return n.err
}

func testSignup() service.Signup {
	return service.Signup{
		ID: uuid.New(),
		SignupForm: service.SignupForm{
			Name:       "Ana Petrova",
			Email:      "ana@farm.bg",
			FarmSize:   "12",
			Challenges: "bindweed in the carrots",
		},
		CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

var _ = Describe("WaitlistService", func() {
	var (
		notifier *recordingNotifier
		srv      *service.WaitlistService
		form     service.SignupForm
	)

	BeforeEach(func() {
		notifier = &recordingNotifier{}
		srv = service.NewWaitlistService(notifier)
		form = service.SignupForm{
			Name:       "  Ana Petrova ",
			Email:      " ana@farm.bg",
			FarmSize:   "12 ",
			Challenges: "\tbindweed\n",
		}
	})

	It("trims the form and notifies", func() {
		result, err := srv.Join(context.Background(), form)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Notified).To(BeTrue())
		Expect(result.Signup.ID).ToNot(Equal(uuid.Nil))
		Expect(result.Signup.Name).To(Equal("Ana Petrova"))
		Expect(result.Signup.Email).To(Equal("ana@farm.bg"))
		Expect(result.Signup.Challenges).To(Equal("bindweed"))
		Expect(notifier.signups).To(HaveLen(1))
		Expect(notifier.signups[0].ID).To(Equal(result.Signup.ID))
	})

	It("accepts the signup when the notification fails", func() {
		notifier.err = errors.New("smtp down")
		result, err := srv.Join(context.Background(), form)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Notified).To(BeFalse())
	})

	It("fails when the context is done", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := srv.Join(ctx, form)
		Expect(err).To(MatchError(context.Canceled))
		Expect(notifier.signups).To(BeEmpty())
	})
})

var _ = Describe("Notifiers", func() {
	It("renders the signup into the notification", func() {
		n, err := service.NewNotification(testSignup())
		Expect(err).ToNot(HaveOccurred())
		Expect(n.Subject).To(Equal("New RobotNik Waitlist Signup - Ana Petrova"))
		Expect(n.Body).To(ContainSubstring("Farm Size: 12 hectares"))
		Expect(n.Body).To(ContainSubstring("Signup Time: 2026-03-01 09:30:00"))
	})

	It("logs notifications", func() {
		Expect(service.NewLogNotifier().Notify(context.Background(), testSignup())).To(Succeed())
	})

	Describe("WebhookNotifier", func() {
		var (
			calls  atomic.Int32
			status func(call int32) int
			server *httptest.Server
		)

		noWait := service.WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} })

		BeforeEach(func() {
			calls.Store(0)
			status = func(int32) int { return http.StatusOK }
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				defer GinkgoRecover()
				Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))
				w.WriteHeader(status(calls.Add(1)))
			}))
		})

		AfterEach(func() {
			server.Close()
		})

		It("delivers on the first attempt", func() {
			n := service.NewWebhookNotifier(server.URL, time.Second, 3, noWait)
			Expect(n.Notify(context.Background(), testSignup())).To(Succeed())
			Expect(calls.Load()).To(Equal(int32(1)))
		})

		It("retries server errors", func() {
			status = func(call int32) int {
				if call < 3 {
					return http.StatusBadGateway
				}
				return http.StatusNoContent
			}
			n := service.NewWebhookNotifier(server.URL, time.Second, 3, noWait)
			Expect(n.Notify(context.Background(), testSignup())).To(Succeed())
			Expect(calls.Load()).To(Equal(int32(3)))
		})

		It("gives up after the configured retries", func() {
			status = func(int32) int { return http.StatusInternalServerError }
			n := service.NewWebhookNotifier(server.URL, time.Second, 2, noWait)
			Expect(n.Notify(context.Background(), testSignup())).ToNot(Succeed())
			Expect(calls.Load()).To(Equal(int32(3)))
		})

		It("does not retry client errors", func() {
			status = func(int32) int { return http.StatusBadRequest }
			n := service.NewWebhookNotifier(server.URL, time.Second, 5, noWait)
			err := n.Notify(context.Background(), testSignup())
			Expect(err).To(MatchError(ContainSubstring("400")))
			Expect(calls.Load()).To(Equal(int32(1)))
		})

		It("fails fast once the circuit breaker is open", func() {
			status = func(int32) int { return http.StatusServiceUnavailable }
			n := service.NewWebhookNotifier(server.URL, time.Second, 0, noWait,
				service.WithBreakerSettings(gobreaker.Settings{
					Name:    "test",
					Timeout: time.Minute,
					ReadyToTrip: func(c gobreaker.Counts) bool {
						return c.ConsecutiveFailures >= 2
					},
				}))

			Expect(n.Notify(context.Background(), testSignup())).ToNot(Succeed())
			Expect(n.Notify(context.Background(), testSignup())).ToNot(Succeed())
			err := n.Notify(context.Background(), testSignup())
			Expect(errors.Is(err, gobreaker.ErrOpenState)).To(BeTrue())
			Expect(calls.Load()).To(Equal(int32(2)))
		})
	})
})
