package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/template"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Notifier tells the team about a new waitlist signup.
type Notifier interface {
	Notify(ctx context.Context, signup Signup) error
}

var notificationTemplate = template.Must(template.New("signup").Parse(`NEW ROBOTNIK WAITLIST SIGNUP

Name: {{ .Name }}
Email: {{ .Email }}
Farm Size: {{ .FarmSize }} hectares
Weeding Challenges: {{ .Challenges }}
Signup Time: {{ .CreatedAt.Format "2006-01-02 15:04:05" }}

Next Steps:
- Follow up within 24 hours
- Schedule a demo call
- Assess farm compatibility
- Add to priority list for early access
`))

// Notification is the message rendered for a signup.
type Notification struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Signup  Signup `json:"signup"`
}

func NewNotification(signup Signup) (Notification, error) {
	var body strings.Builder
	if err := notificationTemplate.Execute(&body, signup); err != nil {
		return Notification{}, fmt.Errorf("rendering notification: %w", err)
	}
	return Notification{
		Subject: fmt.Sprintf("New RobotNik Waitlist Signup - %s", signup.Name),
		Body:    body.String(),
		Signup:  signup,
	}, nil
}

// LogNotifier writes the notification to the log. It is used when no webhook is configured.
type LogNotifier struct {
	logger *zap.SugaredLogger
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{logger: zap.S().Named("waitlist_notifier")}
}

func (n *LogNotifier) Notify(_ context.Context, signup Signup) error {
	notification, err := NewNotification(signup)
	if err != nil {
		return err
	}
	n.logger.Infow(notification.Subject, "signup_id", signup.ID, "body", notification.Body)
	return nil
}

type WebhookOption func(*WebhookNotifier)

func WithHTTPClient(c *http.Client) WebhookOption {
	return func(n *WebhookNotifier) {
		n.client = c
	}
}

// WithBackOff replaces the exponential backoff between attempts.
func WithBackOff(newBackOff func() backoff.BackOff) WebhookOption {
	return func(n *WebhookNotifier) {
		n.newBackOff = newBackOff
	}
}

// WithBreakerSettings replaces the circuit breaker guarding the webhook.
func WithBreakerSettings(st gobreaker.Settings) WebhookOption {
	return func(n *WebhookNotifier) {
		n.breaker = gobreaker.NewCircuitBreaker(st)
	}
}

// WebhookNotifier posts notifications as JSON to a URL. Failed deliveries are retried with
// exponential backoff; after repeated failures the circuit breaker opens and deliveries
// fail fast until it half-opens again.
type WebhookNotifier struct {
	url        string
	client     *http.Client
	breaker    *gobreaker.CircuitBreaker
	maxRetries uint64
	newBackOff func() backoff.BackOff
	logger     *zap.SugaredLogger
}

func NewWebhookNotifier(url string, timeout time.Duration, maxRetries uint64, opts ...WebhookOption) *WebhookNotifier {
	n := &WebhookNotifier{
		url:        url,
		client:     &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		newBackOff: func() backoff.BackOff {
			bo := backoff.NewExponentialBackOff()
			bo.InitialInterval = 200 * time.Millisecond
			bo.MaxElapsedTime = 10 * time.Second
			return bo
		},
		logger: zap.S().Named("waitlist_notifier"),
	}
	n.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     "waitlist-webhook",
		Interval: time.Minute,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			n.logger.Warnw("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *WebhookNotifier) Notify(ctx context.Context, signup Signup) error {
	notification, err := NewNotification(signup)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(n.newBackOff(), n.maxRetries), ctx)
	return backoff.Retry(func() error {
		_, err := n.breaker.Execute(func() (any, error) {
			return nil, n.post(ctx, payload)
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return backoff.Permanent(err)
		}
		if err != nil {
			n.logger.Debugw("webhook delivery failed", "signup_id", signup.ID, "error", err)
		}
		return err
	}, bo)
}

func (n *WebhookNotifier) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		err := fmt.Errorf("webhook returned %s", resp.Status)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return backoff.Permanent(err)
		}
		return err
	}
	return nil
}
