package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robotnik-ag/robotnik/internal/events"
	"github.com/robotnik-ag/robotnik/pkg/log"
	"github.com/robotnik-ag/robotnik/pkg/metrics"
)

const (
	signupStateAccepted = "accepted"
	notifyStateSent     = "sent"
	notifyStateFailed   = "failed"

	// WaitlistThankYou is returned to every accepted signup.
	WaitlistThankYou = "Thank you for joining the RobotNik waitlist! We'll be in touch soon to discuss how we can help liberate your farm from manual weeding."
)

// SignupForm is a waitlist submission. FarmSize is free text, usually hectares.
type SignupForm struct {
	Name       string `json:"name" validate:"required,max=200"`
	Email      string `json:"email" validate:"required,email,max=254"`
	FarmSize   string `json:"farm_size" validate:"required,max=100"`
	Challenges string `json:"challenges" validate:"required,max=2000"`
}

// Trim returns the form with surrounding whitespace removed from every field.
func (f SignupForm) Trim() SignupForm {
	return SignupForm{
		Name:       strings.TrimSpace(f.Name),
		Email:      strings.TrimSpace(f.Email),
		FarmSize:   strings.TrimSpace(f.FarmSize),
		Challenges: strings.TrimSpace(f.Challenges),
	}
}

type Signup struct {
	ID uuid.UUID `json:"id"`
	SignupForm
	CreatedAt time.Time `json:"created_at"`
}

type SignupResult struct {
	Signup   Signup
	Notified bool
}

// WaitlistService accepts waitlist signups and notifies the team about them.
// Signups are not stored; the notification is their only record.
type WaitlistService struct {
	notifier Notifier
	events   EventWriter
	now      func() time.Time
	logger   *log.StructuredLogger
}

type WaitlistOption func(*WaitlistService)

// WithWaitlistEvents publishes a SignupEvent for every accepted signup.
func WithWaitlistEvents(w EventWriter) WaitlistOption {
	return func(ws *WaitlistService) {
		ws.events = w
	}
}

func NewWaitlistService(notifier Notifier, opts ...WaitlistOption) *WaitlistService {
	ws := &WaitlistService{
		notifier: notifier,
		events:   noopEventWriter{},
		now:      time.Now,
		logger:   log.NewDebugLogger("waitlist_service"),
	}
	for _, o := range opts {
		o(ws)
	}
	return ws
}

// Join records a validated signup. A failed notification does not fail the signup;
// it is reported through SignupResult.Notified.
func (ws *WaitlistService) Join(ctx context.Context, form SignupForm) (*SignupResult, error) {
	signup := Signup{
		ID:         uuid.New(),
		SignupForm: form.Trim(),
		CreatedAt:  ws.now().UTC(),
	}

	logger := ws.logger.WithContext(ctx)
	tracer := logger.Operation("join_waitlist").
		WithUUID("signup_id", signup.ID).
		WithString("farm_size", signup.FarmSize).
		Build()

	if err := ctx.Err(); err != nil {
		tracer.Error(err).Log()
		return nil, err
	}

	metrics.IncreaseWaitlistSignupsTotalMetric(signupStateAccepted)

	notified := true
	if err := ws.notifier.Notify(ctx, signup); err != nil {
		notified = false
		metrics.IncreaseWaitlistNotificationsTotalMetric(notifyStateFailed)
		tracer.Error(NewErrNotificationFailed(err)).Log()
	} else {
		metrics.IncreaseWaitlistNotificationsTotalMetric(notifyStateSent)
		tracer.Step("notified").Log()
	}

	pushEvent(ctx, ws.events, events.WaitlistMessageKind, events.SignupEvent{
		SignupID:  signup.ID.String(),
		FarmSize:  signup.FarmSize,
		Notified:  notified,
		CreatedAt: signup.CreatedAt,
	})

	tracer.Success().
		WithString("notified", strconv.FormatBool(notified)).
		Log()

	return &SignupResult{Signup: signup, Notified: notified}, nil
}
