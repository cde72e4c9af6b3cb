package v1alpha1

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	api "github.com/robotnik-ag/robotnik/api/v1alpha1"
	"github.com/robotnik-ag/robotnik/internal/handlers/v1alpha1/mappers"
	"github.com/robotnik-ag/robotnik/internal/handlers/validator"
	"github.com/robotnik-ag/robotnik/pkg/log"
	"github.com/robotnik-ag/robotnik/pkg/metrics"
)

const signupStateRejected = "rejected"

// (POST /api/waitlist)
func (h *ServiceHandler) JoinWaitlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.NewDebugLogger("waitlist_handler").
		WithContext(ctx).
		Operation("join_waitlist").
		Build()

	var body api.WaitlistSignup
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		logger.Error(err).Log()
		metrics.IncreaseWaitlistSignupsTotalMetric(signupStateRejected)
		renderError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	form := mappers.SignupFormApi(body)
	if err := h.validator.Struct(form); err != nil {
		logger.Error(err).Log()
		metrics.IncreaseWaitlistSignupsTotalMetric(signupStateRejected)
		var invalid *validator.ErrInvalidField
		if errors.As(err, &invalid) {
			renderError(w, r, http.StatusBadRequest, invalid.Error())
			return
		}
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.waitlistSrv.Join(ctx, form)
	if err != nil {
		logger.Error(err).Log()
		renderError(w, r, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	logger.Success().
		WithUUID("signup_id", result.Signup.ID).
		Log()

	renderOK(w, r, mappers.SignupResultToAPI(*result))
}
