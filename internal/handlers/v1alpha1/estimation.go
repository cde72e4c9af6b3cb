package v1alpha1

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/robotnik-ag/robotnik/internal/estimation"
	"github.com/robotnik-ag/robotnik/internal/handlers/v1alpha1/mappers"
	"github.com/robotnik-ag/robotnik/internal/handlers/validator"
	"github.com/robotnik-ag/robotnik/internal/presenter"
	"github.com/robotnik-ag/robotnik/internal/service"
	"github.com/robotnik-ag/robotnik/pkg/log"
	"github.com/robotnik-ag/robotnik/pkg/metrics"
)

// (GET /api/v1/estimation)
func (h *ServiceHandler) GetEstimation(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := presenter.CalculateRequest{Profile: query.Get("profile")}
	h.estimate(w, r, req, presenter.ParamsFromValues(query))
}

// (POST /api/v1/estimation)
func (h *ServiceHandler) CalculateEstimation(w http.ResponseWriter, r *http.Request) {
	var req presenter.CalculateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.NewDebugLogger("estimation_handler").
			WithContext(r.Context()).
			Operation("calculate_estimation").
			Build().
			Error(err).
			Log()
		renderError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	h.estimate(w, r, req, presenter.ParamsFromRequest(req))
}

func (h *ServiceHandler) estimate(w http.ResponseWriter, r *http.Request, req presenter.CalculateRequest, params []estimation.Param) {
	ctx := r.Context()
	logger := log.NewDebugLogger("estimation_handler").
		WithContext(ctx).
		Operation("calculate_estimation").
		WithString("profile", req.Profile).
		Build()

	if err := h.validator.Struct(req); err != nil {
		logger.Error(err).Log()
		var invalid *validator.ErrInvalidField
		if errors.As(err, &invalid) {
			renderError(w, r, http.StatusBadRequest, invalid.Error())
			return
		}
		renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.estimationSrv.Calculate(ctx, req.Profile, params)
	if err != nil {
		logger.Error(err).Log()
		var notFound *service.ErrProfileNotFound
		if errors.As(err, &notFound) {
			renderError(w, r, http.StatusNotFound, err.Error())
			return
		}
		renderError(w, r, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	metrics.IncreaseEstimationsTotalMetric(result.Profile)
	logger.Success().WithString("resolved_profile", result.Profile).Log()

	renderOK(w, r, mappers.EstimationResultToAPI(*result, params))
}

// (GET /api/v1/profiles)
func (h *ServiceHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	renderOK(w, r, mappers.ProfilesToAPI(h.estimationSrv.Profiles(), h.estimationSrv.DefaultProfile()))
}
