package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	api "github.com/robotnik-ag/robotnik/api/v1alpha1"
	"github.com/robotnik-ag/robotnik/internal/handlers/validator"
	"github.com/robotnik-ag/robotnik/internal/service"
	"github.com/robotnik-ag/robotnik/pkg/requestid"
)

const (
	serviceName = "robotnik-api"

	genericErrorMessage = "Something went wrong. Please try again."
)

type ServiceHandler struct {
	estimationSrv *service.EstimationService
	waitlistSrv   *service.WaitlistService
	validator     *validator.Validator
}

func NewServiceHandler(estimationService *service.EstimationService, waitlistService *service.WaitlistService) *ServiceHandler {
	v := validator.NewValidator()
	v.Register(validator.NewEstimationValidationRules()...)

	return &ServiceHandler{
		estimationSrv: estimationService,
		waitlistSrv:   waitlistService,
		validator:     v,
	}
}

// Routes mounts every API endpoint on r.
func (h *ServiceHandler) Routes(r chi.Router) {
	r.Get("/api/health", h.Health)
	r.Post("/api/waitlist", h.JoinWaitlist)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/estimation", h.GetEstimation)
		r.Post("/estimation", h.CalculateEstimation)
		r.Get("/profiles", h.ListProfiles)
		r.Get("/info", h.GetInfo)
	})
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	_ = render.Render(w, r, api.Error{Message: message, RequestId: requestid.FromContextPtr(r.Context())})
}

func renderOK(w http.ResponseWriter, r *http.Request, reply render.Renderer) {
	render.Status(r, http.StatusOK)
	_ = render.Render(w, r, reply)
}
