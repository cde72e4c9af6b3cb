package mappers

import (
	api "github.com/robotnik-ag/robotnik/api/v1alpha1"
	"github.com/robotnik-ag/robotnik/internal/service"
)

// SignupFormApi converts the request body into a trimmed form ready for validation.
func SignupFormApi(body api.WaitlistSignup) service.SignupForm {
	return service.SignupForm{
		Name:       body.Name,
		Email:      body.Email,
		FarmSize:   body.FarmSize,
		Challenges: body.Challenges,
	}.Trim()
}
