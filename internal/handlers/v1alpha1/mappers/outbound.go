package mappers

import (
	api "github.com/robotnik-ag/robotnik/api/v1alpha1"
	"github.com/robotnik-ag/robotnik/internal/estimation"
	"github.com/robotnik-ag/robotnik/internal/service"
)

// EstimationResultToAPI echoes the raw params next to the computed report.
func EstimationResultToAPI(result service.EstimationResult, params []estimation.Param) api.EstimationResponse {
	inputs := make(map[string]interface{}, len(params))
	for _, p := range params {
		inputs[p.Key] = p.Value
	}

	breakdown := result.Report.Breakdown
	if breakdown == nil {
		breakdown = map[string]estimation.Estimation{}
	}

	return api.EstimationResponse{
		Profile:   result.Profile,
		Inputs:    inputs,
		Output:    result.Report.Output,
		Display:   result.Display,
		Breakdown: breakdown,
	}
}

func ProfilesToAPI(profiles []estimation.Profile, fallback string) api.ProfileList {
	list := make(api.ProfileList, 0, len(profiles))
	for _, p := range profiles {
		list = append(list, api.Profile{
			Name:        p.Name,
			Description: p.Description,
			Default:     p.Name == fallback,
			Constants:   p.Constants,
			Defaults:    p.Defaults,
		})
	}
	return list
}

func SignupResultToAPI(result service.SignupResult) api.WaitlistResponse {
	return api.WaitlistResponse{
		Success:   true,
		Message:   service.WaitlistThankYou,
		EmailSent: result.Notified,
	}
}
