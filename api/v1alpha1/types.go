// Package v1alpha1 holds the wire types of the RobotNik HTTP API.
package v1alpha1

import (
	"time"

	"github.com/robotnik-ag/robotnik/internal/estimation"
	"github.com/robotnik-ag/robotnik/internal/presenter"
)

// Error is returned with every 4xx and 5xx response.
type Error struct {
	Message   string  `json:"error"`
	RequestId *string `json:"requestId,omitempty"`
}

// EstimationRequest is the body of POST /api/v1/estimation.
type EstimationRequest = presenter.CalculateRequest

type EstimationResponse struct {
	Profile   string                           `json:"profile"`
	Inputs    map[string]interface{}           `json:"inputs"`
	Output    estimation.Output                `json:"output"`
	Display   presenter.Display                `json:"display"`
	Breakdown map[string]estimation.Estimation `json:"breakdown"`
}

type Profile struct {
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Default     bool                 `json:"default"`
	Constants   estimation.Constants `json:"constants"`
	Defaults    estimation.Defaults  `json:"defaults"`
}

type ProfileList []Profile

// WaitlistSignup is the body of POST /api/waitlist. FarmSize is free text, usually hectares.
type WaitlistSignup struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	FarmSize   string `json:"farm_size"`
	Challenges string `json:"challenges"`
}

type WaitlistResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EmailSent bool   `json:"email_sent"`
}

type Health struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

type Info struct {
	VersionName string `json:"versionName"`
	GitCommit   string `json:"gitCommit"`
}
