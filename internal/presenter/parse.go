// Package presenter sits between raw user input and the estimation engine. It turns text fields into
// engine params and engine output into display strings.
package presenter

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/robotnik-ag/robotnik/internal/estimation"
	"github.com/robotnik-ag/robotnik/internal/estimation/calculators"
)

// CalculateRequest is the JSON body accepted by the estimation endpoint. Nil fields are missing
// and resolve to the profile defaults.
type CalculateRequest struct {
	Profile            string   `json:"profile,omitempty" validate:"omitempty,profile_name"`
	LandSize           *float64 `json:"landSize,omitempty"`
	RobotCount         *float64 `json:"robotCount,omitempty"`
	PesticideUsageRate *float64 `json:"pesticideUsageRate,omitempty"`
}

// ParseNumber parses a text field. Empty, garbage and non-finite input are reported as missing.
func ParseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParamsFromValues reads the engine inputs from query or form values.
func ParamsFromValues(values url.Values) []estimation.Param {
	params := make([]estimation.Param, 0, 3)
	for _, key := range []string{calculators.ParamLandSize, calculators.ParamRobotCount, calculators.ParamPesticideUsageRate} {
		if v, ok := ParseNumber(values.Get(key)); ok {
			params = append(params, estimation.Param{Key: key, Value: v})
		}
	}
	return params
}

func ParamsFromRequest(req CalculateRequest) []estimation.Param {
	params := make([]estimation.Param, 0, 3)
	add := func(key string, v *float64) {
		if v != nil {
			params = append(params, estimation.Param{Key: key, Value: *v})
		}
	}
	add(calculators.ParamLandSize, req.LandSize)
	add(calculators.ParamRobotCount, req.RobotCount)
	add(calculators.ParamPesticideUsageRate, req.PesticideUsageRate)
	return params
}
