package calculators

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/robotnik-ag/robotnik/internal/estimation"
)

// Param keys understood by the calculators.
const (
	// ParamLandSize area to treat, in decares.
	ParamLandSize = "landSize"
	// ParamRobotCount number of robot units.
	ParamRobotCount = "robotCount"
	// ParamPesticideUsageRate current pesticide use in kg per decare.
	ParamPesticideUsageRate = "pesticideUsageRate"
)

func getFloat(p estimation.Param) (float64, error) {
	switch v := p.Value.(type) {
	case float64:
		return v, nil // JSON default
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		// form and query values arrive as text
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("param %s is not a number: %q", p.Key, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("param %s is not a number (type: %T)", p.Key, p.Value)
	}
}

// ValidLandSize reports whether v can be used as a land size.
func ValidLandSize(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// maxRobotCount is the largest count every whole float64 below it can represent exactly.
const maxRobotCount = 1 << 53

// ValidRobotCount reports whether v is a finite positive whole number.
func ValidRobotCount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 1 && v == math.Trunc(v) && v <= maxRobotCount
}

// SanitizeLandSize returns v, or def when v is not a valid land size.
func SanitizeLandSize(v, def float64) float64 {
	if ValidLandSize(v) {
		return v
	}
	return def
}

// SanitizeRobotCount returns v as an int, or def when v is not a valid robot count.
func SanitizeRobotCount(v float64, def int) int {
	if ValidRobotCount(v) {
		return int(v)
	}
	return def
}

// landSize resolves the land size param; the bool reports whether the default was used.
func landSize(params map[string]estimation.Param, def float64) (float64, bool) {
	p, ok := params[ParamLandSize]
	if !ok {
		return def, true
	}
	v, err := getFloat(p)
	if err != nil || !ValidLandSize(v) {
		return def, true
	}
	return v, false
}

// robotCount resolves the robot count param; the bool reports whether the default was used.
func robotCount(params map[string]estimation.Param, def int) (int, bool) {
	p, ok := params[ParamRobotCount]
	if !ok {
		return def, true
	}
	v, err := getFloat(p)
	if err != nil || !ValidRobotCount(v) {
		return def, true
	}
	return int(v), false
}

// ceilInt rounds a non-negative quantity up to a whole number, saturating at MaxInt.
func ceilInt(v float64) int {
	c := math.Ceil(v)
	if c >= math.MaxInt {
		return math.MaxInt
	}
	return int(c)
}

// roundInt rounds a non-negative quantity half away from zero, saturating at MaxInt.
func roundInt(v float64) int {
	r := math.Round(v)
	if r >= math.MaxInt {
		return math.MaxInt
	}
	return int(r)
}

// Option configures the settings shared by all calculators.
type Option func(*settings)

type settings struct {
	constants estimation.Constants
	defaults  estimation.Defaults
}

// WithProfile uses both the constants and the defaults of p.
func WithProfile(p estimation.Profile) Option {
	return func(s *settings) {
		s.constants = p.Constants
		s.defaults = p.Defaults
	}
}

// WithConstants overrides the constants only.
func WithConstants(c estimation.Constants) Option {
	return func(s *settings) {
		s.constants = c
	}
}

// WithDefaults overrides the input defaults only.
func WithDefaults(d estimation.Defaults) Option {
	return func(s *settings) {
		s.defaults = d
	}
}

func newSettings(opts []Option) settings {
	p := estimation.ROIProfile()
	s := settings{constants: p.Constants, defaults: p.Defaults}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func defaulted(flags map[string]bool) []string {
	var keys []string
	for _, key := range []string{ParamLandSize, ParamRobotCount, ParamPesticideUsageRate} {
		if flags[key] {
			keys = append(keys, key)
		}
	}
	return keys
}
