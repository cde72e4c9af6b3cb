package calculators

import (
	"math"
	"testing"

	"github.com/robotnik-ag/robotnik/internal/estimation"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestComputeCoverage_WorkedExample(t *testing.T) {
	t.Parallel()
	cov := ComputeCoverage(30, 1, estimation.ROIProfile())

	if cov.RobotDaysNeeded != 11 {
		t.Errorf("expected 11 robot days, got %d", cov.RobotDaysNeeded)
	}
	if cov.ManualDaysNeeded != 30 {
		t.Errorf("expected 30 manual days, got %d", cov.ManualDaysNeeded)
	}
	speed, ok := cov.SpeedMultiplier.Get()
	if !ok || !approx(speed, 30.0/11.0) {
		t.Errorf("expected speed multiplier 30/11, got %v", cov.SpeedMultiplier)
	}
	if cov.RobotShiftsNeeded != 11 {
		t.Errorf("expected 11 shifts, got %d", cov.RobotShiftsNeeded)
	}
	// 30 / 2.9 * 8 = 82.76 hours
	if cov.RobotHoursNeeded != 83 {
		t.Errorf("expected 83 hours, got %d", cov.RobotHoursNeeded)
	}
}

func TestComputeCoverage_CeilingFormula(t *testing.T) {
	t.Parallel()
	p := estimation.ROIProfile()
	for _, land := range []float64{0.5, 1, 2.9, 5.8, 17, 100, 1234.5} {
		for _, robots := range []float64{1, 2, 3, 7, 50} {
			cov := ComputeCoverage(land, robots, p)
			want := int(math.Ceil(land / (robots * p.Constants.RobotCapacityPerDay)))
			if cov.RobotDaysNeeded != want {
				t.Errorf("land=%v robots=%v: expected %d robot days, got %d", land, robots, want, cov.RobotDaysNeeded)
			}
		}
	}
}

func TestComputeCoverage_NoWork(t *testing.T) {
	t.Parallel()
	cov := ComputeCoverage(0, 3, estimation.ROIProfile())

	if cov.RobotDaysNeeded != 0 || cov.ManualDaysNeeded != 0 {
		t.Errorf("expected 0/0 days, got %d/%d", cov.RobotDaysNeeded, cov.ManualDaysNeeded)
	}
	if cov.SpeedMultiplier.Applicable() {
		t.Errorf("expected speed multiplier not applicable, got %v", cov.SpeedMultiplier)
	}
	if cov.RobotShiftsNeeded != 0 || cov.RobotHoursNeeded != 0 {
		t.Errorf("expected no shifts or hours, got %d/%d", cov.RobotShiftsNeeded, cov.RobotHoursNeeded)
	}
}

func TestComputeCoverage_InvalidInputsUseDefaults(t *testing.T) {
	t.Parallel()
	p := estimation.ROIProfile()
	tests := []struct {
		name       string
		land       float64
		robots     float64
		wantLand   float64
		wantRobots int
	}{
		{"negative land", -5, 2, 30, 2},
		{"nan land", math.NaN(), 2, 30, 2},
		{"infinite land", math.Inf(1), 2, 30, 2},
		{"zero robots", 10, 0, 10, 1},
		{"negative robots", 10, -3, 10, 1},
		{"fractional robots", 10, 2.5, 10, 1},
		{"nan robots", 10, math.NaN(), 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cov := ComputeCoverage(tt.land, tt.robots, p)
			if cov.LandSize != tt.wantLand || cov.RobotCount != tt.wantRobots {
				t.Errorf("expected land=%v robots=%d, got land=%v robots=%d", tt.wantLand, tt.wantRobots, cov.LandSize, cov.RobotCount)
			}
		})
	}
}

func TestComputeCoverage_ZeroCapacity(t *testing.T) {
	t.Parallel()
	p := estimation.ROIProfile()
	p.Constants.RobotCapacityPerDay = 0
	p.Constants.HumanCapacityPerDay = 0
	p.Constants.RobotCapacityPerShift = 0

	cov := ComputeCoverage(10, 1, p)
	if cov.RobotDaysNeeded != 1 {
		t.Errorf("expected 1 robot day when there is work but no capacity, got %d", cov.RobotDaysNeeded)
	}
	if cov.ManualDaysNeeded != 0 {
		t.Errorf("expected 0 manual days without human capacity, got %d", cov.ManualDaysNeeded)
	}
	if v, ok := cov.SpeedMultiplier.Get(); !ok || v != 0 {
		t.Errorf("expected speed multiplier 0, got %v", cov.SpeedMultiplier)
	}
	if cov.RobotShiftsNeeded != 0 || cov.RobotHoursNeeded != 0 {
		t.Errorf("expected no shifts without shift capacity, got %d/%d", cov.RobotShiftsNeeded, cov.RobotHoursNeeded)
	}
}

func TestComputeCoverage_MonotonicInRobotCount(t *testing.T) {
	t.Parallel()
	p := estimation.ROIProfile()
	for _, land := range []float64{0, 1, 30, 250, 10000} {
		prevDays := math.MaxInt
		prevCost := math.Inf(1)
		for robots := 1; robots <= 40; robots++ {
			cov := ComputeCoverage(land, float64(robots), p)
			cost := ComputeCosts(cov.RobotDaysNeeded, cov.ManualDaysNeeded, p.Constants).RobotCostPerSeason
			if cov.RobotDaysNeeded > prevDays {
				t.Errorf("land=%v: robot days grew from %d to %d at %d robots", land, prevDays, cov.RobotDaysNeeded, robots)
			}
			if cost > prevCost {
				t.Errorf("land=%v: robot cost grew from %v to %v at %d robots", land, prevCost, cost, robots)
			}
			prevDays, prevCost = cov.RobotDaysNeeded, cost
		}
	}
}

func TestCoverageCalculator_NameAndKeys(t *testing.T) {
	t.Parallel()
	calc := NewCoverage()

	if calc.Name() != "Coverage" {
		t.Errorf("unexpected name %q", calc.Name())
	}
	keys := calc.Keys()
	if len(keys) != 2 || keys[0] != ParamLandSize || keys[1] != ParamRobotCount {
		t.Errorf("unexpected keys %v", keys)
	}
}

func TestCoverageCalculator_Calculate(t *testing.T) {
	t.Parallel()
	calc := NewCoverage()
	params := map[string]estimation.Param{
		ParamLandSize:   {Key: ParamLandSize, Value: "58"},
		ParamRobotCount: {Key: ParamRobotCount, Value: 2},
	}

	var out estimation.Output
	result, err := calc.Calculate(params, &out)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	// 58 / (2 * 2.9) = 10 days
	if out.RobotDaysNeeded != 10 {
		t.Errorf("expected 10 robot days, got %d", out.RobotDaysNeeded)
	}
	if out.ManualDaysNeeded != 58 {
		t.Errorf("expected 58 manual days, got %d", out.ManualDaysNeeded)
	}
	if out.LandSize != 58 || out.RobotCount != 2 {
		t.Errorf("unexpected effective inputs %v/%d", out.LandSize, out.RobotCount)
	}
	if result.Reason == "" {
		t.Error("expected non-empty reason")
	}
	if len(result.Defaulted) != 0 {
		t.Errorf("expected no defaulted params, got %v", result.Defaulted)
	}
}

func TestCoverageCalculator_Calculate_DefaultsReported(t *testing.T) {
	t.Parallel()
	calc := NewCoverage(WithDefaults(estimation.Defaults{LandSize: 12, RobotCount: 3}))
	params := map[string]estimation.Param{
		ParamLandSize:   {Key: ParamLandSize, Value: "abc"},
		ParamRobotCount: {Key: ParamRobotCount, Value: "2.5"},
	}

	var out estimation.Output
	result, err := calc.Calculate(params, &out)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if out.LandSize != 12 || out.RobotCount != 3 {
		t.Errorf("expected defaults 12/3, got %v/%d", out.LandSize, out.RobotCount)
	}
	if len(result.Defaulted) != 2 || result.Defaulted[0] != ParamLandSize || result.Defaulted[1] != ParamRobotCount {
		t.Errorf("expected both params defaulted, got %v", result.Defaulted)
	}
}

func TestValidRobotCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v    float64
		want bool
	}{
		{1, true},
		{3e9, true},
		{1 << 53, true},
		{1 << 54, false},
		{0, false},
		{2.5, false},
		{-1, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}
	for _, tt := range tests {
		if got := ValidRobotCount(tt.v); got != tt.want {
			t.Errorf("ValidRobotCount(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestCoverageCalculator_Calculate_LargeFleetKept(t *testing.T) {
	t.Parallel()
	calc := NewCoverage()
	params := map[string]estimation.Param{
		ParamLandSize:   {Key: ParamLandSize, Value: 1e12},
		ParamRobotCount: {Key: ParamRobotCount, Value: 3e9},
	}

	var out estimation.Output
	result, err := calc.Calculate(params, &out)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if out.RobotCount != 3000000000 {
		t.Errorf("expected 3000000000 robots, got %d", out.RobotCount)
	}
	for _, key := range result.Defaulted {
		if key == ParamRobotCount {
			t.Errorf("expected robot count to be used as given, got defaulted %v", result.Defaulted)
		}
	}
}

func TestCoverageCalculator_WithConstants(t *testing.T) {
	t.Parallel()
	c := estimation.StandardConstants()
	c.RobotCapacityPerDay = 10
	calc := NewCoverage(WithConstants(c))

	var out estimation.Output
	if _, err := calc.Calculate(map[string]estimation.Param{
		ParamLandSize: {Key: ParamLandSize, Value: 25.0},
	}, &out); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if out.RobotDaysNeeded != 3 {
		t.Errorf("expected 3 robot days, got %d", out.RobotDaysNeeded)
	}
}
