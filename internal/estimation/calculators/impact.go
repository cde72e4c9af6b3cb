package calculators

import (
	"fmt"
	"math"

	"github.com/robotnik-ag/robotnik/internal/estimation"
)

// Impact is the environmental effect of a robot fleet over one season.
type Impact struct {
	TotalAreaCoveredPerSeason float64
	PesticidesSavedKg         float64
	HumansLiberated           int
}

// ComputeEnvironmentalImpact returns the area a fleet covers in a season, the pesticide it
// replaces and the number of manual weeders it frees.
func ComputeEnvironmentalImpact(robotCount int, c estimation.Constants) Impact {
	areaPerRobotPerDay := c.RobotCapacityPerShift * c.ShiftsPerDay
	total := float64(robotCount) * areaPerRobotPerDay * c.SeasonDays

	res := Impact{
		TotalAreaCoveredPerSeason: total,
		PesticidesSavedKg:         total * c.PesticidePerArea,
	}
	if c.HumanProductivityPerShift > 0 {
		res.HumansLiberated = roundInt(float64(robotCount) * c.RobotCapacityPerShift / c.HumanProductivityPerShift)
	}
	return res
}

// ComputeUsageSavings returns the pesticide a plot stops using, given the current usage
// rate in kg per decare. A missing or invalid rate makes it not applicable.
func ComputeUsageSavings(usageRate, landSize float64) estimation.Ratio {
	if math.IsNaN(usageRate) || math.IsInf(usageRate, 0) || usageRate < 0 {
		return estimation.NotApplicable()
	}
	return estimation.Some(usageRate * landSize)
}

// Compile-time assertion that ImpactCalculator implements the Calculator interface.
var _ estimation.Calculator = (*ImpactCalculator)(nil)

type ImpactCalculator struct {
	settings
}

func NewEnvironmentalImpact(opts ...Option) *ImpactCalculator {
	return &ImpactCalculator{settings: newSettings(opts)}
}

func (c *ImpactCalculator) Name() string { return "Environmental Impact" }

func (c *ImpactCalculator) Keys() []string {
	return []string{ParamRobotCount}
}

func (c *ImpactCalculator) Calculate(params map[string]estimation.Param, out *estimation.Output) (estimation.Estimation, error) {
	robots, robotsDefaulted := robotCount(params, c.defaults.RobotCount)

	impact := ComputeEnvironmentalImpact(robots, c.constants)
	out.TotalAreaCoveredPerSeason = impact.TotalAreaCoveredPerSeason
	out.PesticidesSavedKg = impact.PesticidesSavedKg
	out.HumansLiberated = impact.HumansLiberated

	return estimation.Estimation{
		Reason: fmt.Sprintf("%d robots x %g decares x %g shifts x %g days",
			robots, c.constants.RobotCapacityPerShift, c.constants.ShiftsPerDay, c.constants.SeasonDays),
		Defaulted: defaulted(map[string]bool{ParamRobotCount: robotsDefaulted}),
	}, nil
}

// Compile-time assertion that UsageCalculator implements the Calculator interface.
var _ estimation.Calculator = (*UsageCalculator)(nil)

// UsageCalculator converts a farm's current pesticide usage rate into yearly savings.
type UsageCalculator struct {
	settings
}

func NewPesticideUsage(opts ...Option) *UsageCalculator {
	return &UsageCalculator{settings: newSettings(opts)}
}

func (c *UsageCalculator) Name() string { return "Pesticide Usage" }

func (c *UsageCalculator) Keys() []string {
	return []string{ParamPesticideUsageRate, ParamLandSize}
}

// Calculate leaves PesticideSavedByUsageKg not applicable when no usable rate is given;
// the usage rate has no default.
func (c *UsageCalculator) Calculate(params map[string]estimation.Param, out *estimation.Output) (estimation.Estimation, error) {
	land, landDefaulted := landSize(params, c.defaults.LandSize)

	p, ok := params[ParamPesticideUsageRate]
	if !ok {
		out.PesticideSavedByUsageKg = estimation.NotApplicable()
		return estimation.Estimation{Reason: "no pesticide usage rate given"}, nil
	}
	rate, err := getFloat(p)
	if err != nil {
		rate = math.NaN()
	}

	out.PesticideSavedByUsageKg = ComputeUsageSavings(rate, land)
	if !out.PesticideSavedByUsageKg.Applicable() {
		return estimation.Estimation{Reason: "invalid pesticide usage rate"}, nil
	}
	return estimation.Estimation{
		Reason:    fmt.Sprintf("%g kg per decare x %g decares", rate, land),
		Defaulted: defaulted(map[string]bool{ParamLandSize: landDefaulted}),
	}, nil
}
