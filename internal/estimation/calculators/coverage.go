package calculators

import (
	"fmt"

	"github.com/robotnik-ag/robotnik/internal/estimation"
)

// Coverage is the time needed to treat a plot once.
type Coverage struct {
	LandSize          float64
	RobotCount        int
	RobotDaysNeeded   int
	ManualDaysNeeded  int
	RobotShiftsNeeded int
	RobotHoursNeeded  int
	SpeedMultiplier   estimation.Ratio
}

// ComputeCoverage returns the robot and manual days needed to treat landSize decares.
// Invalid inputs are replaced by the profile defaults. Days always round up: a partial
// day still costs a full one.
func ComputeCoverage(landSize, robotCount float64, p estimation.Profile) Coverage {
	return coverage(SanitizeLandSize(landSize, p.Defaults.LandSize), SanitizeRobotCount(robotCount, p.Defaults.RobotCount), p.Constants)
}

func coverage(land float64, robots int, c estimation.Constants) Coverage {
	res := Coverage{
		LandSize:        land,
		RobotCount:      robots,
		SpeedMultiplier: estimation.NotApplicable(),
	}
	workPresent := land > 0
	if !workPresent {
		return res
	}

	totalRobotCapacity := float64(robots) * c.RobotCapacityPerDay
	if totalRobotCapacity > 0 {
		res.RobotDaysNeeded = ceilInt(land / totalRobotCapacity)
	} else {
		// no capacity but work to do: count a single day rather than dividing by zero
		res.RobotDaysNeeded = 1
	}

	if c.HumanCapacityPerDay > 0 {
		res.ManualDaysNeeded = ceilInt(land / c.HumanCapacityPerDay)
	}

	if res.RobotDaysNeeded > 0 {
		res.SpeedMultiplier = estimation.Some(float64(res.ManualDaysNeeded) / float64(res.RobotDaysNeeded))
	}

	if shiftCapacity := float64(robots) * c.RobotCapacityPerShift; shiftCapacity > 0 {
		shifts := land / shiftCapacity
		res.RobotShiftsNeeded = ceilInt(shifts)
		res.RobotHoursNeeded = ceilInt(shifts * c.ShiftHours)
	}
	return res
}

// Compile-time assertion that CoverageCalculator implements the Calculator interface.
var _ estimation.Calculator = (*CoverageCalculator)(nil)

// CoverageCalculator estimates robot and manual days for one treatment session.
type CoverageCalculator struct {
	settings
}

// NewCoverage creates a CoverageCalculator using ROIProfile unless overridden by options.
func NewCoverage(opts ...Option) *CoverageCalculator {
	return &CoverageCalculator{settings: newSettings(opts)}
}

func (c *CoverageCalculator) Name() string { return "Coverage" }

func (c *CoverageCalculator) Keys() []string {
	return []string{ParamLandSize, ParamRobotCount}
}

// Calculate fills the effective inputs, the days needed and the speed multiplier.
func (c *CoverageCalculator) Calculate(params map[string]estimation.Param, out *estimation.Output) (estimation.Estimation, error) {
	land, landDefaulted := landSize(params, c.defaults.LandSize)
	robots, robotsDefaulted := robotCount(params, c.defaults.RobotCount)

	cov := coverage(land, robots, c.constants)
	out.LandSize = cov.LandSize
	out.RobotCount = cov.RobotCount
	out.RobotDaysNeeded = cov.RobotDaysNeeded
	out.ManualDaysNeeded = cov.ManualDaysNeeded
	out.RobotShiftsNeeded = cov.RobotShiftsNeeded
	out.RobotHoursNeeded = cov.RobotHoursNeeded
	out.SpeedMultiplier = cov.SpeedMultiplier

	return estimation.Estimation{
		Reason: fmt.Sprintf("%g decares @ %.1f per robot-day x %d robots = %d days; manual @ %.1f per day = %d days",
			land, c.constants.RobotCapacityPerDay, robots, cov.RobotDaysNeeded, c.constants.HumanCapacityPerDay, cov.ManualDaysNeeded),
		Defaulted: defaulted(map[string]bool{ParamLandSize: landDefaulted, ParamRobotCount: robotsDefaulted}),
	}, nil
}
