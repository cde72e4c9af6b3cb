package calculators

import (
	"fmt"

	"github.com/robotnik-ag/robotnik/internal/estimation"
)

// Costs are per season, in the currency of the profile rates.
type Costs struct {
	RobotCostPerSeason  float64
	ManualCostPerSeason float64
	// SavingsPerSeason is negative when manual weeding is cheaper.
	SavingsPerSeason float64
}

// ComputeCosts annualizes the per-session cost of robot and manual weeding.
func ComputeCosts(robotDaysNeeded, manualDaysNeeded int, c estimation.Constants) Costs {
	robot := float64(robotDaysNeeded) * c.RobotOperatingCostPerDay * c.SessionsPerSeason
	manual := float64(manualDaysNeeded) * c.WorkerWagePerDay * c.SessionsPerSeason
	return Costs{
		RobotCostPerSeason:  robot,
		ManualCostPerSeason: manual,
		SavingsPerSeason:    manual - robot,
	}
}

// ComputePayback returns the years needed for the savings to repay the robots.
// It is not applicable unless the season brings positive savings.
func ComputePayback(robotCount int, savingsPerSeason float64, c estimation.Constants) estimation.Ratio {
	if !(savingsPerSeason > 0) {
		return estimation.NotApplicable()
	}
	return estimation.Some(float64(robotCount) * c.RobotPrice / savingsPerSeason)
}

// Compile-time assertion that CostsCalculator implements the Calculator interface.
var _ estimation.Calculator = (*CostsCalculator)(nil)

// CostsCalculator estimates seasonal robot and manual costs and the resulting savings.
type CostsCalculator struct {
	settings
}

func NewCosts(opts ...Option) *CostsCalculator {
	return &CostsCalculator{settings: newSettings(opts)}
}

func (c *CostsCalculator) Name() string { return "Costs" }

func (c *CostsCalculator) Keys() []string {
	return []string{ParamLandSize, ParamRobotCount}
}

// Calculate derives the days needed from params itself, so it does not depend on the
// Coverage calculator having run first.
func (c *CostsCalculator) Calculate(params map[string]estimation.Param, out *estimation.Output) (estimation.Estimation, error) {
	land, landDefaulted := landSize(params, c.defaults.LandSize)
	robots, robotsDefaulted := robotCount(params, c.defaults.RobotCount)
	cov := coverage(land, robots, c.constants)

	costs := ComputeCosts(cov.RobotDaysNeeded, cov.ManualDaysNeeded, c.constants)
	out.RobotCostPerSeason = costs.RobotCostPerSeason
	out.ManualCostPerSeason = costs.ManualCostPerSeason
	out.SavingsPerSeason = costs.SavingsPerSeason

	return estimation.Estimation{
		Reason: fmt.Sprintf("%d sessions: robot %d days @ %g, manual %d days @ %g",
			int(c.constants.SessionsPerSeason), cov.RobotDaysNeeded, c.constants.RobotOperatingCostPerDay,
			cov.ManualDaysNeeded, c.constants.WorkerWagePerDay),
		Defaulted: defaulted(map[string]bool{ParamLandSize: landDefaulted, ParamRobotCount: robotsDefaulted}),
	}, nil
}

// Compile-time assertion that PaybackCalculator implements the Calculator interface.
var _ estimation.Calculator = (*PaybackCalculator)(nil)

// PaybackCalculator estimates how many seasons of savings repay the purchase price.
type PaybackCalculator struct {
	settings
}

func NewPayback(opts ...Option) *PaybackCalculator {
	return &PaybackCalculator{settings: newSettings(opts)}
}

func (c *PaybackCalculator) Name() string { return "Payback" }

func (c *PaybackCalculator) Keys() []string {
	return []string{ParamLandSize, ParamRobotCount}
}

func (c *PaybackCalculator) Calculate(params map[string]estimation.Param, out *estimation.Output) (estimation.Estimation, error) {
	land, landDefaulted := landSize(params, c.defaults.LandSize)
	robots, robotsDefaulted := robotCount(params, c.defaults.RobotCount)
	cov := coverage(land, robots, c.constants)
	costs := ComputeCosts(cov.RobotDaysNeeded, cov.ManualDaysNeeded, c.constants)

	out.PaybackYears = ComputePayback(robots, costs.SavingsPerSeason, c.constants)

	reason := fmt.Sprintf("%d robots @ %g / %.2f savings per season", robots, c.constants.RobotPrice, costs.SavingsPerSeason)
	if !out.PaybackYears.Applicable() {
		reason = "no positive savings per season"
	}
	return estimation.Estimation{
		Reason:    reason,
		Defaulted: defaulted(map[string]bool{ParamLandSize: landDefaulted, ParamRobotCount: robotsDefaulted}),
	}, nil
}
