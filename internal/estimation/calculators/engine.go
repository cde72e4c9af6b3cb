package calculators

import "github.com/robotnik-ag/robotnik/internal/estimation"

// NewEngine returns an Engine with every calculator registered for profile p.
func NewEngine(p estimation.Profile) *estimation.Engine {
	engine := estimation.NewEngine()
	engine.Register(NewCoverage(WithProfile(p)))
	engine.Register(NewCosts(WithProfile(p)))
	engine.Register(NewPayback(WithProfile(p)))
	engine.Register(NewEnvironmentalImpact(WithProfile(p)))
	engine.Register(NewPesticideUsage(WithProfile(p)))
	return engine
}
