package estimation

// Calculator encapsulates one specific part of the estimation (e.g. "coverage", "payback").
type Calculator interface {
	// Name returns the human-readable name of this calculator, used as the key in the Report breakdown.
	Name() string
	// Keys returns the list of Param keys this calculator reads.
	Keys() []string
	// Calculate fills its part of out from the provided params and explains how it did so.
	Calculate(params map[string]Param, out *Output) (Estimation, error)
}

// Param represents one raw input for a Calculator. Value may be missing, of the wrong type
// or out of range; calculators substitute configured defaults in that case.
type Param struct {
	Key   string      // Unique identifier (e.g., "landSize")
	Value interface{} // The raw value (e.g., 30, "30", 2.5)
}

// Estimation explains the contribution of one Calculator.
type Estimation struct {
	Reason string `json:"reason"`
	// Defaulted lists the param keys that were replaced by their configured default.
	Defaulted []string `json:"defaulted,omitempty"`
}

// Output holds every derived metric. Values are full precision; rounding for display
// belongs to the presentation layer.
type Output struct {
	// Effective inputs after default substitution.
	LandSize   float64 `json:"landSize"`
	RobotCount int     `json:"robotCount"`

	RobotDaysNeeded   int   `json:"robotDaysNeeded"`
	ManualDaysNeeded  int   `json:"manualDaysNeeded"`
	RobotShiftsNeeded int   `json:"robotShiftsNeeded"`
	RobotHoursNeeded  int   `json:"robotHoursNeeded"`
	SpeedMultiplier   Ratio `json:"speedMultiplier"`

	RobotCostPerSeason  float64 `json:"robotCostPerSeason"`
	ManualCostPerSeason float64 `json:"manualCostPerSeason"`
	SavingsPerSeason    float64 `json:"savingsPerSeason"`
	PaybackYears        Ratio   `json:"paybackYears"`

	TotalAreaCoveredPerSeason float64 `json:"totalAreaCoveredPerSeason"`
	PesticidesSavedKg         float64 `json:"pesticidesSavedKg"`
	HumansLiberated           int     `json:"humansLiberated"`

	// PesticideSavedByUsageKg is only applicable when a usage rate was supplied.
	PesticideSavedByUsageKg Ratio `json:"pesticideSavedByUsageKg"`
}

// Report is the result of one Engine run.
type Report struct {
	Output    Output                `json:"output"`
	Breakdown map[string]Estimation `json:"breakdown"`
}
