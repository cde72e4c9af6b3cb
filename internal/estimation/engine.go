package estimation

import "fmt"

// Engine orchestrates Calculator objects and aggregates their results
type Engine struct {
	calculators []Calculator
}

// NewEngine creates a new Engine with no calculators registered.
func NewEngine() *Engine {
	return &Engine{
		calculators: make([]Calculator, 0),
	}
}

// Register adds a Calculator to participate in the estimation.
// Calculators are executed in the order they are registered.
// Register panics if a calculator with the same Name() is already registered,
// as duplicate names would silently overwrite results in Run.
// Register must not be called concurrently with Run.
func (e *Engine) Register(c Calculator) {
	for _, existing := range e.calculators {
		if existing.Name() == c.Name() {
			panic(fmt.Sprintf("estimation: calculator %q already registered", c.Name()))
		}
	}
	e.calculators = append(e.calculators, c)
}

// Calculators returns the registered calculator names in execution order.
func (e *Engine) Calculators() []string {
	names := make([]string, 0, len(e.calculators))
	for _, c := range e.calculators {
		names = append(names, c.Name())
	}
	return names
}

// Run executes all registered calculators against the provided params.
// Later params with the same key override earlier ones.
func (e *Engine) Run(inputs []Param) Report {
	paramMap := make(map[string]Param, len(inputs))
	for _, p := range inputs {
		paramMap[p.Key] = p
	}

	report := Report{
		Output: Output{
			SpeedMultiplier:         NotApplicable(),
			PaybackYears:            NotApplicable(),
			PesticideSavedByUsageKg: NotApplicable(),
		},
		Breakdown: make(map[string]Estimation, len(e.calculators)),
	}
	for _, calc := range e.calculators {
		est, err := calc.Calculate(paramMap, &report.Output)
		if err != nil {
			report.Breakdown[calc.Name()] = Estimation{
				Reason: fmt.Sprintf("Error: %v", err),
			}
			continue
		}
		report.Breakdown[calc.Name()] = est
	}
	return report
}
