// Package estimation defines a pluggable savings and coverage calculator for weeding robots.
//
// Each part of the calculation (coverage, costs, payback, environmental impact) is encapsulated in one
// specific Calculator, and calculation results are aggregated by the Engine into a single Output.
// Calculators are pure: they read raw Params and immutable Profile settings, never fail on bad input
// and keep no state between runs, so one Engine can serve concurrent callers.
package estimation
