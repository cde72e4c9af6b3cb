// Package calculators provides concrete Calculator implementations for the estimation engine.
//
// Each calculator derives one group of metrics (coverage, costs, payback, environmental impact,
// pesticide usage) from the raw land size and robot count. The underlying formulas are exported as
// pure Compute* functions; the Calculator wrappers resolve raw estimation.Param values, substitute
// profile defaults for invalid input and record how the result was obtained.
package calculators
