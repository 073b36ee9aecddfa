// Package eta fits an individual patient's random-effect vector from
// measured samples (the a-posteriori maximum-a-posteriori estimate) and
// applies a fitted eta to a parameter's nominal value according to its
// variability type. It corresponds to the original's
// APosterioriEtasCalculator, collapsed from a single-method class into a
// package of functions since it carries no state across calls.
//
// Package eta does not itself run the forward PK simulation: the caller
// (the concentration package) supplies a Predictor closure that maps an
// eta vector to predicted concentrations at the sample times, keeping
// eta a leaf package alongside concentration rather than depending on it.
package eta
