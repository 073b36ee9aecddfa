// Package extraction builds the time series the calculator, eta, and
// percentile packages operate on: intake events expanded from a dosage
// history, covariate snapshots, consolidated parameter sets, filtered
// samples, and the calculator assigned to each intake. It corresponds to
// the original's GeneralExtractor/IntakeExtractor/ParametersExtractor/
// CovariateExtractor/SampleExtractor/IntakeToCalculatorAssociator family,
// collapsed into one package since none of those original classes carry
// state across calls - each is a pure function of its inputs here.
package extraction
