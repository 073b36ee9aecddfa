// Package model defines the leaf domain types shared by every other pkcore
// package: the drug model and drug treatment inputs, the derived time-series
// entities the extraction pipeline produces, the computing request/response
// envelope, and the single ComputingStatus error enumeration.
//
// model imports nothing from the rest of this module, so every other
// package (calculator, extraction, eta, percentile, adjustment, and the
// root orchestrator) can depend on it without risking an import cycle —
// the dependency order is leaves first: calculator -> extraction ->
// (eta, concentration) -> (percentile, adjustment) -> orchestrator.
package model
