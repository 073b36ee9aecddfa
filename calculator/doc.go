// Package calculator implements the intake interval calculators: analytical
// closed-form solutions and RK4 integrators for 1-, 2-, and 3-compartment
// linear PK models across bolus, infusion, extravascular, and
// extravascular-with-lag routes, plus nonstandard absorption kinetics
// (gamma-distributed absorption, Erlang transit chains) via RK4 only.
//
// Every calculator implements Calculator. Concrete calculators are reached
// either directly (e.g. NewOneCompartmentExtraLagMicro) or through the
// Resolve registry keyed by (compartments, AbsorptionModel, micro/macro),
// mirroring the registration pattern the teacher uses in sim/latency and
// sim/kv to keep the combinatorial calculator grid open for extension.
package calculator
