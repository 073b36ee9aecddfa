package calculator

import (
	"math"

	"github.com/pkcore/pkcore/model"
)

// Residuals holds one scalar per compartment, either at the start
// (inResiduals) or end (outResiduals) of an interval. The bolus, infusion
// and gamma-absorption calculators carry compartment amounts; the
// extravascular(-with-lag) and multi-compartment RK4 families carry
// concentrations.
type Residuals []float64

// Concentrations holds, per compartment, the concentration at each
// evaluated time point: Concentrations[compartment][timeIndex].
type Concentrations [][]float64

// Calculator is the per-intake contract spec §4.1 describes: given an
// intake, its evaluated parameters, and the residuals carried in from the
// previous intake, compute either the full evaluation grid or a single
// arbitrary-offset point, plus the residuals to chain into the next intake.
type Calculator interface {
	// RequiredParameters returns the ordered parameter ids this
	// calculator needs (e.g. 1-comp extra micro: {V, Ke, Ka, F}).
	RequiredParameters() []string

	// NbCompartments returns how many compartments this calculator's
	// residual/concentration vectors carry.
	NbCompartments() int

	// CalculateIntakePoints computes the concentration at NbPoints
	// evenly spaced times over the intake's interval.
	CalculateIntakePoints(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals) (Concentrations, Residuals, model.ComputingStatus, string)

	// CalculateIntakeSinglePoint computes the concentration at one
	// arbitrary offset t (hours from intake start), plus the residuals
	// the solver would have produced at end-of-interval.
	CalculateIntakeSinglePoint(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, t float64) (Concentrations, Residuals, model.ComputingStatus, string)
}

// validateParameters checks that every id in required is present and
// finite, and that every id marked true in strictlyPositive is > 0; ids
// not marked there get no sign check. Returns a diagnostic string on
// failure.
func validateParameters(parameters map[string]float64, required []string, strictlyPositive map[string]bool) (map[string]float64, string, bool) {
	values := make(map[string]float64, len(required))
	for _, id := range required {
		v, ok := parameters[id]
		if !ok {
			return nil, "missing required parameter " + id, false
		}
		if isNaNOrInf(v) {
			return nil, "parameter " + id + " is not finite", false
		}
		values[id] = v
		if strictlyPositive[id] && v <= 0 {
			return nil, "parameter " + id + " must be strictly positive", false
		}
	}
	return values, "", true
}

func isNaNOrInf(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
