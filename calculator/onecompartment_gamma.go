package calculator

import (
	"math"

	"github.com/pkcore/pkcore/model"
)

// OneCompartmentGammaMicro models absorption whose rate follows a gamma
// probability density (shape A, rate B) instead of a single first-order
// Ka, for drugs whose absorption is neither instantaneous nor a clean
// exponential. There is no closed form, so this calculator integrates via
// RK4, ported from the original's rkonecompartmentgammaextra derive():
// the depot-tracking compartment's derivative is -F*D*pdf(t), and that
// same flux (with sign flipped) feeds the central compartment net of
// first-order elimination.
type OneCompartmentGammaMicro struct{}

func NewOneCompartmentGammaMicro() *OneCompartmentGammaMicro { return &OneCompartmentGammaMicro{} }

func (c *OneCompartmentGammaMicro) RequiredParameters() []string {
	return []string{"Ke", "V", "F", "A", "B"}
}

func (c *OneCompartmentGammaMicro) NbCompartments() int { return 2 }

func gammaAbsorptionDensity(t, a, b float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(b, a) / math.Gamma(a) * math.Pow(t, a-1) * math.Exp(-b*t)
}

func (c *OneCompartmentGammaMicro) solve(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, outputTimes []float64) ([][]float64, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true, "Ke": true, "A": true, "B": true})
	if !ok {
		return nil, model.BadParameters, msg
	}
	if len(inResiduals) < 2 {
		return nil, model.BadConcentration, "gamma-absorption calculator requires two residuals"
	}
	ke, f, a, b := values["Ke"], values["F"], values["A"], values["B"]
	dose := intake.Dose

	derive := func(t float64, s []float64, dcdt []float64) {
		dcdt[1] = -f * dose * gammaAbsorptionDensity(t, a, b)
		dcdt[0] = -dcdt[1] - ke*s[0]
	}
	initial := []float64{inResiduals[0], inResiduals[1]}
	states := RK4Solve(initial, derive, nil, outputTimes, defaultRK4MaxStep)
	return states, model.Ok, ""
}

func (c *OneCompartmentGammaMicro) CalculateIntakePoints(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals) (Concentrations, Residuals, model.ComputingStatus, string) {
	v := parameters["V"]
	times := PertinentTimes(intake.IntervalHours(), intake.NbPoints)
	states, status, msg := c.solve(intake, parameters, inResiduals, times)
	if status != model.Ok {
		return nil, nil, status, msg
	}
	central := make([]float64, len(states))
	for i, s := range states {
		central[i] = s[0] / v
	}
	last := states[len(states)-1]
	return Concentrations{central}, Residuals{last[0], last[1]}, model.Ok, ""
}

func (c *OneCompartmentGammaMicro) CalculateIntakeSinglePoint(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, t float64) (Concentrations, Residuals, model.ComputingStatus, string) {
	v := parameters["V"]
	interval := intake.IntervalHours()
	outputTimes := []float64{t, interval}
	if t > interval {
		outputTimes = []float64{interval, t}
	}
	states, status, msg := c.solve(intake, parameters, inResiduals, outputTimes)
	if status != model.Ok {
		return nil, nil, status, msg
	}
	var point, last []float64
	if t > interval {
		last, point = states[0], states[1]
	} else {
		point, last = states[0], states[1]
	}
	return Concentrations{{point[0] / v}}, Residuals{last[0], last[1]}, model.Ok, ""
}
