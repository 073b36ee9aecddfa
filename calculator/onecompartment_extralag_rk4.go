package calculator

import "github.com/pkcore/pkcore/model"

// OneCompartmentExtraLagRK4 integrates the same two-compartment
// extravascular-with-lag system as OneCompartmentExtraLagMicro, but
// numerically via RK4 rather than the closed form. It exists to
// cross-validate the analytical calculator (the two must agree to
// integration tolerance) and as the template nonstandard-kinetics
// calculators (gamma absorption, Erlang transit) follow, ported from the
// original's rkonecompartmentextra.h derive()/initConcentrations()/
// addFixedValue() structure.
type OneCompartmentExtraLagRK4 struct{}

func NewOneCompartmentExtraLagRK4() *OneCompartmentExtraLagRK4 { return &OneCompartmentExtraLagRK4{} }

func (c *OneCompartmentExtraLagRK4) RequiredParameters() []string {
	return []string{"Ke", "V", "Ka", "F", "Tlag"}
}

func (c *OneCompartmentExtraLagRK4) NbCompartments() int { return 2 }

func (c *OneCompartmentExtraLagRK4) solve(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, outputTimes []float64) ([][]float64, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true, "Ka": true, "Ke": true})
	if !ok {
		return nil, model.BadParameters, msg
	}
	if len(inResiduals) < 2 {
		return nil, model.BadConcentration, "extravascular-with-lag RK4 calculator requires two residuals"
	}
	ke, v, ka, f, tlag := values["Ke"], values["V"], values["Ka"], values["F"], values["Tlag"]
	if tlag < 0 {
		tlag = 0
	}
	delivered := false

	derive := func(t float64, s []float64, dcdt []float64) {
		dcdt[0] = ka*s[1] - ke*s[0]
		dcdt[1] = -ka * s[1]
	}
	fixedValue := func(t float64, s []float64) {
		if !delivered && t >= tlag {
			s[1] += f * intake.Dose / v
			delivered = true
		}
	}
	initial := []float64{inResiduals[0], inResiduals[1]}
	// A Tlag of zero is handled naturally: fixedValue's t >= tlag check
	// fires on its very first call at t=0.
	states := RK4Solve(initial, derive, fixedValue, outputTimes, defaultRK4MaxStep)
	return states, model.Ok, ""
}

func (c *OneCompartmentExtraLagRK4) CalculateIntakePoints(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals) (Concentrations, Residuals, model.ComputingStatus, string) {
	times := PertinentTimes(intake.IntervalHours(), intake.NbPoints, parameters["Tlag"])
	states, status, msg := c.solve(intake, parameters, inResiduals, times)
	if status != model.Ok {
		return nil, nil, status, msg
	}
	central := make([]float64, len(states))
	depot := make([]float64, len(states))
	for i, s := range states {
		central[i] = s[0]
		depot[i] = s[1]
	}
	last := states[len(states)-1]
	return Concentrations{central, depot}, Residuals{last[0], last[1]}, model.Ok, ""
}

func (c *OneCompartmentExtraLagRK4) CalculateIntakeSinglePoint(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, t float64) (Concentrations, Residuals, model.ComputingStatus, string) {
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
	return Concentrations{{point[0]}, {point[1]}}, Residuals{last[0], last[1]}, model.Ok, ""
}
