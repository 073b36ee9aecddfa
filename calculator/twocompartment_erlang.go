package calculator

import "github.com/pkcore/pkcore/model"

// defaultErlangTransitCompartments is the number of transit compartments
// chained between the dose compartment and the central compartment. The
// original exposes this as a compile-time template parameter; since Go
// has no equivalent, TwoCompartmentErlangMicro takes it as a runtime
// field defaulting to 4 (the original's most common instantiation).
const defaultErlangTransitCompartments = 4

// TwoCompartmentErlangMicro models a two-compartment disposition model
// fed by a chain of Erlang (gamma-shaped) transit compartments rather
// than a single first-order Ka, approximating sigmoidal absorption
// profiles. Ported from the original's rktwocompartmenterlang.h: compartment
// layout is [central, peripheral, dose, transit_1, ..., transit_N], with
// the dose injected into the dose compartment and Ktr chaining each
// transit stage to the next, finally feeding the central compartment.
type TwoCompartmentErlangMicro struct {
	NbTransit int
}

func NewTwoCompartmentErlangMicro() *TwoCompartmentErlangMicro {
	return &TwoCompartmentErlangMicro{NbTransit: defaultErlangTransitCompartments}
}

func (c *TwoCompartmentErlangMicro) transitCount() int {
	if c.NbTransit <= 0 {
		return defaultErlangTransitCompartments
	}
	return c.NbTransit
}

func (c *TwoCompartmentErlangMicro) RequiredParameters() []string {
	return []string{"V1", "Ktr", "Ke", "K12", "K21", "F"}
}

func (c *TwoCompartmentErlangMicro) NbCompartments() int { return 3 + c.transitCount() }

func (c *TwoCompartmentErlangMicro) strictlyPositive() map[string]bool {
	return map[string]bool{"V1": true, "Ke": true, "Ktr": true, "K12": true, "K21": true}
}

func (c *TwoCompartmentErlangMicro) solve(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, outputTimes []float64) ([][]float64, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), c.strictlyPositive())
	if !ok {
		return nil, model.BadParameters, msg
	}
	n := c.transitCount()
	if len(inResiduals) < 3+n {
		return nil, model.BadConcentration, "Erlang-transit calculator residual vector too short"
	}
	v1, ke, k12, k21, ktr := values["V1"], values["Ke"], values["K12"], values["K21"], values["Ktr"]
	dose := intake.Dose

	derive := func(t float64, s []float64, dcdt []float64) {
		last := s[2+n]
		dcdt[0] = ktr*last - ke*s[0] + k21*s[1] - k12*s[0]
		dcdt[1] = k12*s[0] - k21*s[1]
		dcdt[2] = -ktr * s[2]
		for i := 3; i < 3+n; i++ {
			dcdt[i] = ktr*s[i-1] - ktr*s[i]
		}
	}
	initial := make([]float64, 3+n)
	copy(initial, inResiduals[:3+n])
	initial[2] += dose / v1

	states := RK4Solve(initial, derive, nil, outputTimes, defaultRK4MaxStep)
	return states, model.Ok, ""
}

func (c *TwoCompartmentErlangMicro) CalculateIntakePoints(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals) (Concentrations, Residuals, model.ComputingStatus, string) {
	times := PertinentTimes(intake.IntervalHours(), intake.NbPoints)
	states, status, msg := c.solve(intake, parameters, inResiduals, times)
	if status != model.Ok {
		return nil, nil, status, msg
	}
	n := c.transitCount()
	out := make(Concentrations, 3+n)
	for comp := range out {
		out[comp] = make([]float64, len(states))
	}
	for i, s := range states {
		for comp := 0; comp < 3+n; comp++ {
			out[comp][i] = s[comp]
		}
	}
	last := states[len(states)-1]
	residuals := make(Residuals, 3+n)
	copy(residuals, last)
	return out, residuals, model.Ok, ""
}

func (c *TwoCompartmentErlangMicro) CalculateIntakeSinglePoint(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, t float64) (Concentrations, Residuals, model.ComputingStatus, string) {
	interval := intake.IntervalHours()
	outputTimes := []float64{t, interval}
	if t > interval {
		outputTimes = []float64{interval, t}
	}
	states, status, msg := c.solve(intake, parameters, inResiduals, outputTimes)
	if status != model.Ok {
		return nil, nil, status, msg
	}
	n := c.transitCount()
	var point, last []float64
	if t > interval {
		last, point = states[0], states[1]
	} else {
		point, last = states[0], states[1]
	}
	residuals := make(Residuals, 3+n)
	copy(residuals, last)
	return Concentrations{{point[0]}}, residuals, model.Ok, ""
}

// TwoCompartmentErlangMacro is the clearance parameterization (V1, V2,
// Ktr, CL, Q, F), with K12 = Q/V1, K21 = Q/V2, Ke = CL/V1.
type TwoCompartmentErlangMacro struct {
	NbTransit int
}

func NewTwoCompartmentErlangMacro() *TwoCompartmentErlangMacro {
	return &TwoCompartmentErlangMacro{NbTransit: defaultErlangTransitCompartments}
}

func (c *TwoCompartmentErlangMacro) micro() *TwoCompartmentErlangMicro {
	return &TwoCompartmentErlangMicro{NbTransit: c.NbTransit}
}

func (c *TwoCompartmentErlangMacro) RequiredParameters() []string {
	return []string{"V1", "V2", "Ktr", "CL", "Q", "F"}
}

func (c *TwoCompartmentErlangMacro) NbCompartments() int { return c.micro().NbCompartments() }

func (c *TwoCompartmentErlangMacro) toMicro(parameters map[string]float64) map[string]float64 {
	v1, v2 := parameters["V1"], parameters["V2"]
	return map[string]float64{
		"V1": v1, "Ktr": parameters["Ktr"], "F": parameters["F"],
		"K12": parameters["Q"] / v1, "K21": parameters["Q"] / v2, "Ke": parameters["CL"] / v1,
	}
}

func (c *TwoCompartmentErlangMacro) CalculateIntakePoints(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V1": true, "V2": true, "CL": true, "Q": true, "Ktr": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	return c.micro().CalculateIntakePoints(intake, c.toMicro(values), inResiduals)
}

func (c *TwoCompartmentErlangMacro) CalculateIntakeSinglePoint(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, t float64) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V1": true, "V2": true, "CL": true, "Q": true, "Ktr": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	return c.micro().CalculateIntakeSinglePoint(intake, c.toMicro(values), inResiduals, t)
}
