package calculator

import "github.com/pkcore/pkcore/model"

// MultiCompartmentRK4 integrates a linear 2- or 3-compartment disposition
// model (central plus one or two peripheral compartments) across all four
// absorption routes, ported from the original's rkthreecompartment.h:
// one derive() covers bolus, infusion, extravascular and
// extravascular-with-lag by flag (m_isInfusion / m_isWithLag there;
// HasDepot / IsInfusion here), rather than one calculator type per route.
// NbPeripherals selects 2- vs 3-compartment (1 or 2 peripherals).
type MultiCompartmentRK4 struct {
	NbPeripherals int
	HasDepot      bool // true for Extravascular / ExtravascularLag (adds a Ka-governed depot compartment)
	HasLag        bool // true for ExtravascularLag (depot delivery deferred to Tlag)
	IsInfusion    bool // true for Infusion (adds a constant-rate term to the central derivative)
}

func (c *MultiCompartmentRK4) RequiredParameters() []string {
	req := []string{"V1", "Ke", "K12", "K21"}
	if c.NbPeripherals >= 2 {
		req = append(req, "K13", "K31")
	}
	if c.HasDepot {
		req = append(req, "Ka", "F")
	}
	if c.HasLag {
		req = append(req, "Tlag")
	}
	return req
}

func (c *MultiCompartmentRK4) NbCompartments() int {
	n := 1 + c.NbPeripherals
	if c.HasDepot {
		n++
	}
	return n
}

func (c *MultiCompartmentRK4) depotIndex() int { return c.NbCompartments() - 1 }

func (c *MultiCompartmentRK4) strictlyPositive() map[string]bool {
	sp := map[string]bool{"V1": true, "Ke": true}
	if c.HasDepot {
		sp["Ka"] = true
	}
	return sp
}

func (c *MultiCompartmentRK4) solve(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, outputTimes []float64) ([][]float64, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), c.strictlyPositive())
	if !ok {
		return nil, model.BadParameters, msg
	}
	n := c.NbCompartments()
	if len(inResiduals) < n {
		return nil, model.BadConcentration, "multi-compartment calculator residual vector too short"
	}
	v1, ke, k12, k21 := values["V1"], values["Ke"], values["K12"], values["K21"]
	k13, k31 := values["K13"], values["K31"]
	ka, f, tlag := values["Ka"], values["F"], values["Tlag"]
	if tlag < 0 {
		tlag = 0
	}
	dose := intake.Dose
	tinf := intake.InfusionHours()
	rate := 0.0
	if c.IsInfusion && tinf > 0 {
		rate = dose / (tinf * v1)
	}

	depot := c.depotIndex()
	delivered := !c.HasLag

	derive := func(t float64, s []float64, dcdt []float64) {
		dcdt[0] = -ke*s[0] - k12*s[0] + k21*s[1]
		dcdt[1] = k12*s[0] - k21*s[1]
		if c.NbPeripherals >= 2 {
			dcdt[0] += k31*s[2] - k13*s[0]
			dcdt[2] = k13*s[0] - k31*s[2]
		}
		if c.HasDepot {
			dcdt[0] += ka * s[depot]
			dcdt[depot] = -ka * s[depot]
		}
		if c.IsInfusion && t < tinf {
			dcdt[0] += rate
		}
	}

	var fixedValue FixedValueHook
	if c.HasDepot {
		fixedValue = func(t float64, s []float64) {
			if !delivered && t >= tlag {
				s[depot] += f * dose / v1
				delivered = true
			}
		}
	}

	initial := make([]float64, n)
	copy(initial, inResiduals[:n])
	if !c.HasDepot && !c.IsInfusion {
		// Bolus: the full dose enters the central compartment instantly.
		initial[0] += dose / v1
	}

	states := RK4Solve(initial, derive, fixedValue, outputTimes, defaultRK4MaxStep)
	return states, model.Ok, ""
}

func (c *MultiCompartmentRK4) CalculateIntakePoints(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals) (Concentrations, Residuals, model.ComputingStatus, string) {
	breakpoints := []float64{intake.InfusionHours()}
	if c.HasLag {
		breakpoints = append(breakpoints, parameters["Tlag"])
	}
	times := PertinentTimes(intake.IntervalHours(), intake.NbPoints, breakpoints...)
	states, status, msg := c.solve(intake, parameters, inResiduals, times)
	if status != model.Ok {
		return nil, nil, status, msg
	}
	n := c.NbCompartments()
	out := make(Concentrations, n)
	for comp := range out {
		out[comp] = make([]float64, len(states))
	}
	for i, s := range states {
		for comp := 0; comp < n; comp++ {
			out[comp][i] = s[comp]
		}
	}
	last := states[len(states)-1]
	residuals := make(Residuals, n)
	copy(residuals, last)
	return out, residuals, model.Ok, ""
}

func (c *MultiCompartmentRK4) CalculateIntakeSinglePoint(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, t float64) (Concentrations, Residuals, model.ComputingStatus, string) {
	interval := intake.IntervalHours()
	outputTimes := []float64{t, interval}
	if t > interval {
		outputTimes = []float64{interval, t}
	}
	states, status, msg := c.solve(intake, parameters, inResiduals, outputTimes)
	if status != model.Ok {
		return nil, nil, status, msg
	}
	n := c.NbCompartments()
	var point, last []float64
	if t > interval {
		last, point = states[0], states[1]
	} else {
		point, last = states[0], states[1]
	}
	residuals := make(Residuals, n)
	copy(residuals, last)
	return Concentrations{{point[0]}}, residuals, model.Ok, ""
}

// Constructors mirroring the original's per-route calculator names, each
// fixing MultiCompartmentRK4's flags for one absorption route.

func NewTwoCompartmentBolus() *MultiCompartmentRK4 {
	return &MultiCompartmentRK4{NbPeripherals: 1}
}

func NewTwoCompartmentInfusion() *MultiCompartmentRK4 {
	return &MultiCompartmentRK4{NbPeripherals: 1, IsInfusion: true}
}

func NewTwoCompartmentExtra() *MultiCompartmentRK4 {
	return &MultiCompartmentRK4{NbPeripherals: 1, HasDepot: true}
}

func NewTwoCompartmentExtraLag() *MultiCompartmentRK4 {
	return &MultiCompartmentRK4{NbPeripherals: 1, HasDepot: true, HasLag: true}
}

func NewThreeCompartmentBolus() *MultiCompartmentRK4 {
	return &MultiCompartmentRK4{NbPeripherals: 2}
}

func NewThreeCompartmentInfusion() *MultiCompartmentRK4 {
	return &MultiCompartmentRK4{NbPeripherals: 2, IsInfusion: true}
}

func NewThreeCompartmentExtra() *MultiCompartmentRK4 {
	return &MultiCompartmentRK4{NbPeripherals: 2, HasDepot: true}
}

func NewThreeCompartmentExtraLag() *MultiCompartmentRK4 {
	return &MultiCompartmentRK4{NbPeripherals: 2, HasDepot: true, HasLag: true}
}

// MultiCompartmentMacro wraps MultiCompartmentRK4 in the clearance
// parameterization (CL, V1, V2, Q1, and for 3-compartment V3, Q2),
// converting to micro-constants (Ke = CL/V1, K12 = Q1/V1, K21 = Q1/V2,
// K13 = Q2/V1, K31 = Q2/V3) before delegating, the same conversion the
// per-route macro calculators apply in the original.
type MultiCompartmentMacro struct {
	Micro *MultiCompartmentRK4
}

func (c *MultiCompartmentMacro) RequiredParameters() []string {
	req := []string{"V1", "V2", "CL", "Q1"}
	if c.Micro.NbPeripherals >= 2 {
		req = append(req, "V3", "Q2")
	}
	if c.Micro.HasDepot {
		req = append(req, "Ka", "F")
	}
	if c.Micro.HasLag {
		req = append(req, "Tlag")
	}
	return req
}

func (c *MultiCompartmentMacro) NbCompartments() int { return c.Micro.NbCompartments() }

func (c *MultiCompartmentMacro) toMicro(parameters map[string]float64) map[string]float64 {
	v1, v2 := parameters["V1"], parameters["V2"]
	out := map[string]float64{
		"V1":  v1,
		"Ke":  parameters["CL"] / v1,
		"K12": parameters["Q1"] / v1,
		"K21": parameters["Q1"] / v2,
		"Ka":  parameters["Ka"],
		"F":   parameters["F"],
		"Tlag": parameters["Tlag"],
	}
	if c.Micro.NbPeripherals >= 2 {
		v3 := parameters["V3"]
		out["K13"] = parameters["Q2"] / v1
		out["K31"] = parameters["Q2"] / v3
	}
	return out
}

func (c *MultiCompartmentMacro) CalculateIntakePoints(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals) (Concentrations, Residuals, model.ComputingStatus, string) {
	strictlyPositive := map[string]bool{"V1": true, "V2": true, "CL": true, "Q1": true}
	if c.Micro.NbPeripherals >= 2 {
		strictlyPositive["V3"] = true
		strictlyPositive["Q2"] = true
	}
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), strictlyPositive)
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	return c.Micro.CalculateIntakePoints(intake, c.toMicro(values), inResiduals)
}

func (c *MultiCompartmentMacro) CalculateIntakeSinglePoint(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, t float64) (Concentrations, Residuals, model.ComputingStatus, string) {
	strictlyPositive := map[string]bool{"V1": true, "V2": true, "CL": true, "Q1": true}
	if c.Micro.NbPeripherals >= 2 {
		strictlyPositive["V3"] = true
		strictlyPositive["Q2"] = true
	}
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), strictlyPositive)
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	return c.Micro.CalculateIntakeSinglePoint(intake, c.toMicro(values), inResiduals, t)
}

func NewTwoCompartmentBolusMacro() *MultiCompartmentMacro {
	return &MultiCompartmentMacro{Micro: NewTwoCompartmentBolus()}
}

func NewTwoCompartmentInfusionMacro() *MultiCompartmentMacro {
	return &MultiCompartmentMacro{Micro: NewTwoCompartmentInfusion()}
}

func NewTwoCompartmentExtraMacro() *MultiCompartmentMacro {
	return &MultiCompartmentMacro{Micro: NewTwoCompartmentExtra()}
}

func NewTwoCompartmentExtraLagMacro() *MultiCompartmentMacro {
	return &MultiCompartmentMacro{Micro: NewTwoCompartmentExtraLag()}
}

func NewThreeCompartmentBolusMacro() *MultiCompartmentMacro {
	return &MultiCompartmentMacro{Micro: NewThreeCompartmentBolus()}
}

func NewThreeCompartmentInfusionMacro() *MultiCompartmentMacro {
	return &MultiCompartmentMacro{Micro: NewThreeCompartmentInfusion()}
}

func NewThreeCompartmentExtraMacro() *MultiCompartmentMacro {
	return &MultiCompartmentMacro{Micro: NewThreeCompartmentExtra()}
}

func NewThreeCompartmentExtraLagMacro() *MultiCompartmentMacro {
	return &MultiCompartmentMacro{Micro: NewThreeCompartmentExtraLag()}
}
