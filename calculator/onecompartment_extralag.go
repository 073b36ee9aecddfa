package calculator

import (
	"math"

	"github.com/pkcore/pkcore/model"
)

// OneCompartmentExtraLagMicro computes the one compartment extravascular
// absorption solution with an absorption lag time Tlag, using the
// micro-constant parameterization (Ke, V, Ka, F, Tlag). Ported from the
// original computation: before Tlag the depot holds only the carried-in
// residual (no dose has entered yet); at Tlag the dose F*D/V is injected
// into the depot and the solution restarts from that point with t' = t -
// Tlag. A Tlag of zero collapses to the plain extravascular solution,
// since the "restart" happens at t' = t.
type OneCompartmentExtraLagMicro struct{}

func NewOneCompartmentExtraLagMicro() *OneCompartmentExtraLagMicro {
	return &OneCompartmentExtraLagMicro{}
}

func (c *OneCompartmentExtraLagMicro) RequiredParameters() []string {
	return []string{"Ke", "V", "Ka", "F", "Tlag"}
}

func (c *OneCompartmentExtraLagMicro) NbCompartments() int { return 2 }

// pointAt returns (centralConcentration, depotConcentration) at time t.
// Residuals are carried as concentrations throughout (the dose is folded
// in as F*D/V at the moment it enters the depot), matching the original's
// convention of working directly in concentration units rather than
// compartment amounts.
func (c *OneCompartmentExtraLagMicro) pointAt(t, ke, ka, v, f, dose, tlag float64, inResiduals Residuals) (float64, float64) {
	resid1 := inResiduals[0]
	resid2 := inResiduals[1]

	if t <= tlag {
		part2 := ka * resid2 / (ke - ka)
		c1 := resid1*math.Exp(-ke*t) + (math.Exp(-ka*t)-math.Exp(-ke*t))*part2
		c2 := resid2 * math.Exp(-ka*t)
		return c1, c2
	}

	// Value of the system exactly at Tlag, with the dose injected into
	// the depot at that instant.
	part2 := ka * resid2 / (ke - ka)
	resid1AtTlag := resid1*math.Exp(-ke*tlag) + (math.Exp(-ka*tlag)-math.Exp(-ke*tlag))*part2
	resid2AtTlag := resid2*math.Exp(-ka*tlag) + f*dose/v

	tp := t - tlag
	partPost := ka * resid2AtTlag / (ke - ka)
	c1 := resid1AtTlag*math.Exp(-ke*tp) + (math.Exp(-ka*tp)-math.Exp(-ke*tp))*partPost
	c2 := resid2AtTlag * math.Exp(-ka*tp)
	return c1, c2
}

func (c *OneCompartmentExtraLagMicro) strictlyPositive() map[string]bool {
	return map[string]bool{"V": true, "Ka": true, "Ke": true}
}

func (c *OneCompartmentExtraLagMicro) CalculateIntakePoints(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), c.strictlyPositive())
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	if len(inResiduals) < 2 {
		return nil, nil, model.BadConcentration, "extravascular-with-lag calculator requires two residuals"
	}
	ke, v, ka, f, tlag := values["Ke"], values["V"], values["Ka"], values["F"], math.Max(values["Tlag"], 0)
	if math.Abs(ke-ka) < 1e-12 {
		return nil, nil, model.BadParameters, "Ke and Ka must differ (flip-flop singularity)"
	}

	interval := intake.IntervalHours()
	times := PertinentTimes(interval, intake.NbPoints, tlag)
	central := make([]float64, len(times))
	depot := make([]float64, len(times))
	for i, t := range times {
		c1, c2 := c.pointAt(t, ke, ka, v, f, intake.Dose, tlag, inResiduals)
		central[i] = c1
		depot[i] = c2
	}
	endC1, endC2 := c.pointAt(interval, ke, ka, v, f, intake.Dose, tlag, inResiduals)
	if endC1 < 0 || endC2 < 0 {
		return nil, nil, model.BadConcentration, "negative concentration computed"
	}
	return Concentrations{central, depot}, Residuals{endC1, endC2}, model.Ok, ""
}

func (c *OneCompartmentExtraLagMicro) CalculateIntakeSinglePoint(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, t float64) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), c.strictlyPositive())
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	if len(inResiduals) < 2 {
		return nil, nil, model.BadConcentration, "extravascular-with-lag calculator requires two residuals"
	}
	ke, v, ka, f, tlag := values["Ke"], values["V"], values["Ka"], values["F"], math.Max(values["Tlag"], 0)
	if math.Abs(ke-ka) < 1e-12 {
		return nil, nil, model.BadParameters, "Ke and Ka must differ (flip-flop singularity)"
	}

	c1, c2 := c.pointAt(t, ke, ka, v, f, intake.Dose, tlag, inResiduals)
	interval := intake.IntervalHours()
	var endC1, endC2 float64
	if interval == 0 {
		endC1, endC2 = 0, 0
	} else {
		endC1, endC2 = c.pointAt(interval, ke, ka, v, f, intake.Dose, tlag, inResiduals)
	}
	if endC1 < 0 || endC2 < 0 {
		return nil, nil, model.BadConcentration, "negative residual computed"
	}
	return Concentrations{{c1}, {c2}}, Residuals{endC1, endC2}, model.Ok, ""
}

// OneCompartmentExtraLagMacro is the clearance parameterization (CL, V,
// Ka, F, Tlag), with Ke = CL/V.
type OneCompartmentExtraLagMacro struct{}

func NewOneCompartmentExtraLagMacro() *OneCompartmentExtraLagMacro {
	return &OneCompartmentExtraLagMacro{}
}

func (c *OneCompartmentExtraLagMacro) RequiredParameters() []string {
	return []string{"CL", "V", "Ka", "F", "Tlag"}
}

func (c *OneCompartmentExtraLagMacro) NbCompartments() int { return 2 }

func (c *OneCompartmentExtraLagMacro) toMicro(parameters map[string]float64) map[string]float64 {
	return map[string]float64{
		"Ke": parameters["CL"] / parameters["V"], "V": parameters["V"],
		"Ka": parameters["Ka"], "F": parameters["F"], "Tlag": parameters["Tlag"],
	}
}

func (c *OneCompartmentExtraLagMacro) CalculateIntakePoints(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true, "CL": true, "Ka": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	micro := NewOneCompartmentExtraLagMicro()
	return micro.CalculateIntakePoints(intake, c.toMicro(values), inResiduals)
}

func (c *OneCompartmentExtraLagMacro) CalculateIntakeSinglePoint(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, t float64) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true, "CL": true, "Ka": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	micro := NewOneCompartmentExtraLagMicro()
	return micro.CalculateIntakeSinglePoint(intake, c.toMicro(values), inResiduals, t)
}
