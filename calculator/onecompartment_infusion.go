package calculator

import (
	"math"

	"github.com/pkcore/pkcore/model"
)

// OneCompartmentInfusionMicro computes the exact solution of a one
// compartment constant-rate IV infusion using the micro-constant
// parameterization (Ke, V). During the infusion (0 <= t <= Tinf) the
// amount rises toward the steady infusion level; after Tinf it decays
// like a bolus seeded with the amount present at the end of infusion.
//
// Per spec, an infusion intake with Tinf == 0 degenerates to a bolus
// rather than a division-by-zero error; callers should re-label such
// intakes to Bolus before reaching this calculator (see
// reclassifyZeroDurationInfusion), but this calculator defends against
// it directly as well.
type OneCompartmentInfusionMicro struct{}

func NewOneCompartmentInfusionMicro() *OneCompartmentInfusionMicro {
	return &OneCompartmentInfusionMicro{}
}

func (c *OneCompartmentInfusionMicro) RequiredParameters() []string { return []string{"Ke", "V"} }

func (c *OneCompartmentInfusionMicro) NbCompartments() int { return 1 }

func (c *OneCompartmentInfusionMicro) pointAt(t, tinf, ke, v, amount0, dose float64) float64 {
	if tinf <= 0 {
		// Degenerate to bolus.
		return (amount0 + dose) * math.Exp(-ke*t) / v
	}
	rate := dose / tinf
	if t <= tinf {
		return (rate/(ke*v))*(1-math.Exp(-ke*t)) + amount0*math.Exp(-ke*t)/v
	}
	cAtTinf := (rate/(ke*v))*(1-math.Exp(-ke*tinf)) + amount0*math.Exp(-ke*tinf)/v
	return cAtTinf * math.Exp(-ke*(t-tinf))
}

func (c *OneCompartmentInfusionMicro) CalculateIntakePoints(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	if len(inResiduals) < 1 {
		return nil, nil, model.BadConcentration, "infusion calculator requires one residual"
	}
	ke, v := values["Ke"], values["V"]
	tinf := intake.InfusionHours()
	interval := intake.IntervalHours()

	times := PertinentTimes(interval, intake.NbPoints, tinf)
	conc := make([]float64, len(times))
	for i, t := range times {
		conc[i] = c.pointAt(t, tinf, ke, v, inResiduals[0], intake.Dose)
	}
	endAmount := c.pointAt(interval, tinf, ke, v, inResiduals[0], intake.Dose) * v
	return Concentrations{conc}, Residuals{endAmount}, model.Ok, ""
}

func (c *OneCompartmentInfusionMicro) CalculateIntakeSinglePoint(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, t float64) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	if len(inResiduals) < 1 {
		return nil, nil, model.BadConcentration, "infusion calculator requires one residual"
	}
	ke, v := values["Ke"], values["V"]
	tinf := intake.InfusionHours()
	interval := intake.IntervalHours()

	point := c.pointAt(t, tinf, ke, v, inResiduals[0], intake.Dose)
	endAmount := c.pointAt(interval, tinf, ke, v, inResiduals[0], intake.Dose) * v
	return Concentrations{{point}}, Residuals{endAmount}, model.Ok, ""
}

// OneCompartmentInfusionMacro is the clearance parameterization (CL, V).
type OneCompartmentInfusionMacro struct{}

func NewOneCompartmentInfusionMacro() *OneCompartmentInfusionMacro {
	return &OneCompartmentInfusionMacro{}
}

func (c *OneCompartmentInfusionMacro) RequiredParameters() []string { return []string{"CL", "V"} }

func (c *OneCompartmentInfusionMacro) NbCompartments() int { return 1 }

func (c *OneCompartmentInfusionMacro) toMicro(parameters map[string]float64) map[string]float64 {
	return map[string]float64{"Ke": parameters["CL"] / parameters["V"], "V": parameters["V"]}
}

func (c *OneCompartmentInfusionMacro) CalculateIntakePoints(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true, "CL": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	micro := NewOneCompartmentInfusionMicro()
	return micro.CalculateIntakePoints(intake, c.toMicro(values), inResiduals)
}

func (c *OneCompartmentInfusionMacro) CalculateIntakeSinglePoint(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, t float64) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true, "CL": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	micro := NewOneCompartmentInfusionMicro()
	return micro.CalculateIntakeSinglePoint(intake, c.toMicro(values), inResiduals, t)
}

// reclassifyZeroDurationInfusion implements the spec rule that an
// Infusion intake with InfusionTime == 0 is treated as Intravascular
// (Bolus), since the constant-rate solution degenerates at Tinf = 0.
// Extraction applies the same rule through its own copy
// (extraction.reclassifyZeroDurationInfusion) when it builds intakes.
func reclassifyZeroDurationInfusion(route model.AbsorptionModel, infusionTime float64) model.AbsorptionModel {
	if route == model.Infusion && infusionTime <= 0 {
		return model.Bolus
	}
	return route
}
