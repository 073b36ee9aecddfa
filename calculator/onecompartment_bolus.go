package calculator

import (
	"math"

	"github.com/pkcore/pkcore/model"
)

// OneCompartmentBolusMicro computes the exact solution of a one
// compartment IV bolus dose using the micro-constant parameterization
// (Ke, V): A(t) = (A0 + D)*exp(-Ke*t), C(t) = A(t)/V.
type OneCompartmentBolusMicro struct{}

func NewOneCompartmentBolusMicro() *OneCompartmentBolusMicro { return &OneCompartmentBolusMicro{} }

func (c *OneCompartmentBolusMicro) RequiredParameters() []string { return []string{"Ke", "V"} }

func (c *OneCompartmentBolusMicro) NbCompartments() int { return 1 }

func (c *OneCompartmentBolusMicro) CalculateIntakePoints(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	if len(inResiduals) < 1 {
		return nil, nil, model.BadConcentration, "bolus calculator requires one residual"
	}
	ke, v := values["Ke"], values["V"]
	amount0 := inResiduals[0] + intake.Dose

	times := PertinentTimes(intake.IntervalHours(), intake.NbPoints)
	conc := make([]float64, len(times))
	for i, t := range times {
		conc[i] = amount0 * math.Exp(-ke*t) / v
	}
	endAmount := amount0 * math.Exp(-ke*intake.IntervalHours())
	return Concentrations{conc}, Residuals{endAmount}, model.Ok, ""
}

func (c *OneCompartmentBolusMicro) CalculateIntakeSinglePoint(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, t float64) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	if len(inResiduals) < 1 {
		return nil, nil, model.BadConcentration, "bolus calculator requires one residual"
	}
	ke, v := values["Ke"], values["V"]
	amount0 := inResiduals[0] + intake.Dose
	point := amount0 * math.Exp(-ke*t) / v
	endAmount := amount0 * math.Exp(-ke*intake.IntervalHours())
	return Concentrations{{point}}, Residuals{endAmount}, model.Ok, ""
}

// OneCompartmentBolusMacro is the same calculator in the clearance
// parameterization (CL, V), with Ke = CL/V.
type OneCompartmentBolusMacro struct{}

func NewOneCompartmentBolusMacro() *OneCompartmentBolusMacro { return &OneCompartmentBolusMacro{} }

func (c *OneCompartmentBolusMacro) RequiredParameters() []string { return []string{"CL", "V"} }

func (c *OneCompartmentBolusMacro) NbCompartments() int { return 1 }

func (c *OneCompartmentBolusMacro) toMicro(parameters map[string]float64) map[string]float64 {
	return map[string]float64{"Ke": parameters["CL"] / parameters["V"], "V": parameters["V"]}
}

func (c *OneCompartmentBolusMacro) CalculateIntakePoints(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true, "CL": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	micro := NewOneCompartmentBolusMicro()
	return micro.CalculateIntakePoints(intake, c.toMicro(values), inResiduals)
}

func (c *OneCompartmentBolusMacro) CalculateIntakeSinglePoint(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, t float64) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true, "CL": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	micro := NewOneCompartmentBolusMicro()
	return micro.CalculateIntakeSinglePoint(intake, c.toMicro(values), inResiduals, t)
}
