package calculator

import "github.com/pkcore/pkcore/model"

// OneCompartmentExtraMicro is the plain (no lag) one compartment
// extravascular absorption calculator, implemented as the Tlag = 0
// specialization of OneCompartmentExtraLagMicro: with no lag the "restart
// at Tlag" point in the lagged solution coincides with the interval
// start, so the two share the exact same closed form.
type OneCompartmentExtraMicro struct{}

func NewOneCompartmentExtraMicro() *OneCompartmentExtraMicro { return &OneCompartmentExtraMicro{} }

func (c *OneCompartmentExtraMicro) RequiredParameters() []string {
	return []string{"Ke", "V", "Ka", "F"}
}

func (c *OneCompartmentExtraMicro) NbCompartments() int { return 2 }

func (c *OneCompartmentExtraMicro) withZeroLag(parameters map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(parameters)+1)
	for k, v := range parameters {
		out[k] = v
	}
	out["Tlag"] = 0
	return out
}

func (c *OneCompartmentExtraMicro) CalculateIntakePoints(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true, "Ka": true, "Ke": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	lag := NewOneCompartmentExtraLagMicro()
	return lag.CalculateIntakePoints(intake, c.withZeroLag(values), inResiduals)
}

func (c *OneCompartmentExtraMicro) CalculateIntakeSinglePoint(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, t float64) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true, "Ka": true, "Ke": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	lag := NewOneCompartmentExtraLagMicro()
	return lag.CalculateIntakeSinglePoint(intake, c.withZeroLag(values), inResiduals, t)
}

// OneCompartmentExtraMacro is the clearance parameterization (CL, V, Ka,
// F), with Ke = CL/V.
type OneCompartmentExtraMacro struct{}

func NewOneCompartmentExtraMacro() *OneCompartmentExtraMacro { return &OneCompartmentExtraMacro{} }

func (c *OneCompartmentExtraMacro) RequiredParameters() []string {
	return []string{"CL", "V", "Ka", "F"}
}

func (c *OneCompartmentExtraMacro) NbCompartments() int { return 2 }

func (c *OneCompartmentExtraMacro) toMicro(parameters map[string]float64) map[string]float64 {
	return map[string]float64{
		"Ke": parameters["CL"] / parameters["V"], "V": parameters["V"],
		"Ka": parameters["Ka"], "F": parameters["F"],
	}
}

func (c *OneCompartmentExtraMacro) CalculateIntakePoints(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true, "CL": true, "Ka": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	micro := NewOneCompartmentExtraMicro()
	return micro.CalculateIntakePoints(intake, c.toMicro(values), inResiduals)
}

func (c *OneCompartmentExtraMacro) CalculateIntakeSinglePoint(intake *model.IntakeEvent, parameters map[string]float64, inResiduals Residuals, t float64) (Concentrations, Residuals, model.ComputingStatus, string) {
	values, msg, ok := validateParameters(parameters, c.RequiredParameters(), map[string]bool{"V": true, "CL": true, "Ka": true})
	if !ok {
		return nil, nil, model.BadParameters, msg
	}
	micro := NewOneCompartmentExtraMicro()
	return micro.CalculateIntakeSinglePoint(intake, c.toMicro(values), inResiduals, t)
}
