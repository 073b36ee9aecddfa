package extraction

import (
	"github.com/pkcore/pkcore/calculator"
	"github.com/pkcore/pkcore/model"
)

// AssociateCalculators attaches the appropriate Calculator to every intake
// in series (invariant 1), resolving the registry by compartment count,
// absorption route, and micro/macro parameterization. Ported from
// IntakeToCalculatorAssociator::associate, which returns UnsupportedRoute
// when no calculator covers a given route; here that becomes
// CouldNotFindSuitableFormulationAndRoute, since the failure is really
// "no calculator registered for this (compartments, route) pair" rather
// than a route the system has never heard of.
func AssociateCalculators(series *model.IntakeSeries, nbCompartments int, macro bool) (model.ComputingStatus, string) {
	resolved := map[model.AbsorptionModel]calculator.Calculator{}
	for _, intake := range series.Intakes {
		calc, ok := resolved[intake.Route]
		if !ok {
			calc, ok = calculator.Resolve(calculator.CalculatorKey{
				Compartments: nbCompartments,
				Route:        intake.Route,
				Macro:        macro,
			})
			if !ok {
				return model.CouldNotFindSuitableFormulationAndRoute, "no calculator registered for route " + intake.Route.String()
			}
			resolved[intake.Route] = calc
		}
		intake.Calculator = calc
	}
	return model.Ok, ""
}
