package calculator

import "github.com/pkcore/pkcore/model"

// CalculatorKey identifies a calculator family: how many compartments it
// integrates, which absorption route it implements, and whether it is
// parameterized in clearance (macro) or rate-constant (micro) terms.
type CalculatorKey struct {
	Compartments int
	Route        model.AbsorptionModel
	Macro        bool
}

var registry = map[CalculatorKey]func() Calculator{}

// Register adds a calculator factory under key, overwriting any prior
// registration for the same key (the last call wins, matching the
// teacher's registration pattern in sim/latency and sim/kv). Unlike
// those packages, every calculator lives in this one package, so
// registration happens once in this file's init() rather than being
// split across per-implementation subpackages with their own init()
// hooks breaking an import cycle - there is no cycle to break here.
func Register(key CalculatorKey, factory func() Calculator) {
	registry[key] = factory
}

// Resolve looks up a calculator factory and constructs a fresh instance.
// It returns (nil, false) when no calculator covers the given
// compartment count, route, and parameterization, which callers should
// surface as model.CouldNotFindSuitableFormulationAndRoute.
func Resolve(key CalculatorKey) (Calculator, bool) {
	factory, ok := registry[key]
	if !ok {
		return nil, false
	}
	return factory(), true
}

func init() {
	Register(CalculatorKey{1, model.Bolus, false}, func() Calculator { return NewOneCompartmentBolusMicro() })
	Register(CalculatorKey{1, model.Bolus, true}, func() Calculator { return NewOneCompartmentBolusMacro() })
	Register(CalculatorKey{1, model.Infusion, false}, func() Calculator { return NewOneCompartmentInfusionMicro() })
	Register(CalculatorKey{1, model.Infusion, true}, func() Calculator { return NewOneCompartmentInfusionMacro() })
	Register(CalculatorKey{1, model.Extravascular, false}, func() Calculator { return NewOneCompartmentExtraMicro() })
	Register(CalculatorKey{1, model.Extravascular, true}, func() Calculator { return NewOneCompartmentExtraMacro() })
	Register(CalculatorKey{1, model.ExtravascularLag, false}, func() Calculator { return NewOneCompartmentExtraLagMicro() })
	Register(CalculatorKey{1, model.ExtravascularLag, true}, func() Calculator { return NewOneCompartmentExtraLagMacro() })
	Register(CalculatorKey{1, model.Gamma, false}, func() Calculator { return NewOneCompartmentGammaMicro() })

	Register(CalculatorKey{2, model.Bolus, false}, func() Calculator { return NewTwoCompartmentBolus() })
	Register(CalculatorKey{2, model.Bolus, true}, func() Calculator { return NewTwoCompartmentBolusMacro() })
	Register(CalculatorKey{2, model.Infusion, false}, func() Calculator { return NewTwoCompartmentInfusion() })
	Register(CalculatorKey{2, model.Infusion, true}, func() Calculator { return NewTwoCompartmentInfusionMacro() })
	Register(CalculatorKey{2, model.Extravascular, false}, func() Calculator { return NewTwoCompartmentExtra() })
	Register(CalculatorKey{2, model.Extravascular, true}, func() Calculator { return NewTwoCompartmentExtraMacro() })
	Register(CalculatorKey{2, model.ExtravascularLag, false}, func() Calculator { return NewTwoCompartmentExtraLag() })
	Register(CalculatorKey{2, model.ExtravascularLag, true}, func() Calculator { return NewTwoCompartmentExtraLagMacro() })
	Register(CalculatorKey{2, model.ErlangTransit, false}, func() Calculator { return NewTwoCompartmentErlangMicro() })
	Register(CalculatorKey{2, model.ErlangTransit, true}, func() Calculator { return NewTwoCompartmentErlangMacro() })

	Register(CalculatorKey{3, model.Bolus, false}, func() Calculator { return NewThreeCompartmentBolus() })
	Register(CalculatorKey{3, model.Bolus, true}, func() Calculator { return NewThreeCompartmentBolusMacro() })
	Register(CalculatorKey{3, model.Infusion, false}, func() Calculator { return NewThreeCompartmentInfusion() })
	Register(CalculatorKey{3, model.Infusion, true}, func() Calculator { return NewThreeCompartmentInfusionMacro() })
	Register(CalculatorKey{3, model.Extravascular, false}, func() Calculator { return NewThreeCompartmentExtra() })
	Register(CalculatorKey{3, model.Extravascular, true}, func() Calculator { return NewThreeCompartmentExtraMacro() })
	Register(CalculatorKey{3, model.ExtravascularLag, false}, func() Calculator { return NewThreeCompartmentExtraLag() })
	Register(CalculatorKey{3, model.ExtravascularLag, true}, func() Calculator { return NewThreeCompartmentExtraLagMacro() })
}
