package model

import "time"

// AbsorptionModel identifies how a dose enters the central compartment.
type AbsorptionModel int

const (
	Bolus AbsorptionModel = iota
	Infusion
	Extravascular
	ExtravascularLag
	Gamma
	ErlangTransit
)

func (a AbsorptionModel) String() string {
	switch a {
	case Bolus:
		return "Bolus"
	case Infusion:
		return "Infusion"
	case Extravascular:
		return "Extravascular"
	case ExtravascularLag:
		return "ExtravascularLag"
	case Gamma:
		return "Gamma"
	case ErlangTransit:
		return "ErlangTransit"
	default:
		return "Unknown"
	}
}

// CovariateType is the declared data type of a covariate.
type CovariateType int

const (
	CovariateInt CovariateType = iota
	CovariateDouble
	CovariateBool
	CovariateDate
)

// VariabilityType describes how a parameter's inter-individual random
// effect (eta) is applied to its nominal (population) value. See eta.Apply
// for the exact formulas.
type VariabilityType int

const (
	VariabilityNone VariabilityType = iota
	VariabilityProportional
	VariabilityExponential
	VariabilityLogNormal
	VariabilityNormal
	VariabilityLogit
)

// ParameterDefinition describes one PK parameter of an analyte group's
// model: its identifier, the formula computing its population value from
// covariates and other parameters, and its variability (for Omega sizing
// and eta application).
type ParameterDefinition struct {
	ID           string
	Formula      Formula
	Variability  VariabilityType
	OmegaIndex   int // position in the Omega matrix; meaningless if Variability == VariabilityNone
}

// Formula computes a parameter or validation value from named inputs:
// covariate values and other parameters' population values, the latter
// keyed as "<id>_population". Represented as a Go closure rather than a
// string expression DSL — see DESIGN.md for why.
type Formula func(inputs map[string]float64) (float64, error)

// CovariateDefinition describes a patient attribute that can drive
// parameter formulas.
type CovariateDefinition struct {
	ID           string
	Default      float64
	Type         CovariateType
	Unit         string
	ValidationFn Formula // optional; nil means "no validation"
}

// ParameterSet is the ordered collection of parameter definitions for one
// analyte group's PK model.
type ParameterSet struct {
	Parameters []ParameterDefinition
}

// VariableCount returns the number of parameters whose Variability is not
// VariabilityNone — the dimension Omega must have (invariant 4).
func (p ParameterSet) VariableCount() int {
	n := 0
	for _, pd := range p.Parameters {
		if pd.Variability != VariabilityNone {
			n++
		}
	}
	return n
}

// AnalyteGroup is a set of analytes sharing one PK model and parameter set.
type AnalyteGroup struct {
	GroupID     string
	PkModelID   string
	Analytes    []string
	Parameters  ParameterSet
	Omega       *Omega
	ErrorModel  ResidualErrorModel
}

// ResidualErrorModel describes the distribution of measurement noise
// linking true and observed concentrations (spec §4.3).
type ResidualErrorModelType int

const (
	ErrorAdditive ResidualErrorModelType = iota
	ErrorProportional
	ErrorExponential
	ErrorMixed
)

type ResidualErrorModel struct {
	Type     ResidualErrorModelType
	Sigmas   []float64 // one or two sigmas depending on Type
	LogScale bool
}

// TimeConsiderations holds the half-life and extraction-window multiplier
// used to pick the start of prediction (spec §4.2).
type TimeConsiderations struct {
	HalfLifeValue float64
	HalfLifeUnit  string
	Multiplier    float64
}

// HalfLifeHours converts HalfLifeValue/HalfLifeUnit to hours.
func (t TimeConsiderations) HalfLifeHours() float64 {
	return convertDurationToHours(t.HalfLifeValue, t.HalfLifeUnit)
}

// FormulationAndRoute identifies one deliverable form of the drug and the
// route-specific valid doses/intervals/infusion times.
type FormulationAndRoute struct {
	Formulation      string
	Route            AbsorptionModel
	ValidDoses       []float64
	ValidIntervals   []time.Duration
	ValidInfusions   []time.Duration
	ParameterOverride map[string]ParameterSet // per analyte-group id
}

// TargetType enumerates the clinical target kinds (spec §4.5).
type TargetType int

const (
	TargetResidual TargetType = iota
	TargetPeak
	TargetAUC
	TargetTmax
	TargetCumulativeAUC
)

// TargetDefinition is one clinical target for an active moiety.
type TargetDefinition struct {
	ActiveMoietyID string
	Type           TargetType
	Min, Best, Max float64
	Unit           string
}

// ActiveMoiety is a pharmacologically relevant species, possibly an
// algebraic combination of measured analytes.
type ActiveMoiety struct {
	ID       string
	Formula  func(analyteConcentrations map[string]float64) float64
	Targets  []TargetDefinition
	Unit     string
}

// AllowMultipleRoutes controls whether a drug model permits a dosage
// history spanning more than one formulation-and-route (spec §4.6).
type AllowMultipleRoutes bool

// DrugModel is the immutable input describing one drug's population PK
// model. Borrowed read-only for the duration of a request (see spec §3
// Lifecycle); callers must keep it alive past response emission.
type DrugModel struct {
	DrugID              string
	AnalyteGroups       []AnalyteGroup
	ActiveMoieties      []ActiveMoiety
	FormulationsRoutes  []FormulationAndRoute
	CovariateDefinitions []CovariateDefinition
	TimeConsiderations  TimeConsiderations
	AllowMultipleRoutes AllowMultipleRoutes
}

// FindAnalyteGroup returns the analyte group with the given id, or nil.
func (d *DrugModel) FindAnalyteGroup(id string) *AnalyteGroup {
	for i := range d.AnalyteGroups {
		if d.AnalyteGroups[i].GroupID == id {
			return &d.AnalyteGroups[i]
		}
	}
	return nil
}

// FindFormulationAndRoute returns the matching formulation-and-route entry
// for (formulation, route), or nil.
func (d *DrugModel) FindFormulationAndRoute(formulation string, route AbsorptionModel) *FormulationAndRoute {
	for i := range d.FormulationsRoutes {
		far := &d.FormulationsRoutes[i]
		if far.Formulation == formulation && far.Route == route {
			return far
		}
	}
	return nil
}

// FindActiveMoiety returns the active moiety with the given id, or nil.
func (d *DrugModel) FindActiveMoiety(id string) *ActiveMoiety {
	for i := range d.ActiveMoieties {
		if d.ActiveMoieties[i].ID == id {
			return &d.ActiveMoieties[i]
		}
	}
	return nil
}

func convertDurationToHours(value float64, unit string) float64 {
	switch unit {
	case "h", "hour", "hours":
		return value
	case "d", "day", "days":
		return value * 24
	case "min", "minute", "minutes":
		return value / 60
	default:
		return value
	}
}
