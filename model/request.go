package model

import "time"

// ParametersType selects which parameter values a trait should be
// evaluated with.
type ParametersType int

const (
	Population ParametersType = iota
	Apriori
	Aposteriori
)

// CompartmentsOption selects whether only the main compartment or all
// compartments are reported.
type CompartmentsOption int

const (
	MainCompartment CompartmentsOption = iota
	AllCompartments
)

// ForceUnitOption selects whether reported concentrations are forced to
// ug/l or kept in the active moiety's declared unit.
type ForceUnitOption int

const (
	Force ForceUnitOption = iota
	DoNotForce
)

// ComputingOption bundles the per-trait output options (spec §6).
type ComputingOption struct {
	ParametersType      ParametersType
	CompartmentsOption  CompartmentsOption
	ForceUgPerLiter     ForceUnitOption
	RetrieveStatistics  bool
	RetrieveParameters  bool
	RetrieveCovariates  bool
}

// TraitKind tags the variant held by a ComputingTrait.
type TraitKind int

const (
	TraitConcentration TraitKind = iota
	TraitPercentiles
	TraitAdjustment
	TraitAtMeasures
	TraitSinglePoints
)

// BestCandidatesOption selects how many adjustment candidates survive
// ranking/filtering.
type BestCandidatesOption int

const (
	AllCandidates BestCandidatesOption = iota
	BestCandidate
	BestCandidatePerInterval
)

// FormulationAndRouteSelectionOption selects which formulations-and-routes
// the adjustment engine enumerates candidates over.
type FormulationAndRouteSelectionOption int

const (
	LastUsedFormulationAndRoute FormulationAndRouteSelectionOption = iota
	DefaultFormulationAndRoute
	AllFormulationsAndRoutes
)

// SteadyStateTargetOption selects whether the adjustment is computed
// assuming steady state (a single interval repeated) or dynamically
// merged into the existing history.
type SteadyStateTargetOption int

const (
	AtSteadyState SteadyStateTargetOption = iota
	Dynamic
)

// LoadingOption / RestPeriodOption gate whether the adjustment engine may
// search for a loading dose or a rest period.
type LoadingOption int

const (
	NoLoadingDose LoadingOption = iota
	LoadingDoseAllowed
)

type RestPeriodOption int

const (
	NoRestPeriod RestPeriodOption = iota
	RestPeriodAllowed
)

// TargetExtractionOption selects whether clinical targets come from the
// drug model defaults, treatment overrides, or both merged.
type TargetExtractionOption int

const (
	TargetsFromDrugModel TargetExtractionOption = iota
	TargetsFromTreatment
	TargetsMerged
)

// ComputingTrait is one requested output within a ComputingRequest.
type ComputingTrait struct {
	ID   string
	Kind TraitKind

	// Common to Concentration/Percentiles/Adjustment/SinglePoints.
	Start, End      time.Time
	NbPointsPerHour int
	Options         ComputingOption

	// Percentiles only.
	Ranks   []float64
	Aborter Aborter

	// Adjustment only.
	AdjustmentTime                     time.Time
	BestCandidatesOption               BestCandidatesOption
	FormulationAndRouteSelectionOption FormulationAndRouteSelectionOption
	SteadyStateTargetOption            SteadyStateTargetOption
	LoadingOption                      LoadingOption
	RestPeriodOption                   RestPeriodOption
	TargetExtractionOption             TargetExtractionOption

	// SinglePoints only.
	Times []time.Time
}

// ComputingRequest bundles one or more computing traits against one
// drug model and drug treatment.
type ComputingRequest struct {
	RequestID     string
	DrugModel     *DrugModel
	DrugTreatment *DrugTreatment
	Traits        []ComputingTrait
}
