package model

import "time"

// CompartmentInfo describes one reported compartment.
type CompartmentInfo struct {
	Name string
	Unit string
}

// CycleStatistics holds per-cycle summary statistics (spec §4.6),
// computed by the orchestrator via gonum/stat when a trait requests them.
type CycleStatistics struct {
	Peak, PeakTime   float64
	Trough           float64
	AUC              float64
	Mean             float64
	Tmax             float64
}

// CycleData is one integrated intake cycle's worth of simulated data.
type CycleData struct {
	Start, End    time.Time
	Unit          string
	Concentrations [][]float64 // [compartment][timeIndex]
	TimeOffsets    []float64   // hours from Start, one per timeIndex
	Statistics     *CycleStatistics
	Parameters     *ParameterSetEvent
	Covariates     map[string]float64
}

// SinglePredictionData is the response payload for a Concentration trait.
type SinglePredictionData struct {
	TraitID      string
	Compartments []CompartmentInfo
	Cycles       []CycleData
}

// PercentileRankData is one percentile rank's concentration-vs-time curve.
type PercentileRankData struct {
	Rank   float64
	Cycles []CycleData
}

// PercentilesData is the response payload for a Percentiles trait.
type PercentilesData struct {
	TraitID      string
	Compartments []CompartmentInfo
	Percentiles  []PercentileRankData
}

// DosageAdjustment is one candidate (or the current-dosage evaluation)
// scored against the treatment's clinical targets.
type DosageAdjustment struct {
	GlobalScore    float64
	TargetScores   map[string]float64
	History        DosageHistory
	Cycles         []CycleData
	IsCurrentDose  bool
}

// AdjustmentData is the response payload for an Adjustment trait.
type AdjustmentData struct {
	TraitID         string
	Compartments    []CompartmentInfo
	Candidates      []DosageAdjustment
	CurrentDosage   *DosageAdjustment
	IsCurrentInRange bool
}

// SinglePointsData is the response payload for AtMeasures/SinglePoints
// traits.
type SinglePointsData struct {
	TraitID      string
	Compartments []CompartmentInfo
	Points       []CycleData
}

// TraitResponse is one trait's typed result plus its status; on non-Ok,
// Data is nil (spec §7 "User-visible failure behaviour").
type TraitResponse struct {
	TraitID string
	Status  ComputingStatus
	Message string
	Data    any // one of *SinglePredictionData, *PercentilesData, *AdjustmentData, *SinglePointsData
}

// ComputingResponse is the top-level output of one ComputingRequest: one
// TraitResponse per trait, in submission order.
type ComputingResponse struct {
	RequestID string
	Responses []TraitResponse
}

// GetErrorString returns the human-readable message for resp's first
// non-Ok trait response, or "" if all traits succeeded.
func (r *ComputingResponse) GetErrorString() string {
	for _, t := range r.Responses {
		if t.Status != Ok {
			return t.Message
		}
	}
	return ""
}
