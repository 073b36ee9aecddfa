package model

import "time"

// IntakeEvent is one discrete dosing event expanded from the dosage
// history. Calculator is attached by the extraction pipeline once the
// formulation-and-route is resolved (invariant 1: every intake in an
// IntakeSeries must have a non-nil Calculator before integration begins).
type IntakeEvent struct {
	Time         time.Time
	Offset       time.Duration // offset from the start of the integration window
	Dose         float64
	DoseUnit     string
	Interval     time.Duration
	Formulation  string
	Route        AbsorptionModel
	InfusionTime time.Duration
	NbPoints     int

	// Calculator is an opaque handle set by the calculator package
	// (calculator.Calculator); kept as `any` here so model stays leaf
	// and never imports calculator.
	Calculator any
}

// IntervalHours returns Interval in fractional hours.
func (e *IntakeEvent) IntervalHours() float64 { return e.Interval.Hours() }

// InfusionHours returns InfusionTime in fractional hours.
func (e *IntakeEvent) InfusionHours() float64 { return e.InfusionTime.Hours() }

// IntakeSeries is an ordered, time-aligned sequence of intakes for one
// analyte group.
type IntakeSeries struct {
	GroupID string
	Intakes []*IntakeEvent
}

// EnforceContiguity back-patches each intake's Interval so intake i ends
// exactly where intake i+1 begins (invariant 2). The last intake's
// Interval is left untouched; extraction.ExtractIntakes calls this before
// appending its zero-dose placeholder, which then starts where that last
// intake ends.
func (s *IntakeSeries) EnforceContiguity() {
	for i := 0; i+1 < len(s.Intakes); i++ {
		s.Intakes[i].Interval = s.Intakes[i+1].Time.Sub(s.Intakes[i].Time)
	}
}
