package model

import "time"

// SampleEvent is one measured concentration, in canonical unit (ug/l),
// with a fit weight (default 1).
type SampleEvent struct {
	Time      time.Time
	AnalyteID string
	Value     float64
	Weight    float64
}

// SampleSeries is the time-ordered sequence of samples for one analyte
// group.
type SampleSeries struct {
	GroupID string
	Samples []*SampleEvent
}

// Empty reports whether the series has no samples.
func (s *SampleSeries) Empty() bool { return len(s.Samples) == 0 }
