package model

import "time"

// ParameterValue is one (parameter id, value) pair.
type ParameterValue struct {
	ID    string
	Value float64
}

// ParameterSetEvent is one timeline event carrying the ordered collection
// of (parameter id, value) pairs in effect from Time onward, until the
// next event. After consolidation (invariant 3), every event's Values
// covers every parameter of the group.
type ParameterSetEvent struct {
	Time   time.Time
	Values []ParameterValue
}

// Get returns the value of parameter id in this event, and whether it was
// present.
func (e *ParameterSetEvent) Get(id string) (float64, bool) {
	for _, v := range e.Values {
		if v.ID == id {
			return v.Value, true
		}
	}
	return 0, false
}

// AsMap returns the event's values as a map, convenient for formula
// evaluation and calculator parameter lookup.
func (e *ParameterSetEvent) AsMap() map[string]float64 {
	m := make(map[string]float64, len(e.Values))
	for _, v := range e.Values {
		m[v.ID] = v.Value
	}
	return m
}

// ParameterSetSeries is the time-ordered sequence of parameter set events
// for one analyte group.
type ParameterSetSeries struct {
	GroupID string
	Events  []*ParameterSetEvent
}

// EventAt returns the event in effect at t (last event at or before t),
// or nil if the series has no event at or before t.
func (s *ParameterSetSeries) EventAt(t time.Time) *ParameterSetEvent {
	var best *ParameterSetEvent
	for _, e := range s.Events {
		if e.Time.After(t) {
			continue
		}
		if best == nil || e.Time.After(best.Time) {
			best = e
		}
	}
	return best
}

// IsFull reports whether every event in the series defines every id in
// ids (invariant 3, checked after consolidation).
func (s *ParameterSetSeries) IsFull(ids []string) bool {
	for _, e := range s.Events {
		for _, id := range ids {
			if _, ok := e.Get(id); !ok {
				return false
			}
		}
	}
	return true
}
