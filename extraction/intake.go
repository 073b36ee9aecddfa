package extraction

import (
	"time"

	"github.com/pkcore/pkcore/model"
)

// ExtractIntakes expands a DosageHistory into a concrete, time-ordered
// sequence of IntakeEvents covering [start, end), one per actual dose
// administration, then back-patches each intake's Interval so it ends
// exactly where the next begins (invariant 2) and appends a trailing
// zero-dose placeholder intake spanning to end so every calculator call
// always has a well-defined interval to integrate over, even past the
// last real dose.
func ExtractIntakes(history model.DosageHistory, start, end time.Time, defaultNbPoints int) (*model.IntakeSeries, model.ComputingStatus, string) {
	if !end.After(start) {
		return nil, model.IntakeExtractionError, "extraction end must be after start"
	}

	var intakes []*model.IntakeEvent
	for _, r := range history.Ranges {
		rangeStart := r.Start
		if rangeStart.Before(start) {
			rangeStart = start
		}
		rangeEnd := r.End
		if rangeEnd.IsZero() || rangeEnd.After(end) {
			rangeEnd = end
		}
		if !rangeEnd.After(rangeStart) {
			continue
		}

		expanded, status, msg := expandRange(r, rangeStart, rangeEnd, defaultNbPoints)
		if status != model.Ok {
			return nil, status, msg
		}
		intakes = append(intakes, expanded...)
	}

	if len(intakes) == 0 {
		return nil, model.IntakeExtractionError, "no intake falls within the extraction window"
	}

	series := &model.IntakeSeries{Intakes: intakes}
	series.EnforceContiguity()

	last := intakes[len(intakes)-1]
	if lastEnd := last.Time.Add(last.Interval); lastEnd.Before(end) {
		placeholder := &model.IntakeEvent{
			Time:        lastEnd,
			Dose:        0,
			DoseUnit:    last.DoseUnit,
			Interval:    end.Sub(lastEnd),
			Formulation: last.Formulation,
			Route:       last.Route,
			NbPoints:    defaultNbPoints,
		}
		series.Intakes = append(series.Intakes, placeholder)
	}
	return series, model.Ok, ""
}

func expandRange(r model.DosageTimeRange, start, end time.Time, nbPoints int) ([]*model.IntakeEvent, model.ComputingStatus, string) {
	route := reclassifyZeroDurationInfusion(r.Dose.Route, r.Dose.InfusionTime.Hours())

	switch r.Kind {
	case model.DosageSingle:
		return []*model.IntakeEvent{newIntake(start, r.Dose, route, end.Sub(start), nbPoints)}, model.Ok, ""

	case model.DosageRepeat, model.DosageLoop:
		interval := r.Dose.Interval
		if interval <= 0 {
			return nil, model.IntakeExtractionError, "repeating dosage requires a positive interval"
		}
		var out []*model.IntakeEvent
		t := start
		count := 0
		for t.Before(end) {
			if r.Kind == model.DosageRepeat && r.RepeatCount > 0 && count >= r.RepeatCount {
				break
			}
			next := t.Add(interval)
			span := interval
			if next.After(end) {
				span = end.Sub(t)
			}
			out = append(out, newIntake(t, r.Dose, route, span, nbPoints))
			t = next
			count++
		}
		return out, model.Ok, ""

	case model.DosageDaily:
		if len(r.DailyTimes) == 0 {
			return nil, model.IntakeExtractionError, "daily dosage requires at least one time of day"
		}
		var out []*model.IntakeEvent
		day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		for day.Before(end) {
			for _, offset := range r.DailyTimes {
				t := day.Add(offset)
				if t.Before(start) || !t.Before(end) {
					continue
				}
				out = append(out, newIntake(t, r.Dose, route, 0, nbPoints))
			}
			day = day.AddDate(0, 0, 1)
		}
		return out, model.Ok, ""
	}
	return nil, model.IntakeExtractionError, "unknown dosage kind"
}

func newIntake(t time.Time, dose model.DoseSpec, route model.AbsorptionModel, interval time.Duration, nbPoints int) *model.IntakeEvent {
	return &model.IntakeEvent{
		Time:         t,
		Dose:         dose.Dose,
		DoseUnit:     dose.DoseUnit,
		Interval:     interval,
		Formulation:  dose.Formulation,
		Route:        route,
		InfusionTime: dose.InfusionTime,
		NbPoints:     nbPoints,
	}
}

// reclassifyZeroDurationInfusion mirrors calculator.reclassifyZeroDurationInfusion,
// which is unexported; extraction keeps its own copy so intake
// construction does not depend on calculator package internals for a
// one-line rule.
func reclassifyZeroDurationInfusion(route model.AbsorptionModel, infusionHours float64) model.AbsorptionModel {
	if route == model.Infusion && infusionHours <= 0 {
		return model.Bolus
	}
	return route
}
