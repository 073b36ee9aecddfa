package extraction

import (
	"time"

	"github.com/pkcore/pkcore/model"
)

// ExtractParameters evaluates an analyte group's parameter formulas at
// the start time and again at every later covariate change strictly
// before end, producing one fully-consolidated ParameterSetEvent per
// change point (invariant 3: IsFull must hold for each event).
//
// A parameter's Formula is an opaque Go closure rather than a parsed
// expression tree (see model.Formula), so ExtractParameters cannot do a
// static topological sort of inter-parameter dependencies the way the
// original's ParametersExtractor can over its expression AST. Instead it
// evaluates formulas in a fixed-point loop: each pass feeds every
// covariate snapshot plus every parameter value resolved so far to the
// remaining unresolved formulas, and a pass that resolves nothing further
// (with at least one formula still unresolved) is reported as a
// dependency cycle.
func ExtractParameters(params model.ParameterSet, covariates *model.CovariateSeries, start, end time.Time) (*model.ParameterSetSeries, model.ComputingStatus, string) {
	series := &model.ParameterSetSeries{}

	changeTimes := parameterChangeTimes(covariates, start, end)
	for _, t := range changeTimes {
		snapshot := covariates.AllAt(t)
		values, status, msg := resolveParameterSet(params, snapshot)
		if status != model.Ok {
			return nil, status, msg
		}
		series.Events = append(series.Events, &model.ParameterSetEvent{Time: t, Values: values})
	}
	return series, model.Ok, ""
}

func parameterChangeTimes(covariates *model.CovariateSeries, start, end time.Time) []time.Time {
	times := []time.Time{start}
	for _, e := range covariates.Events {
		if e.Time.After(start) && e.Time.Before(end) {
			times = append(times, e.Time)
		}
	}
	return times
}

// populationKey is the name a parameter's population value is exposed
// under to other parameters' formulas, per model.Formula's "<id>_population"
// convention - distinct from a covariate's own ID so a parameter and a
// covariate can share a name without colliding.
func populationKey(id string) string { return id + "_population" }

func resolveParameterSet(params model.ParameterSet, covariateSnapshot map[string]float64) ([]model.ParameterValue, model.ComputingStatus, string) {
	resolved := make(map[string]float64, len(covariateSnapshot)+len(params.Parameters))
	for k, v := range covariateSnapshot {
		resolved[k] = v
	}
	remaining := make(map[string]model.ParameterDefinition, len(params.Parameters))
	for _, p := range params.Parameters {
		remaining[p.ID] = p
	}

	for len(remaining) > 0 {
		progressed := false
		for id, def := range remaining {
			v, err := def.Formula(resolved)
			if err != nil {
				continue
			}
			resolved[populationKey(id)] = v
			delete(remaining, id)
			progressed = true
		}
		if !progressed {
			return nil, model.ParameterExtractionError, "parameter formulas could not be resolved (missing dependency or a cycle)"
		}
	}

	values := make([]model.ParameterValue, 0, len(params.Parameters))
	for _, p := range params.Parameters {
		values = append(values, model.ParameterValue{ID: p.ID, Value: resolved[populationKey(p.ID)]})
	}
	return values, model.Ok, ""
}
