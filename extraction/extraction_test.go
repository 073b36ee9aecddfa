package extraction

import (
	"testing"
	"time"

	"github.com/pkcore/pkcore/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIntakes_RepeatDosageEnforcesContiguity(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(72 * time.Hour)
	history := model.DosageHistory{Ranges: []model.DosageTimeRange{
		{
			Start: start, End: end, Kind: model.DosageRepeat,
			Dose: model.DoseSpec{Dose: 100, DoseUnit: "mg", Formulation: "tablet", Route: model.Extravascular, Interval: 24 * time.Hour},
		},
	}}
	series, status, msg := ExtractIntakes(history, start, end, 50)
	require.Equal(t, model.Ok, status, msg)
	require.Len(t, series.Intakes, 3)
	for i := 0; i+1 < len(series.Intakes); i++ {
		assert.Equal(t, series.Intakes[i+1].Time.Sub(series.Intakes[i].Time), series.Intakes[i].Interval)
	}
}

func TestExtractIntakes_AppendsZeroDosePlaceholderTail(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	doseEnd := start.Add(24 * time.Hour)
	windowEnd := start.Add(48 * time.Hour)
	history := model.DosageHistory{Ranges: []model.DosageTimeRange{
		{
			Start: start, End: doseEnd, Kind: model.DosageSingle,
			Dose: model.DoseSpec{Dose: 100, DoseUnit: "mg", Formulation: "tablet", Route: model.Bolus},
		},
	}}
	series, status, _ := ExtractIntakes(history, start, windowEnd, 20)
	require.Equal(t, model.Ok, status)
	require.Len(t, series.Intakes, 2)
	assert.Equal(t, 0.0, series.Intakes[1].Dose)
	assert.Equal(t, windowEnd, series.Intakes[1].Time.Add(series.Intakes[1].Interval))
}

func TestExtractIntakes_ZeroDurationInfusionReclassifiedAsBolus(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(12 * time.Hour)
	history := model.DosageHistory{Ranges: []model.DosageTimeRange{
		{
			Start: start, End: end, Kind: model.DosageSingle,
			Dose: model.DoseSpec{Dose: 100, DoseUnit: "mg", Formulation: "IV", Route: model.Infusion, InfusionTime: 0},
		},
	}}
	series, status, _ := ExtractIntakes(history, start, end, 10)
	require.Equal(t, model.Ok, status)
	assert.Equal(t, model.Bolus, series.Intakes[0].Route)
}

func TestExtractSamples_FiltersByAnalyteAndWindow(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	raw := []model.RawSample{
		{Time: start.Add(time.Hour), AnalyteID: "parent", Value: 5, Unit: "mg/l"},
		{Time: start.Add(time.Hour), AnalyteID: "metabolite", Value: 1, Unit: "mg/l"},
		{Time: start.Add(-time.Hour), AnalyteID: "parent", Value: 2, Unit: "mg/l"},
	}
	series, status, msg := ExtractSamples(raw, "group-1", map[string]bool{"parent": true}, start, end)
	require.Equal(t, model.Ok, status, msg)
	require.Len(t, series.Samples, 1)
	assert.InDelta(t, 5000, series.Samples[0].Value, 1e-9)
	assert.Equal(t, 1.0, series.Samples[0].Weight)
}

func TestExtractSamples_UnknownUnitErrors(t *testing.T) {
	start := time.Now()
	raw := []model.RawSample{{Time: start, AnalyteID: "parent", Value: 5, Unit: "mol/l"}}
	_, status, _ := ExtractSamples(raw, "g", map[string]bool{"parent": true}, start.Add(-time.Hour), start.Add(time.Hour))
	assert.Equal(t, model.SampleExtractionError, status)
}

func TestExtractParameters_ResolvesDependentFormulas(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	params := model.ParameterSet{Parameters: []model.ParameterDefinition{
		{ID: "CL", Formula: func(m map[string]float64) (float64, error) { return 5 * m["weight"] / 70, nil }},
		{ID: "V", Formula: func(m map[string]float64) (float64, error) { return 50, nil }},
		{ID: "Ke", Formula: func(m map[string]float64) (float64, error) {
			cl, ok := m["CL_population"]
			if !ok {
				return 0, assertUnresolved
			}
			v, ok := m["V_population"]
			if !ok {
				return 0, assertUnresolved
			}
			return cl / v, nil
		}},
	}}
	covariates := &model.CovariateSeries{Events: []model.CovariateEvent{{Time: start, ID: "weight", Value: 70}}}

	series, status, msg := ExtractParameters(params, covariates, start, end)
	require.Equal(t, model.Ok, status, msg)
	require.Len(t, series.Events, 1)
	ke, ok := series.Events[0].Get("Ke")
	require.True(t, ok)
	assert.InDelta(t, 5.0/50.0, ke, 1e-9)
}

func TestExtractParameters_CycleReturnsError(t *testing.T) {
	start := time.Now()
	params := model.ParameterSet{Parameters: []model.ParameterDefinition{
		{ID: "A", Formula: func(m map[string]float64) (float64, error) {
			if _, ok := m["B_population"]; !ok {
				return 0, assertUnresolved
			}
			return m["B_population"] + 1, nil
		}},
		{ID: "B", Formula: func(m map[string]float64) (float64, error) {
			if _, ok := m["A_population"]; !ok {
				return 0, assertUnresolved
			}
			return m["A_population"] + 1, nil
		}},
	}}
	covariates := &model.CovariateSeries{}
	_, status, _ := ExtractParameters(params, covariates, start, start.Add(time.Hour))
	assert.Equal(t, model.ParameterExtractionError, status)
}

var assertUnresolved = model.NewError(model.ParameterExtractionError, "dependency not yet resolved")
