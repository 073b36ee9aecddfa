package eta

import (
	"math"
	"testing"
	"time"

	"github.com/pkcore/pkcore/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_VariabilityTypes(t *testing.T) {
	v, err := Apply(model.VariabilityNone, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	v, err = Apply(model.VariabilityProportional, 10, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, v, 1e-9)

	v, err = Apply(model.VariabilityExponential, 10, math.Log(2))
	require.NoError(t, err)
	assert.InDelta(t, 20.0, v, 1e-9)

	v, err = Apply(model.VariabilityNormal, 10, -3)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, v, 1e-9)
}

func TestApply_LogitRejectsOutOfRangeP(t *testing.T) {
	_, err := Apply(model.VariabilityLogit, 1.5, 0.1)
	assert.Error(t, err)
}

func TestApply_LogitRoundTripsAtZeroEta(t *testing.T) {
	v, err := Apply(model.VariabilityLogit, 0.3, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, v, 1e-9)
}

func TestEstimateAposteriori_NoSamplesReturnsError(t *testing.T) {
	omega, err := model.NewOmega([]float64{1})
	require.NoError(t, err)
	_, status, _ := EstimateAposteriori(time.Now(), omega, model.ResidualErrorModel{}, &model.SampleSeries{}, func([]float64) ([]float64, error) { return nil, nil })
	assert.Equal(t, model.AposterioriPercentilesNoSamplesError, status)
}

func TestEstimateAposteriori_SampleBeforeTreatmentStart(t *testing.T) {
	omega, err := model.NewOmega([]float64{1})
	require.NoError(t, err)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	samples := &model.SampleSeries{Samples: []*model.SampleEvent{{Time: start.Add(-time.Hour), Value: 1}}}
	_, status, _ := EstimateAposteriori(start, omega, model.ResidualErrorModel{}, samples, func([]float64) ([]float64, error) { return []float64{1}, nil })
	assert.Equal(t, model.SampleBeforeTreatmentStart, status)
}

func TestEstimateAposteriori_RecoversKnownEta(t *testing.T) {
	omega, err := model.NewOmega([]float64{0.25})
	require.NoError(t, err)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	errorModel := model.ResidualErrorModel{Type: model.ErrorAdditive, Sigmas: []float64{0.1}}
	samples := &model.SampleSeries{Samples: []*model.SampleEvent{
		{Time: start.Add(time.Hour), Value: 12.0, Weight: 1},
	}}
	predict := func(etaVector []float64) ([]float64, error) {
		return []float64{10 * math.Exp(etaVector[0])}, nil
	}
	result, status, msg := EstimateAposteriori(start, omega, errorModel, samples, predict)
	require.Equal(t, model.Ok, status, msg)
	assert.InDelta(t, math.Log(1.2), result.Eta[0], 0.05)
}
