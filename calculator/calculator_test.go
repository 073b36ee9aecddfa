package calculator

import (
	"testing"
	"time"

	"github.com/pkcore/pkcore/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeIntake(dose float64, interval time.Duration, nbPoints int, infusion time.Duration) *model.IntakeEvent {
	return &model.IntakeEvent{
		Dose:         dose,
		Interval:     interval,
		NbPoints:     nbPoints,
		InfusionTime: infusion,
	}
}

func TestOneCompartmentBolusMicro_DecaysFromPeak(t *testing.T) {
	c := NewOneCompartmentBolusMicro()
	intake := makeIntake(1000, 12*time.Hour, 50, 0)
	conc, resid, status, msg := c.CalculateIntakePoints(intake, map[string]float64{"Ke": 0.2, "V": 50}, Residuals{0})
	require.Equal(t, model.Ok, status, msg)
	assert.InDelta(t, 1000.0/50.0, conc[0][0], 1e-9)
	for i := 1; i < len(conc[0]); i++ {
		assert.Less(t, conc[0][i], conc[0][i-1])
	}
	assert.Greater(t, resid[0], 0.0)
}

func TestOneCompartmentBolusMacro_MatchesMicro(t *testing.T) {
	micro := NewOneCompartmentBolusMicro()
	macro := NewOneCompartmentBolusMacro()
	intake := makeIntake(500, 8*time.Hour, 20, 0)

	cMicro, _, status1, _ := micro.CalculateIntakePoints(intake, map[string]float64{"Ke": 0.15, "V": 40}, Residuals{0})
	cMacro, _, status2, _ := macro.CalculateIntakePoints(intake, map[string]float64{"CL": 6, "V": 40}, Residuals{0})
	require.Equal(t, model.Ok, status1)
	require.Equal(t, model.Ok, status2)
	for i := range cMicro[0] {
		assert.InDelta(t, cMicro[0][i], cMacro[0][i], 1e-9)
	}
}

func TestOneCompartmentInfusion_ZeroDurationDegeneratesToBolus(t *testing.T) {
	c := NewOneCompartmentInfusionMicro()
	intake := makeIntake(1000, 12*time.Hour, 10, 0)
	conc, _, status, msg := c.CalculateIntakePoints(intake, map[string]float64{"Ke": 0.2, "V": 50}, Residuals{0})
	require.Equal(t, model.Ok, status, msg)
	assert.InDelta(t, 1000.0/50.0, conc[0][0], 1e-9)
}

func TestOneCompartmentExtraLagMicro_ZeroLagMatchesExtra(t *testing.T) {
	lag := NewOneCompartmentExtraLagMicro()
	extra := NewOneCompartmentExtraMicro()
	intake := makeIntake(500, 24*time.Hour, 30, 0)
	params := map[string]float64{"Ke": 0.1, "V": 30, "Ka": 1.0, "F": 0.8}

	withLag := map[string]float64{"Ke": 0.1, "V": 30, "Ka": 1.0, "F": 0.8, "Tlag": 0}
	cLag, _, s1, _ := lag.CalculateIntakePoints(intake, withLag, Residuals{0, 0})
	cExtra, _, s2, _ := extra.CalculateIntakePoints(intake, params, Residuals{0, 0})
	require.Equal(t, model.Ok, s1)
	require.Equal(t, model.Ok, s2)
	for i := range cLag[0] {
		assert.InDelta(t, cLag[0][i], cExtra[0][i], 1e-9)
	}
}

func TestOneCompartmentExtraLagMicro_MatchesRK4(t *testing.T) {
	analytical := NewOneCompartmentExtraLagMicro()
	numeric := NewOneCompartmentExtraLagRK4()
	intake := makeIntake(500, 24*time.Hour, 40, 0)
	params := map[string]float64{"Ke": 0.15, "V": 35, "Ka": 0.8, "F": 0.9, "Tlag": 1.5}

	cAnalytical, _, s1, _ := analytical.CalculateIntakePoints(intake, params, Residuals{0, 0})
	cNumeric, _, s2, _ := numeric.CalculateIntakePoints(intake, params, Residuals{0, 0})
	require.Equal(t, model.Ok, s1)
	require.Equal(t, model.Ok, s2)
	require.Equal(t, len(cAnalytical[0]), len(cNumeric[0]))
	for i := range cAnalytical[0] {
		assert.InDelta(t, cAnalytical[0][i], cNumeric[0][i], 1e-3)
	}
}

func TestValidateParameters_RejectsMissingAndNonPositive(t *testing.T) {
	c := NewOneCompartmentBolusMicro()
	_, _, status, _ := c.CalculateIntakePoints(makeIntake(10, time.Hour, 5, 0), map[string]float64{"Ke": 0.1}, Residuals{0})
	assert.Equal(t, model.BadParameters, status)

	_, _, status, _ = c.CalculateIntakePoints(makeIntake(10, time.Hour, 5, 0), map[string]float64{"Ke": 0.1, "V": 0}, Residuals{0})
	assert.Equal(t, model.BadParameters, status)
}

func TestRegistry_ResolveKnownAndUnknown(t *testing.T) {
	calc, ok := Resolve(CalculatorKey{1, model.ExtravascularLag, false})
	require.True(t, ok)
	assert.Equal(t, []string{"Ke", "V", "Ka", "F", "Tlag"}, calc.RequiredParameters())

	_, ok = Resolve(CalculatorKey{5, model.Bolus, false})
	assert.False(t, ok)
}

func TestTwoCompartmentBolus_ConservesMassDirectionOfDecay(t *testing.T) {
	c := NewTwoCompartmentBolus()
	intake := makeIntake(1000, 24*time.Hour, 50, 0)
	params := map[string]float64{"V1": 40, "Ke": 0.1, "K12": 0.3, "K21": 0.2}
	conc, _, status, msg := c.CalculateIntakePoints(intake, params, Residuals{0, 0})
	require.Equal(t, model.Ok, status, msg)
	assert.Greater(t, conc[0][0], 0.0)
	assert.Less(t, conc[0][len(conc[0])-1], conc[0][0])
}

func TestTwoCompartmentBolusMacro_MatchesMicro(t *testing.T) {
	micro := NewTwoCompartmentBolus()
	macro := NewTwoCompartmentBolusMacro()
	intake := makeIntake(800, 24*time.Hour, 30, 0)
	microParams := map[string]float64{"V1": 40, "Ke": 0.125, "K12": 0.25, "K21": 0.5}
	macroParams := map[string]float64{"V1": 40, "V2": 20, "CL": 5, "Q1": 10}

	cMicro, _, s1, _ := micro.CalculateIntakePoints(intake, microParams, Residuals{0, 0})
	cMacro, _, s2, _ := macro.CalculateIntakePoints(intake, macroParams, Residuals{0, 0})
	require.Equal(t, model.Ok, s1)
	require.Equal(t, model.Ok, s2)
	for i := range cMicro[0] {
		assert.InDelta(t, cMicro[0][i], cMacro[0][i], 1e-6)
	}
}

func TestTwoCompartmentErlang_DoseEventuallyReachesCentral(t *testing.T) {
	c := NewTwoCompartmentErlangMicro()
	intake := makeIntake(600, 48*time.Hour, 80, 0)
	params := map[string]float64{"V1": 30, "Ktr": 0.5, "Ke": 0.1, "K12": 0.2, "K21": 0.1, "F": 1.0}
	inResiduals := make(Residuals, c.NbCompartments())
	conc, _, status, msg := c.CalculateIntakePoints(intake, params, inResiduals)
	require.Equal(t, model.Ok, status, msg)
	peak := 0.0
	for _, v := range conc[0] {
		if v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, 0.0)
}

func TestOneCompartmentGammaMicro_RunsToCompletion(t *testing.T) {
	c := NewOneCompartmentGammaMicro()
	intake := makeIntake(400, 24*time.Hour, 40, 0)
	params := map[string]float64{"Ke": 0.12, "V": 35, "F": 0.9, "A": 3.0, "B": 1.2}
	conc, resid, status, msg := c.CalculateIntakePoints(intake, params, Residuals{0, 0})
	require.Equal(t, model.Ok, status, msg)
	assert.Len(t, conc[0], 40)
	assert.Len(t, resid, 2)
}

func TestPertinentTimes_IncludesBreakpointAndEndpoints(t *testing.T) {
	times := PertinentTimes(10, 5, 3.3)
	assert.InDelta(t, 0, times[0], 1e-9)
	assert.InDelta(t, 10, times[len(times)-1], 1e-9)
	found := false
	for _, tm := range times {
		if tm > 3.29 && tm < 3.31 {
			found = true
		}
	}
	assert.True(t, found, "breakpoint should be present in the grid")
}
