// Command pkcore runs a single one-compartment extravascular dose through
// the extraction and calculator pipeline and logs, for each intake cycle,
// the central concentration at its start and end. The distilled spec excludes command-line
// tooling and a drug-model validation CLI as non-goals, so this is
// deliberately a fixed demonstration driver of the PK core rather than a
// flag-parsing CLI — it exists to give the module a working `go run`
// entrypoint, not to front the full request/response engine (the
// orchestrator package that will do that is still pending).
package main

import (
	"time"

	"github.com/pkcore/pkcore/calculator"
	"github.com/pkcore/pkcore/extraction"
	"github.com/pkcore/pkcore/model"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	history := model.DosageHistory{Ranges: []model.DosageTimeRange{
		{
			Start: start, End: end, Kind: model.DosageSingle,
			Dose: model.DoseSpec{Dose: 500, DoseUnit: "mg", Formulation: "tablet", Route: model.Extravascular},
		},
	}}

	covariateDefs := []model.CovariateDefinition{{ID: "weight", Default: 70, Type: model.CovariateDouble}}
	params := model.ParameterSet{Parameters: []model.ParameterDefinition{
		{ID: "V", Variability: model.VariabilityExponential, Formula: func(m map[string]float64) (float64, error) {
			return 0.7 * m["weight"], nil
		}},
		{ID: "Ke", Variability: model.VariabilityExponential, Formula: func(m map[string]float64) (float64, error) {
			return 0.1, nil
		}},
		{ID: "Ka", Variability: model.VariabilityNone, Formula: func(m map[string]float64) (float64, error) {
			return 1.0, nil
		}},
		{ID: "F", Variability: model.VariabilityNone, Formula: func(m map[string]float64) (float64, error) {
			return 1.0, nil
		}},
	}}

	log.WithFields(logrus.Fields{"dose_mg": 500, "route": model.Extravascular.String()}).Info("extracting intakes")

	intakes, status, msg := extraction.ExtractIntakes(history, start, end, 24)
	if status != model.Ok {
		log.Fatalf("intake extraction failed: %s: %s", status, msg)
	}

	covariates, status, msg := extraction.ExtractCovariates(covariateDefs, nil, start, end)
	if status != model.Ok {
		log.Fatalf("covariate extraction failed: %s: %s", status, msg)
	}

	parameterSeries, status, msg := extraction.ExtractParameters(params, covariates, start, end)
	if status != model.Ok {
		log.Fatalf("parameter extraction failed: %s: %s", status, msg)
	}

	if status, msg := extraction.AssociateCalculators(intakes, 1, false); status != model.Ok {
		log.Fatalf("calculator association failed: %s: %s", status, msg)
	}

	// The one-compartment extravascular family carries two residuals
	// (central, depot); start both at zero since no dose has been
	// administered before the first intake.
	residuals := calculator.Residuals{0, 0}
	for i, intake := range intakes.Intakes {
		calc, ok := intake.Calculator.(calculator.Calculator)
		if !ok {
			log.Fatalf("intake %d has no resolved calculator", i)
		}
		event := parameterSeries.EventAt(intake.Time)
		if event == nil {
			log.Fatalf("intake %d has no parameter values in effect", i)
		}

		concentrations, outResiduals, status, msg := calc.CalculateIntakePoints(intake, event.AsMap(), residuals)
		if status != model.Ok {
			log.Fatalf("calculator failed on intake %d: %s: %s", i, status, msg)
		}
		residuals = outResiduals

		log.WithFields(logrus.Fields{
			"intake":        i,
			"time":          intake.Time.Format(time.RFC3339),
			"dose_mg":       intake.Dose,
			"central_start": concentrations[0][0],
			"central_end":   concentrations[0][len(concentrations[0])-1],
		}).Info("computed intake cycle")
	}
}
