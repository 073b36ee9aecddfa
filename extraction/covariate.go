package extraction

import (
	"strconv"
	"time"

	"github.com/pkcore/pkcore/model"
)

// ExtractCovariates converts raw patient covariate overrides into a
// CovariateSeries, seeding one event per definition at the window start
// from its default value, then one event per patient-supplied override
// that falls within [start, end]. Every raw value is parsed as a float,
// since model.CovariateEvent carries float64 values throughout, whatever
// the definition's declared type; a value that does not parse (such as
// "true" or a date string) is rejected with CovariateExtractionError, so
// booleans are accepted only as 0/1 and date-typed covariates are not
// supported.
func ExtractCovariates(defs []model.CovariateDefinition, raw []model.PatientCovariate, start, end time.Time) (*model.CovariateSeries, model.ComputingStatus, string) {
	series := &model.CovariateSeries{}
	for _, d := range defs {
		series.Events = append(series.Events, model.CovariateEvent{Time: start, ID: d.ID, Value: d.Default})
	}
	for _, r := range raw {
		if r.Time.Before(start) || r.Time.After(end) {
			continue
		}
		v, err := strconv.ParseFloat(r.Value, 64)
		if err != nil {
			return nil, model.CovariateExtractionError, "covariate " + r.ID + " has a non-numeric value: " + r.Value
		}
		series.Events = append(series.Events, model.CovariateEvent{Time: r.Time, ID: r.ID, Value: v})
	}
	return series, model.Ok, ""
}
