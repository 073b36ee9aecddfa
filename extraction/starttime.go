package extraction

import (
	"time"

	"github.com/pkcore/pkcore/model"
)

// SecureStartDuration returns how far before the first sample or dose of
// interest the extraction window must reach back so that a-posteriori
// parameter/covariate extraction has seen the half-life times multiplier
// worth of history, ported from GeneralExtractor::secureStartDuration
// (half-life value and unit, scaled by the drug model's configured
// multiplier).
func SecureStartDuration(tc model.TimeConsiderations) time.Duration {
	hours := tc.HalfLifeHours()
	if hours <= 0 {
		return 0
	}
	return time.Duration(hours * tc.Multiplier * float64(time.Hour))
}

// CalculationStartTime picks the earliest instant the extraction pipeline
// must consider: far enough before the treatment's first dose to capture
// a secure half-life margin, and no later than the earliest relevant
// sample (an a-posteriori computation needs history leading up to that
// sample too).
func CalculationStartTime(treatment *model.DrugTreatment, tc model.TimeConsiderations) time.Time {
	start := treatment.Start()
	secure := start.Add(-SecureStartDuration(tc))
	earliest := secure
	for _, s := range treatment.Samples {
		if s.Time.Before(earliest) {
			earliest = s.Time
		}
	}
	return earliest
}
