package extraction

import (
	"time"

	"github.com/pkcore/pkcore/model"
)

// ExtractSamples filters a patient's raw samples down to the ones
// belonging to groupID's analytes and falling within [start, end],
// converting each to the canonical concentration unit, grounded on
// SampleExtractor::extract's "this function also converts the samples to
// ug/l" contract.
func ExtractSamples(raw []model.RawSample, groupID string, analyteIDs map[string]bool, start, end time.Time) (*model.SampleSeries, model.ComputingStatus, string) {
	series := &model.SampleSeries{GroupID: groupID}
	for _, s := range raw {
		if !analyteIDs[s.AnalyteID] {
			continue
		}
		if s.Time.Before(start) || s.Time.After(end) {
			continue
		}
		v, err := model.ToCanonicalConcentration(s.Value, s.Unit)
		if err != nil {
			return nil, model.SampleExtractionError, err.Error()
		}
		weight := s.Weight
		if weight == 0 {
			weight = 1
		}
		series.Samples = append(series.Samples, &model.SampleEvent{
			Time: s.Time, AnalyteID: s.AnalyteID, Value: v, Weight: weight,
		})
	}
	return series, model.Ok, ""
}
