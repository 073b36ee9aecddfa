package extraction

import "github.com/pkcore/pkcore/model"

// CheckOverload rejects an extraction whose intake count exceeds
// maxIntakes or any of whose intakes asks for more than
// maxPointsPerIntake points, returning TooBig so the orchestrator can fail fast
// before handing an unbounded series to the calculator/percentile
// pipeline rather than let it run out of memory mid-computation.
func CheckOverload(series *model.IntakeSeries, maxIntakes, maxPointsPerIntake int) (model.ComputingStatus, string) {
	if len(series.Intakes) > maxIntakes {
		return model.TooBig, "intake count exceeds the configured maximum"
	}
	for _, intake := range series.Intakes {
		if intake.NbPoints > maxPointsPerIntake {
			return model.TooBig, "points-per-intake exceeds the configured maximum"
		}
	}
	return model.Ok, ""
}
