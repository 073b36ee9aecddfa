package calculator

import "sort"

// PertinentTimes produces the evaluation grid for an interval of length
// intervalHours with nbPoints evenly spaced samples (spec §4.1 "Time
// grids"): uniform spacing for the standard case, with an extra break
// point inserted at each of breakpoints (e.g. Tinf for infusions, Tlag for
// lagged absorption) to preserve non-differentiable transitions. The
// returned slice always starts at 0 and ends at intervalHours, has at
// least nbPoints entries, and is sorted ascending with duplicates removed.
func PertinentTimes(intervalHours float64, nbPoints int, breakpoints ...float64) []float64 {
	if nbPoints < 2 {
		nbPoints = 2
	}
	times := make([]float64, nbPoints)
	step := intervalHours / float64(nbPoints-1)
	for i := range times {
		times[i] = step * float64(i)
	}
	for _, bp := range breakpoints {
		if bp > 0 && bp < intervalHours {
			times = append(times, bp)
		}
	}
	sort.Float64s(times)
	return dedupeSorted(times)
}

func dedupeSorted(times []float64) []float64 {
	if len(times) == 0 {
		return times
	}
	const eps = 1e-9
	out := times[:1]
	for _, t := range times[1:] {
		if t-out[len(out)-1] > eps {
			out = append(out, t)
		}
	}
	return out
}
