package calculator

// Derivative computes dc/dt at time t given the current compartment
// amounts c, writing the result into dcdt. Grounded on the original's
// per-calculator derive() callback (e.g. rkonecompartmentextra.h,
// rkthreecompartment.h): each nonstandard-kinetics calculator supplies its
// own derive closure and RK4Solve stays generic over compartment count.
type Derivative func(t float64, c []float64, dcdt []float64)

// FixedValueHook lets a calculator inject a discrete change into the
// state at a sub-step boundary, mirroring the original's addFixedValue
// hook (used there to deliver a lagged dose into the depot compartment
// once t crosses Tlag).
type FixedValueHook func(t float64, c []float64)

const defaultRK4MaxStep = 0.01 // hours

// RK4Solve integrates a compartment ODE system from t=0 using fixed-step
// classical Runge-Kutta, recording the state at each of outputTimes
// (sorted ascending, all >= 0). fixedValue, when non-nil, runs after
// every sub-step including at t=0, so it can apply a discrete event (e.g.
// a lagged dose) exactly once when t crosses its trigger time.
func RK4Solve(initial []float64, derive Derivative, fixedValue FixedValueHook, outputTimes []float64, maxStep float64) [][]float64 {
	if maxStep <= 0 {
		maxStep = defaultRK4MaxStep
	}
	n := len(initial)
	state := make([]float64, n)
	copy(state, initial)
	t := 0.0

	k1 := make([]float64, n)
	k2 := make([]float64, n)
	k3 := make([]float64, n)
	k4 := make([]float64, n)
	tmp := make([]float64, n)

	step := func(h float64) {
		derive(t, state, k1)
		for i := range tmp {
			tmp[i] = state[i] + 0.5*h*k1[i]
		}
		derive(t+0.5*h, tmp, k2)
		for i := range tmp {
			tmp[i] = state[i] + 0.5*h*k2[i]
		}
		derive(t+0.5*h, tmp, k3)
		for i := range tmp {
			tmp[i] = state[i] + h*k3[i]
		}
		derive(t+h, tmp, k4)
		for i := range state {
			state[i] += h / 6 * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
		}
		t += h
		if fixedValue != nil {
			fixedValue(t, state)
		}
	}

	if fixedValue != nil {
		fixedValue(t, state)
	}

	out := make([][]float64, len(outputTimes))
	for idx, target := range outputTimes {
		for target-t > 1e-12 {
			h := target - t
			if h > maxStep {
				h = maxStep
			}
			step(h)
		}
		rec := make([]float64, n)
		copy(rec, state)
		out[idx] = rec
	}
	return out
}
