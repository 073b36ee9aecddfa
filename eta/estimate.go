package eta

import (
	"math"
	"time"

	"github.com/pkcore/pkcore/model"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// Predictor computes the model-predicted concentration at each sample
// time under an eta-perturbed parameter set. Supplied by the caller (the
// concentration engine) so this package never re-implements the forward
// simulation; it only evaluates the scalar objective NegativeLogLikelihood
// builds from Predictor's output.
type Predictor func(etaVector []float64) ([]float64, error)

// Result is the outcome of an a-posteriori eta fit.
type Result struct {
	Eta                []float64
	NegativeLogLikelihood float64
}

// EstimateAposteriori finds the eta vector maximising p(eta|y) by
// minimising the negative log posterior L(eta) with a BFGS quasi-Newton
// routine, ported from APosterioriEtasCalculator::computeAposterioriEtas.
// L is continuous in eta, so its gradient is taken by finite differences
// (gonum/diff/fd) rather than hand-deriving the chain rule through
// Predictor.
func EstimateAposteriori(
	treatmentStart time.Time,
	omega *model.Omega,
	errorModel model.ResidualErrorModel,
	samples *model.SampleSeries,
	predict Predictor,
) (*Result, model.ComputingStatus, string) {
	if omega == nil {
		return nil, model.AposterioriEtasCalculationEmptyOmega, "omega matrix is missing"
	}
	if samples == nil || samples.Empty() {
		return nil, model.AposterioriPercentilesNoSamplesError, "no samples available for a-posteriori fitting"
	}
	for _, s := range samples.Samples {
		if s.Time.Before(treatmentStart) {
			return nil, model.SampleBeforeTreatmentStart, "sample at " + s.Time.String() + " precedes treatment start"
		}
	}

	chol, ok := omega.Cholesky()
	if !ok {
		return nil, model.AposterioriEtasCalculationNoSquareOmega, "omega is not positive-definite"
	}
	dim := omega.Dim()

	objective := negativeLogPosterior(chol, dim, errorModel, samples, predict)

	problem := optimize.Problem{
		Func: objective,
		Grad: func(grad, x []float64) { fd.Gradient(grad, objective, x, nil) },
	}
	initial := make([]float64, dim)
	settings := &optimize.Settings{}

	result, err := optimize.Minimize(problem, initial, settings, &optimize.BFGS{})
	if err != nil {
		return nil, model.AdjustmentsInternalError, "eta optimization failed: " + err.Error()
	}

	return &Result{Eta: result.X, NegativeLogLikelihood: result.F}, model.Ok, ""
}

// negativeLogPosterior builds L(eta) = 1/2 eta^T Omega^-1 eta +
// sum_i w_i * negLogLikSample_i(y_i, yhat_i(eta)), returning math.MaxFloat64
// for any eta where Predictor fails or a sample's likelihood is undefined
// (e.g. a non-positive predicted concentration under a log-scale error
// model), steering the optimizer away from that region instead of
// propagating an error through gonum/optimize's float64-only objective.
func negativeLogPosterior(chol *mat.Cholesky, dim int, errorModel model.ResidualErrorModel, samples *model.SampleSeries, predict Predictor) func([]float64) float64 {
	return func(etaVector []float64) float64 {
		predicted, err := predict(etaVector)
		if err != nil || len(predicted) != len(samples.Samples) {
			return math.MaxFloat64
		}

		quad, ok := quadraticForm(chol, dim, etaVector)
		if !ok {
			return math.MaxFloat64
		}
		nll := 0.5 * quad
		for i, s := range samples.Samples {
			ll, ok := negLogLikSample(errorModel, s.Value, predicted[i])
			if !ok {
				return math.MaxFloat64
			}
			nll += s.Weight * ll
		}
		return nll
	}
}

// quadraticForm computes eta^T Omega^-1 eta via the precomputed Cholesky
// factor of Omega, avoiding an explicit matrix inverse.
func quadraticForm(chol *mat.Cholesky, dim int, etaVector []float64) (float64, bool) {
	if len(etaVector) != dim {
		return 0, false
	}
	b := mat.NewVecDense(dim, etaVector)
	var x mat.VecDense
	if err := chol.SolveVecTo(&x, b); err != nil {
		return 0, false
	}
	var sum float64
	for i := 0; i < dim; i++ {
		sum += etaVector[i] * x.AtVec(i)
	}
	return sum, true
}
