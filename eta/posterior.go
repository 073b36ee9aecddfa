package eta

import (
	"github.com/pkcore/pkcore/model"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// PosteriorCovariance approximates the covariance of the a-posteriori eta
// distribution by a Laplace approximation: the inverse Hessian of the
// negative log posterior L at the MAP estimate etaStar, per spec's
// "re-centre using the MAP eta* via a Laplace-style approximation of the
// posterior covariance - the sub-omega matrix derived from the Hessian of
// L at eta*". This sub-omega is what the percentile engine's a-posteriori
// Monte Carlo draws sample from instead of the population Omega.
func PosteriorCovariance(
	omega *model.Omega,
	errorModel model.ResidualErrorModel,
	samples *model.SampleSeries,
	predict Predictor,
	etaStar []float64,
) (*mat.SymDense, bool) {
	chol, ok := omega.Cholesky()
	if !ok {
		return nil, false
	}
	dim := omega.Dim()
	objective := negativeLogPosterior(chol, dim, errorModel, samples, predict)

	hessian := mat.NewSymDense(dim, nil)
	fd.Hessian(hessian, objective, etaStar, nil)

	var sub mat.Cholesky
	if !sub.Factorize(hessian) {
		return nil, false
	}
	var inv mat.SymDense
	if err := sub.InverseTo(&inv); err != nil {
		return nil, false
	}
	return &inv, true
}
