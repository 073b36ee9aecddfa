package eta

import (
	"math"

	"github.com/pkcore/pkcore/model"
)

const twoPi = 2 * math.Pi

// negLogLikSample returns the negative log-likelihood of one observed
// concentration y given the model's prediction yhat, under errorModel's
// additive / proportional / exponential / mixed distribution, following
// the standard error-model conventions used throughout nonlinear
// mixed-effects PK fitting. The retrieved ResidualErrorModelExtractor
// header only extracts model parameters, it does not expose the
// likelihood formula itself, so this follows the conventional forms
// rather than a ported one.
//
// sigma is the effective standard deviation of the observation:
//   - additive:      sigma = Sigmas[0]
//   - proportional:  sigma = Sigmas[0] * yhat
//   - exponential:   evaluated on log(y) vs log(yhat), sigma = Sigmas[0]
//   - mixed:         sigma = sqrt(Sigmas[0]^2 + (Sigmas[1]*yhat)^2)
func negLogLikSample(errorModel model.ResidualErrorModel, y, yhat float64) (float64, bool) {
	sigmas := errorModel.Sigmas
	switch errorModel.Type {
	case model.ErrorAdditive:
		if len(sigmas) < 1 || sigmas[0] <= 0 {
			return 0, false
		}
		return gaussianNLL(y-yhat, sigmas[0]), true

	case model.ErrorProportional:
		if len(sigmas) < 1 || sigmas[0] <= 0 {
			return 0, false
		}
		sigma := sigmas[0] * math.Abs(yhat)
		if sigma <= 0 {
			return 0, false
		}
		return gaussianNLL(y-yhat, sigma), true

	case model.ErrorExponential:
		if len(sigmas) < 1 || sigmas[0] <= 0 || y <= 0 || yhat <= 0 {
			return 0, false
		}
		return gaussianNLL(math.Log(y)-math.Log(yhat), sigmas[0]), true

	case model.ErrorMixed:
		if len(sigmas) < 2 || sigmas[0] < 0 || sigmas[1] < 0 {
			return 0, false
		}
		sigma := math.Sqrt(sigmas[0]*sigmas[0] + sigmas[1]*sigmas[1]*yhat*yhat)
		if sigma <= 0 {
			return 0, false
		}
		if errorModel.LogScale {
			if y <= 0 || yhat <= 0 {
				return 0, false
			}
			return gaussianNLL(math.Log(y)-math.Log(yhat), sigma), true
		}
		return gaussianNLL(y-yhat, sigma), true
	}
	return 0, false
}

func gaussianNLL(residual, sigma float64) float64 {
	return 0.5*math.Log(twoPi*sigma*sigma) + (residual*residual)/(2*sigma*sigma)
}
