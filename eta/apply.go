package eta

import (
	"fmt"
	"math"

	"github.com/pkcore/pkcore/model"
)

// Apply combines a parameter's nominal (population) value p with an eta
// realization according to variability, per the original's
// computeValue-per-etatype switch:
//
//	None          -> p               (eta ignored)
//	Proportional  -> p * (1 + eta)
//	Exponential,
//	LogNormal     -> p * exp(eta)
//	Normal        -> p + eta
//	Logit         -> logistic(logit(p) + eta); only valid for 0 < p < 1
func Apply(variability model.VariabilityType, p, etaValue float64) (float64, error) {
	switch variability {
	case model.VariabilityNone:
		return p, nil
	case model.VariabilityProportional:
		return p * (1 + etaValue), nil
	case model.VariabilityExponential, model.VariabilityLogNormal:
		return p * math.Exp(etaValue), nil
	case model.VariabilityNormal:
		return p + etaValue, nil
	case model.VariabilityLogit:
		if p <= 0 || p >= 1 {
			return 0, fmt.Errorf("logit variability requires 0 < p < 1, got %g", p)
		}
		return logistic(logit(p) + etaValue), nil
	default:
		return 0, fmt.Errorf("unknown variability type %v", variability)
	}
}

func logit(p float64) float64 { return math.Log(p / (1 - p)) }

func logistic(x float64) float64 { return 1 / (1 + math.Exp(-x)) }
