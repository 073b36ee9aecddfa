package model

import "fmt"

// ComputingStatus is the single failure channel for every operation in the
// core. Ports tucucore/computingservice/computingresult.h status for
// status; the first non-Ok status terminates the enclosing phase.
type ComputingStatus int

const (
	Undefined ComputingStatus = iota - 1
	Ok
	TooBig
	Aborted
	ParameterExtractionError
	SampleExtractionError
	TargetExtractionError
	InvalidCandidate
	TargetEvaluationError
	CovariateExtractionError
	IntakeExtractionError
	ErrorModelExtractionError
	UnsupportedRoute
	AnalyteConversionError
	AposterioriPercentilesNoSamplesError
	ConcentrationCalculatorNoParameters
	BadParameters
	BadConcentration
	DensityError
	AposterioriEtasCalculationEmptyOmega
	AposterioriEtasCalculationNoSquareOmega
	CouldNotFindSuitableFormulationAndRoute
	MultipleFormulationAndRoutesNotSupported
	NoPkModelError
	ComputingComponentExceptionError
	NoPkModels
	NoComputingTraits
	RecordedIntakesSizeError
	NoPercentilesCalculation
	SelectedIntakesSizeError
	NoAvailableDose
	NoAvailableInterval
	NoAvailableInfusionTime
	NoFormulationAndRouteForAdjustment
	ConcentrationSizeError
	ActiveMoietyCalculationError
	NoAnalytesGroup
	IncompatibleTreatmentModel
	ComputingComponentNotInitialized
	UncompatibleDrugDomain
	NoSteadyState
	AposterioriPercentilesOutOfScopeSamplesError
	AdjustmentsInternalError
	PercentilesNoValidPrediction
	AposterioriPercentilesNoLikelySample
	NoDosageHistory
	SampleBeforeTreatmentStart
	OutOfBoundsPercentileRank
)

var statusNames = map[ComputingStatus]string{
	Undefined:                                 "Undefined",
	Ok:                                         "Ok",
	TooBig:                                     "TooBig",
	Aborted:                                    "Aborted",
	ParameterExtractionError:                   "ParameterExtractionError",
	SampleExtractionError:                      "SampleExtractionError",
	TargetExtractionError:                      "TargetExtractionError",
	InvalidCandidate:                           "InvalidCandidate",
	TargetEvaluationError:                      "TargetEvaluationError",
	CovariateExtractionError:                   "CovariateExtractionError",
	IntakeExtractionError:                      "IntakeExtractionError",
	ErrorModelExtractionError:                  "ErrorModelExtractionError",
	UnsupportedRoute:                           "UnsupportedRoute",
	AnalyteConversionError:                     "AnalyteConversionError",
	AposterioriPercentilesNoSamplesError:       "AposterioriPercentilesNoSamplesError",
	ConcentrationCalculatorNoParameters:        "ConcentrationCalculatorNoParameters",
	BadParameters:                              "BadParameters",
	BadConcentration:                           "BadConcentration",
	DensityError:                               "DensityError",
	AposterioriEtasCalculationEmptyOmega:       "AposterioriEtasCalculationEmptyOmega",
	AposterioriEtasCalculationNoSquareOmega:    "AposterioriEtasCalculationNoSquareOmega",
	CouldNotFindSuitableFormulationAndRoute:    "CouldNotFindSuitableFormulationAndRoute",
	MultipleFormulationAndRoutesNotSupported:   "MultipleFormulationAndRoutesNotSupported",
	NoPkModelError:                             "NoPkModelError",
	ComputingComponentExceptionError:           "ComputingComponentExceptionError",
	NoPkModels:                                 "NoPkModels",
	NoComputingTraits:                          "NoComputingTraits",
	RecordedIntakesSizeError:                   "RecordedIntakesSizeError",
	NoPercentilesCalculation:                   "NoPercentilesCalculation",
	SelectedIntakesSizeError:                   "SelectedIntakesSizeError",
	NoAvailableDose:                            "NoAvailableDose",
	NoAvailableInterval:                        "NoAvailableInterval",
	NoAvailableInfusionTime:                     "NoAvailableInfusionTime",
	NoFormulationAndRouteForAdjustment:         "NoFormulationAndRouteForAdjustment",
	ConcentrationSizeError:                     "ConcentrationSizeError",
	ActiveMoietyCalculationError:               "ActiveMoietyCalculationError",
	NoAnalytesGroup:                            "NoAnalytesGroup",
	IncompatibleTreatmentModel:                 "IncompatibleTreatmentModel",
	ComputingComponentNotInitialized:           "ComputingComponentNotInitialized",
	UncompatibleDrugDomain:                     "UncompatibleDrugDomain",
	NoSteadyState:                              "NoSteadyState",
	AposterioriPercentilesOutOfScopeSamplesError: "AposterioriPercentilesOutOfScopeSamplesError",
	AdjustmentsInternalError:                   "AdjustmentsInternalError",
	PercentilesNoValidPrediction:                "PercentilesNoValidPrediction",
	AposterioriPercentilesNoLikelySample:        "AposterioriPercentilesNoLikelySample",
	NoDosageHistory:                             "NoDosageHistory",
	SampleBeforeTreatmentStart:                  "SampleBeforeTreatmentStart",
	OutOfBoundsPercentileRank:                   "OutOfBoundsPercentileRank",
}

func (s ComputingStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ComputingStatus(%d)", int(s))
}

// Error pairs a ComputingStatus with a human-readable message and an
// optional wrapped cause, so callers can use errors.Is/errors.As against
// the status while still getting a diagnostic string via Error().
type Error struct {
	Status  ComputingStatus
	Message string
	Cause   error
}

func NewError(status ComputingStatus, message string) *Error {
	return &Error{Status: status, Message: message}
}

func WrapError(status ComputingStatus, message string, cause error) *Error {
	return &Error{Status: status, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Status, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Status as e, so
// callers can match on status with `errors.Is(err, model.NewError(model.TooBig, ""))`.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status
}

// StatusOf extracts the ComputingStatus from err, defaulting to
// ComputingComponentExceptionError for any non-*Error, non-nil value and
// Ok for nil.
func StatusOf(err error) ComputingStatus {
	if err == nil {
		return Ok
	}
	if e, ok := err.(*Error); ok {
		return e.Status
	}
	return ComputingComponentExceptionError
}
