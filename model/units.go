package model

import "fmt"

// concentrationFactors converts 1 unit of the key into ug/l, the internal
// canonical concentration unit (spec §6). Ported from computingutils.cpp's
// conversion table; a full units-of-measure library is out of scope for
// this small, closed set of clinical concentration units, and no corpus
// example carries one, so a lookup table is the deliberate choice here.
var concentrationFactors = map[string]float64{
	"ug/l": 1,
	"mg/l": 1000,
	"g/l":  1e6,
	"ng/l": 1e-3,
	"ug/ml": 1000,
	"mg/ml": 1e6,
	"ng/ml": 1,
}

// ToCanonicalConcentration converts value (in unit) to ug/l.
func ToCanonicalConcentration(value float64, unit string) (float64, error) {
	factor, ok := concentrationFactors[unit]
	if !ok {
		return 0, NewError(AnalyteConversionError, fmt.Sprintf("unknown concentration unit %q", unit))
	}
	return value * factor, nil
}

// FromCanonicalConcentration converts a ug/l value to unit.
func FromCanonicalConcentration(valueUgPerL float64, unit string) (float64, error) {
	factor, ok := concentrationFactors[unit]
	if !ok {
		return 0, NewError(AnalyteConversionError, fmt.Sprintf("unknown concentration unit %q", unit))
	}
	return valueUgPerL / factor, nil
}

// doseFactors converts 1 unit of the key into mg, the internal canonical
// dose unit.
var doseFactors = map[string]float64{
	"mg": 1,
	"g":  1000,
	"ug": 1e-3,
}

// ToCanonicalDose converts value (in unit) to mg.
func ToCanonicalDose(value float64, unit string) (float64, error) {
	factor, ok := doseFactors[unit]
	if !ok {
		return 0, NewError(AnalyteConversionError, fmt.Sprintf("unknown dose unit %q", unit))
	}
	return value * factor, nil
}

const CanonicalConcentrationUnit = "ug/l"
