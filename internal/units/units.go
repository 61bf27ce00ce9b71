// Package units normalises body measurements into meters and kilograms.
package units

import (
	"errors"
	"fmt"
	"math"
)

type HeightUnit string

type WeightUnit string

const (
	Meters      HeightUnit = "m"
	Centimeters HeightUnit = "cm"
	Feet        HeightUnit = "ft"

	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lbs"
)

const (
	metersPerFoot   = 0.3048
	metersPerInch   = 0.0254
	kgPerPound      = 0.453592
	inchesPerMeter  = 39.3701
	centimetersPerM = 100
)

var ErrUnknownUnit = errors.New("unknown unit")

// HeightToMeters converts a height to meters rounded to two decimals.
// For Feet the value argument is ignored and feet/inches are combined.
func HeightToMeters(value float64, unit HeightUnit, feet, inches float64) (float64, error) {
	var meters float64
	switch unit {
	case Meters, "":
		meters = value
	case Centimeters:
		meters = value / centimetersPerM
	case Feet:
		meters = feet*metersPerFoot + inches*metersPerInch
	default:
		return 0, fmt.Errorf("height unit %q: %w", unit, ErrUnknownUnit)
	}
	return round2(meters), nil
}

func WeightToKg(value float64, unit WeightUnit) (float64, error) {
	switch unit {
	case Kilograms, "":
		return value, nil
	case Pounds:
		return value * kgPerPound, nil
	default:
		return 0, fmt.Errorf("weight unit %q: %w", unit, ErrUnknownUnit)
	}
}

func MetersToInches(meters float64) float64 {
	return meters * inchesPerMeter
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
