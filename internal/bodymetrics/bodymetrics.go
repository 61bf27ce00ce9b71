// Package bodymetrics derives BMI, BMI category, ideal weight and age from
// canonical (meters, kilograms) profile values.
package bodymetrics

import (
	"errors"
	"time"

	"fitnessforge/internal/units"
)

type Category string

const (
	Underweight  Category = "Underweight"
	NormalWeight Category = "Normal weight"
	Overweight   Category = "Overweight"
	Obesity      Category = "Obesity"
)

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

func (g Gender) Valid() bool {
	return g == Male || g == Female
}

var ErrInvalidHeight = errors.New("height must be greater than zero")

func ComputeBMI(heightMeters, weightKg float64) (float64, error) {
	if heightMeters <= 0 {
		return 0, ErrInvalidHeight
	}
	return weightKg / (heightMeters * heightMeters), nil
}

// ClassifyBMI assigns boundary values to the lower band: 24.9 is still
// normal weight and 29.9 still overweight.
func ClassifyBMI(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi <= 24.9:
		return NormalWeight
	case bmi <= 29.9:
		return Overweight
	default:
		return Obesity
	}
}

func (c Category) Color() string {
	switch c {
	case Underweight:
		return "blue"
	case NormalWeight:
		return "green"
	case Overweight:
		return "orange"
	case Obesity:
		return "red"
	default:
		return ""
	}
}

// IdealWeightKg estimates ideal body weight with the Miller formula.
// It returns nil for anyone shorter than five feet and 0 for a gender
// other than male or female.
func IdealWeightKg(heightMeters float64, gender Gender) *float64 {
	inchesOver5ft := units.MetersToInches(heightMeters) - 60
	if inchesOver5ft < 0 {
		return nil
	}

	var ideal float64
	switch gender {
	case Male:
		ideal = 56.2 + 1.41*inchesOver5ft
	case Female:
		ideal = 53.1 + 1.36*inchesOver5ft
	default:
		ideal = 0
	}
	return &ideal
}

// AgeAt returns the number of full years between birthdate and now.
func AgeAt(birthdate, now time.Time) int {
	if birthdate.IsZero() || birthdate.After(now) {
		return 0
	}

	age := now.Year() - birthdate.Year()
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		age--
	}
	return age
}
