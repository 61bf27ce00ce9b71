package services

import (
	"context"
	"errors"
	"math"
	"time"

	"fitnessforge/internal/bodymetrics"
	"fitnessforge/internal/models"
	"fitnessforge/internal/repository"
	"fitnessforge/internal/tracing"
	"fitnessforge/internal/units"

	"go.opentelemetry.io/otel/attribute"
)

type BMIInput struct {
	Height     float64          `json:"height" example:"175"`
	HeightUnit units.HeightUnit `json:"heightUnit" example:"cm"`
	Feet       float64          `json:"feet" example:"0"`
	Inches     float64          `json:"inches" example:"0"`
	Weight     float64          `json:"weight" example:"70"`
	WeightUnit units.WeightUnit `json:"weightUnit" example:"kg"`
}

type BMIResult struct {
	BMI      float64              `json:"bmi" example:"22.86"`
	Category bodymetrics.Category `json:"category" example:"Normal weight"`
	Color    string               `json:"color" example:"green"`
	Log      *models.Measurement  `json:"log"`
}

type WeightPoint struct {
	DateTime    time.Time `json:"dateTime" example:"2024-03-01T08:00:00Z"`
	Weight      float64   `json:"weight" example:"70"`
	IdealWeight *float64  `json:"idealWeight" example:"70.6"`
}

type MeasurementService struct {
	measurements repository.MeasurementRepository
	profiles     repository.ProfileRepository
	now          func() time.Time
}

func NewMeasurementService(measurements repository.MeasurementRepository, profiles repository.ProfileRepository) *MeasurementService {
	return &MeasurementService{
		measurements: measurements,
		profiles:     profiles,
		now:          time.Now,
	}
}

func (s *MeasurementService) Append(ctx context.Context, userID uint, kind models.MeasurementType, value float64, at time.Time) (_ *models.Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurement.append")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("measurement.type", string(kind)))

	if !kind.Valid() {
		return nil, invalid("type must be weight or bmi")
	}
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, invalid("value must be a positive number")
	}
	if at.IsZero() {
		at = s.now()
	}

	m := &models.Measurement{
		UserID:   userID,
		Type:     kind,
		Value:    value,
		DateTime: at.UTC(),
	}
	if err := s.measurements.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, upstream("create measurement", err)
	}
	return m, nil
}

func (s *MeasurementService) Latest(ctx context.Context, userID uint, kind models.MeasurementType) (*models.Measurement, error) {
	m, err := s.measurements.Latest(ctx, userID, kind)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, upstream("latest measurement", err)
	}
	return m, nil
}

// History returns the series newest first; an empty series is not an error.
func (s *MeasurementService) History(ctx context.Context, userID uint, kind models.MeasurementType) ([]models.Measurement, error) {
	history, err := s.measurements.History(ctx, userID, kind)
	if err != nil {
		return nil, upstream("measurement history", err)
	}
	return history, nil
}

// RecordBMI normalises the inputs, computes the BMI and logs it.
func (s *MeasurementService) RecordBMI(ctx context.Context, userID uint, in BMIInput) (*BMIResult, error) {
	height, err := units.HeightToMeters(in.Height, in.HeightUnit, in.Feet, in.Inches)
	if err != nil {
		return nil, invalid("%s", err)
	}
	weight, err := units.WeightToKg(in.Weight, in.WeightUnit)
	if err != nil {
		return nil, invalid("%s", err)
	}
	if weight <= 0 {
		return nil, invalid("weight must be greater than zero")
	}

	bmi, err := bodymetrics.ComputeBMI(height, weight)
	if err != nil {
		return nil, invalid("%s", err)
	}
	bmi = round2(bmi)

	entry, err := s.Append(ctx, userID, models.MeasurementBMI, bmi, time.Time{})
	if err != nil {
		return nil, err
	}

	category := bodymetrics.ClassifyBMI(bmi)
	return &BMIResult{
		BMI:      bmi,
		Category: category,
		Color:    category.Color(),
		Log:      entry,
	}, nil
}

// WeightChart pairs every weight log entry with the ideal weight for the
// user's current height and gender.
func (s *MeasurementService) WeightChart(ctx context.Context, userID uint) ([]WeightPoint, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, upstream("find profile", err)
	}

	history, err := s.History(ctx, userID, models.MeasurementWeight)
	if err != nil {
		return nil, err
	}

	ideal := bodymetrics.IdealWeightKg(profile.Height, bodymetrics.Gender(profile.Gender))
	if ideal != nil {
		rounded := round2(*ideal)
		ideal = &rounded
	}

	points := make([]WeightPoint, 0, len(history))
	for _, m := range history {
		points = append(points, WeightPoint{
			DateTime:    m.DateTime,
			Weight:      m.Value,
			IdealWeight: ideal,
		})
	}
	return points, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
