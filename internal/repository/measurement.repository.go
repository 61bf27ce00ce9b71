package repository

import (
	"context"

	"fitnessforge/internal/models"

	"gorm.io/gorm"
)

type MeasurementRepository interface {
	Create(ctx context.Context, m *models.Measurement) error
	Latest(ctx context.Context, userID uint, kind models.MeasurementType) (*models.Measurement, error)
	History(ctx context.Context, userID uint, kind models.MeasurementType) ([]models.Measurement, error)
}

type measurementRepository struct {
	db *gorm.DB
}

func NewMeasurementRepository(db *gorm.DB) MeasurementRepository {
	return &measurementRepository{db: db}
}

func (r *measurementRepository) Create(ctx context.Context, m *models.Measurement) error {
	return translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *measurementRepository) Latest(ctx context.Context, userID uint, kind models.MeasurementType) (*models.Measurement, error) {
	var m models.Measurement
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, kind).
		Order("date_time DESC, id DESC").
		Limit(1).
		Take(&m).Error
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *measurementRepository) History(ctx context.Context, userID uint, kind models.MeasurementType) ([]models.Measurement, error) {
	measurements := []models.Measurement{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, kind).
		Order("date_time DESC, id DESC").
		Find(&measurements).Error
	return measurements, err
}
