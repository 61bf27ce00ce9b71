package repository

import (
	"context"
	"time"

	"fitnessforge/internal/models"

	"gorm.io/gorm"
)

type WorkoutRepository interface {
	Create(ctx context.Context, workout *models.Workout) error
	FindAllByUserID(ctx context.Context, userID uint) ([]models.Workout, error)
	// FindByUserIDAndDateRange returns workouts with from <= date_time < to.
	FindByUserIDAndDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.Workout, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	return translate(r.db.WithContext(ctx).Create(workout).Error)
}

func (r *workoutRepository) FindAllByUserID(ctx context.Context, userID uint) ([]models.Workout, error) {
	workouts := []models.Workout{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_time DESC, id DESC").
		Find(&workouts).Error
	return workouts, err
}

func (r *workoutRepository) FindByUserIDAndDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.Workout, error) {
	workouts := []models.Workout{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date_time >= ? AND date_time < ?", userID, from, to).
		Order("date_time ASC, id ASC").
		Find(&workouts).Error
	return workouts, err
}
