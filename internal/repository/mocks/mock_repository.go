package mocks

import (
	"context"
	"time"

	"fitnessforge/internal/models"
	"fitnessforge/internal/repository"

	"github.com/stretchr/testify/mock"
)

var (
	_ repository.UserRepository        = (*MockUserRepository)(nil)
	_ repository.ProfileRepository     = (*MockProfileRepository)(nil)
	_ repository.MeasurementRepository = (*MockMeasurementRepository)(nil)
	_ repository.WorkoutRepository     = (*MockWorkoutRepository)(nil)
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	args := m.Called(ctx, user, profile)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *models.Profile, weightLog *models.Measurement) (*models.Profile, error) {
	args := m.Called(ctx, profile, weightLog)
	if fn, ok := args.Get(0).(func(context.Context, *models.Profile, *models.Measurement) *models.Profile); ok {
		return fn(ctx, profile, weightLog), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateWeight(ctx context.Context, userID uint, weight float64, weightLog *models.Measurement) (*models.Profile, error) {
	args := m.Called(ctx, userID, weight, weightLog)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

type MockMeasurementRepository struct {
	mock.Mock
}

func (m *MockMeasurementRepository) Create(ctx context.Context, measurement *models.Measurement) error {
	args := m.Called(ctx, measurement)
	return args.Error(0)
}

func (m *MockMeasurementRepository) Latest(ctx context.Context, userID uint, kind models.MeasurementType) (*models.Measurement, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Measurement), args.Error(1)
}

func (m *MockMeasurementRepository) History(ctx context.Context, userID uint, kind models.MeasurementType) ([]models.Measurement, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Measurement), args.Error(1)
}

type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	args := m.Called(ctx, workout)
	return args.Error(0)
}

func (m *MockWorkoutRepository) FindAllByUserID(ctx context.Context, userID uint) ([]models.Workout, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Workout), args.Error(1)
}

func (m *MockWorkoutRepository) FindByUserIDAndDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.Workout, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Workout), args.Error(1)
}
