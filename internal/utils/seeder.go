package utils

import (
	"context"
	"fmt"
	"math"
	"time"

	"fitnessforge/internal/bodymetrics"
	"fitnessforge/internal/calendar"
	"fitnessforge/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	DefaultNumUsers     = 25
	SeedEmailDomain     = "seed.fitnessforge.local"
	DefaultSeedPassword = "FitnessForge123!"

	seedWeeks    = 12
	seedWorkouts = 30
)

// DemoUser is one generated account with its history.
type DemoUser struct {
	User         models.User
	Profile      models.Profile
	Measurements []models.Measurement
	Workouts     []models.Workout
}

// GenerateDemoUser builds a plausible user: a weekly weigh-in drifting around
// a starting weight, a BMI entry for each weigh-in and workouts spread over
// the last weeks. passwordHash is reused so seeding does not pay bcrypt per user.
func GenerateDemoUser(f *gofakeit.Faker, index int, passwordHash string, now time.Time) DemoUser {
	now = now.UTC()
	gender := bodymetrics.Male
	if f.Bool() {
		gender = bodymetrics.Female
	}

	fname := f.FirstName()
	lname := f.LastName()
	username := fmt.Sprintf("%s%d", f.Username(), index)

	height := round2(f.Float64Range(1.55, 1.95))
	weight := round1(f.Float64Range(52, 110))
	birthdate := f.DateRange(now.AddDate(-65, 0, 0), now.AddDate(-18, 0, 0)).UTC()

	demo := DemoUser{
		User: models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@%s", username, SeedEmailDomain),
			Password: passwordHash,
		},
		Profile: models.Profile{
			Fname:     fname,
			Lname:     lname,
			Height:    height,
			Birthdate: birthdate,
			Age:       bodymetrics.AgeAt(birthdate, now),
			Gender:    string(gender),
		},
	}

	for week := seedWeeks; week > 0; week-- {
		weight = round1(math.Max(40, weight+f.Float64Range(-0.8, 0.6)))
		at := now.AddDate(0, 0, -7*week).Add(time.Duration(f.Number(6, 9)) * time.Hour)
		demo.Measurements = append(demo.Measurements, models.Measurement{
			Type:     models.MeasurementWeight,
			Value:    weight,
			DateTime: at,
		})
		if bmi, err := bodymetrics.ComputeBMI(height, weight); err == nil {
			demo.Measurements = append(demo.Measurements, models.Measurement{
				Type:     models.MeasurementBMI,
				Value:    round2(bmi),
				DateTime: at,
			})
		}
	}
	demo.Profile.Weight = weight

	types := calendar.WorkoutTypes()
	muscles := calendar.Muscles()
	for i := 0; i < seedWorkouts; i++ {
		demo.Workouts = append(demo.Workouts, models.Workout{
			TypeOfWorkout: types[f.Number(0, len(types)-1)],
			Muscle:        muscles[f.Number(0, len(muscles)-1)],
			DateTime:      f.DateRange(now.AddDate(0, 0, -7*seedWeeks), now).UTC(),
		})
	}
	return demo
}

type Seeder struct {
	db    *gorm.DB
	faker *gofakeit.Faker
	now   func() time.Time
}

// NewSeeder uses seed for reproducible data; 0 picks a random seed.
func NewSeeder(db *gorm.DB, seed int64) *Seeder {
	return &Seeder{db: db, faker: gofakeit.New(seed), now: time.Now}
}

// SeedUsers inserts numUsers demo users, each in its own transaction.
func (s *Seeder) SeedUsers(ctx context.Context, numUsers int) (int, error) {
	hash, err := HashPassword(DefaultSeedPassword)
	if err != nil {
		return 0, err
	}

	var created int
	for i := 0; i < numUsers; i++ {
		demo := GenerateDemoUser(s.faker, i, hash, s.now())
		if err := s.insert(ctx, &demo); err != nil {
			return created, fmt.Errorf("seed user %s: %w", demo.User.Email, err)
		}
		created++
		if created%10 == 0 {
			log.Infof("seeded %d/%d users", created, numUsers)
		}
	}
	return created, nil
}

func (s *Seeder) insert(ctx context.Context, demo *DemoUser) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&demo.User).Error; err != nil {
			return err
		}
		demo.Profile.UserID = demo.User.ID
		if err := tx.Create(&demo.Profile).Error; err != nil {
			return err
		}
		for i := range demo.Measurements {
			demo.Measurements[i].UserID = demo.User.ID
		}
		if err := tx.CreateInBatches(demo.Measurements, 100).Error; err != nil {
			return err
		}
		for i := range demo.Workouts {
			demo.Workouts[i].UserID = demo.User.ID
		}
		return tx.CreateInBatches(demo.Workouts, 100).Error
	})
}

// Clear removes every seeded user. Profiles and logs go with them through
// the ON DELETE CASCADE foreign keys.
func (s *Seeder) Clear(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("email LIKE ?", "%@"+SeedEmailDomain).Delete(&models.User{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete seeded users: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *Seeder) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Where("email LIKE ?", "%@"+SeedEmailDomain).Count(&count).Error
	return count, err
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
