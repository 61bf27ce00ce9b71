package repository

import (
	"context"

	"fitnessforge/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	// Upsert writes the profile keyed by user and, when weightLog is not nil,
	// appends it in the same transaction.
	Upsert(ctx context.Context, profile *models.Profile, weightLog *models.Measurement) (*models.Profile, error)
	// UpdateWeight changes only the weight column. weightLog is optional.
	UpdateWeight(ctx context.Context, userID uint, weight float64, weightLog *models.Measurement) (*models.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

var profileUpsertColumns = []string{
	"fname", "lname", "height", "weight", "birthdate", "age", "gender", "user_image", "updated_at",
}

func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile, weightLog *models.Measurement) (*models.Profile, error) {
	var saved models.Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(profileUpsertColumns),
		}).Create(profile).Error
		if err != nil {
			return err
		}

		if weightLog != nil {
			if err := tx.Create(weightLog).Error; err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", profile.UserID).First(&saved).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &saved, nil
}

func (r *profileRepository) UpdateWeight(ctx context.Context, userID uint, weight float64, weightLog *models.Measurement) (*models.Profile, error) {
	var saved models.Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Profile{}).Where("user_id = ?", userID).Update("weight", weight)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if weightLog != nil {
			if err := tx.Create(weightLog).Error; err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", userID).First(&saved).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &saved, nil
}
