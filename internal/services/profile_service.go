package services

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"fitnessforge/internal/bodymetrics"
	"fitnessforge/internal/models"
	"fitnessforge/internal/repository"
	"fitnessforge/internal/tracing"
	"fitnessforge/internal/units"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const profileImagesPrefix = "profileImages/"

type BlobStore interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
}

// Upload is a profile photo received from the client.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type ProfileInput struct {
	Fname      string
	Lname      string
	Height     float64
	HeightUnit units.HeightUnit
	Feet       float64
	Inches     float64
	Weight     float64
	WeightUnit units.WeightUnit
	Birthdate  time.Time
	Gender     string
}

type MetricsSummary struct {
	Height      float64               `json:"height" example:"1.75"`
	Weight      float64               `json:"weight" example:"70"`
	Gender      string                `json:"gender" example:"male"`
	BMI         *float64              `json:"bmi" example:"22.86"`
	Category    *bodymetrics.Category `json:"category" example:"Normal weight"`
	Color       string                `json:"color" example:"green"`
	IdealWeight *float64              `json:"idealWeight" example:"70.6"`
}

type ProfileService struct {
	users            repository.UserRepository
	profiles         repository.ProfileRepository
	blobs            BlobStore
	logWeightUpdates bool
	now              func() time.Time
}

type ProfileOption func(*ProfileService)

// WithWeightUpdateLogging makes UpdateWeight append to the weight log as well.
func WithWeightUpdateLogging(enabled bool) ProfileOption {
	return func(s *ProfileService) {
		s.logWeightUpdates = enabled
	}
}

func WithProfileClock(now func() time.Time) ProfileOption {
	return func(s *ProfileService) {
		s.now = now
	}
}

func NewProfileService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	blobs BlobStore,
	opts ...ProfileOption,
) *ProfileService {
	s := &ProfileService{
		users:    users,
		profiles: profiles,
		blobs:    blobs,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrUpdate upserts the user's profile. Fields left empty keep their
// stored values. A given weight is also appended to the weight log in the
// same transaction. An uploaded photo is stored before anything is written;
// if the write then fails the photo is removed.
func (s *ProfileService) CreateOrUpdate(ctx context.Context, userID uint, in ProfileInput, photo *Upload) (_ *models.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.createOrUpdate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("user.id", int(userID)))

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, upstream("find user", err)
	}

	existing, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, upstream("find profile", err)
	}

	profile, err := s.mergeProfile(userID, existing, in)
	if err != nil {
		return nil, err
	}

	var objectName string
	if photo != nil {
		objectName = profileImagesPrefix + uuid.NewString() + "-" + sanitizeFilename(photo.Filename)
		imageURL, err := s.blobs.Put(ctx, objectName, photo.Body, photo.Size, photo.ContentType)
		if err != nil {
			return nil, upstream("upload profile photo", err)
		}
		profile.UserImage = imageURL
	}

	var weightLog *models.Measurement
	if in.Weight > 0 {
		weightLog = &models.Measurement{
			UserID:   userID,
			Type:     models.MeasurementWeight,
			Value:    profile.Weight,
			DateTime: s.now().UTC(),
		}
	}

	saved, err := s.profiles.Upsert(ctx, profile, weightLog)
	if err != nil {
		if objectName != "" {
			if delErr := s.blobs.Delete(ctx, objectName); delErr != nil {
				log.Errorf("profile: remove orphaned photo %s: %s", objectName, delErr)
			}
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, upstream("save profile", err)
	}
	return saved, nil
}

// mergeProfile applies the non-empty fields of in over the stored profile,
// or over the registration placeholder when none is stored yet. Values that
// are present but malformed are rejected.
func (s *ProfileService) mergeProfile(userID uint, existing *models.Profile, in ProfileInput) (*models.Profile, error) {
	now := s.now().UTC()
	base := models.DefaultProfile(userID, now)
	if existing != nil {
		base = existing
	}

	profile := &models.Profile{
		UserID:    userID,
		Fname:     base.Fname,
		Lname:     base.Lname,
		Height:    base.Height,
		Weight:    base.Weight,
		Birthdate: base.Birthdate,
		Gender:    base.Gender,
		UserImage: base.UserImage,
	}

	if fname := strings.TrimSpace(in.Fname); fname != "" {
		profile.Fname = fname
	}
	if lname := strings.TrimSpace(in.Lname); lname != "" {
		profile.Lname = lname
	}

	if in.Gender != "" {
		gender := bodymetrics.Gender(strings.ToLower(strings.TrimSpace(in.Gender)))
		if !gender.Valid() {
			return nil, invalid("gender must be male or female")
		}
		profile.Gender = string(gender)
	}

	if !in.Birthdate.IsZero() {
		if in.Birthdate.After(now) {
			return nil, invalid("birthdate is in the future")
		}
		profile.Birthdate = in.Birthdate.UTC()
	}
	profile.Age = bodymetrics.AgeAt(profile.Birthdate, now)

	if heightGiven(in) {
		height, err := units.HeightToMeters(in.Height, in.HeightUnit, in.Feet, in.Inches)
		if err != nil {
			return nil, invalid("%s", err)
		}
		if height <= 0 {
			return nil, invalid("height must be greater than zero")
		}
		profile.Height = height
	}

	if in.Weight != 0 {
		weight, err := units.WeightToKg(in.Weight, in.WeightUnit)
		if err != nil {
			return nil, invalid("%s", err)
		}
		if weight <= 0 {
			return nil, invalid("weight must be greater than zero")
		}
		profile.Weight = weight
	}

	return profile, nil
}

func heightGiven(in ProfileInput) bool {
	if in.HeightUnit == units.Feet {
		return in.Feet != 0 || in.Inches != 0
	}
	return in.Height != 0
}

// UpdateWeight changes only the profile weight. It is treated as a
// correction and does not add to the weight log unless configured to.
func (s *ProfileService) UpdateWeight(ctx context.Context, userID uint, weight float64, unit units.WeightUnit) (_ *models.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.updateWeight")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	kg, err := units.WeightToKg(weight, unit)
	if err != nil {
		return nil, invalid("%s", err)
	}
	if kg <= 0 {
		return nil, invalid("weight must be greater than zero")
	}

	var weightLog *models.Measurement
	if s.logWeightUpdates {
		weightLog = &models.Measurement{
			UserID:   userID,
			Type:     models.MeasurementWeight,
			Value:    kg,
			DateTime: s.now().UTC(),
		}
	}

	saved, err := s.profiles.UpdateWeight(ctx, userID, kg, weightLog)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, upstream("update weight", err)
	}
	return saved, nil
}

func (s *ProfileService) Get(ctx context.Context, userID uint) (*models.Profile, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, upstream("find user", err)
	}

	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, upstream("find profile", err)
	}
	return profile, nil
}

// Summary derives BMI, its category and the ideal weight from the profile.
func (s *ProfileService) Summary(ctx context.Context, userID uint) (*MetricsSummary, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(profile), nil
}

func summarize(p *models.Profile) *MetricsSummary {
	summary := &MetricsSummary{
		Height: p.Height,
		Weight: p.Weight,
		Gender: p.Gender,
	}
	if p.Height <= 0 {
		return summary
	}

	summary.IdealWeight = bodymetrics.IdealWeightKg(p.Height, bodymetrics.Gender(p.Gender))
	if p.Weight <= 0 {
		return summary
	}

	bmi, err := bodymetrics.ComputeBMI(p.Height, p.Weight)
	if err != nil {
		return summary
	}
	bmi = round2(bmi)
	category := bodymetrics.ClassifyBMI(bmi)
	summary.BMI = &bmi
	summary.Category = &category
	summary.Color = category.Color()
	return summary
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "photo"
	}
	return name
}
