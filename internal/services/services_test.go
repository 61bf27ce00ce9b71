package services_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"fitnessforge/internal/calendar"
	"fitnessforge/internal/models"
	"fitnessforge/internal/repository"
	"fitnessforge/internal/repository/mocks"
	"fitnessforge/internal/services"
	"fitnessforge/internal/utils"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var ctx = context.Background()

type fakeIssuer struct {
	err error
}

func (f fakeIssuer) Issue(userID uint, username string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + username, nil
}

type fakeBlobs struct {
	putErr  error
	put     []string
	deleted []string
}

func (f *fakeBlobs) Put(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	_, _ = io.ReadAll(reader)
	f.put = append(f.put, objectName)
	return "https://blobs.test/fitnessforge/" + objectName, nil
}

func (f *fakeBlobs) Delete(_ context.Context, objectName string) error {
	f.deleted = append(f.deleted, objectName)
	return nil
}

func TestAccountService_Register(t *testing.T) {
	users := new(mocks.MockUserRepository)
	svc := services.NewAccountService(users, new(mocks.MockProfileRepository), fakeIssuer{})

	username := gofakeit.Username()
	email := gofakeit.Email()

	users.On("ExistsByUsernameOrEmail", mock.Anything, username, email).Return(false, nil)
	users.On("CreateWithProfile", mock.Anything, mock.AnythingOfType("*models.User"), mock.AnythingOfType("*models.Profile")).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*models.User)
			p := args.Get(2).(*models.Profile)
			u.ID = 5
			p.UserID = u.ID
			assert.Equal(t, "First name", p.Fname)
			assert.Equal(t, "Last name", p.Lname)
			assert.Equal(t, "male", p.Gender)
			assert.Zero(t, p.Height)
			assert.Zero(t, p.Weight)
			assert.Empty(t, p.UserImage)
		}).
		Return(nil)

	user, err := svc.Register(ctx, services.RegisterInput{Username: username, Email: email, Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, uint(5), user.ID)
	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.True(t, utils.CheckPasswordHash("s3cret-pass", user.Password))
	users.AssertExpectations(t)
}

func TestAccountService_RegisterErrors(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		svc := services.NewAccountService(new(mocks.MockUserRepository), nil, fakeIssuer{})
		_, err := svc.Register(ctx, services.RegisterInput{Username: "jdoe"})

		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"email", "password"}, verr.Missing)
	})

	t.Run("already exists", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("ExistsByUsernameOrEmail", mock.Anything, "jdoe", "jdoe@example.com").Return(true, nil)
		svc := services.NewAccountService(users, nil, fakeIssuer{})

		_, err := svc.Register(ctx, services.RegisterInput{Username: "jdoe", Email: "JDoe@example.com", Password: "x"})
		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("lost race on insert", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("ExistsByUsernameOrEmail", mock.Anything, "jdoe", "jdoe@example.com").Return(false, nil)
		users.On("CreateWithProfile", mock.Anything, mock.Anything, mock.Anything).Return(repository.ErrDuplicate)
		svc := services.NewAccountService(users, nil, fakeIssuer{})

		_, err := svc.Register(ctx, services.RegisterInput{Username: "jdoe", Email: "jdoe@example.com", Password: "x"})
		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("database down", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("ExistsByUsernameOrEmail", mock.Anything, "jdoe", "jdoe@example.com").Return(false, errors.New("conn refused"))
		svc := services.NewAccountService(users, nil, fakeIssuer{})

		_, err := svc.Register(ctx, services.RegisterInput{Username: "jdoe", Email: "jdoe@example.com", Password: "x"})
		assert.ErrorIs(t, err, services.ErrUpstream)
	})
}

func TestAccountService_Login(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)

	users := new(mocks.MockUserRepository)
	users.On("FindByEmail", mock.Anything, "jdoe@example.com").
		Return(&models.User{ID: 3, Username: "jdoe", Email: "jdoe@example.com", Password: hash}, nil)
	users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound)

	svc := services.NewAccountService(users, nil, fakeIssuer{})

	token, user, err := svc.Login(ctx, " JDOE@example.com ", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "token-for-jdoe", token)
	assert.Equal(t, uint(3), user.ID)

	_, _, err = svc.Login(ctx, "jdoe@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, _, err = svc.Login(ctx, "", "")
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAccountService_Current(t *testing.T) {
	users := new(mocks.MockUserRepository)
	profiles := new(mocks.MockProfileRepository)
	users.On("FindByID", mock.Anything, uint(3)).Return(&models.User{ID: 3, Username: "jdoe"}, nil)
	users.On("FindByID", mock.Anything, uint(4)).Return(nil, repository.ErrNotFound)
	profiles.On("FindByUserID", mock.Anything, uint(3)).Return(&models.Profile{UserID: 3, Fname: "Jane"}, nil)

	svc := services.NewAccountService(users, profiles, fakeIssuer{})

	user, profile, err := svc.Current(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", user.Username)
	assert.Equal(t, "Jane", profile.Fname)

	_, _, err = svc.Current(ctx, 4)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func fixedClock() time.Time {
	return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func validInput() services.ProfileInput {
	return services.ProfileInput{
		Fname:      "Jane",
		Lname:      "Doe",
		Height:     175,
		HeightUnit: "cm",
		Weight:     70,
		WeightUnit: "kg",
		Birthdate:  time.Date(1994, time.June, 16, 0, 0, 0, 0, time.UTC),
		Gender:     "Female",
	}
}

func TestProfileService_CreateOrUpdate(t *testing.T) {
	users := new(mocks.MockUserRepository)
	profiles := new(mocks.MockProfileRepository)
	blobs := &fakeBlobs{}
	svc := services.NewProfileService(users, profiles, blobs, services.WithProfileClock(fixedClock))

	users.On("FindByID", mock.Anything, uint(2)).Return(&models.User{ID: 2}, nil)
	profiles.On("FindByUserID", mock.Anything, uint(2)).Return(models.DefaultProfile(2, fixedClock()), nil)
	profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Profile"), mock.AnythingOfType("*models.Measurement")).
		Return(func(_ context.Context, p *models.Profile, _ *models.Measurement) *models.Profile {
			return p
		}, nil)

	photo := &services.Upload{Filename: "../../me.png", ContentType: "image/png", Size: 3, Body: bytes.NewReader([]byte("png"))}
	saved, err := svc.CreateOrUpdate(ctx, 2, validInput(), photo)
	require.NoError(t, err)

	assert.Equal(t, 1.75, saved.Height)
	assert.Equal(t, 70.0, saved.Weight)
	assert.Equal(t, 29, saved.Age)
	assert.Equal(t, "female", saved.Gender)
	require.Len(t, blobs.put, 1)
	assert.Regexp(t, `^profileImages/[0-9a-f-]{36}-me\.png$`, blobs.put[0])
	assert.Equal(t, "https://blobs.test/fitnessforge/"+blobs.put[0], saved.UserImage)

	weightLog := profiles.Calls[1].Arguments.Get(2).(*models.Measurement)
	assert.Equal(t, models.MeasurementWeight, weightLog.Type)
	assert.Equal(t, 70.0, weightLog.Value)
	assert.Equal(t, uint(2), weightLog.UserID)
}

func TestProfileService_CreateOrUpdate_WithoutWeight(t *testing.T) {
	users := new(mocks.MockUserRepository)
	profiles := new(mocks.MockProfileRepository)
	svc := services.NewProfileService(users, profiles, &fakeBlobs{}, services.WithProfileClock(fixedClock))

	users.On("FindByID", mock.Anything, uint(2)).Return(&models.User{ID: 2}, nil)
	profiles.On("FindByUserID", mock.Anything, uint(2)).
		Return(&models.Profile{UserID: 2, Weight: 81, UserImage: "https://blobs.test/old.png"}, nil)
	profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Profile"), (*models.Measurement)(nil)).
		Return(func(_ context.Context, p *models.Profile, _ *models.Measurement) *models.Profile {
			return p
		}, nil)

	in := validInput()
	in.Weight = 0
	saved, err := svc.CreateOrUpdate(ctx, 2, in, nil)
	require.NoError(t, err)
	assert.Equal(t, 81.0, saved.Weight)
	assert.Equal(t, "https://blobs.test/old.png", saved.UserImage)
	profiles.AssertExpectations(t)
}

func TestProfileService_CreateOrUpdate_PartialKeepsStoredFields(t *testing.T) {
	users := new(mocks.MockUserRepository)
	profiles := new(mocks.MockProfileRepository)
	svc := services.NewProfileService(users, profiles, &fakeBlobs{}, services.WithProfileClock(fixedClock))

	stored := &models.Profile{
		UserID:    2,
		Fname:     "Jane",
		Lname:     "Doe",
		Height:    1.6,
		Weight:    60,
		Birthdate: time.Date(1994, time.June, 16, 0, 0, 0, 0, time.UTC),
		Gender:    "female",
		UserImage: "https://blobs.test/old.png",
	}
	users.On("FindByID", mock.Anything, uint(2)).Return(&models.User{ID: 2}, nil)
	profiles.On("FindByUserID", mock.Anything, uint(2)).Return(stored, nil)
	profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Profile"), mock.AnythingOfType("*models.Measurement")).
		Return(func(_ context.Context, p *models.Profile, _ *models.Measurement) *models.Profile {
			return p
		}, nil)

	saved, err := svc.CreateOrUpdate(ctx, 2, services.ProfileInput{Height: 1.75, Weight: 70}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Jane", saved.Fname)
	assert.Equal(t, "Doe", saved.Lname)
	assert.Equal(t, "female", saved.Gender)
	assert.Equal(t, stored.Birthdate, saved.Birthdate)
	assert.Equal(t, 29, saved.Age)
	assert.Equal(t, 1.75, saved.Height)
	assert.Equal(t, 70.0, saved.Weight)
	assert.Equal(t, "https://blobs.test/old.png", saved.UserImage)
}

func TestProfileService_CreateOrUpdate_Failures(t *testing.T) {
	t.Run("user missing", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByID", mock.Anything, uint(9)).Return(nil, repository.ErrNotFound)
		svc := services.NewProfileService(users, new(mocks.MockProfileRepository), &fakeBlobs{})

		_, err := svc.CreateOrUpdate(ctx, 9, validInput(), nil)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		profiles := new(mocks.MockProfileRepository)
		users.On("FindByID", mock.Anything, uint(2)).Return(&models.User{ID: 2}, nil)
		profiles.On("FindByUserID", mock.Anything, uint(2)).Return(models.DefaultProfile(2, fixedClock()), nil)
		svc := services.NewProfileService(users, profiles, &fakeBlobs{}, services.WithProfileClock(fixedClock))

		mutations := map[string]func(*services.ProfileInput){
			"unknown gender":   func(in *services.ProfileInput) { in.Gender = "other" },
			"negative height":  func(in *services.ProfileInput) { in.Height = -170 },
			"negative weight":  func(in *services.ProfileInput) { in.Weight = -3 },
			"unknown unit":     func(in *services.ProfileInput) { in.HeightUnit = "yd" },
			"future birthdate": func(in *services.ProfileInput) { in.Birthdate = fixedClock().AddDate(1, 0, 0) },
			"negative feet":    func(in *services.ProfileInput) { in.HeightUnit = "ft"; in.Feet = -5 },
		}
		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				in := validInput()
				mutate(&in)
				_, err := svc.CreateOrUpdate(ctx, 2, in, nil)
				var verr *services.ValidationError
				assert.ErrorAs(t, err, &verr)
			})
		}
		profiles.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("upload fails before any write", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		profiles := new(mocks.MockProfileRepository)
		users.On("FindByID", mock.Anything, uint(2)).Return(&models.User{ID: 2}, nil)
		profiles.On("FindByUserID", mock.Anything, uint(2)).Return(nil, repository.ErrNotFound)
		svc := services.NewProfileService(users, profiles, &fakeBlobs{putErr: errors.New("bucket gone")}, services.WithProfileClock(fixedClock))

		photo := &services.Upload{Filename: "me.png", Body: bytes.NewReader(nil)}
		_, err := svc.CreateOrUpdate(ctx, 2, validInput(), photo)
		assert.ErrorIs(t, err, services.ErrUpstream)
		profiles.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("write fails after upload", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		profiles := new(mocks.MockProfileRepository)
		blobs := &fakeBlobs{}
		users.On("FindByID", mock.Anything, uint(2)).Return(&models.User{ID: 2}, nil)
		profiles.On("FindByUserID", mock.Anything, uint(2)).Return(nil, repository.ErrNotFound)
		profiles.On("Upsert", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("tx aborted"))
		svc := services.NewProfileService(users, profiles, blobs, services.WithProfileClock(fixedClock))

		photo := &services.Upload{Filename: "me.png", Body: bytes.NewReader([]byte("x"))}
		_, err := svc.CreateOrUpdate(ctx, 2, validInput(), photo)
		assert.ErrorIs(t, err, services.ErrUpstream)
		assert.Equal(t, blobs.put, blobs.deleted)
	})
}

func TestProfileService_UpdateWeight(t *testing.T) {
	t.Run("no log by default", func(t *testing.T) {
		profiles := new(mocks.MockProfileRepository)
		profiles.On("UpdateWeight", mock.Anything, uint(2), 72.0, (*models.Measurement)(nil)).
			Return(&models.Profile{UserID: 2, Weight: 72}, nil)
		svc := services.NewProfileService(nil, profiles, nil)

		saved, err := svc.UpdateWeight(ctx, 2, 72, "kg")
		require.NoError(t, err)
		assert.Equal(t, 72.0, saved.Weight)
		profiles.AssertExpectations(t)
	})

	t.Run("logs when enabled", func(t *testing.T) {
		profiles := new(mocks.MockProfileRepository)
		profiles.On("UpdateWeight", mock.Anything, uint(2), mock.AnythingOfType("float64"), mock.AnythingOfType("*models.Measurement")).
			Return(&models.Profile{UserID: 2, Weight: 72}, nil)
		svc := services.NewProfileService(nil, profiles, nil, services.WithWeightUpdateLogging(true))

		_, err := svc.UpdateWeight(ctx, 2, 158.73, "lbs")
		require.NoError(t, err)

		kg := profiles.Calls[0].Arguments.Get(2).(float64)
		assert.InDelta(t, 72.0, kg, 0.01)
		weightLog := profiles.Calls[0].Arguments.Get(3).(*models.Measurement)
		assert.Equal(t, kg, weightLog.Value)
	})

	t.Run("invalid and missing", func(t *testing.T) {
		profiles := new(mocks.MockProfileRepository)
		profiles.On("UpdateWeight", mock.Anything, uint(8), 72.0, (*models.Measurement)(nil)).Return(nil, repository.ErrNotFound)
		svc := services.NewProfileService(nil, profiles, nil)

		var verr *services.ValidationError
		_, err := svc.UpdateWeight(ctx, 2, 0, "kg")
		assert.ErrorAs(t, err, &verr)
		_, err = svc.UpdateWeight(ctx, 2, 70, "stone")
		assert.ErrorAs(t, err, &verr)

		_, err = svc.UpdateWeight(ctx, 8, 72, "kg")
		assert.ErrorIs(t, err, services.ErrProfileNotFound)
	})
}

func TestProfileService_Summary(t *testing.T) {
	users := new(mocks.MockUserRepository)
	profiles := new(mocks.MockProfileRepository)
	users.On("FindByID", mock.Anything, mock.Anything).Return(&models.User{}, nil)
	profiles.On("FindByUserID", mock.Anything, uint(1)).Return(&models.Profile{Height: 1.75, Weight: 70, Gender: "male"}, nil)
	profiles.On("FindByUserID", mock.Anything, uint(2)).Return(models.DefaultProfile(2, time.Now()), nil)
	svc := services.NewProfileService(users, profiles, nil)

	summary, err := svc.Summary(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, summary.BMI)
	assert.Equal(t, 22.86, *summary.BMI)
	assert.Equal(t, "Normal weight", string(*summary.Category))
	assert.Equal(t, "green", summary.Color)
	require.NotNil(t, summary.IdealWeight)
	assert.InDelta(t, 56.2+1.41*(1.75*39.3701-60), *summary.IdealWeight, 1e-9)

	empty, err := svc.Summary(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, empty.BMI)
	assert.Nil(t, empty.IdealWeight)
}

func TestMeasurementService_Append(t *testing.T) {
	measurements := new(mocks.MockMeasurementRepository)
	measurements.On("Create", mock.Anything, mock.AnythingOfType("*models.Measurement")).Return(nil).Once()
	svc := services.NewMeasurementService(measurements, nil)

	at := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.FixedZone("CET", 3600))
	m, err := svc.Append(ctx, 1, models.MeasurementWeight, 70.5, at)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, m.DateTime.Location())
	assert.True(t, at.Equal(m.DateTime))

	tests := []struct {
		name  string
		kind  models.MeasurementType
		value float64
	}{
		{"unknown type", "height", 1.8},
		{"zero value", models.MeasurementBMI, 0},
		{"negative value", models.MeasurementWeight, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Append(ctx, 1, tt.kind, tt.value, at)
			var verr *services.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
	measurements.AssertNumberOfCalls(t, "Create", 1)
}

func TestMeasurementService_Latest(t *testing.T) {
	measurements := new(mocks.MockMeasurementRepository)
	measurements.On("Latest", mock.Anything, uint(1), models.MeasurementBMI).
		Return(&models.Measurement{ID: 4, Type: models.MeasurementBMI, Value: 22.86}, nil)
	measurements.On("Latest", mock.Anything, uint(2), models.MeasurementBMI).Return(nil, repository.ErrNotFound)
	svc := services.NewMeasurementService(measurements, nil)

	m, err := svc.Latest(ctx, 1, models.MeasurementBMI)
	require.NoError(t, err)
	assert.Equal(t, uint(4), m.ID)

	_, err = svc.Latest(ctx, 2, models.MeasurementBMI)
	assert.ErrorIs(t, err, services.ErrLogNotFound)
}

func TestMeasurementService_RecordBMI(t *testing.T) {
	measurements := new(mocks.MockMeasurementRepository)
	measurements.On("Create", mock.Anything, mock.MatchedBy(func(m *models.Measurement) bool {
		return m.Type == models.MeasurementBMI && m.Value == 22.86 && m.UserID == 1
	})).Return(nil)
	svc := services.NewMeasurementService(measurements, nil)

	res, err := svc.RecordBMI(ctx, 1, services.BMIInput{Height: 175, HeightUnit: "cm", Weight: 70, WeightUnit: "kg"})
	require.NoError(t, err)
	assert.Equal(t, 22.86, res.BMI)
	assert.Equal(t, "Normal weight", string(res.Category))
	assert.Equal(t, "green", res.Color)
	require.NotNil(t, res.Log)
	measurements.AssertExpectations(t)

	_, err = svc.RecordBMI(ctx, 1, services.BMIInput{Height: 0, Weight: 70})
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestMeasurementService_WeightChart(t *testing.T) {
	measurements := new(mocks.MockMeasurementRepository)
	profiles := new(mocks.MockProfileRepository)
	profiles.On("FindByUserID", mock.Anything, uint(1)).Return(&models.Profile{Height: 1.75, Gender: "female"}, nil)
	profiles.On("FindByUserID", mock.Anything, uint(2)).Return(nil, repository.ErrNotFound)
	measurements.On("History", mock.Anything, uint(1), models.MeasurementWeight).Return([]models.Measurement{
		{Value: 72, DateTime: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		{Value: 70, DateTime: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)
	svc := services.NewMeasurementService(measurements, profiles)

	points, err := svc.WeightChart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 72.0, points[0].Weight)
	require.NotNil(t, points[0].IdealWeight)
	assert.Equal(t, points[0].IdealWeight, points[1].IdealWeight)
	assert.InDelta(t, 53.1+1.36*(1.75*39.3701-60), *points[0].IdealWeight, 0.01)

	_, err = svc.WeightChart(ctx, 2)
	assert.ErrorIs(t, err, services.ErrProfileNotFound)
}

func TestWorkoutService_Append(t *testing.T) {
	workouts := new(mocks.MockWorkoutRepository)
	workouts.On("Create", mock.Anything, mock.AnythingOfType("*models.Workout")).Return(nil).Once()
	workouts.On("Create", mock.Anything, mock.AnythingOfType("*models.Workout")).Return(repository.ErrNotFound).Once()
	svc := services.NewWorkoutService(workouts)

	w, err := svc.Append(ctx, 1, " strength ", "biceps", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "strength", w.TypeOfWorkout)
	assert.False(t, w.DateTime.IsZero())

	_, err = svc.Append(ctx, 0, "", "", time.Time{})
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"userId", "typeOfWorkout", "muscle"}, verr.Missing)

	_, err = svc.Append(ctx, 99, "cardio", "legs", time.Time{})
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestWorkoutService_Calendar(t *testing.T) {
	workouts := new(mocks.MockWorkoutRepository)
	from := time.Date(2024, time.February, 25, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.April, 7, 0, 0, 0, 0, time.UTC)
	workouts.On("FindByUserIDAndDateRange", mock.Anything, uint(1), from, to).Return([]models.Workout{
		{TypeOfWorkout: "cardio", Muscle: "legs", DateTime: time.Date(2024, 3, 5, 18, 0, 0, 0, time.UTC)},
		{TypeOfWorkout: "Strength", Muscle: "biceps", DateTime: time.Date(2024, 3, 5, 19, 0, 0, 0, time.UTC)},
	}, nil)
	svc := services.NewWorkoutService(workouts)

	m, err := svc.Calendar(ctx, 1, 2024, time.March, time.UTC)
	require.NoError(t, err)
	assert.Len(t, m.Days, 42)
	assert.Equal(t, "2024-02-25", m.Days[0].Date)
	assert.False(t, m.Days[0].InMonth)

	for _, d := range m.Days {
		if d.Date == "2024-03-05" {
			assert.Equal(t, calendar.MixedColor, d.Color)
			assert.Len(t, d.Workouts, 2)
		}
	}
	workouts.AssertExpectations(t)

	_, err = svc.Calendar(ctx, 1, 2024, 13, time.UTC)
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestWorkoutService_Breakdown(t *testing.T) {
	workouts := new(mocks.MockWorkoutRepository)
	workouts.On("FindAllByUserID", mock.Anything, uint(1)).Return([]models.Workout{
		{TypeOfWorkout: "cardio", Muscle: "Legs"},
		{TypeOfWorkout: "strength", Muscle: "legs"},
		{TypeOfWorkout: "strength", Muscle: "chest"},
	}, nil)
	svc := services.NewWorkoutService(workouts)

	slices, err := svc.Breakdown(ctx, 1, calendar.ByMuscle)
	require.NoError(t, err)
	require.Len(t, slices, 2)
	assert.Equal(t, "legs", slices[0].Name)
	assert.Equal(t, 2, slices[0].Count)
}
