package routes_test

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"fitnessforge/internal/models"
	"fitnessforge/internal/repository"
)

// memoryStore backs all four repositories for router level tests.
type memoryStore struct {
	mu           sync.Mutex
	nextID       uint
	users        map[uint]*models.User
	profiles     map[uint]*models.Profile
	measurements []models.Measurement
	workouts     []models.Workout
	blobs        map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    map[uint]*models.User{},
		profiles: map[uint]*models.Profile{},
		blobs:    map[string][]byte{},
	}
}

func (s *memoryStore) id() uint {
	s.nextID++
	return s.nextID
}

type memoryUsers struct{ *memoryStore }

func (r memoryUsers) CreateWithProfile(_ context.Context, user *models.User, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = r.id()
	profile.ID = r.id()
	profile.UserID = user.ID
	stored, storedProfile := *user, *profile
	r.users[user.ID] = &stored
	r.profiles[user.ID] = &storedProfile
	return nil
}

func (r memoryUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r memoryUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memoryUsers) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type memoryProfiles struct{ *memoryStore }

func (r memoryProfiles) FindByUserID(_ context.Context, userID uint) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *p
	return &out, nil
}

func (r memoryProfiles) Upsert(_ context.Context, profile *models.Profile, weightLog *models.Measurement) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[profile.UserID]; !ok {
		return nil, repository.ErrNotFound
	}
	if existing, ok := r.profiles[profile.UserID]; ok {
		profile.ID = existing.ID
	} else {
		profile.ID = r.id()
	}
	stored := *profile
	r.profiles[profile.UserID] = &stored
	if weightLog != nil {
		weightLog.ID = r.id()
		r.measurements = append(r.measurements, *weightLog)
	}
	out := stored
	return &out, nil
}

func (r memoryProfiles) UpdateWeight(_ context.Context, userID uint, weight float64, weightLog *models.Measurement) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Weight = weight
	if weightLog != nil {
		weightLog.ID = r.id()
		r.measurements = append(r.measurements, *weightLog)
	}
	out := *p
	return &out, nil
}

type memoryMeasurements struct{ *memoryStore }

func (r memoryMeasurements) Create(_ context.Context, m *models.Measurement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[m.UserID]; !ok {
		return repository.ErrNotFound
	}
	m.ID = r.id()
	r.measurements = append(r.measurements, *m)
	return nil
}

func (r memoryMeasurements) Latest(ctx context.Context, userID uint, kind models.MeasurementType) (*models.Measurement, error) {
	history, _ := r.History(ctx, userID, kind)
	if len(history) == 0 {
		return nil, repository.ErrNotFound
	}
	return &history[0], nil
}

func (r memoryMeasurements) History(_ context.Context, userID uint, kind models.MeasurementType) ([]models.Measurement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Measurement{}
	for _, m := range r.measurements {
		if m.UserID == userID && m.Type == kind {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DateTime.Equal(out[j].DateTime) {
			return out[i].ID > out[j].ID
		}
		return out[i].DateTime.After(out[j].DateTime)
	})
	return out, nil
}

type memoryWorkouts struct{ *memoryStore }

func (r memoryWorkouts) Create(_ context.Context, w *models.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[w.UserID]; !ok {
		return repository.ErrNotFound
	}
	w.ID = r.id()
	r.workouts = append(r.workouts, *w)
	return nil
}

func (r memoryWorkouts) FindAllByUserID(ctx context.Context, userID uint) ([]models.Workout, error) {
	return r.FindByUserIDAndDateRange(ctx, userID, time.Time{}, time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC))
}

func (r memoryWorkouts) FindByUserIDAndDateRange(_ context.Context, userID uint, from, to time.Time) ([]models.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Workout{}
	for _, w := range r.workouts {
		if w.UserID == userID && !w.DateTime.Before(from) && w.DateTime.Before(to) {
			out = append(out, w)
		}
	}
	return out, nil
}

type memoryBlobs struct{ *memoryStore }

func (r memoryBlobs) Put(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blobs[objectName] = raw
	return "http://blobs.test/fitnessforge/" + objectName, nil
}

func (r memoryBlobs) Delete(_ context.Context, objectName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blobs, objectName)
	return nil
}
