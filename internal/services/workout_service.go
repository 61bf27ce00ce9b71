package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitnessforge/internal/calendar"
	"fitnessforge/internal/models"
	"fitnessforge/internal/repository"
	"fitnessforge/internal/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type WorkoutService struct {
	workouts repository.WorkoutRepository
	now      func() time.Time
}

func NewWorkoutService(workouts repository.WorkoutRepository) *WorkoutService {
	return &WorkoutService{
		workouts: workouts,
		now:      time.Now,
	}
}

func (s *WorkoutService) Append(ctx context.Context, userID uint, workoutType, muscle string, at time.Time) (_ *models.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.append")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	workoutType = strings.TrimSpace(workoutType)
	muscle = strings.TrimSpace(muscle)

	var missing []string
	if userID == 0 {
		missing = append(missing, "userId")
	}
	if workoutType == "" {
		missing = append(missing, "typeOfWorkout")
	}
	if muscle == "" {
		missing = append(missing, "muscle")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}
	if at.IsZero() {
		at = s.now()
	}

	span.SetAttributes(
		attribute.String("workout.type", workoutType),
		attribute.String("workout.muscle", muscle),
	)

	w := &models.Workout{
		UserID:        userID,
		TypeOfWorkout: workoutType,
		Muscle:        muscle,
		DateTime:      at.UTC(),
	}
	if err := s.workouts.Create(ctx, w); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, upstream("create workout", err)
	}
	return w, nil
}

func (s *WorkoutService) AllForUser(ctx context.Context, userID uint) ([]models.Workout, error) {
	workouts, err := s.workouts.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, upstream("list workouts", err)
	}
	return workouts, nil
}

// Calendar loads only the workouts that fall inside the visible grid.
func (s *WorkoutService) Calendar(ctx context.Context, userID uint, year int, month time.Month, loc *time.Location) (_ *calendar.Month, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workout.calendar")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if month < time.January || month > time.December {
		return nil, invalid("month must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		return nil, invalid("year out of range")
	}

	if loc == nil {
		loc = time.UTC
	}

	start, end := calendar.GridBounds(year, month, loc)
	workouts, err := s.workouts.FindByUserIDAndDateRange(ctx, userID, start.UTC(), end.AddDate(0, 0, 1).UTC())
	if err != nil {
		return nil, upstream("list workouts", err)
	}

	m := calendar.BuildMonth(year, month, loc, workouts)
	return &m, nil
}

func (s *WorkoutService) Breakdown(ctx context.Context, userID uint, by calendar.BreakdownBy) ([]calendar.Slice, error) {
	workouts, err := s.AllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return calendar.Breakdown(workouts, by), nil
}
