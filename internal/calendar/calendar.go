// Package calendar groups a user's workouts into a month grid and into
// per-muscle / per-type counts.
package calendar

import (
	"sort"
	"strings"
	"time"

	"fitnessforge/internal/models"
)

const (
	EmptyColor = "#333"
	MixedColor = "#FFD700"
)

var workoutTypeColors = map[string]string{
	"cardio":                "#FF5733",
	"olympic_weightlifting": "#33FF57",
	"plyometrics":           "#5733FF",
	"powerlifting":          "#33FFF6",
	"strength":              "#FF3333",
	"stretching":            "#FFC300",
	"strongman":             "#FF8F33",
}

type Day struct {
	Date     string           `json:"date" example:"2024-03-01"`
	InMonth  bool             `json:"inMonth" example:"true"`
	Color    string           `json:"color" example:"#FF3333"`
	Workouts []models.Workout `json:"workouts"`
}

type Month struct {
	Year  int    `json:"year" example:"2024"`
	Month int    `json:"month" example:"3"`
	Days  []Day  `json:"days"`
	Prev  YearMo `json:"prev"`
	Next  YearMo `json:"next"`
}

type YearMo struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// GridBounds returns the Sunday on or before the first day of the month and
// the Saturday on or after its last day, both at midnight in loc.
func GridBounds(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))
	return start, end
}

// BuildMonth lays out a full-week grid for the month and buckets workouts
// into it by their local date in loc.
func BuildMonth(year int, month time.Month, loc *time.Location, workouts []models.Workout) Month {
	if loc == nil {
		loc = time.Local
	}
	start, end := GridBounds(year, month, loc)

	byDay := make(map[string][]models.Workout)
	for _, w := range workouts {
		key := dateKey(w.DateTime.In(loc))
		byDay[key] = append(byDay[key], w)
	}

	var days []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := dateKey(d)
		dayWorkouts := byDay[key]
		if dayWorkouts == nil {
			dayWorkouts = []models.Workout{}
		}
		days = append(days, Day{
			Date:     key,
			InMonth:  d.Month() == month,
			Color:    DayColor(dayWorkouts),
			Workouts: dayWorkouts,
		})
	}

	prevY, prevM := Shift(year, month, -1)
	nextY, nextM := Shift(year, month, 1)
	return Month{
		Year:  year,
		Month: int(month),
		Days:  days,
		Prev:  YearMo{Year: prevY, Month: int(prevM)},
		Next:  YearMo{Year: nextY, Month: int(nextM)},
	}
}

// DayColor resolves the cell color from the distinct workout types of a day.
// Types are compared case-insensitively.
func DayColor(workouts []models.Workout) string {
	distinct := make(map[string]struct{})
	for _, w := range workouts {
		distinct[strings.ToLower(strings.TrimSpace(w.TypeOfWorkout))] = struct{}{}
	}

	switch len(distinct) {
	case 0:
		return EmptyColor
	case 1:
		for t := range distinct {
			return TypeColor(t)
		}
	}
	return MixedColor
}

func TypeColor(workoutType string) string {
	if c, ok := workoutTypeColors[strings.ToLower(workoutType)]; ok {
		return c
	}
	return EmptyColor
}

// Shift moves a year/month pair by delta months.
func Shift(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}

func dateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// WorkoutTypes lists the workout types that have a dedicated color.
func WorkoutTypes() []string {
	return sortedKeys(workoutTypeColors)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
