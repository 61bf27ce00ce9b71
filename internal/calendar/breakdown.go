package calendar

import (
	"fmt"
	"sort"
	"strings"

	"fitnessforge/internal/models"
)

type BreakdownBy string

const (
	ByMuscle BreakdownBy = "muscle"
	ByType   BreakdownBy = "type"
)

const (
	defaultMuscleColor = "#8884d8"
	defaultTypeColor   = "#82ca9d"
)

var muscleColors = map[string]string{
	"abdominals":  "#FF5733",
	"abductors":   "#33FF57",
	"adductors":   "#5733FF",
	"biceps":      "#33FFF6",
	"calves":      "#FFC300",
	"chest":       "#FF3333",
	"forearms":    "#33FF8F",
	"shoulders":   "#FFD700",
	"glutes":      "#FF33A1",
	"hamstrings":  "#338FFF",
	"lats":        "#FF8F33",
	"lower_back":  "#FF5733",
	"middle_back": "#33FFD1",
	"neck":        "#33A1FF",
	"quadriceps":  "#F833FF",
	"traps":       "#8F33FF",
	"triceps":     "#FF3365",
}

type Slice struct {
	Name  string `json:"name" example:"biceps"`
	Count int    `json:"count" example:"4"`
	Color string `json:"color" example:"#33FFF6"`
}

func ParseBreakdownBy(s string) (BreakdownBy, error) {
	switch BreakdownBy(strings.ToLower(s)) {
	case ByMuscle, "":
		return ByMuscle, nil
	case ByType:
		return ByType, nil
	default:
		return "", fmt.Errorf("unsupported breakdown %q", s)
	}
}

// Breakdown counts workouts per muscle group or per workout type, largest
// first, ties broken by name.
func Breakdown(workouts []models.Workout, by BreakdownBy) []Slice {
	counts := make(map[string]int)
	for _, w := range workouts {
		name := w.Muscle
		if by == ByType {
			name = w.TypeOfWorkout
		}
		counts[strings.ToLower(strings.TrimSpace(name))]++
	}

	slices := make([]Slice, 0, len(counts))
	for name, count := range counts {
		slices = append(slices, Slice{Name: name, Count: count, Color: sliceColor(name, by)})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Count != slices[j].Count {
			return slices[i].Count > slices[j].Count
		}
		return slices[i].Name < slices[j].Name
	})
	return slices
}

func sliceColor(name string, by BreakdownBy) string {
	if by == ByType {
		if c, ok := workoutTypeColors[name]; ok {
			return c
		}
		return defaultTypeColor
	}
	if c, ok := muscleColors[name]; ok {
		return c
	}
	return defaultMuscleColor
}

// Muscles lists the muscle groups that have a dedicated color.
func Muscles() []string {
	return sortedKeys(muscleColors)
}
