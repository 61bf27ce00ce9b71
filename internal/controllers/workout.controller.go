package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fitnessforge/internal/calendar"
	"fitnessforge/internal/metrics"
	"fitnessforge/internal/services"

	"github.com/gin-gonic/gin"
)

type CreateWorkoutRequest struct {
	TypeOfWorkout string     `json:"typeOfWorkout" example:"strength"`
	Muscle        string     `json:"muscle" example:"biceps"`
	DateTime      *time.Time `json:"dateTime" example:"2024-03-01T18:30:00Z"`
}

type WorkoutController struct {
	workouts *services.WorkoutService
	metrics  *metrics.Manager
	loc      *time.Location
	now      func() time.Time
}

// NewWorkoutController uses loc as the calendar time zone when the request
// does not name one.
func NewWorkoutController(workouts *services.WorkoutService, m *metrics.Manager, loc *time.Location) *WorkoutController {
	if loc == nil {
		loc = time.UTC
	}
	return &WorkoutController{workouts: workouts, metrics: m, loc: loc, now: time.Now}
}

// Create godoc
// @Summary Log a workout
// @Description Append a workout for the authenticated user. A userId in the body is ignored.
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body CreateWorkoutRequest true "Workout"
// @Success 201 {object} map[string]interface{} "Workout logged successfully"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Router /workouts [post]
func (wc *WorkoutController) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	var at time.Time
	if req.DateTime != nil {
		at = *req.DateTime
	}

	workout, err := wc.workouts.Append(c.Request.Context(), userID, req.TypeOfWorkout, req.Muscle, at)
	if err != nil {
		respondError(c, err)
		return
	}
	wc.metrics.CounterWorkouts.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Workout logged successfully",
		"data":    workout,
	})
}

// GetByUser godoc
// @Summary List workouts
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]interface{} "Workouts retrieved successfully"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "No workouts found for this user."
// @Router /workouts/{userId} [get]
func (wc *WorkoutController) GetByUser(c *gin.Context) {
	userID, ok := ownPathUser(c)
	if !ok {
		return
	}

	workouts, err := wc.workouts.AllForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(workouts) == 0 {
		notFound(c, "No workouts found for this user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workouts retrieved successfully",
		"data":    workouts,
	})
}

// Calendar godoc
// @Summary Workout calendar
// @Description Month grid from Sunday to Saturday with each day colored by its workout types
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param year query int false "Year, defaults to the current year"
// @Param month query int false "Month 1-12, defaults to the current month"
// @Param tz query string false "IANA time zone, defaults to the server setting"
// @Success 200 {object} map[string]interface{} "Calendar retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /workouts/calendar [get]
func (wc *WorkoutController) Calendar(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	loc := wc.loc
	if tz := c.Query("tz"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			badRequest(c, fmt.Errorf("unknown time zone %q", tz))
			return
		}
		loc = l
	}

	now := wc.now().In(loc)
	year, err := queryInt(c, "year", now.Year())
	if err != nil {
		badRequest(c, err)
		return
	}
	month, err := queryInt(c, "month", int(now.Month()))
	if err != nil {
		badRequest(c, err)
		return
	}

	grid, err := wc.workouts.Calendar(c.Request.Context(), userID, year, time.Month(month), loc)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Calendar retrieved successfully",
		"data":    grid,
	})
}

// Breakdown godoc
// @Summary Workout breakdown
// @Description Count workouts per muscle group or per workout type
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param by query string false "muscle (default) or type"
// @Success 200 {object} map[string]interface{} "Breakdown retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "No workouts found for this user."
// @Router /workouts/breakdown [get]
func (wc *WorkoutController) Breakdown(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	by, err := calendar.ParseBreakdownBy(c.Query("by"))
	if err != nil {
		badRequest(c, err)
		return
	}

	slices, err := wc.workouts.Breakdown(c.Request.Context(), userID, by)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(slices) == 0 {
		notFound(c, "No workouts found for this user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Breakdown retrieved successfully",
		"data":    slices,
	})
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return v, nil
}
