package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fitnessforge/internal/metrics"
	"fitnessforge/internal/models"
	"fitnessforge/internal/services"

	"github.com/gin-gonic/gin"
)

type CreateLogRequest struct {
	Type     string     `json:"type" example:"weight"`
	Value    float64    `json:"value" example:"70.5"`
	DateTime *time.Time `json:"dateTime" example:"2024-03-01T08:00:00Z"`
}

type LogController struct {
	measurements *services.MeasurementService
	metrics      *metrics.Manager
}

func NewLogController(measurements *services.MeasurementService, m *metrics.Manager) *LogController {
	return &LogController{measurements: measurements, metrics: m}
}

// Create godoc
// @Summary Append a measurement
// @Description Add a weight or BMI entry for the authenticated user
// @Tags logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param log body CreateLogRequest true "Measurement"
// @Success 201 {object} map[string]interface{} "Log created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /logs/create [post]
func (lc *LogController) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	var at time.Time
	if req.DateTime != nil {
		at = *req.DateTime
	}
	kind := models.MeasurementType(strings.ToLower(strings.TrimSpace(req.Type)))

	entry, err := lc.measurements.Append(c.Request.Context(), userID, kind, req.Value, at)
	if err != nil {
		respondError(c, err)
		return
	}
	lc.metrics.CounterMeasurements.WithLabelValues(string(kind)).Inc()

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Log created successfully",
		"data":    entry,
	})
}

// LatestBMI godoc
// @Summary Latest BMI
// @Description Return the newest BMI entry as a one-element list
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]interface{} "BMI log retrieved successfully"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "No BMI logs found for this user."
// @Router /logs/user/{userId}/bmi [get]
func (lc *LogController) LatestBMI(c *gin.Context) {
	userID, ok := ownPathUser(c)
	if !ok {
		return
	}

	entry, err := lc.measurements.Latest(c.Request.Context(), userID, models.MeasurementBMI)
	if errors.Is(err, services.ErrLogNotFound) {
		notFound(c, "No BMI logs found for this user.")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "BMI log retrieved successfully",
		"data":    []models.Measurement{*entry},
	})
}

// WeightHistory godoc
// @Summary Weight history
// @Description Return every weight entry, newest first
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]interface{} "Weight logs retrieved successfully"
// @Failure 403 {object} map[string]interface{} "Forbidden"
// @Failure 404 {object} map[string]interface{} "No weight logs found for this user."
// @Router /logs/user/{userId}/weight [get]
func (lc *LogController) WeightHistory(c *gin.Context) {
	userID, ok := ownPathUser(c)
	if !ok {
		return
	}

	history, err := lc.measurements.History(c.Request.Context(), userID, models.MeasurementWeight)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(history) == 0 {
		notFound(c, "No weight logs found for this user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Weight logs retrieved successfully",
		"data":    history,
	})
}
