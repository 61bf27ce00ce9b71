package controllers

import (
	"net/http"
	"strings"

	"fitnessforge/internal/metrics"
	"fitnessforge/internal/models"
	"fitnessforge/internal/services"
	"fitnessforge/internal/units"

	"github.com/gin-gonic/gin"
)

// InsightController serves the values derived from the profile and the
// measurement log.
type InsightController struct {
	profiles     *services.ProfileService
	measurements *services.MeasurementService
	metrics      *metrics.Manager
}

func NewInsightController(profiles *services.ProfileService, measurements *services.MeasurementService, m *metrics.Manager) *InsightController {
	return &InsightController{profiles: profiles, measurements: measurements, metrics: m}
}

// RecordBMI godoc
// @Summary Calculate and log BMI
// @Description Normalise height and weight, compute the BMI, classify it and append it to the BMI log
// @Tags metrics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body services.BMIInput true "Height and weight"
// @Success 201 {object} map[string]interface{} "BMI recorded successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /metrics/bmi [post]
func (ic *InsightController) RecordBMI(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var in services.BMIInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	in.HeightUnit = units.HeightUnit(strings.ToLower(string(in.HeightUnit)))
	in.WeightUnit = units.WeightUnit(strings.ToLower(string(in.WeightUnit)))

	res, err := ic.measurements.RecordBMI(c.Request.Context(), userID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	ic.metrics.CounterMeasurements.WithLabelValues(string(models.MeasurementBMI)).Inc()

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "BMI recorded successfully",
		"data":    res,
	})
}

// Summary godoc
// @Summary Body metrics summary
// @Description BMI, category, color and ideal weight from the current profile
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Summary retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /metrics/summary [get]
func (ic *InsightController) Summary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := ic.profiles.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Summary retrieved successfully",
		"data":    summary,
	})
}

// WeightChart godoc
// @Summary Weight chart
// @Description Weight history paired with the ideal weight for the current height and gender
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Weight chart retrieved successfully"
// @Failure 404 {object} map[string]interface{} "No weight logs found for this user."
// @Router /metrics/weight-chart [get]
func (ic *InsightController) WeightChart(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	points, err := ic.measurements.WeightChart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(points) == 0 {
		notFound(c, "No weight logs found for this user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Weight chart retrieved successfully",
		"data":    points,
	})
}
