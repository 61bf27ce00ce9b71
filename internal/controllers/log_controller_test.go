package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"fitnessforge/internal/controllers"
	"fitnessforge/internal/metrics"
	"fitnessforge/internal/models"
	"fitnessforge/internal/repository"
	"fitnessforge/internal/repository/mocks"
	"fitnessforge/internal/services"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupLogController() (*controllers.LogController, *mocks.MockMeasurementRepository, *metrics.Manager) {
	measurements := new(mocks.MockMeasurementRepository)
	m := metrics.NewTestManager()
	svc := services.NewMeasurementService(measurements, new(mocks.MockProfileRepository))
	return controllers.NewLogController(svc, m), measurements, m
}

func TestCreateLog(t *testing.T) {
	controller, measurements, m := setupLogController()
	measurements.On("Create", mock.Anything, mock.MatchedBy(func(entry *models.Measurement) bool {
		return entry.UserID == 1 && entry.Type == models.MeasurementWeight && entry.Value == 70.5
	})).Return(nil)

	router := setupTestRouter()
	router.POST("/logs/create", addAuthMiddleware(1), controller.Create)

	w := doJSON(router, http.MethodPost, "/logs/create", map[string]interface{}{
		"userId":   99,
		"type":     "Weight",
		"value":    70.5,
		"dateTime": "2024-03-01T08:00:00Z",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterMeasurements.WithLabelValues("weight")))

	w = doJSON(router, http.MethodPost, "/logs/create", map[string]interface{}{"type": "height", "value": 1.8})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	measurements.AssertNumberOfCalls(t, "Create", 1)
}

func TestLatestBMI(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mocks.MockMeasurementRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "latest entry",
			setupMock: func(m *mocks.MockMeasurementRepository) {
				m.On("Latest", mock.Anything, uint(1), models.MeasurementBMI).
					Return(&models.Measurement{ID: 3, Type: models.MeasurementBMI, Value: 22.86, DateTime: time.Now()}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "BMI log retrieved successfully",
		},
		{
			name: "no entries",
			setupMock: func(m *mocks.MockMeasurementRepository) {
				m.On("Latest", mock.Anything, uint(1), models.MeasurementBMI).Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "No BMI logs found for this user.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, measurements, _ := setupLogController()
			tt.setupMock(measurements)

			router := setupTestRouter()
			router.GET("/logs/user/:userId/bmi", addAuthMiddleware(1), controller.LatestBMI)

			w := doJSON(router, http.MethodGet, "/logs/user/1/bmi", nil)
			assert.Equal(t, tt.expectedStatus, w.Code)

			response := decode(t, w)
			assert.Equal(t, tt.expectedMsg, response["message"])
			if tt.expectedStatus == http.StatusOK {
				assert.Len(t, response["data"], 1)
			}
		})
	}
}

func TestWeightHistory(t *testing.T) {
	controller, measurements, _ := setupLogController()
	measurements.On("History", mock.Anything, uint(1), models.MeasurementWeight).Return([]models.Measurement{
		{ID: 2, Value: 72}, {ID: 1, Value: 70},
	}, nil)
	measurements.On("History", mock.Anything, uint(2), models.MeasurementWeight).Return([]models.Measurement{}, nil)

	router := setupTestRouter()
	router.GET("/one/:userId/weight", addAuthMiddleware(1), controller.WeightHistory)
	router.GET("/two/:userId/weight", addAuthMiddleware(2), controller.WeightHistory)

	w := doJSON(router, http.MethodGet, "/one/1/weight", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"], 2)

	w = doJSON(router, http.MethodGet, "/two/2/weight", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No weight logs found for this user.", decode(t, w)["message"])

	w = doJSON(router, http.MethodGet, "/one/2/weight", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
