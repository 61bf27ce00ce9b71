package routes

import (
	"context"
	"net/http"
	"time"

	"fitnessforge/internal/controllers"
	"fitnessforge/internal/metrics"
	"fitnessforge/internal/middleware"
	"fitnessforge/internal/services"

	"github.com/gin-gonic/gin"
)

// Deps is everything the HTTP layer needs. RateLimiter and DBHealth are optional.
type Deps struct {
	Accounts     *services.AccountService
	Profiles     *services.ProfileService
	Measurements *services.MeasurementService
	Workouts     *services.WorkoutService
	Verifier     middleware.TokenVerifier
	RateLimiter  middleware.RequestRateLimiter
	Metrics      *metrics.Manager
	Location     *time.Location
	CORSOrigins  []string
	DBHealth     func(ctx context.Context) error
}

func NewRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.PanicRecovery(deps.Metrics),
		middleware.RequestMetrics(deps.Metrics),
		middleware.LogRequest(),
		middleware.Cors(deps.CORSOrigins),
	)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to FitnessForge API")
	})
	router.GET("/health", func(c *gin.Context) {
		if deps.DBHealth != nil {
			if err := deps.DBHealth(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":          "error",
					"database_health": false,
					"error":           err.Error(),
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":          "success",
			"database_health": true,
		})
	})
	RegisterSwaggerRoutes(router)

	authMw := middleware.AuthMiddleware(deps.Verifier)
	api := router.Group("/api")
	RegisterUserRoutes(api,
		controllers.NewUserController(deps.Accounts, deps.Metrics),
		authMw,
		middleware.RateLimit(deps.RateLimiter, "register", deps.Metrics),
		middleware.RateLimit(deps.RateLimiter, "login", deps.Metrics),
	)
	RegisterProfileRoutes(api, controllers.NewProfileController(deps.Profiles), authMw)
	RegisterLogRoutes(api, controllers.NewLogController(deps.Measurements, deps.Metrics), authMw)
	RegisterWorkoutRoutes(api, controllers.NewWorkoutController(deps.Workouts, deps.Metrics, deps.Location), authMw)
	RegisterInsightRoutes(api, controllers.NewInsightController(deps.Profiles, deps.Measurements, deps.Metrics), authMw)

	return router
}
