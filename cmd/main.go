package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"fitnessforge/database"
	"fitnessforge/docs"
	"fitnessforge/internal/auth"
	"fitnessforge/internal/cache"
	"fitnessforge/internal/config"
	"fitnessforge/internal/logging"
	"fitnessforge/internal/metrics"
	"fitnessforge/internal/middleware"
	"fitnessforge/internal/repository"
	"fitnessforge/internal/services"
	miniostore "fitnessforge/internal/storage/minio"
	"fitnessforge/routes"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

// @title FitnessForge API
// @version 1.0
// @description Body metrics, weight log and workout tracking API.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	var sentryDSN string
	if cfg.Sentry.Enabled {
		sentryDSN = cfg.Sentry.DSN
	}
	logging.Setup(logging.Options{
		Level:       cfg.Log.Level,
		JSON:        cfg.Log.JSON,
		File:        cfg.Log.FileName,
		AlsoStdout:  cfg.Log.Stdout,
		Environment: cfg.App.Environment,
		SentryDSN:   sentryDSN,
		ServerName:  "fitnessforge-api",
	})

	docs.SwaggerInfo.Title = "FitnessForge API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.ConnectDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %s", err)
	}
	if err := database.MigrateDatabase(db); err != nil {
		log.Fatalf("failed to run database migrations: %s", err)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsManager := metrics.NewManager("fitnessforge", "api", promRegistry)
	database.MonitorDBConnections(ctx, db, metricsManager, 15*time.Second)

	blobStore := miniostore.NewClient(ctx, miniostore.Params{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		UseSSL:    cfg.Storage.UseSSL,
		Bucket:    cfg.Storage.Bucket,
		PublicURL: cfg.Storage.PublicURL,
	})

	var (
		redisClient *redis.Client
		rateLimiter middleware.RequestRateLimiter
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Errorf("redis unavailable, login rate limiting disabled: %s", err)
		} else {
			rateLimiter = cache.NewLoginLimiter(redisClient, cfg.Redis.LoginPerMinute)
		}
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	measurementRepo := repository.NewMeasurementRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)

	issuer := auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(routes.Deps{
		Accounts: services.NewAccountService(userRepo, profileRepo, issuer),
		Profiles: services.NewProfileService(userRepo, profileRepo, blobStore,
			services.WithWeightUpdateLogging(cfg.App.LogWeightUpdates),
		),
		Measurements: services.NewMeasurementService(measurementRepo, profileRepo),
		Workouts:     services.NewWorkoutService(workoutRepo),
		Verifier:     issuer,
		RateLimiter:  rateLimiter,
		Metrics:      metricsManager,
		Location:     cfg.Location(),
		CORSOrigins:  cfg.App.CORSOrigins,
		DBHealth:     dbHealth(db),
	})

	httpServer := &http.Server{
		Addr:           net.JoinHostPort(cfg.App.Host, cfg.App.Port),
		Handler:        otelhttp.NewHandler(router, "fitnessforge-api"),
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	metricsServer := &http.Server{
		Addr:    net.JoinHostPort(cfg.App.Host, cfg.App.MetricsPort),
		Handler: metricsMux,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", httpServer.Addr)
		log.Infof(" > API documentation: http://localhost:%s/swagger/index.html", cfg.App.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received ...", receivedSig)
	cancel()

	if err := gracefulShutdown(httpServer, metricsServer, redisClient, db); err != nil {
		log.Errorf("shutdown: %s", err)
	}
	log.Warnln("server shut down")
}

func dbHealth(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

func gracefulShutdown(httpServer, metricsServer *http.Server, redisClient *redis.Client, db *gorm.DB) error {
	ctx, timeoutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer timeoutCancel()

	var err error
	err = multierr.Append(err, httpServer.Shutdown(ctx))
	err = multierr.Append(err, metricsServer.Shutdown(ctx))

	if redisClient != nil {
		err = multierr.Append(err, redisClient.Close())
	}

	if sqlDB, dbErr := db.DB(); dbErr != nil {
		err = multierr.Append(err, dbErr)
	} else {
		err = multierr.Append(err, sqlDB.Close())
	}

	sentry.Flush(5 * time.Second)
	return err
}
