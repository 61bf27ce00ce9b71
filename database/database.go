package database

import (
	"context"
	"fmt"
	"time"

	"fitnessforge/internal/config"
	"fitnessforge/internal/metrics"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectDatabase(cfg config.Database) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.StandardLogger(),
		logger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 gormLogger,
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Infof("connected to database %s@%s:%s (max open conns: %d)", cfg.Name, cfg.Host, cfg.Port, cfg.MaxOpenConns)
	return db, nil
}

// MonitorDBConnections publishes pool stats to prometheus until ctx is done.
func MonitorDBConnections(ctx context.Context, db *gorm.DB, m *metrics.Manager, every time.Duration) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Errorf("db monitor: %s", err)
		return
	}

	ticker := time.NewTicker(every)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				stats := sqlDB.Stats()
				m.GaugeDBInUse.Set(float64(stats.InUse))
				m.GaugeDBIdle.Set(float64(stats.Idle))
				m.GaugeDBOpenConns.Set(float64(stats.OpenConnections))
			}
		}
	}()
}
