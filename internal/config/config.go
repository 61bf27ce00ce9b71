// Package config loads service configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App      `envPrefix:"APP_"`
	Database Database `envPrefix:"DB_"`
	JWT      JWT      `envPrefix:"JWT_"`
	Storage  Storage  `envPrefix:"MINIO_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	Log      Log      `envPrefix:"LOG_"`
	Sentry   Sentry   `envPrefix:"SENTRY_"`
}

type App struct {
	Environment string   `env:"ENV" envDefault:"development"`
	Host        string   `env:"HOST" envDefault:""`
	Port        string   `env:"PORT" envDefault:"5000"`
	MetricsPort string   `env:"METRICS_PORT" envDefault:"9090"`
	TimeZone    string   `env:"TIMEZONE" envDefault:"UTC"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	// LogWeightUpdates makes weight-only profile updates append to the weight log too.
	LogWeightUpdates bool `env:"LOG_WEIGHT_UPDATES" envDefault:"false"`
}

type Database struct {
	Host            string        `env:"HOST" envDefault:"localhost"`
	Port            string        `env:"PORT" envDefault:"5432"`
	User            string        `env:"USER" envDefault:"postgres"`
	Password        string        `env:"PASSWORD" envDefault:"postgres"`
	Name            string        `env:"NAME" envDefault:"fitnessforge"`
	SSLMode         string        `env:"SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"1h"`
}

func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s application_name=fitnessforge TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

type JWT struct {
	Secret string        `env:"SECRET,required,notEmpty"`
	TTL    time.Duration `env:"TTL" envDefault:"1h"`
}

type Storage struct {
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"fitnessforge-access-key"`
	SecretKey string `env:"SECRET_KEY" envDefault:"fitnessforge-secret-key"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"fitnessforge"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
	// PublicURL is the base used to build image links handed to clients.
	PublicURL string `env:"PUBLIC_URL" envDefault:"http://localhost:9000"`
}

type Redis struct {
	Enabled        bool   `env:"ENABLED" envDefault:"true"`
	URL            string `env:"URL" envDefault:"redis://localhost:6379/0"`
	LoginPerMinute int    `env:"LOGIN_PER_MINUTE" envDefault:"10"`
}

type Log struct {
	Level    string `env:"LEVEL" envDefault:"info"`
	FileName string `env:"FILE" envDefault:""`
	JSON     bool   `env:"JSON" envDefault:"false"`
	Stdout   bool   `env:"STDOUT" envDefault:"true"`
}

type Sentry struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	DSN     string `env:"DSN"`
}

// Load reads envFiles (missing files are skipped) and then parses the
// process environment. Variables already set win over .env values.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := time.LoadLocation(cfg.App.TimeZone); err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.App.TimeZone, err)
	}
	return cfg, nil
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
