package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	RedisAddr  string
	RedisDB    int
	LogLevel   slog.Level

	UnpaidSweepSpec      string
	UnpaidTimeout        time.Duration
	StuckDeliverySpec    string
	StuckDeliveryTimeout time.Duration
	Location             *time.Location
}

// Defaults applied when a variable is unset.
const (
	DefaultHTTPPort             = "8080"
	DefaultUnpaidSweepInterval  = time.Minute
	DefaultUnpaidTimeout        = 15 * time.Minute
	DefaultStuckDeliverySpec    = "0 0 2 * * *"
	DefaultStuckDeliveryTimeout = 120 * time.Minute
)

// LoadConfig builds the configuration from a lookup function such as os.Getenv.
func LoadConfig(env func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:          withDefault(env("HTTP_PORT"), DefaultHTTPPort),
		DBHost:            env("DB_HOST"),
		DBPort:            withDefault(env("DB_PORT"), "5432"),
		DBUser:            env("DB_USER"),
		DBPassword:        env("DB_PASSWORD"),
		DBName:            env("DB_NAME"),
		DBSslMode:         withDefault(env("DB_SSLMODE"), "disable"),
		RedisAddr:         withDefault(env("REDIS_ADDR"), "localhost:6379"),
		StuckDeliverySpec: withDefault(env("STUCK_DELIVERY_SWEEP_SPEC"), DefaultStuckDeliverySpec),
	}

	var err error
	if cfg.RedisDB, err = intOr(env("REDIS_DB"), 0); err != nil {
		return Config{}, fmt.Errorf("REDIS_DB: %w", err)
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(withDefault(env("LOG_LEVEL"), "INFO"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	interval, err := durationOr(env("UNPAID_SWEEP_INTERVAL"), DefaultUnpaidSweepInterval)
	if err != nil {
		return Config{}, fmt.Errorf("UNPAID_SWEEP_INTERVAL: %w", err)
	}
	cfg.UnpaidSweepSpec = "@every " + interval.String()

	if cfg.UnpaidTimeout, err = durationOr(env("UNPAID_TIMEOUT"), DefaultUnpaidTimeout); err != nil {
		return Config{}, fmt.Errorf("UNPAID_TIMEOUT: %w", err)
	}
	if cfg.StuckDeliveryTimeout, err = durationOr(env("STUCK_DELIVERY_TIMEOUT"), DefaultStuckDeliveryTimeout); err != nil {
		return Config{}, fmt.Errorf("STUCK_DELIVERY_TIMEOUT: %w", err)
	}

	cfg.Location = time.Local
	if name := env("TIMEZONE"); name != "" {
		if cfg.Location, err = time.LoadLocation(name); err != nil {
			return Config{}, fmt.Errorf("TIMEZONE: %w", err)
		}
	}

	return cfg, nil
}

// DSN is the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// MigrationURL is the same database in URL form for golang-migrate.
func (c Config) MigrationURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSslMode,
	)
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func intOr(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func durationOr(value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}
