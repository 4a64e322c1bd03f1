package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Payroll  PayrollConfig
	Reminder ReminderConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=backoffice"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// PayrollConfig drives the weekly payer rotation. Rotation holds user ids in
// cycle order; Epoch is the date whose pay-week maps to index 0. NoRotation
// lists concessions with a fixed payer instead of the cycle.
type PayrollConfig struct {
	Rotation   []string `env:"PAYROLL_ROTATION"`
	Epoch      string   `env:"PAYROLL_EPOCH, default=2024-01-06"`
	NoRotation []string `env:"PAYROLL_NO_ROTATION"`
	FixedPayer string   `env:"PAYROLL_FIXED_PAYER"`
}

// EpochDate parses the configured epoch. The value is a plain date; the
// scheduler normalizes it to its pay-week anchor.
func (p PayrollConfig) EpochDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", p.Epoch)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse PAYROLL_EPOCH: %w", err)
	}
	return t, nil
}

type ReminderConfig struct {
	Interval  time.Duration `env:"REMINDER_INTERVAL,  default=1h"`
	Lookahead time.Duration `env:"REMINDER_LOOKAHEAD, default=168h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
