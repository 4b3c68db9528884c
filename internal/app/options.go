package app

import (
	"log/slog"
	"time"

	accountservice "github.com/thenoetrevino/tracker/internal/services/account"
	taskservice "github.com/thenoetrevino/tracker/internal/services/task"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger      *slog.Logger
	taskOpts    []taskservice.Option
	accountOpts []accountservice.Option
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock sets the clock used for task deadline rules
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.taskOpts = append(cfg.taskOpts, taskservice.WithClock(now))
	}
}

// WithPasswordHashCost sets the bcrypt cost for new password hashes
func WithPasswordHashCost(cost int) Option {
	return func(cfg *appConfig) {
		cfg.accountOpts = append(cfg.accountOpts, accountservice.WithHashCost(cost))
	}
}
