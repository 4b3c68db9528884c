package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/thenoetrevino/tracker/internal/app"
	"github.com/thenoetrevino/tracker/internal/config"
	"github.com/thenoetrevino/tracker/internal/database"
	"github.com/thenoetrevino/tracker/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	logCloser io.Closer
	// owned is false when the App was injected by the caller, who closes it
	owned bool
}

// NewCLI loads the configuration, opens the log file and the database, and
// builds the application container
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logCloser, err := logging.Init(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:       app.New(db, app.WithLogger(logging.Logger)),
		Config:    cfg,
		logCloser: logCloser,
		owned:     true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.logCloser != nil {
		err = errors.Join(err, c.logCloser.Close())
	}
	return err
}

type contextKey struct{}

// WithApp returns a context carrying application, which GetCLIFromContext
// uses instead of opening the configured database
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, contextKey{}, application)
}

// GetCLIFromContext returns a CLI over the App stored by WithApp, or a new
// CLI built from the user's configuration when ctx carries none
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if application, ok := ctx.Value(contextKey{}).(*app.App); ok && application != nil {
			return &CLI{App: application, Config: config.Default()}, nil
		}
	} else {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}
