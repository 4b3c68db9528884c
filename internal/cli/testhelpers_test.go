package cli

import (
	"log"
	"log/slog"
	"os"
)

// restoreLogging undoes logging.Init so later tests log to stderr again
func restoreLogging() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	log.SetOutput(os.Stderr)
}
