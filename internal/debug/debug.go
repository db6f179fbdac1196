package debug

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable that enables logging at startup.
const EnvVar = "FLEX_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  *slog.Logger
)

func init() {
	if path := os.Getenv(EnvVar); path != "" {
		// A bad path only disables logging.
		_ = Init(path)
	}
}

// Init starts writing debug records to path, creating parent directories as
// needed. If path is empty, uses "flex-debug.log" in the current directory.
// Any previously opened log file is closed.
func Init(path string) error {
	if path == "" {
		path = "flex-debug.log"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

// Close flushes and closes the log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile, logger = nil, nil
	return err
}

// Enabled reports whether records are being written.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logger != nil
}

// Log writes msg with alternating key/value attributes, e.g.
//
//	debug.Log("compute", "pass", 3, "solved", 12)
//
// It is a no-op while logging is disabled.
func Log(msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return
	}
	logger.Log(context.Background(), slog.LevelDebug, msg, args...)
}
