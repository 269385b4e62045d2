// Package config loads process-level defaults from the environment.
// Per-invocation solver/generator options come from command-line flags
// (§6 of the spec), not environment variables; this package only
// covers settings that make sense to default across invocations.
package config

import (
	"fmt"
	"os"

	"github.com/student/sudoku-engine/pkg/logging"
)

// Config holds process-wide defaults.
type Config struct {
	DefaultLogLevel logging.Level
	PuzzlesFile     string
}

// Load reads configuration from the environment, applying defaults for
// anything unset. It never panics; callers surface the error at the
// CLI boundary.
func Load() (*Config, error) {
	level := logging.Warning
	if raw := os.Getenv("SUDOKU_LOG_LEVEL"); raw != "" {
		parsed, ok := logging.ParseLevel(raw)
		if !ok {
			return nil, fmt.Errorf("config: invalid SUDOKU_LOG_LEVEL %q", raw)
		}
		level = parsed
	}

	return &Config{
		DefaultLogLevel: level,
		PuzzlesFile:     getEnv("SUDOKU_PUZZLES_FILE", "puzzles.json"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
