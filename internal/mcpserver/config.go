package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/wordcase/internal/config"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup via loadConfig().
type serverConfig struct {
	*config.Config

	// MaxPatternLength caps the size of a regular expression passed to the
	// match tool.
	MaxPatternLength int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads the shared wordcase configuration plus MCP-only
// WORDCASE_MCP_* variables. A broken config file logs a warning and the
// built-in defaults are used.
func loadConfig() *serverConfig {
	shared, err := config.Load()
	if err != nil {
		slog.Warn("invalid wordcase configuration, using defaults", "error", err)
		shared = config.Default()
	}
	return &serverConfig{
		Config:           shared,
		MaxPatternLength: envInt("WORDCASE_MCP_MAX_PATTERN_LENGTH", 1024),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}
