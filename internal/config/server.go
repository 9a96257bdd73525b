package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Server holds the HTTP server settings.
type Server struct {
	HTTPAddr          string
	StaticDir         string
	CompressThreshold int
	ShutdownTimeout   time.Duration
	LogLevel          slog.Level
}

// LoadServer reads server settings from the environment. Variables from
// envFiles (default ".env") are loaded first without overriding the process
// environment; missing files are ignored.
func LoadServer(envFiles ...string) (Server, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Server{}, fmt.Errorf("load env file: %w", err)
	}

	c := Server{
		HTTPAddr:          envOr("RECTFORGE_HTTP_ADDR", ":3000"),
		StaticDir:         os.Getenv("RECTFORGE_STATIC_DIR"),
		CompressThreshold: 1024,
		ShutdownTimeout:   10 * time.Second,
	}

	if v := os.Getenv("RECTFORGE_COMPRESS_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Server{}, fmt.Errorf("invalid RECTFORGE_COMPRESS_THRESHOLD %q", v)
		}
		c.CompressThreshold = n
	}

	if v := os.Getenv("RECTFORGE_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Server{}, fmt.Errorf("invalid RECTFORGE_SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		c.ShutdownTimeout = d
	}

	level, err := ParseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Server{}, err
	}
	c.LogLevel = level

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ParseLogLevel maps debug, info, warn and error to slog levels.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
