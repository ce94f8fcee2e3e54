package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	Port            string
	UpstreamTimeout time.Duration

	// Base URL of the Mikombo Park API, e.g. http://localhost:8000/api
	APIBaseURL string

	// Directory holding the session-local state (cart, token).
	DataDir string
}

func Load() Config {
	cfg := Config{
		Port:            getenv("PORT", "8090"),
		UpstreamTimeout: parseDuration(getenv("UPSTREAM_TIMEOUT", "10s"), 10*time.Second),
		APIBaseURL:      getenv("API_BASE_URL", "http://localhost:8000/api"),
		DataDir:         getenv("DATA_DIR", defaultDataDir()),
	}
	return cfg
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".mikombo")
	}
	return "data"
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
