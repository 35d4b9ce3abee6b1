package config

import (
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the mindpad API server.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used for the local session cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig assembles and validates the terminal client configuration.
//
// The client keeps its configuration surface deliberately small (two
// environment variables with sensible defaults) because the TUI owns the
// terminal and cannot rely on flag-driven startup the way the server does.
//
// Env:
//
//	MINDPAD_SERVER_URL: API server base URL (default http://localhost:8080)
//	MINDPAD_CLIENT_DB:  local session cache path (default ~/.mindpad/session.db)
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      getenv("MINDPAD_SERVER_URL", "http://localhost:8080"),
			RequestTimeout: 15 * time.Second,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: getenv("MINDPAD_CLIENT_DB", defaultSessionDBPath()),
			},
		},
	}

	return cfg, cfg.validate()
}

func defaultSessionDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.db"
	}
	return home + "/.mindpad/session.db"
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
