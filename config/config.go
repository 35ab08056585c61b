package config

import (
	"os"
	"time"
)

// ServerAddr is the listen address for the API server.
func ServerAddr() string {
	return ":" + getEnv("PORT", "8081")
}

// SessionTTL is how long an idle browser session is kept before the
// sweeper evicts it.
func SessionTTL() time.Duration {
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return 2 * time.Hour
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
