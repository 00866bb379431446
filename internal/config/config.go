package config

import (
	"os"
	"time"

	"github.com/runlog/runlog-backend-go/internal/units"
)

// Config holds the application configuration, read once at startup.
// The unit system is carried here and threaded explicitly into
// formatting code; nothing reads it from global state.
type Config struct {
	Port               string
	ActivityServiceURL string
	JWTSecret          string
	Units              units.System
	RequestTimeout     time.Duration
}

// Load reads configuration from environment variables.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	serviceURL := os.Getenv("ACTIVITY_SERVICE_URL")
	if serviceURL == "" {
		serviceURL = "http://localhost:9000/api/v1"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:               port,
		ActivityServiceURL: serviceURL,
		JWTSecret:          jwtSecret,
		Units:              units.ParseSystem(os.Getenv("UNITS")),
		RequestTimeout:     30 * time.Second,
	}
}
