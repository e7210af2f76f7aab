package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	MetricsAddr     string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays
// lean. A .env file is loaded when present; real environment wins.
func FromEnv() Server {
	_ = godotenv.Load()

	return Server{
		Addr:            envOr("FISCALE_ADDR", ":8080"),
		MetricsAddr:     envOr("FISCALE_METRICS_ADDR", ":9090"),
		RequestTimeout:  envDurationOr("FISCALE_REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout: envDurationOr("FISCALE_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
