package config

import (
	"log/slog"
	"os"
	"time"
)

// Timeout bounds for a single auth/store operation. The serverless value
// must stay below both the platform's hard execution ceiling and the
// client's own request timeout, so the server always answers before the
// caller gives up.
const (
	OpTimeoutServerless = 7 * time.Second
	OpTimeoutServer     = 15 * time.Second
)

// Session credential lifetimes.
const (
	TokenTTL    = 7 * 24 * time.Hour
	RememberTTL = 30 * 24 * time.Hour
)

type Config struct {
	Port         string
	Env          string
	DatabaseURL  string
	JWTSecret    string
	GeminiAPIKey string
	OpTimeout    time.Duration
	Serverless   bool
}

func Load() Config {
	serverless := detectServerless()

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		OpTimeout:    OpTimeoutServer,
		Serverless:   serverless,
	}

	if serverless {
		cfg.OpTimeout = OpTimeoutServerless
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

// detectServerless reports whether the process runs under a request-scoped
// function host, where execution time is capped and the operation timeout
// has to be tightened accordingly.
func detectServerless() bool {
	markers := []string{
		"VERCEL",
		"AWS_LAMBDA_FUNCTION_NAME",
		"FUNCTION_TARGET",
		"K_SERVICE",
	}
	for _, m := range markers {
		if os.Getenv(m) != "" {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
