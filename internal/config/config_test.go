package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.Serverless {
		t.Error("Serverless = true without any hosting marker set")
	}
	if cfg.OpTimeout != OpTimeoutServer {
		t.Errorf("OpTimeout = %s, want %s", cfg.OpTimeout, OpTimeoutServer)
	}
}

func TestLoadServerlessMarkers(t *testing.T) {
	markers := []string{"VERCEL", "AWS_LAMBDA_FUNCTION_NAME", "FUNCTION_TARGET", "K_SERVICE"}

	for _, marker := range markers {
		t.Run(marker, func(t *testing.T) {
			t.Setenv(marker, "1")

			cfg := Load()
			if !cfg.Serverless {
				t.Errorf("Serverless = false with %s set", marker)
			}
			if cfg.OpTimeout != OpTimeoutServerless {
				t.Errorf("OpTimeout = %s, want %s", cfg.OpTimeout, OpTimeoutServerless)
			}
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_SECRET", "custom-secret")

	cfg := Load()
	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Port)
	}
	if cfg.JWTSecret != "custom-secret" {
		t.Errorf("JWTSecret = %q, want custom-secret", cfg.JWTSecret)
	}
}

func TestTimeoutOrdering(t *testing.T) {
	// The serverless window has to be tighter than the long-lived one.
	if OpTimeoutServerless >= OpTimeoutServer {
		t.Errorf("serverless timeout %s not below server timeout %s", OpTimeoutServerless, OpTimeoutServer)
	}
	if OpTimeoutServerless < time.Second {
		t.Errorf("serverless timeout %s too small to survive a database wake-up", OpTimeoutServerless)
	}
}
