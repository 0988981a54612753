package service

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Sentinels shared across services. Handlers own the mapping to HTTP
// statuses and user-facing text.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrStoreUnavailable   = errors.New("database unavailable")
	ErrNotFound           = errors.New("not found")
)

// ConfigError reports a missing required setting, surfaced as 503 with the
// setting name so the operator knows what to fix.
type ConfigError struct {
	Setting string
}

func (e *ConfigError) Error() string {
	return e.Setting + " is not configured"
}

// FieldError is a single structured validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field errors for a 400 response.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// classifyStoreErr re-tags connectivity-shaped store failures as
// ErrStoreUnavailable at the call boundary, so handlers can distinguish
// transient, retry-worthy failures from permanent ones. Everything else
// passes through untouched.
func classifyStoreErr(err error) error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	switch {
	case errors.As(err, &netErr),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, context.DeadlineExceeded),
		strings.Contains(err.Error(), "connection refused"),
		strings.Contains(err.Error(), "connection reset"):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return err
}
