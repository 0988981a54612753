package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/careerpilot/careerpilot-go/internal/ai"
	"github.com/careerpilot/careerpilot-go/internal/service"
	"github.com/careerpilot/careerpilot-go/internal/timeout"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// writeServiceError maps service-layer errors to the HTTP taxonomy. Raw
// driver errors never reach here un-annotated; the services re-classify
// at each external-call boundary.
func writeServiceError(w http.ResponseWriter, err error) {
	var cfgErr *service.ConfigError
	var valErr *service.ValidationError

	switch {
	case errors.As(err, &cfgErr):
		writeJSON(w, http.StatusServiceUnavailable,
			errorResponse(fmt.Sprintf("server is not configured: missing %s", cfgErr.Setting)))
	case errors.As(err, &valErr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "validation failed",
			"details": valErr.Fields,
		})
	case errors.Is(err, service.ErrUserExists):
		writeJSON(w, http.StatusBadRequest, errorResponse("User already exists"))
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse("Invalid credentials"))
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse("not found"))
	case errors.Is(err, service.ErrStoreUnavailable):
		writeJSON(w, http.StatusServiceUnavailable,
			errorResponse("database unreachable; if it runs on a serverless plan, the instance may be suspended"))
	case errors.Is(err, timeout.ErrDeadline):
		writeJSON(w, http.StatusGatewayTimeout,
			errorResponse("operation timed out; the database may be waking from suspension, please retry"))
	default:
		if !writeAIError(w, err) {
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
	}
}

// writeAIError maps AI-service errors to their statuses. Returns false
// when err is not an AI error.
func writeAIError(w http.ResponseWriter, err error) bool {
	var upstream *ai.UpstreamError

	switch {
	case errors.Is(err, ai.ErrUnauthorized):
		writeJSON(w, http.StatusInternalServerError, errorResponse("AI service API key is invalid"))
	case errors.Is(err, ai.ErrModelNotFound):
		writeJSON(w, http.StatusInternalServerError, errorResponse(err.Error()))
	case errors.Is(err, ai.ErrRateLimited):
		writeJSON(w, http.StatusTooManyRequests, errorResponse("AI service rate limit exceeded, try again shortly"))
	case errors.Is(err, ai.ErrQuotaExhausted):
		writeJSON(w, http.StatusPaymentRequired, errorResponse("AI service quota exhausted"))
	case errors.As(err, &upstream):
		writeJSON(w, http.StatusInternalServerError,
			errorResponse(fmt.Sprintf("AI service error: %s", upstream.Status)))
	default:
		return false
	}
	return true
}

// decodeBody decodes a size-capped JSON request body into dst, writing the
// error response itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, maxBytes int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}
