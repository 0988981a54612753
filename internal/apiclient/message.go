package apiclient

import "encoding/json"

// ExtractMessage pulls the most specific server-supplied message out of an
// error payload. Different failure layers emit different shapes, so the
// rules run in priority order and the first match wins:
//
//  1. bare JSON string body
//  2. {"error": "..."}
//  3. {"error": {"message": "..."}}
//  4. {"message": "..."}
//  5. {"details": [{"message": "..."}]}
//
// fallback is returned when nothing matches.
func ExtractMessage(body []byte, fallback string) string {
	var s string
	if err := json.Unmarshal(body, &s); err == nil && s != "" {
		return s
	}

	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
		Details []struct {
			Message string `json:"message"`
		} `json:"details"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}

	if len(payload.Error) > 0 {
		var errStr string
		if err := json.Unmarshal(payload.Error, &errStr); err == nil && errStr != "" {
			return errStr
		}
		var errObj struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(payload.Error, &errObj); err == nil && errObj.Message != "" {
			return errObj.Message
		}
	}

	if payload.Message != "" {
		return payload.Message
	}

	if len(payload.Details) > 0 && payload.Details[0].Message != "" {
		return payload.Details[0].Message
	}

	return fallback
}
