// Package apiclient is an HTTP client for the careerpilot API. It attaches
// the stored session credential to every request, reacts uniformly to 401s,
// and normalizes transport failures into messages a UI can show as-is.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// redirectDelay defers the login redirect so the caller's own rejection
// handling finishes before navigation fires.
const redirectDelay = 100 * time.Millisecond

// publicViews never trigger a login redirect on 401.
var publicViews = map[string]bool{
	"/":      true,
	"/login": true,
}

// Session stores the bearer credential and cached profile between requests.
type Session interface {
	// Token returns the stored credential, or "" when logged out.
	Token() string
	// Clear drops the credential and any cached profile.
	Clear()
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
}

// Client wraps an http.Client with session handling.
type Client struct {
	baseURL string
	http    *http.Client
	session Session

	// currentView reports the view the user is on, used to suppress
	// redirect loops when a 401 arrives on a public view.
	currentView func() string
	// navigate is invoked (after redirectDelay) to move to the login view.
	navigate func(view string)
	// schedule defers fn; tests replace it to run synchronously.
	schedule func(d time.Duration, fn func())
}

// New creates a Client. currentView and navigate may be nil when the caller
// has no view layer; 401s then only clear the session.
func New(baseURL string, session Session, currentView func() string, navigate func(string)) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{Timeout: 30 * time.Second},
		session:     session,
		currentView: currentView,
		navigate:    navigate,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// Get performs a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// Post performs a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(data), "application/json", out)
}

// Put performs a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, http.MethodPut, path, bytes.NewReader(data), "application/json", out)
}

// Delete performs a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

// Upload performs a POST with a prebuilt multipart body. contentType must be
// the multipart writer's FormDataContentType so the boundary survives; the
// client never overrides it.
func (c *Client) Upload(ctx context.Context, path string, body io.Reader, contentType string, out any) error {
	return c.do(ctx, http.MethodPost, path, body, contentType, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return normalizeTransportErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    ExtractMessage(data, http.StatusText(resp.StatusCode)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// handleUnauthorized clears the session and schedules a login redirect
// unless the user is already on a public view. The redirect is deferred so
// it never races the caller's error handling, and it is skipped entirely on
// public views to avoid redirect loops.
func (c *Client) handleUnauthorized() {
	c.session.Clear()
	if c.currentView == nil || c.navigate == nil {
		return
	}
	if publicViews[c.currentView()] {
		return
	}
	c.schedule(redirectDelay, func() {
		c.navigate("/login")
	})
}

// normalizeTransportErr converts transport failures into messages that tell
// the user what to do, keeping the original error wrapped.
func normalizeTransportErr(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()):
		return fmt.Errorf("request timed out, please retry: %w", err)
	case isConnectionRefused(err):
		return fmt.Errorf("server unreachable, it may be down or restarting: %w", err)
	case isNetworkUnreachable(err):
		return fmt.Errorf("network unreachable, check your connection: %w", err)
	default:
		return fmt.Errorf("request failed: %w", err)
	}
}

func isConnectionRefused(err error) bool {
	return strings.Contains(err.Error(), "connection refused")
}

func isNetworkUnreachable(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "network is unreachable") ||
		strings.Contains(msg, "no such host")
}
