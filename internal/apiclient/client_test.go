package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type fakeSession struct {
	token   string
	cleared bool
}

func (s *fakeSession) Token() string { return s.token }
func (s *fakeSession) Clear() {
	s.token = ""
	s.cleared = true
}

// newSyncClient builds a client whose scheduled callbacks run immediately,
// so redirect behavior is observable without sleeping.
func newSyncClient(baseURL string, session *fakeSession, view string, navigated *[]string) *Client {
	c := New(baseURL, session,
		func() string { return view },
		func(target string) { *navigated = append(*navigated, target) },
	)
	c.schedule = func(d time.Duration, fn func()) { fn() }
	return c
}

func TestAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	session := &fakeSession{token: "tok123"}
	c := New(srv.URL, session, nil, nil)

	var out map[string]any
	if err := c.Get(context.Background(), "/x", &out); err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want Bearer tok123", gotAuth)
	}
}

func TestNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{}, nil, nil)

	var out map[string]any
	if err := c.Get(context.Background(), "/x", &out); err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty when logged out", gotAuth)
	}
}

func TestUploadKeepsMultipartContentType(t *testing.T) {
	var gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{token: "t"}, nil, nil)

	contentType := "multipart/form-data; boundary=abc123"
	err := c.Upload(context.Background(), "/resumes", strings.NewReader("--abc123--"), contentType, nil)
	if err != nil {
		t.Fatalf("Upload() unexpected error: %v", err)
	}
	if gotType != contentType {
		t.Errorf("Content-Type = %q, want the boundary preserved: %q", gotType, contentType)
	}
}

func TestUnauthorizedClearsSessionAndRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	session := &fakeSession{token: "stale"}
	var navigated []string
	c := newSyncClient(srv.URL, session, "/dashboard", &navigated)

	err := c.Get(context.Background(), "/dashboard", nil)
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("Get() error = %v, want APIError 401", err)
	}

	if !session.cleared {
		t.Error("session not cleared on 401")
	}
	if len(navigated) != 1 || navigated[0] != "/login" {
		t.Errorf("navigated = %v, want one redirect to /login", navigated)
	}
}

func TestUnauthorizedOnPublicViewNoRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	for _, view := range []string{"/", "/login"} {
		session := &fakeSession{token: "stale"}
		var navigated []string
		c := newSyncClient(srv.URL, session, view, &navigated)

		if err := c.Get(context.Background(), "/x", nil); err == nil {
			t.Fatal("Get() expected error for 401")
		}

		// Session still drops, but no navigation loop.
		if !session.cleared {
			t.Errorf("view %s: session not cleared on 401", view)
		}
		if len(navigated) != 0 {
			t.Errorf("view %s: navigated = %v, want none", view, navigated)
		}
	}
}

func TestErrorMessageFromPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"database unreachable"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{}, nil, nil)

	err := c.Get(context.Background(), "/x", nil)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Get() error = %v, want APIError", err)
	}
	if apiErr.Message != "database unreachable" {
		t.Errorf("Message = %q, want the server-supplied text", apiErr.Message)
	}
}

func TestTransportErrorNormalized(t *testing.T) {
	// A closed server yields connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, &fakeSession{}, nil, nil)

	err := c.Get(context.Background(), "/x", nil)
	if err == nil {
		t.Fatal("Get() expected error for closed server")
	}
	if !strings.Contains(err.Error(), "server unreachable") {
		t.Errorf("error = %q, want a normalized server-unreachable message", err.Error())
	}
}

func TestTimeoutNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, &fakeSession{}, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Get(ctx, "/x", nil)
	if err == nil {
		t.Fatal("Get() expected error for timed-out request")
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("error = %q, want a normalized timeout message", err.Error())
	}
}
