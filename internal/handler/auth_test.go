package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/careerpilot/careerpilot-go/internal/middleware"
	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/careerpilot/careerpilot-go/internal/repository"
	"github.com/careerpilot/careerpilot-go/internal/service"
	"github.com/go-chi/chi/v5"
)

type stubUserStore struct {
	users  map[string]*model.User
	nextID int64
	delay  time.Duration
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[string]*model.User), nextID: 1}
}

func (s *stubUserStore) Create(ctx context.Context, user *model.User) error {
	if _, ok := s.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	user.ID = s.nextID
	s.nextID++
	s.users[user.Email] = user
	return nil
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	user, ok := s.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func newAuthRouter(store service.UserStore, opTimeout time.Duration) chi.Router {
	svc := service.NewAuthService(store, "test-secret", opTimeout)
	h := NewAuthHandler(svc)

	r := chi.NewRouter()
	r.Post("/auth/register", h.HandleRegister)
	r.Post("/auth/login", h.HandleLogin)
	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth("test-secret"))
		r.Get("/auth/verify", h.HandleVerify)
	})
	return r
}

func postJSON(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleRegister(t *testing.T) {
	r := newAuthRouter(newStubUserStore(), time.Second)

	rec := postJSON(t, r, "/auth/register", `{"email":"a@b.com","password":"secret1","name":"A"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var resp model.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.User.ID != 1 || resp.User.Email != "a@b.com" || resp.User.Name != "A" {
		t.Errorf("register user = %+v, want {1 a@b.com A}", resp.User)
	}
	if resp.Token == "" {
		t.Error("register returned empty token")
	}

	// The issued token must pass verify.
	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	verifyRec := httptest.NewRecorder()
	r.ServeHTTP(verifyRec, req)
	if verifyRec.Code != http.StatusOK {
		t.Fatalf("verify status = %d, want 200: %s", verifyRec.Code, verifyRec.Body.String())
	}

	var user model.UserSummary
	if err := json.Unmarshal(verifyRec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decoding verify response: %v", err)
	}
	if user.ID != resp.User.ID {
		t.Errorf("verify user ID = %d, want %d", user.ID, resp.User.ID)
	}
}

func TestHandleRegisterDuplicate(t *testing.T) {
	r := newAuthRouter(newStubUserStore(), time.Second)
	body := `{"email":"a@b.com","password":"secret1","name":"A"}`

	if rec := postJSON(t, r, "/auth/register", body); rec.Code != http.StatusCreated {
		t.Fatalf("first register status = %d, want 201", rec.Code)
	}

	rec := postJSON(t, r, "/auth/register", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second register status = %d, want 400", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["error"] != "User already exists" {
		t.Errorf(`error = %q, want "User already exists"`, resp["error"])
	}
}

func TestHandleRegisterValidation(t *testing.T) {
	r := newAuthRouter(newStubUserStore(), time.Second)

	rec := postJSON(t, r, "/auth/register", `{"email":"a@b.com","password":"abc"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("register status = %d, want 400", rec.Code)
	}

	var resp struct {
		Error   string               `json:"error"`
		Details []service.FieldError `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error != "validation failed" {
		t.Errorf(`error = %q, want "validation failed"`, resp.Error)
	}
	if len(resp.Details) != 1 || resp.Details[0].Field != "password" {
		t.Errorf("details = %+v, want one password field error", resp.Details)
	}
}

func TestHandleLoginWrongPassword(t *testing.T) {
	r := newAuthRouter(newStubUserStore(), time.Second)

	if rec := postJSON(t, r, "/auth/register", `{"email":"a@b.com","password":"secret1"}`); rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201", rec.Code)
	}

	rec := postJSON(t, r, "/auth/login", `{"email":"a@b.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("login status = %d, want 401", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["error"] != "Invalid credentials" {
		t.Errorf(`error = %q, want "Invalid credentials"`, resp["error"])
	}
}

func TestHandleLoginUnknownEmailSameBody(t *testing.T) {
	r := newAuthRouter(newStubUserStore(), time.Second)

	if rec := postJSON(t, r, "/auth/register", `{"email":"a@b.com","password":"secret1"}`); rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201", rec.Code)
	}

	wrongPass := postJSON(t, r, "/auth/login", `{"email":"a@b.com","password":"wrong"}`)
	unknown := postJSON(t, r, "/auth/login", `{"email":"x@y.com","password":"secret1"}`)

	if wrongPass.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d/%d, want 401/401", wrongPass.Code, unknown.Code)
	}
	if wrongPass.Body.String() != unknown.Body.String() {
		t.Errorf("bodies differ: %q vs %q", wrongPass.Body.String(), unknown.Body.String())
	}
}

func TestHandleLoginSlowStore(t *testing.T) {
	store := newStubUserStore()
	store.delay = 500 * time.Millisecond
	r := newAuthRouter(store, 20*time.Millisecond)

	started := time.Now()
	rec := postJSON(t, r, "/auth/login", `{"email":"a@b.com","password":"secret1"}`)
	elapsed := time.Since(started)

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("login status = %d, want 504: %s", rec.Code, rec.Body.String())
	}
	if elapsed > 200*time.Millisecond {
		t.Errorf("handler returned after %s, want within the timeout window", elapsed)
	}

	// Exactly one JSON object in the body: the late store result must not
	// produce a second write.
	time.Sleep(600 * time.Millisecond)
	dec := json.NewDecoder(strings.NewReader(rec.Body.String()))
	var first, second map[string]any
	if err := dec.Decode(&first); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if err := dec.Decode(&second); err == nil {
		t.Errorf("body contains a second JSON object: %+v", second)
	}
}

func TestHandleVerifyNoToken(t *testing.T) {
	r := newAuthRouter(newStubUserStore(), time.Second)

	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("verify status = %d, want 401", rec.Code)
	}
}
