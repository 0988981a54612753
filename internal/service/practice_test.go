package service

import (
	"context"
	"errors"
	"testing"

	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/careerpilot/careerpilot-go/internal/repository"
	"github.com/google/uuid"
)

type fakePracticeStore struct {
	sessions map[uuid.UUID]*model.PracticeSession
}

func newFakePracticeStore() *fakePracticeStore {
	return &fakePracticeStore{sessions: make(map[uuid.UUID]*model.PracticeSession)}
}

func (f *fakePracticeStore) Create(ctx context.Context, session *model.PracticeSession) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakePracticeStore) Get(ctx context.Context, userID int64, id uuid.UUID) (*model.PracticeSession, error) {
	session, ok := f.sessions[id]
	if !ok || session.UserID != userID {
		return nil, repository.ErrPracticeNotFound
	}
	return session, nil
}

func (f *fakePracticeStore) ListByUser(ctx context.Context, userID int64) ([]model.PracticeSession, error) {
	var out []model.PracticeSession
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakePracticeStore) SetFeedback(ctx context.Context, userID int64, id uuid.UUID, transcript, feedback string) error {
	session, err := f.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	session.Transcript = transcript
	session.Feedback = feedback
	return nil
}

func (f *fakePracticeStore) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	if _, err := f.Get(ctx, userID, id); err != nil {
		return err
	}
	delete(f.sessions, id)
	return nil
}

func TestPracticeStart(t *testing.T) {
	store := newFakePracticeStore()
	gen := &fakeGenerator{reply: "1. Tell me about yourself\n2. Why this role?\n\n3) Describe a hard bug", model: "m"}
	svc := NewPracticeService(store, gen)

	session, err := svc.Start(context.Background(), 1, model.PracticeRequest{Role: "Backend Engineer"})
	if err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	if session.Role != "Backend Engineer" {
		t.Errorf("Start() role = %q, want Backend Engineer", session.Role)
	}

	want := []string{"Tell me about yourself", "Why this role?", "Describe a hard bug"}
	if len(session.Questions) != len(want) {
		t.Fatalf("Start() questions = %v, want %v", session.Questions, want)
	}
	for i := range want {
		if session.Questions[i] != want[i] {
			t.Errorf("question[%d] = %q, want %q", i, session.Questions[i], want[i])
		}
	}

	if _, ok := store.sessions[session.ID]; !ok {
		t.Error("Start() did not persist the session")
	}
}

func TestPracticeStartMissingRole(t *testing.T) {
	svc := NewPracticeService(newFakePracticeStore(), &fakeGenerator{})

	_, err := svc.Start(context.Background(), 1, model.PracticeRequest{})
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("Start() error = %v, want ValidationError", err)
	}
}

func TestPracticeStartNoUsableQuestions(t *testing.T) {
	gen := &fakeGenerator{reply: "\n  \n", model: "m"}
	svc := NewPracticeService(newFakePracticeStore(), gen)

	if _, err := svc.Start(context.Background(), 1, model.PracticeRequest{Role: "SRE"}); err == nil {
		t.Error("Start() expected error for empty question list")
	}
}

func TestPracticeFeedback(t *testing.T) {
	store := newFakePracticeStore()
	gen := &fakeGenerator{reply: "1. Q1", model: "m"}
	svc := NewPracticeService(store, gen)

	session, err := svc.Start(context.Background(), 1, model.PracticeRequest{Role: "SRE"})
	if err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}

	gen.reply = "Solid answers, work on conciseness."
	updated, err := svc.Feedback(context.Background(), 1, session.ID, model.PracticeFeedbackRequest{
		Transcript: "Q1: I would...",
	})
	if err != nil {
		t.Fatalf("Feedback() unexpected error: %v", err)
	}
	if updated.Feedback != "Solid answers, work on conciseness." {
		t.Errorf("Feedback() feedback = %q", updated.Feedback)
	}
	if updated.Transcript != "Q1: I would..." {
		t.Errorf("Feedback() transcript = %q", updated.Transcript)
	}
}

func TestPracticeGetWrongUser(t *testing.T) {
	store := newFakePracticeStore()
	gen := &fakeGenerator{reply: "1. Q1", model: "m"}
	svc := NewPracticeService(store, gen)

	session, err := svc.Start(context.Background(), 1, model.PracticeRequest{Role: "SRE"})
	if err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}

	if _, err := svc.Get(context.Background(), 2, session.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() as another user error = %v, want ErrNotFound", err)
	}
}

func TestSplitQuestions(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"numbered", "1. One\n2. Two", []string{"One", "Two"}},
		{"dashes", "- One\n- Two", []string{"One", "Two"}},
		{"parens", "1) One\n2) Two", []string{"One", "Two"}},
		{"blank lines", "One\n\n\nTwo\n", []string{"One", "Two"}},
		{"empty", "   \n  ", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := splitQuestions(tc.raw)
			if len(got) != len(tc.want) {
				t.Fatalf("splitQuestions(%q) = %v, want %v", tc.raw, got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("splitQuestions(%q)[%d] = %q, want %q", tc.raw, i, got[i], tc.want[i])
				}
			}
		})
	}
}
