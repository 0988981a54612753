package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/careerpilot/careerpilot-go/internal/ai"
	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/careerpilot/careerpilot-go/internal/repository"
	"github.com/google/uuid"
)

// PracticeStore is the persistence surface PracticeService needs.
type PracticeStore interface {
	Create(ctx context.Context, session *model.PracticeSession) error
	Get(ctx context.Context, userID int64, id uuid.UUID) (*model.PracticeSession, error)
	ListByUser(ctx context.Context, userID int64) ([]model.PracticeSession, error)
	SetFeedback(ctx context.Context, userID int64, id uuid.UUID, transcript, feedback string) error
	Delete(ctx context.Context, userID int64, id uuid.UUID) error
}

// PracticeService runs mock-interview sessions: the AI generates the
// questions, the user answers, the AI grades the transcript.
type PracticeService struct {
	store PracticeStore
	gen   Generator
}

// NewPracticeService creates a new PracticeService.
func NewPracticeService(store PracticeStore, gen Generator) *PracticeService {
	return &PracticeService{store: store, gen: gen}
}

// Start asks the AI service for questions for the given role and stores a
// new session around them.
func (s *PracticeService) Start(ctx context.Context, userID int64, req model.PracticeRequest) (*model.PracticeSession, error) {
	role := strings.TrimSpace(req.Role)
	if role == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: "role", Message: "role is required"}}}
	}

	ask := fmt.Sprintf("Target role: %s", role)
	if focus := strings.TrimSpace(req.Focus); focus != "" {
		ask += fmt.Sprintf("\nFocus area: %s", focus)
	}

	raw, _, err := s.gen.Generate(ctx, questionsPrompt, []ai.Message{
		{Role: model.RoleUser, Content: ask},
	})
	if err != nil {
		return nil, err
	}

	questions := splitQuestions(raw)
	if len(questions) == 0 {
		return nil, fmt.Errorf("ai returned no usable questions")
	}

	session := &model.PracticeSession{
		ID:        uuid.New(),
		UserID:    userID,
		Role:      role,
		Questions: questions,
	}
	if err := s.store.Create(ctx, session); err != nil {
		return nil, classifyStoreErr(err)
	}
	return session, nil
}

// Get retrieves one session.
func (s *PracticeService) Get(ctx context.Context, userID int64, id uuid.UUID) (*model.PracticeSession, error) {
	session, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return nil, mapPracticeErr(err)
	}
	return session, nil
}

// List returns the user's sessions.
func (s *PracticeService) List(ctx context.Context, userID int64) ([]model.PracticeSession, error) {
	sessions, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	if sessions == nil {
		sessions = []model.PracticeSession{}
	}
	return sessions, nil
}

// Feedback submits the user's transcript for AI evaluation and stores the
// result on the session.
func (s *PracticeService) Feedback(ctx context.Context, userID int64, id uuid.UUID, req model.PracticeFeedbackRequest) (*model.PracticeSession, error) {
	transcript := strings.TrimSpace(req.Transcript)
	if transcript == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: "transcript", Message: "transcript is required"}}}
	}

	session, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return nil, mapPracticeErr(err)
	}

	prompt := fmt.Sprintf("Questions:\n%s\n\nTranscript:\n%s",
		strings.Join(session.Questions, "\n"), transcript)

	feedback, _, err := s.gen.Generate(ctx, feedbackPrompt, []ai.Message{
		{Role: model.RoleUser, Content: prompt},
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.SetFeedback(ctx, userID, id, transcript, feedback); err != nil {
		return nil, mapPracticeErr(err)
	}

	session.Transcript = transcript
	session.Feedback = feedback
	return session, nil
}

// Delete removes a session.
func (s *PracticeService) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	return mapPracticeErr(s.store.Delete(ctx, userID, id))
}

// splitQuestions parses the AI's one-question-per-line format, dropping
// blank lines and stray numbering.
func splitQuestions(raw string) []string {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "0123456789.-) ")
		if line == "" {
			continue
		}
		questions = append(questions, line)
	}
	return questions
}

func mapPracticeErr(err error) error {
	if errors.Is(err, repository.ErrPracticeNotFound) {
		return ErrNotFound
	}
	return classifyStoreErr(err)
}
