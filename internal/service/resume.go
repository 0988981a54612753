package service

import (
	"context"
	"errors"
	"strings"

	"github.com/careerpilot/careerpilot-go/internal/ai"
	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/careerpilot/careerpilot-go/internal/repository"
	"github.com/careerpilot/careerpilot-go/internal/resumetext"
	"github.com/google/uuid"
)

// ResumeStore is the persistence surface ResumeService needs.
type ResumeStore interface {
	Create(ctx context.Context, resume *model.Resume) error
	Get(ctx context.Context, userID int64, id uuid.UUID) (*model.Resume, error)
	ListByUser(ctx context.Context, userID int64) ([]model.ResumeSummary, error)
	SetReview(ctx context.Context, userID int64, id uuid.UUID, review string) error
	Delete(ctx context.Context, userID int64, id uuid.UUID) error
}

// ResumeService parses uploaded resume files, stores the extracted text,
// and produces AI reviews on request.
type ResumeService struct {
	store ResumeStore
	gen   Generator
}

// NewResumeService creates a new ResumeService.
func NewResumeService(store ResumeStore, gen Generator) *ResumeService {
	return &ResumeService{store: store, gen: gen}
}

// Upload extracts text from the uploaded file and stores it. Unsupported
// or unreadable files surface as validation errors.
func (s *ResumeService) Upload(ctx context.Context, userID int64, filename, mime string, data []byte) (*model.Resume, error) {
	if len(data) == 0 {
		return nil, &ValidationError{Fields: []FieldError{{Field: "file", Message: "file is empty"}}}
	}

	text, err := resumetext.Extract(mime, data)
	if err != nil {
		var unsupported *resumetext.ErrUnsupportedType
		if errors.As(err, &unsupported) {
			return nil, &ValidationError{Fields: []FieldError{{Field: "file", Message: unsupported.Error()}}}
		}
		return nil, &ValidationError{Fields: []FieldError{{Field: "file", Message: "file could not be parsed"}}}
	}
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: "file", Message: "no text could be extracted"}}}
	}

	resume := &model.Resume{
		ID:       uuid.New(),
		UserID:   userID,
		Filename: filename,
		Mime:     mime,
		Text:     text,
	}
	if err := s.store.Create(ctx, resume); err != nil {
		return nil, classifyStoreErr(err)
	}
	return resume, nil
}

// Get retrieves a resume with its review.
func (s *ResumeService) Get(ctx context.Context, userID int64, id uuid.UUID) (*model.Resume, error) {
	resume, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return nil, mapResumeErr(err)
	}
	return resume, nil
}

// List returns the user's resume summaries.
func (s *ResumeService) List(ctx context.Context, userID int64) ([]model.ResumeSummary, error) {
	resumes, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	if resumes == nil {
		resumes = []model.ResumeSummary{}
	}
	return resumes, nil
}

// Review asks the AI service to review the resume text and stores the
// result on the resume row.
func (s *ResumeService) Review(ctx context.Context, userID int64, id uuid.UUID) (*model.Resume, error) {
	resume, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return nil, mapResumeErr(err)
	}

	review, _, err := s.gen.Generate(ctx, resumeReviewPrompt, []ai.Message{
		{Role: model.RoleUser, Content: resume.Text},
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.SetReview(ctx, userID, id, review); err != nil {
		return nil, mapResumeErr(err)
	}

	resume.Review = review
	return resume, nil
}

// Delete removes a resume.
func (s *ResumeService) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	return mapResumeErr(s.store.Delete(ctx, userID, id))
}

func mapResumeErr(err error) error {
	if errors.Is(err, repository.ErrResumeNotFound) {
		return ErrNotFound
	}
	return classifyStoreErr(err)
}
