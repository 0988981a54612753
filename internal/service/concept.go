package service

import (
	"context"
	"errors"
	"strings"

	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/careerpilot/careerpilot-go/internal/repository"
)

// ConceptService handles concept business logic.
type ConceptService struct {
	repo *repository.ConceptRepository
}

// NewConceptService creates a new ConceptService.
func NewConceptService(repo *repository.ConceptRepository) *ConceptService {
	return &ConceptService{repo: repo}
}

// Create validates and stores a concept.
func (s *ConceptService) Create(ctx context.Context, userID int64, req model.ConceptRequest) (*model.Concept, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: "name", Message: "name is required"}}}
	}

	concept := &model.Concept{
		UserID:     userID,
		Name:       strings.TrimSpace(req.Name),
		Notes:      req.Notes,
		Understood: req.Understood,
	}
	if err := s.repo.Create(ctx, concept); err != nil {
		return nil, classifyStoreErr(err)
	}
	return concept, nil
}

// List returns the user's concepts.
func (s *ConceptService) List(ctx context.Context, userID int64) ([]model.Concept, error) {
	concepts, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	if concepts == nil {
		concepts = []model.Concept{}
	}
	return concepts, nil
}

// Update rewrites a concept's mutable fields.
func (s *ConceptService) Update(ctx context.Context, userID, conceptID int64, req model.ConceptRequest) (*model.Concept, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: "name", Message: "name is required"}}}
	}

	concept := &model.Concept{
		ID:         conceptID,
		UserID:     userID,
		Name:       strings.TrimSpace(req.Name),
		Notes:      req.Notes,
		Understood: req.Understood,
	}
	if err := s.repo.Update(ctx, concept); err != nil {
		if errors.Is(err, repository.ErrConceptNotFound) {
			return nil, ErrNotFound
		}
		return nil, classifyStoreErr(err)
	}
	return concept, nil
}

// Delete removes a concept.
func (s *ConceptService) Delete(ctx context.Context, userID, conceptID int64) error {
	err := s.repo.Delete(ctx, userID, conceptID)
	if errors.Is(err, repository.ErrConceptNotFound) {
		return ErrNotFound
	}
	return classifyStoreErr(err)
}
