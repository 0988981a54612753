package service

import (
	"context"
	"errors"
	"strings"

	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/careerpilot/careerpilot-go/internal/repository"
)

// SkillService handles skill business logic. Levels run 1 to 5.
type SkillService struct {
	repo *repository.SkillRepository
}

// NewSkillService creates a new SkillService.
func NewSkillService(repo *repository.SkillRepository) *SkillService {
	return &SkillService{repo: repo}
}

// Create validates and stores a skill.
func (s *SkillService) Create(ctx context.Context, userID int64, req model.SkillRequest) (*model.Skill, error) {
	if err := validateSkill(req); err != nil {
		return nil, err
	}

	skill := &model.Skill{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Level:       req.Level,
		TargetLevel: req.TargetLevel,
	}
	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, classifyStoreErr(err)
	}
	return skill, nil
}

// List returns the user's skills.
func (s *SkillService) List(ctx context.Context, userID int64) ([]model.Skill, error) {
	skills, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	if skills == nil {
		skills = []model.Skill{}
	}
	return skills, nil
}

// Update rewrites a skill's mutable fields.
func (s *SkillService) Update(ctx context.Context, userID, skillID int64, req model.SkillRequest) (*model.Skill, error) {
	if err := validateSkill(req); err != nil {
		return nil, err
	}

	skill := &model.Skill{
		ID:          skillID,
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Level:       req.Level,
		TargetLevel: req.TargetLevel,
	}
	if err := s.repo.Update(ctx, skill); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return nil, ErrNotFound
		}
		return nil, classifyStoreErr(err)
	}
	return skill, nil
}

// Delete removes a skill.
func (s *SkillService) Delete(ctx context.Context, userID, skillID int64) error {
	err := s.repo.Delete(ctx, userID, skillID)
	if errors.Is(err, repository.ErrSkillNotFound) {
		return ErrNotFound
	}
	return classifyStoreErr(err)
}

func validateSkill(req model.SkillRequest) error {
	var fields []FieldError
	if strings.TrimSpace(req.Name) == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if req.Level < 1 || req.Level > 5 {
		fields = append(fields, FieldError{Field: "level", Message: "level must be between 1 and 5"})
	}
	if req.TargetLevel < 1 || req.TargetLevel > 5 {
		fields = append(fields, FieldError{Field: "target_level", Message: "target_level must be between 1 and 5"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
