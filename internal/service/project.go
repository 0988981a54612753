package service

import (
	"context"
	"errors"
	"strings"

	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/careerpilot/careerpilot-go/internal/repository"
)

// ProjectService handles project business logic.
type ProjectService struct {
	repo *repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create validates and stores a project with its initial milestones.
func (s *ProjectService) Create(ctx context.Context, userID int64, req model.ProjectRequest) (*model.Project, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: "title", Message: "title is required"}}}
	}
	status := req.Status
	if status == "" {
		status = model.ProjectPlanned
	}
	if !validProjectStatus(status) {
		return nil, &ValidationError{Fields: []FieldError{{Field: "status", Message: "unknown status"}}}
	}

	project := &model.Project{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      status,
	}
	for _, title := range req.Milestones {
		if strings.TrimSpace(title) == "" {
			continue
		}
		project.Milestones = append(project.Milestones, model.Milestone{Title: strings.TrimSpace(title)})
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, classifyStoreErr(err)
	}
	return project, nil
}

// List returns the user's projects.
func (s *ProjectService) List(ctx context.Context, userID int64) ([]model.Project, error) {
	projects, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	if projects == nil {
		projects = []model.Project{}
	}
	return projects, nil
}

// Update rewrites a project's mutable fields.
func (s *ProjectService) Update(ctx context.Context, userID, projectID int64, req model.ProjectRequest) (*model.Project, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: "title", Message: "title is required"}}}
	}
	if req.Status != "" && !validProjectStatus(req.Status) {
		return nil, &ValidationError{Fields: []FieldError{{Field: "status", Message: "unknown status"}}}
	}

	existing, err := s.repo.Get(ctx, userID, projectID)
	if err != nil {
		return nil, mapProjectErr(err)
	}

	existing.Title = strings.TrimSpace(req.Title)
	existing.Description = req.Description
	if req.Status != "" {
		existing.Status = req.Status
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, mapProjectErr(err)
	}
	return existing, nil
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, userID, projectID int64) error {
	return mapProjectErr(s.repo.Delete(ctx, userID, projectID))
}

// AddMilestone appends a milestone to a project.
func (s *ProjectService) AddMilestone(ctx context.Context, userID, projectID int64, req model.MilestoneRequest) (*model.Milestone, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: "title", Message: "title is required"}}}
	}

	m := &model.Milestone{ProjectID: projectID, Title: strings.TrimSpace(req.Title)}
	if err := s.repo.AddMilestone(ctx, userID, m); err != nil {
		return nil, mapProjectErr(err)
	}
	return m, nil
}

// ToggleMilestone flips a milestone's done flag.
func (s *ProjectService) ToggleMilestone(ctx context.Context, userID, projectID, milestoneID int64) error {
	return mapProjectErr(s.repo.ToggleMilestone(ctx, userID, projectID, milestoneID))
}

func validProjectStatus(status string) bool {
	switch status {
	case model.ProjectPlanned, model.ProjectInProgress, model.ProjectCompleted:
		return true
	}
	return false
}

func mapProjectErr(err error) error {
	if errors.Is(err, repository.ErrProjectNotFound) {
		return ErrNotFound
	}
	return classifyStoreErr(err)
}
