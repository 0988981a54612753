package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/careerpilot/careerpilot-go/internal/model"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository handles project and milestone persistence.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project with its initial milestones in one transaction.
func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO projects (user_id, title, description, status)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(ctx, query, project.UserID, project.Title, project.Description, project.Status).
		Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range project.Milestones {
		m := &project.Milestones[i]
		m.ProjectID = project.ID
		err = tx.QueryRowContext(ctx,
			`INSERT INTO milestones (project_id, title) VALUES ($1, $2) RETURNING id, created_at`,
			m.ProjectID, m.Title,
		).Scan(&m.ID, &m.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListByUser returns the user's projects, most recently updated first,
// milestones included.
func (r *ProjectRepository) ListByUser(ctx context.Context, userID int64) ([]model.Project, error) {
	query := `SELECT id, user_id, title, description, status, created_at, updated_at
		FROM projects WHERE user_id = $1 ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range projects {
		milestones, err := r.listMilestones(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].Milestones = milestones
	}

	return projects, nil
}

// Get retrieves one project owned by userID.
func (r *ProjectRepository) Get(ctx context.Context, userID, projectID int64) (*model.Project, error) {
	query := `SELECT id, user_id, title, description, status, created_at, updated_at
		FROM projects WHERE user_id = $1 AND id = $2`

	p := &model.Project{}
	err := r.db.QueryRowContext(ctx, query, userID, projectID).
		Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	p.Milestones, err = r.listMilestones(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Update rewrites a project's mutable fields.
func (r *ProjectRepository) Update(ctx context.Context, project *model.Project) error {
	query := `UPDATE projects SET title = $1, description = $2, status = $3, updated_at = NOW()
		WHERE user_id = $4 AND id = $5`

	result, err := r.db.ExecContext(ctx, query,
		project.Title, project.Description, project.Status, project.UserID, project.ID)
	if err != nil {
		return err
	}
	return requireRow(result, ErrProjectNotFound)
}

// Delete removes a project and, via ON DELETE CASCADE, its milestones.
func (r *ProjectRepository) Delete(ctx context.Context, userID, projectID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM projects WHERE user_id = $1 AND id = $2`, userID, projectID)
	if err != nil {
		return err
	}
	return requireRow(result, ErrProjectNotFound)
}

// AddMilestone appends a milestone to a project the user owns.
func (r *ProjectRepository) AddMilestone(ctx context.Context, userID int64, m *model.Milestone) error {
	query := `INSERT INTO milestones (project_id, title)
		SELECT id, $1 FROM projects WHERE user_id = $2 AND id = $3
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, m.Title, userID, m.ProjectID).
		Scan(&m.ID, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrProjectNotFound
	}
	return err
}

// ToggleMilestone flips a milestone's done flag, scoped by project owner.
func (r *ProjectRepository) ToggleMilestone(ctx context.Context, userID, projectID, milestoneID int64) error {
	query := `UPDATE milestones SET done = NOT done
		WHERE id = $1 AND project_id = (
			SELECT id FROM projects WHERE user_id = $2 AND id = $3
		)`

	result, err := r.db.ExecContext(ctx, query, milestoneID, userID, projectID)
	if err != nil {
		return err
	}
	return requireRow(result, ErrProjectNotFound)
}

func (r *ProjectRepository) listMilestones(ctx context.Context, projectID int64) ([]model.Milestone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, title, done, created_at FROM milestones
			WHERE project_id = $1 ORDER BY id ASC`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var milestones []model.Milestone
	for rows.Next() {
		var m model.Milestone
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Title, &m.Done, &m.CreatedAt); err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}

	return milestones, rows.Err()
}

// requireRow converts a zero-rows-affected result into notFound.
func requireRow(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
