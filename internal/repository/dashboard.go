package repository

import (
	"context"
	"database/sql"

	"github.com/careerpilot/careerpilot-go/internal/model"
)

// DashboardRepository aggregates per-user counts for the landing view.
type DashboardRepository struct {
	db *sql.DB
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(db *sql.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Counts collects all dashboard aggregates in a single round trip.
func (r *DashboardRepository) Counts(ctx context.Context, userID int64) (*model.Dashboard, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM projects WHERE user_id = $1),
		(SELECT COUNT(*) FROM projects WHERE user_id = $1 AND status = 'completed'),
		(SELECT COUNT(*) FROM skills WHERE user_id = $1),
		(SELECT COUNT(*) FROM concepts WHERE user_id = $1),
		(SELECT COUNT(*) FROM concepts WHERE user_id = $1 AND understood),
		(SELECT COUNT(*) FROM resumes WHERE user_id = $1),
		(SELECT COUNT(*) FROM practice_sessions WHERE user_id = $1),
		(SELECT COUNT(*) FROM chat_messages WHERE user_id = $1)`

	d := &model.Dashboard{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&d.Projects, &d.CompletedProjects, &d.Skills,
		&d.Concepts, &d.UnderstoodConcepts,
		&d.Resumes, &d.PracticeSessions, &d.ChatMessages,
	)
	if err != nil {
		return nil, err
	}

	return d, nil
}
