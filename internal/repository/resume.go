package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/google/uuid"
)

var ErrResumeNotFound = errors.New("resume not found")

// ResumeRepository handles resume persistence. Only the extracted text is
// stored; original file bytes are discarded after parsing.
type ResumeRepository struct {
	db *sql.DB
}

// NewResumeRepository creates a new ResumeRepository.
func NewResumeRepository(db *sql.DB) *ResumeRepository {
	return &ResumeRepository{db: db}
}

// Create inserts a resume row.
func (r *ResumeRepository) Create(ctx context.Context, resume *model.Resume) error {
	query := `INSERT INTO resumes (id, user_id, filename, mime, content)
		VALUES ($1, $2, $3, $4, $5) RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		resume.ID, resume.UserID, resume.Filename, resume.Mime, resume.Text,
	).Scan(&resume.CreatedAt)
}

// Get retrieves one resume owned by userID, review included.
func (r *ResumeRepository) Get(ctx context.Context, userID int64, id uuid.UUID) (*model.Resume, error) {
	query := `SELECT id, user_id, filename, mime, content, COALESCE(review, ''), created_at
		FROM resumes WHERE user_id = $1 AND id = $2`

	resume := &model.Resume{}
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(
		&resume.ID, &resume.UserID, &resume.Filename, &resume.Mime,
		&resume.Text, &resume.Review, &resume.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}

	return resume, nil
}

// ListByUser returns resume summaries, newest first.
func (r *ResumeRepository) ListByUser(ctx context.Context, userID int64) ([]model.ResumeSummary, error) {
	query := `SELECT id, filename, mime, review IS NOT NULL, created_at
		FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []model.ResumeSummary
	for rows.Next() {
		var s model.ResumeSummary
		if err := rows.Scan(&s.ID, &s.Filename, &s.Mime, &s.Reviewed, &s.CreatedAt); err != nil {
			return nil, err
		}
		resumes = append(resumes, s)
	}

	return resumes, rows.Err()
}

// SetReview stores the AI review for a resume.
func (r *ResumeRepository) SetReview(ctx context.Context, userID int64, id uuid.UUID, review string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE resumes SET review = $1 WHERE user_id = $2 AND id = $3`, review, userID, id)
	if err != nil {
		return err
	}
	return requireRow(result, ErrResumeNotFound)
}

// Delete removes a resume owned by userID.
func (r *ResumeRepository) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM resumes WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	return requireRow(result, ErrResumeNotFound)
}
