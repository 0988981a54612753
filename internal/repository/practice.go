package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/careerpilot/careerpilot-go/internal/model"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

var ErrPracticeNotFound = errors.New("practice session not found")

// PracticeRepository handles mock-interview session persistence. Questions
// are stored as a Postgres text[] column.
type PracticeRepository struct {
	db *sql.DB
}

// NewPracticeRepository creates a new PracticeRepository.
func NewPracticeRepository(db *sql.DB) *PracticeRepository {
	return &PracticeRepository{db: db}
}

// Create inserts a practice session row.
func (r *PracticeRepository) Create(ctx context.Context, session *model.PracticeSession) error {
	query := `INSERT INTO practice_sessions (id, user_id, role, questions)
		VALUES ($1, $2, $3, $4) RETURNING created_at`

	return r.db.QueryRowContext(ctx, query,
		session.ID, session.UserID, session.Role, pq.Array(session.Questions),
	).Scan(&session.CreatedAt)
}

// Get retrieves one session owned by userID.
func (r *PracticeRepository) Get(ctx context.Context, userID int64, id uuid.UUID) (*model.PracticeSession, error) {
	query := `SELECT id, user_id, role, questions, COALESCE(transcript, ''), COALESCE(feedback, ''), created_at
		FROM practice_sessions WHERE user_id = $1 AND id = $2`

	session := &model.PracticeSession{}
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(
		&session.ID, &session.UserID, &session.Role, pq.Array(&session.Questions),
		&session.Transcript, &session.Feedback, &session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPracticeNotFound
		}
		return nil, err
	}

	return session, nil
}

// ListByUser returns the user's sessions, newest first.
func (r *PracticeRepository) ListByUser(ctx context.Context, userID int64) ([]model.PracticeSession, error) {
	query := `SELECT id, user_id, role, questions, COALESCE(transcript, ''), COALESCE(feedback, ''), created_at
		FROM practice_sessions WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.PracticeSession
	for rows.Next() {
		var s model.PracticeSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.Role, pq.Array(&s.Questions),
			&s.Transcript, &s.Feedback, &s.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// SetFeedback stores the transcript and the AI feedback for a session.
func (r *PracticeRepository) SetFeedback(ctx context.Context, userID int64, id uuid.UUID, transcript, feedback string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE practice_sessions SET transcript = $1, feedback = $2 WHERE user_id = $3 AND id = $4`,
		transcript, feedback, userID, id)
	if err != nil {
		return err
	}
	return requireRow(result, ErrPracticeNotFound)
}

// Delete removes a session owned by userID.
func (r *PracticeRepository) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM practice_sessions WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	return requireRow(result, ErrPracticeNotFound)
}
