package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/careerpilot/careerpilot-go/internal/model"
)

var ErrConceptNotFound = errors.New("concept not found")

// ConceptRepository handles concept persistence.
type ConceptRepository struct {
	db *sql.DB
}

// NewConceptRepository creates a new ConceptRepository.
func NewConceptRepository(db *sql.DB) *ConceptRepository {
	return &ConceptRepository{db: db}
}

// Create inserts a concept and sets generated fields on the struct.
func (r *ConceptRepository) Create(ctx context.Context, concept *model.Concept) error {
	query := `INSERT INTO concepts (user_id, name, notes, understood)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query, concept.UserID, concept.Name, concept.Notes, concept.Understood).
		Scan(&concept.ID, &concept.CreatedAt, &concept.UpdatedAt)
}

// ListByUser returns the user's concepts, not-yet-understood first.
func (r *ConceptRepository) ListByUser(ctx context.Context, userID int64) ([]model.Concept, error) {
	query := `SELECT id, user_id, name, notes, understood, created_at, updated_at
		FROM concepts WHERE user_id = $1 ORDER BY understood ASC, name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var concepts []model.Concept
	for rows.Next() {
		var c model.Concept
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Notes, &c.Understood, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		concepts = append(concepts, c)
	}

	return concepts, rows.Err()
}

// Update rewrites a concept's mutable fields.
func (r *ConceptRepository) Update(ctx context.Context, concept *model.Concept) error {
	query := `UPDATE concepts SET name = $1, notes = $2, understood = $3, updated_at = NOW()
		WHERE user_id = $4 AND id = $5`

	result, err := r.db.ExecContext(ctx, query,
		concept.Name, concept.Notes, concept.Understood, concept.UserID, concept.ID)
	if err != nil {
		return err
	}
	return requireRow(result, ErrConceptNotFound)
}

// Delete removes a concept owned by userID.
func (r *ConceptRepository) Delete(ctx context.Context, userID, conceptID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM concepts WHERE user_id = $1 AND id = $2`, userID, conceptID)
	if err != nil {
		return err
	}
	return requireRow(result, ErrConceptNotFound)
}
