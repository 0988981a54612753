package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/careerpilot/careerpilot-go/internal/model"
)

var ErrSkillNotFound = errors.New("skill not found")

// SkillRepository handles skill persistence.
type SkillRepository struct {
	db *sql.DB
}

// NewSkillRepository creates a new SkillRepository.
func NewSkillRepository(db *sql.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// Create inserts a skill and sets generated fields on the struct.
func (r *SkillRepository) Create(ctx context.Context, skill *model.Skill) error {
	query := `INSERT INTO skills (user_id, name, level, target_level)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query, skill.UserID, skill.Name, skill.Level, skill.TargetLevel).
		Scan(&skill.ID, &skill.CreatedAt, &skill.UpdatedAt)
}

// ListByUser returns the user's skills ordered by name.
func (r *SkillRepository) ListByUser(ctx context.Context, userID int64) ([]model.Skill, error) {
	query := `SELECT id, user_id, name, level, target_level, created_at, updated_at
		FROM skills WHERE user_id = $1 ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []model.Skill
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Level, &s.TargetLevel, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}

	return skills, rows.Err()
}

// Update rewrites a skill's mutable fields.
func (r *SkillRepository) Update(ctx context.Context, skill *model.Skill) error {
	query := `UPDATE skills SET name = $1, level = $2, target_level = $3, updated_at = NOW()
		WHERE user_id = $4 AND id = $5`

	result, err := r.db.ExecContext(ctx, query,
		skill.Name, skill.Level, skill.TargetLevel, skill.UserID, skill.ID)
	if err != nil {
		return err
	}
	return requireRow(result, ErrSkillNotFound)
}

// Delete removes a skill owned by userID.
func (r *SkillRepository) Delete(ctx context.Context, userID, skillID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM skills WHERE user_id = $1 AND id = $2`, userID, skillID)
	if err != nil {
		return err
	}
	return requireRow(result, ErrSkillNotFound)
}
