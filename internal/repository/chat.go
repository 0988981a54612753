package repository

import (
	"context"
	"database/sql"

	"github.com/careerpilot/careerpilot-go/internal/model"
)

// ChatRepository handles the append-only chat message log.
type ChatRepository struct {
	db *sql.DB
}

// NewChatRepository creates a new ChatRepository.
func NewChatRepository(db *sql.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// Append inserts a message and sets the generated ID and timestamp.
func (r *ChatRepository) Append(ctx context.Context, msg *model.ChatMessage) error {
	query := `INSERT INTO chat_messages (user_id, role, content)
		VALUES ($1, $2, $3) RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query, msg.UserID, msg.Role, msg.Content).
		Scan(&msg.ID, &msg.CreatedAt)
}

// Recent returns the user's last limit messages in insertion order, oldest
// first, ready to be replayed as LLM context.
func (r *ChatRepository) Recent(ctx context.Context, userID int64, limit int) ([]model.ChatMessage, error) {
	query := `SELECT id, user_id, role, content, created_at FROM (
			SELECT id, user_id, role, content, created_at
			FROM chat_messages WHERE user_id = $1
			ORDER BY created_at DESC, id DESC LIMIT $2
		) latest ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.ChatMessage
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
