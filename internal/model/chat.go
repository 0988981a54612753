package model

import "time"

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry in a user's append-only chat history. Ordering
// within a user's history is the insertion-order timestamp.
type ChatMessage struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest is the POST /chat body.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse relays the generated reply and the model that produced it.
type ChatResponse struct {
	Reply string `json:"reply"`
	Model string `json:"model"`
}
