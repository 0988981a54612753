package model

import (
	"time"

	"github.com/google/uuid"
)

// PracticeSession is one mock-interview run: generated questions, the
// user's transcript, and AI feedback once requested.
type PracticeSession struct {
	ID         uuid.UUID `json:"id"`
	UserID     int64     `json:"-"`
	Role       string    `json:"role"`
	Questions  []string  `json:"questions"`
	Transcript string    `json:"transcript,omitempty"`
	Feedback   string    `json:"feedback,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// PracticeRequest is the POST /practice body.
type PracticeRequest struct {
	Role  string `json:"role"`
	Focus string `json:"focus"`
}

// PracticeFeedbackRequest is the POST /practice/{id}/feedback body.
type PracticeFeedbackRequest struct {
	Transcript string `json:"transcript"`
}
