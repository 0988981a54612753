package model

import (
	"time"

	"github.com/google/uuid"
)

// Resume holds an uploaded resume's extracted text and, once requested,
// the AI review of it. The original file bytes are not retained.
type Resume struct {
	ID       uuid.UUID `json:"id"`
	UserID   int64     `json:"-"`
	Filename string    `json:"filename"`
	Mime     string    `json:"mime"`
	Text     string    `json:"text"`
	Review   string    `json:"review,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ResumeSummary is the list shape: no extracted text or review body.
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	Mime      string    `json:"mime"`
	Reviewed  bool      `json:"reviewed"`
	CreatedAt time.Time `json:"created_at"`
}
