package model

import "time"

// Concept is a study topic the user is working through.
type Concept struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"-"`
	Name       string    `json:"name"`
	Notes      string    `json:"notes"`
	Understood bool      `json:"understood"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ConceptRequest is the create/update body for a concept.
type ConceptRequest struct {
	Name       string `json:"name"`
	Notes      string `json:"notes"`
	Understood bool   `json:"understood"`
}
