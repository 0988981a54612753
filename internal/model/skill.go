package model

import "time"

// Skill tracks a user's proficiency against a target level (1-5 scale).
type Skill struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	Name        string    `json:"name"`
	Level       int       `json:"level"`
	TargetLevel int       `json:"target_level"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SkillRequest is the create/update body for a skill.
type SkillRequest struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	TargetLevel int    `json:"target_level"`
}
