package model

import "time"

// Project statuses.
const (
	ProjectPlanned    = "planned"
	ProjectInProgress = "in_progress"
	ProjectCompleted  = "completed"
)

// Project is a user-owned career project with optional milestones.
type Project struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"-"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Milestones  []Milestone `json:"milestones"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Milestone is a single step within a project.
type Milestone struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"-"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectRequest is the create/update body for a project.
type ProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Milestones  []string `json:"milestones"`
}

// MilestoneRequest is the create body for a milestone.
type MilestoneRequest struct {
	Title string `json:"title"`
}
