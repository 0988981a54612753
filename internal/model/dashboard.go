package model

// Dashboard aggregates a user's activity for the landing view.
type Dashboard struct {
	Projects           int           `json:"projects"`
	CompletedProjects  int           `json:"completed_projects"`
	Skills             int           `json:"skills"`
	Concepts           int           `json:"concepts"`
	UnderstoodConcepts int           `json:"understood_concepts"`
	Resumes            int           `json:"resumes"`
	PracticeSessions   int           `json:"practice_sessions"`
	ChatMessages       int           `json:"chat_messages"`
	RecentMessages     []ChatMessage `json:"recent_messages"`
}
