package models

import "time"

// Role identifies the author of a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is a single transcript message. Assistant content is markdown.
type ChatMessage struct {
	Role      Role       `json:"role"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// AnalysisResult is the backend's answer for a food photo
type AnalysisResult struct {
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Score        float64 `json:"score"`
	CoachComment string  `json:"coach_comment"`
	Reasoning    string  `json:"reasoning,omitempty"`
	IsSaved      *bool   `json:"is_saved,omitempty"`
}

// PersistenceFailed reports whether the backend explicitly said the row was not saved
func (r AnalysisResult) PersistenceFailed() bool {
	return r.IsSaved != nil && !*r.IsSaved
}
