package models

import "time"

// Achievement types
const (
	AchievementTypeLevelUp      = "level_up"
	AchievementTypeMilestone    = "milestone"
	AchievementTypeFirstSession = "first_session"
)

// Achievement is an append-only award record shown on the profile screen
type Achievement struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Type        string    `json:"type" db:"type"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Icon        string    `json:"icon" db:"icon"`
	EarnedAt    time.Time `json:"earned_at" db:"earned_at"`
}
