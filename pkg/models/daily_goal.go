package models

import "time"

// Daily goal types
const (
	GoalTypeWords    = "words"
	GoalTypeTime     = "time"
	GoalTypeAccuracy = "accuracy"
)

// Default daily goal targets
const (
	DefaultWordsTarget    = 10 // words per day
	DefaultTimeTarget     = 30 // minutes per day
	DefaultAccuracyTarget = 80 // percent
)

// DailyGoal tracks one goal type for one user on one calendar date.
// Keyed by (user_id, goal_type, goal_date).
type DailyGoal struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	GoalType     string    `json:"goal_type" db:"goal_type"` // words, time or accuracy
	GoalDate     string    `json:"goal_date" db:"goal_date"` // YYYY-MM-DD
	TargetValue  int       `json:"target_value" db:"target_value"`
	CurrentValue int       `json:"current_value" db:"current_value"`
	Completed    bool      `json:"completed" db:"completed"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
