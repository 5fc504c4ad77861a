package models

import "time"

// Session types
const (
	SessionTypeChat     = "chat"
	SessionTypePractice = "practice"
)

// LearningSession is the immutable record of one finished practice or chat
// session. WordsPracticed keeps insertion order and duplicates: one entry per
// attempt, not per unique word.
type LearningSession struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	SessionType    string    `json:"session_type" db:"session_type"` // chat or practice
	WordsPracticed []string  `json:"words_practiced" db:"words_practiced"`
	CorrectCount   int       `json:"correct_count" db:"correct_count"`
	TotalAttempts  int       `json:"total_attempts" db:"total_attempts"`
	Duration       int       `json:"duration" db:"duration"` // Duration in seconds
	Accuracy       float64   `json:"accuracy" db:"accuracy"` // 0-100, 0 when no attempts
	SessionDate    time.Time `json:"session_date" db:"session_date"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
