package models

import "time"

// UserProfile holds a user's lifetime progress totals and reminder settings
type UserProfile struct {
	UserID              int64     `json:"user_id" db:"user_id"`
	TotalWordsLearned   int       `json:"total_words_learned" db:"total_words_learned"`
	TotalPracticeTime   int       `json:"total_practice_time" db:"total_practice_time"` // Lifetime practice time in seconds
	AccuracyRate        float64   `json:"accuracy_rate" db:"accuracy_rate"`             // Rolling accuracy, 0-100
	Level               int       `json:"level" db:"level"`                             // Current level, 1-10
	CurrentStreak       int       `json:"current_streak" db:"current_streak"`           // Consecutive practice days
	LongestStreak       int       `json:"longest_streak" db:"longest_streak"`
	StreakLastAdvanced  string    `json:"streak_last_advanced_date" db:"streak_last_advanced_date"` // YYYY-MM-DD, empty if never advanced
	LastPracticeDate    string    `json:"last_practice_date" db:"last_practice_date"`               // YYYY-MM-DD of the last finished session
	DailyWordGoal       int       `json:"daily_word_goal" db:"daily_word_goal"` // Target words per day for the words goal
	NotificationEnabled bool      `json:"notification_enabled" db:"notification_enabled"`
	NotificationHour    int       `json:"notification_hour" db:"notification_hour"` // Hour of day for reminders (0-23)
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}
