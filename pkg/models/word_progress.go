package models

import "time"

// Difficulty tags for practice words
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Mastery tiers derived from rolling per-word accuracy
const (
	MasteryNone       = 0
	MasteryBeginner   = 25
	MasteryFamiliar   = 50
	MasteryProficient = 75
	MasteryMastered   = 100
)

// WordProgress tracks a user's practice history for a single word.
// Keyed by (user_id, word); the word is stored lowercase.
type WordProgress struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	Word           string    `json:"word" db:"word"`
	Difficulty     string    `json:"difficulty" db:"difficulty"`
	TimesPracticed int       `json:"times_practiced" db:"times_practiced"`
	TimesCorrect   int       `json:"times_correct" db:"times_correct"`
	MasteryLevel   int       `json:"mastery_level" db:"mastery_level"` // One of 0/25/50/75/100
	LastPracticed  time.Time `json:"last_practiced" db:"last_practiced"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Accuracy returns the rolling accuracy for this word as a 0-1 ratio
func (p *WordProgress) Accuracy() float64 {
	if p.TimesPracticed == 0 {
		return 0
	}
	return float64(p.TimesCorrect) / float64(p.TimesPracticed)
}
