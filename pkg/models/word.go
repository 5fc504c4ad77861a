package models

import "time"

// Word is one entry in the practice word catalog, imported from curriculum
// word lists. Words are stored lowercase.
type Word struct {
	ID         int64     `json:"id" db:"id"`
	Word       string    `json:"word" db:"word"`
	Difficulty string    `json:"difficulty" db:"difficulty"` // easy, medium or hard
	Category   string    `json:"category" db:"category"`     // e.g. "animals", "sight words"
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
