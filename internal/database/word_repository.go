package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/readpal/pkg/models"
)

// WordRepository handles database operations for the practice word catalog
type WordRepository struct{}

// NewWordRepository creates a new repository instance
func NewWordRepository() *WordRepository {
	return &WordRepository{}
}

// GetByWord returns a catalog entry, or nil if the word is not in the catalog
func (r *WordRepository) GetByWord(ctx context.Context, word string) (*models.Word, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	var entry models.Word
	err := DB.GetContext(ctx, &entry, "SELECT * FROM words WHERE word = $1", word)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %v", err)
	}
	return &entry, nil
}

// GetByCategory returns all catalog words in a category
func (r *WordRepository) GetByCategory(ctx context.Context, category string) ([]models.Word, error) {
	var words []models.Word
	err := DB.SelectContext(ctx, &words,
		"SELECT * FROM words WHERE category = $1 ORDER BY word", category)
	if err != nil {
		return nil, fmt.Errorf("failed to get words by category: %v", err)
	}
	return words, nil
}

// Upsert inserts or updates a catalog entry keyed by the lowercased word.
// Returns true when a new row was created.
func (r *WordRepository) Upsert(ctx context.Context, entry *models.Word) (bool, error) {
	entry.Word = strings.ToLower(strings.TrimSpace(entry.Word))
	if entry.Word == "" {
		return false, fmt.Errorf("word must not be empty")
	}

	existing, err := r.GetByWord(ctx, entry.Word)
	if err != nil {
		return false, err
	}

	_, err = DB.ExecContext(ctx, `
		INSERT INTO words (word, difficulty, category, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (word) DO UPDATE SET
			difficulty = excluded.difficulty,
			category = excluded.category,
			updated_at = CURRENT_TIMESTAMP
	`, entry.Word, entry.Difficulty, entry.Category)
	if err != nil {
		return false, fmt.Errorf("failed to upsert word: %v", err)
	}
	return existing == nil, nil
}

// Count returns the number of catalog words
func (r *WordRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM words")
	if err != nil {
		return 0, fmt.Errorf("failed to count words: %v", err)
	}
	return count, nil
}
