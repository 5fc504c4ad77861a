package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/readpal/pkg/models"
)

// WordProgressRepository handles database operations for per-word progress
type WordProgressRepository struct{}

// NewWordProgressRepository creates a new repository instance
func NewWordProgressRepository() *WordProgressRepository {
	return &WordProgressRepository{}
}

// RecordAttempt atomically increments the practice counters for (user, word),
// creating the row on first attempt. The increment is a single conflict-safe
// upsert so concurrent attempts cannot lose updates. Returns the
// post-increment row. The word is lowercased before use as a key.
func (r *WordProgressRepository) RecordAttempt(ctx context.Context, userID int64, word, difficulty string, correct bool) (*models.WordProgress, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil, fmt.Errorf("word must not be empty")
	}

	correctDelta := 0
	if correct {
		correctDelta = 1
	}

	_, err := DB.ExecContext(ctx, `
		INSERT INTO word_progress (
			user_id, word, difficulty, times_practiced, times_correct,
			last_practiced, created_at, updated_at
		) VALUES ($1, $2, $3, 1, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, word) DO UPDATE SET
			times_practiced = word_progress.times_practiced + 1,
			times_correct = word_progress.times_correct + excluded.times_correct,
			difficulty = excluded.difficulty,
			last_practiced = CURRENT_TIMESTAMP,
			updated_at = CURRENT_TIMESTAMP
	`, userID, word, difficulty, correctDelta)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert word progress: %v", err)
	}

	return r.GetByUserAndWord(ctx, userID, word)
}

// GetByUserAndWord returns progress for a specific user and word
func (r *WordProgressRepository) GetByUserAndWord(ctx context.Context, userID int64, word string) (*models.WordProgress, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	var progress models.WordProgress
	err := DB.GetContext(ctx, &progress,
		"SELECT * FROM word_progress WHERE user_id = $1 AND word = $2", userID, word)
	if err != nil {
		return nil, fmt.Errorf("failed to get word progress: %v", err)
	}
	return &progress, nil
}

// UpdateMastery writes the derived mastery tier for (user, word). The tier is
// deterministic from the counters, so repeating this update is harmless.
func (r *WordProgressRepository) UpdateMastery(ctx context.Context, userID int64, word string, tier int) error {
	word = strings.ToLower(strings.TrimSpace(word))
	_, err := DB.ExecContext(ctx, `
		UPDATE word_progress SET
			mastery_level = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $2 AND word = $3
	`, tier, userID, word)
	if err != nil {
		return fmt.Errorf("failed to update mastery: %v", err)
	}
	return nil
}

// CountAtOrAboveMastery returns how many of the user's words have reached the
// given mastery tier
func (r *WordProgressRepository) CountAtOrAboveMastery(ctx context.Context, userID int64, minTier int) (int, error) {
	var count int
	err := DB.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM word_progress WHERE user_id = $1 AND mastery_level >= $2",
		userID, minTier)
	if err != nil {
		return 0, fmt.Errorf("failed to count mastered words: %v", err)
	}
	return count, nil
}

// GetByUserID returns all word progress rows for a user, most recently
// practiced first
func (r *WordProgressRepository) GetByUserID(ctx context.Context, userID int64) ([]models.WordProgress, error) {
	var progress []models.WordProgress
	err := DB.SelectContext(ctx, &progress,
		"SELECT * FROM word_progress WHERE user_id = $1 ORDER BY last_practiced DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get word progress list: %v", err)
	}
	return progress, nil
}
