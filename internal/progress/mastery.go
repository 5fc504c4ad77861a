package progress

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/readpal/pkg/models"
)

// Mastery tier thresholds over rolling per-word accuracy. A word only counts
// as mastered (tier 100) after enough attempts, so a lucky first try cannot
// jump straight to the top tier.
const (
	masteredAccuracy   = 0.90
	masteredMinTries   = 5
	proficientAccuracy = 0.70
	proficientMinTries = 3
	familiarAccuracy   = 0.50
)

// masteryTier derives the tier from post-increment counters
func masteryTier(timesPracticed, timesCorrect int) int {
	if timesPracticed == 0 {
		return models.MasteryNone
	}
	accuracy := float64(timesCorrect) / float64(timesPracticed)
	switch {
	case accuracy >= masteredAccuracy && timesPracticed >= masteredMinTries:
		return models.MasteryMastered
	case accuracy >= proficientAccuracy && timesPracticed >= proficientMinTries:
		return models.MasteryProficient
	case accuracy >= familiarAccuracy:
		return models.MasteryFamiliar
	default:
		return models.MasteryBeginner
	}
}

// RecordWordAttempt increments the practice counters for (user, word) through
// a conflict-safe upsert, then recomputes the mastery tier from the
// post-increment counts. The word is lowercased before use as a key.
func (e *Engine) RecordWordAttempt(ctx context.Context, userID int64, word, difficulty string, correct bool) (*models.WordProgress, error) {
	if userID == 0 {
		return nil, ErrNoUser
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil, fmt.Errorf("word must not be empty")
	}
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}

	record, err := e.store.RecordWordAttempt(ctx, userID, word, difficulty, correct)
	if err != nil {
		return nil, fmt.Errorf("failed to record word attempt: %v", err)
	}

	tier := masteryTier(record.TimesPracticed, record.TimesCorrect)
	if tier != record.MasteryLevel {
		if err := e.store.UpdateWordMastery(ctx, userID, word, tier); err != nil {
			return nil, fmt.Errorf("failed to update mastery tier: %v", err)
		}
		record.MasteryLevel = tier
	}

	return record, nil
}
