package progress

import (
	"context"
	"fmt"
)

// updateAggregateStats adds the session's contribution to the profile's
// lifetime totals. The accuracy rate is a two-point running average with the
// session's accuracy, so recent sessions weigh heavily; callers accept this
// coarse smoothing. Also advances last_practice_date for the streak-reset job.
func (e *Engine) updateAggregateStats(ctx context.Context, userID int64, wordsLearnedDelta, practiceSeconds int, sessionAccuracy float64) error {
	profile, err := e.store.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load profile: %v", err)
	}

	profile.TotalWordsLearned += wordsLearnedDelta
	profile.TotalPracticeTime += practiceSeconds
	profile.AccuracyRate = (profile.AccuracyRate + sessionAccuracy) / 2
	profile.LastPracticeDate = e.today()

	if err := e.store.UpdateProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile stats: %v", err)
	}
	return nil
}
