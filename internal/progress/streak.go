package progress

import (
	"context"
	"fmt"

	"github.com/example/readpal/pkg/models"
)

// advanceStreak extends the consecutive-day streak when today's words goal is
// complete. streak_last_advanced_date guards against advancing twice on the
// same day if a session ends after the goal is already met. Resetting a
// lapsed streak is not done here; the daily maintenance job owns that.
func (e *Engine) advanceStreak(ctx context.Context, userID int64, date string) error {
	goal, err := e.store.GetDailyGoal(ctx, userID, models.GoalTypeWords, date)
	if err != nil {
		return fmt.Errorf("failed to read words goal: %v", err)
	}
	if goal == nil || !goal.Completed {
		return nil
	}

	profile, err := e.store.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load profile: %v", err)
	}
	if profile.StreakLastAdvanced == date {
		// Already counted today
		return nil
	}

	profile.CurrentStreak++
	if profile.CurrentStreak > profile.LongestStreak {
		profile.LongestStreak = profile.CurrentStreak
	}
	profile.StreakLastAdvanced = date

	if err := e.store.UpdateProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to save streak: %v", err)
	}
	return nil
}
