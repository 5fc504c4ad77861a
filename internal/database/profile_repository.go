package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/readpal/pkg/models"
)

// ProfileRepository handles database operations for user profiles
type ProfileRepository struct{}

// NewProfileRepository creates a new repository instance
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

// GetByUserID returns a user's profile, or nil if none exists yet
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := DB.GetContext(ctx, &profile, `
		SELECT user_id, total_words_learned, total_practice_time, accuracy_rate,
		       level, current_streak, longest_streak, streak_last_advanced_date,
		       last_practice_date, daily_word_goal, notification_enabled,
		       notification_hour, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %v", err)
	}
	return &profile, nil
}

// GetOrCreate returns the user's profile, creating a default one if the user
// has no row yet. A missing profile is a signal to create defaults, not an
// error.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, userID int64) (*models.UserProfile, error) {
	profile, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	_, err = DB.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, level, daily_word_goal)
		VALUES ($1, 1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, models.DefaultWordsTarget)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %v", err)
	}

	return r.GetByUserID(ctx, userID)
}

// Update writes the mutable progress fields of a profile
func (r *ProfileRepository) Update(ctx context.Context, profile *models.UserProfile) error {
	result, err := DB.ExecContext(ctx, `
		UPDATE user_profiles SET
			total_words_learned = $1,
			total_practice_time = $2,
			accuracy_rate = $3,
			level = $4,
			current_streak = $5,
			longest_streak = $6,
			streak_last_advanced_date = $7,
			last_practice_date = $8,
			daily_word_goal = $9,
			notification_enabled = $10,
			notification_hour = $11,
			updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $12
	`,
		profile.TotalWordsLearned,
		profile.TotalPracticeTime,
		profile.AccuracyRate,
		profile.Level,
		profile.CurrentStreak,
		profile.LongestStreak,
		profile.StreakLastAdvanced,
		profile.LastPracticeDate,
		profile.DailyWordGoal,
		profile.NotificationEnabled,
		profile.NotificationHour,
		profile.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rows == 0 {
		return fmt.Errorf("profile not found for user %d", profile.UserID)
	}
	return nil
}

// ResetLapsedStreaks zeroes current_streak for every profile whose last
// practice date is before cutoffDate (YYYY-MM-DD). Returns the number of
// profiles reset. Used by the daily maintenance job.
func (r *ProfileRepository) ResetLapsedStreaks(ctx context.Context, cutoffDate string) (int64, error) {
	result, err := DB.ExecContext(ctx, `
		UPDATE user_profiles SET
			current_streak = 0,
			updated_at = CURRENT_TIMESTAMP
		WHERE current_streak > 0 AND last_practice_date < $1
	`, cutoffDate)
	if err != nil {
		return 0, fmt.Errorf("failed to reset lapsed streaks: %v", err)
	}
	return result.RowsAffected()
}

// GetUsersForReminder returns profiles with reminders enabled for the given
// hour of day
func (r *ProfileRepository) GetUsersForReminder(ctx context.Context, hour int) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := DB.SelectContext(ctx, &profiles, `
		SELECT user_id, total_words_learned, total_practice_time, accuracy_rate,
		       level, current_streak, longest_streak, streak_last_advanced_date,
		       last_practice_date, daily_word_goal, notification_enabled,
		       notification_hour, created_at, updated_at
		FROM user_profiles
		WHERE notification_enabled = $1 AND notification_hour = $2
	`, true, hour)
	if err != nil {
		return nil, fmt.Errorf("failed to get users for reminder: %v", err)
	}
	return profiles, nil
}
