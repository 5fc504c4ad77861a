package database

import (
	"context"

	"github.com/example/readpal/pkg/models"
)

// Store bundles the repositories behind the progress engine's data-access
// interface
type Store struct {
	profiles     *ProfileRepository
	wordProgress *WordProgressRepository
	dailyGoals   *DailyGoalRepository
	sessions     *SessionRepository
	achievements *AchievementRepository
}

// NewStore creates a store over the global database connection
func NewStore() *Store {
	return &Store{
		profiles:     NewProfileRepository(),
		wordProgress: NewWordProgressRepository(),
		dailyGoals:   NewDailyGoalRepository(),
		sessions:     NewSessionRepository(),
		achievements: NewAchievementRepository(),
	}
}

// GetOrCreateProfile returns the user's profile, creating defaults if absent
func (s *Store) GetOrCreateProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	return s.profiles.GetOrCreate(ctx, userID)
}

// UpdateProfile writes the mutable profile fields
func (s *Store) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	return s.profiles.Update(ctx, profile)
}

// RecordWordAttempt is a conflict-safe increment-or-create on (user, word)
func (s *Store) RecordWordAttempt(ctx context.Context, userID int64, word, difficulty string, correct bool) (*models.WordProgress, error) {
	return s.wordProgress.RecordAttempt(ctx, userID, word, difficulty, correct)
}

// UpdateWordMastery writes the derived mastery tier for (user, word)
func (s *Store) UpdateWordMastery(ctx context.Context, userID int64, word string, tier int) error {
	return s.wordProgress.UpdateMastery(ctx, userID, word, tier)
}

// CountWordsAtMastery counts the user's words at or above a mastery tier
func (s *Store) CountWordsAtMastery(ctx context.Context, userID int64, minTier int) (int, error) {
	return s.wordProgress.CountAtOrAboveMastery(ctx, userID, minTier)
}

// GetDailyGoal returns one (user, type, date) goal row, nil when absent
func (s *Store) GetDailyGoal(ctx context.Context, userID int64, goalType, date string) (*models.DailyGoal, error) {
	return s.dailyGoals.GetByType(ctx, userID, goalType, date)
}

// UpsertDailyGoal writes a goal row keyed by (user, type, date)
func (s *Store) UpsertDailyGoal(ctx context.Context, goal *models.DailyGoal) error {
	return s.dailyGoals.Upsert(ctx, goal)
}

// InsertLearningSession persists an immutable session record
func (s *Store) InsertLearningSession(ctx context.Context, session *models.LearningSession) error {
	return s.sessions.Create(ctx, session)
}

// CountLearningSessions returns the user's total recorded sessions
func (s *Store) CountLearningSessions(ctx context.Context, userID int64) (int, error) {
	return s.sessions.CountByUserID(ctx, userID)
}

// InsertAchievement appends an achievement record
func (s *Store) InsertAchievement(ctx context.Context, achievement *models.Achievement) error {
	return s.achievements.Create(ctx, achievement)
}
