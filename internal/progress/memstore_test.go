package progress

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/readpal/pkg/models"
)

// fakeStore is an in-memory Store for engine tests. It mimics the backend's
// row semantics: every read hands out a copy, so state only changes through
// the write methods.
type fakeStore struct {
	profiles     map[int64]models.UserProfile
	words        map[string]models.WordProgress
	goals        map[string]models.DailyGoal
	sessions     []models.LearningSession
	achievements []models.Achievement

	failInsertSession bool
	failGoals         bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles: make(map[int64]models.UserProfile),
		words:    make(map[string]models.WordProgress),
		goals:    make(map[string]models.DailyGoal),
	}
}

func wordKey(userID int64, word string) string {
	return fmt.Sprintf("%d|%s", userID, strings.ToLower(word))
}

func goalKey(userID int64, goalType, date string) string {
	return fmt.Sprintf("%d|%s|%s", userID, goalType, date)
}

func (s *fakeStore) GetOrCreateProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	if p, ok := s.profiles[userID]; ok {
		copied := p
		return &copied, nil
	}
	p := models.UserProfile{
		UserID:        userID,
		Level:         1,
		DailyWordGoal: models.DefaultWordsTarget,
	}
	s.profiles[userID] = p
	copied := p
	return &copied, nil
}

func (s *fakeStore) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	if _, ok := s.profiles[profile.UserID]; !ok {
		return fmt.Errorf("profile not found for user %d", profile.UserID)
	}
	s.profiles[profile.UserID] = *profile
	return nil
}

func (s *fakeStore) RecordWordAttempt(ctx context.Context, userID int64, word, difficulty string, correct bool) (*models.WordProgress, error) {
	key := wordKey(userID, word)
	record, ok := s.words[key]
	if !ok {
		record = models.WordProgress{
			UserID: userID,
			Word:   strings.ToLower(word),
		}
	}
	record.TimesPracticed++
	if correct {
		record.TimesCorrect++
	}
	record.Difficulty = difficulty
	record.LastPracticed = time.Now()
	s.words[key] = record
	copied := record
	return &copied, nil
}

func (s *fakeStore) UpdateWordMastery(ctx context.Context, userID int64, word string, tier int) error {
	key := wordKey(userID, word)
	record, ok := s.words[key]
	if !ok {
		return fmt.Errorf("word progress not found")
	}
	record.MasteryLevel = tier
	s.words[key] = record
	return nil
}

func (s *fakeStore) CountWordsAtMastery(ctx context.Context, userID int64, minTier int) (int, error) {
	count := 0
	for _, record := range s.words {
		if record.UserID == userID && record.MasteryLevel >= minTier {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) GetDailyGoal(ctx context.Context, userID int64, goalType, date string) (*models.DailyGoal, error) {
	if s.failGoals {
		return nil, fmt.Errorf("backend unavailable")
	}
	goal, ok := s.goals[goalKey(userID, goalType, date)]
	if !ok {
		return nil, nil
	}
	copied := goal
	return &copied, nil
}

func (s *fakeStore) UpsertDailyGoal(ctx context.Context, goal *models.DailyGoal) error {
	if s.failGoals {
		return fmt.Errorf("backend unavailable")
	}
	s.goals[goalKey(goal.UserID, goal.GoalType, goal.GoalDate)] = *goal
	return nil
}

func (s *fakeStore) InsertLearningSession(ctx context.Context, session *models.LearningSession) error {
	if s.failInsertSession {
		return fmt.Errorf("backend unavailable")
	}
	session.ID = int64(len(s.sessions) + 1)
	s.sessions = append(s.sessions, *session)
	return nil
}

func (s *fakeStore) CountLearningSessions(ctx context.Context, userID int64) (int, error) {
	count := 0
	for _, session := range s.sessions {
		if session.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) InsertAchievement(ctx context.Context, achievement *models.Achievement) error {
	s.achievements = append(s.achievements, *achievement)
	return nil
}

// achievementsOfType filters recorded achievements for assertions
func (s *fakeStore) achievementsOfType(achievementType string) []models.Achievement {
	var matched []models.Achievement
	for _, a := range s.achievements {
		if a.Type == achievementType {
			matched = append(matched, a)
		}
	}
	return matched
}

// newTestEngine wires an engine to a fresh fake store with a fixed clock
func newTestEngine() (*Engine, *fakeStore) {
	store := newFakeStore()
	engine := NewEngine(store, nil)
	engine.now = func() time.Time {
		return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	}
	return engine, store
}
