package progress

import (
	"context"
	"fmt"

	"github.com/example/readpal/pkg/models"
)

// MaxLevel is the top of the level ladder
const MaxLevel = 10

// masteredTier is the minimum mastery tier at which a word counts toward
// level requirements
const masteredTier = models.MasteryProficient

// LevelRequirement is one rung of the static level ladder
type LevelRequirement struct {
	Level              int     `json:"level"`
	MinWords           int     `json:"min_words"`            // Mastered words (tier >= 75)
	MinAccuracy        float64 `json:"min_accuracy"`         // Lifetime accuracy percent
	MinStreakDays      int     `json:"min_streak_days"`      // Current streak
	MinPracticeMinutes int     `json:"min_practice_minutes"` // Lifetime practice minutes
}

// levelLadder is immutable configuration, not user state. Level 1 is the
// floor every user qualifies for.
var levelLadder = []LevelRequirement{
	{Level: 1, MinWords: 0, MinAccuracy: 0, MinStreakDays: 0, MinPracticeMinutes: 0},
	{Level: 2, MinWords: 25, MinAccuracy: 60, MinStreakDays: 3, MinPracticeMinutes: 60},
	{Level: 3, MinWords: 60, MinAccuracy: 65, MinStreakDays: 5, MinPracticeMinutes: 150},
	{Level: 4, MinWords: 110, MinAccuracy: 70, MinStreakDays: 7, MinPracticeMinutes: 300},
	{Level: 5, MinWords: 180, MinAccuracy: 75, MinStreakDays: 10, MinPracticeMinutes: 500},
	{Level: 6, MinWords: 270, MinAccuracy: 78, MinStreakDays: 14, MinPracticeMinutes: 750},
	{Level: 7, MinWords: 380, MinAccuracy: 81, MinStreakDays: 18, MinPracticeMinutes: 1050},
	{Level: 8, MinWords: 520, MinAccuracy: 84, MinStreakDays: 22, MinPracticeMinutes: 1400},
	{Level: 9, MinWords: 700, MinAccuracy: 87, MinStreakDays: 26, MinPracticeMinutes: 1800},
	{Level: 10, MinWords: 900, MinAccuracy: 90, MinStreakDays: 30, MinPracticeMinutes: 2250},
}

// RequirementsForLevel returns the ladder entry for a level, or false when
// the level is outside the ladder
func RequirementsForLevel(level int) (LevelRequirement, bool) {
	if level < 1 || level > MaxLevel {
		return LevelRequirement{}, false
	}
	return levelLadder[level-1], true
}

// levelMetrics are the four qualification inputs read from user state
type levelMetrics struct {
	masteredWords   int
	accuracyRate    float64
	currentStreak   int
	practiceMinutes int
}

func (m levelMetrics) satisfies(req LevelRequirement) bool {
	return m.masteredWords >= req.MinWords &&
		m.accuracyRate >= req.MinAccuracy &&
		m.currentStreak >= req.MinStreakDays &&
		m.practiceMinutes >= req.MinPracticeMinutes
}

// qualifiedLevel walks the ladder from level 1 and returns the highest level
// whose requirements hold contiguously; the walk stops at the first
// unsatisfied rung
func qualifiedLevel(m levelMetrics) int {
	level := 1
	for _, req := range levelLadder {
		if !m.satisfies(req) {
			break
		}
		level = req.Level
	}
	return level
}

// progressToNext averages min(current/required, 1) across the four metrics
// for the next unattained level, expressed 0-100. At max level it is 100.
func progressToNext(m levelMetrics, currentLevel int) (float64, *LevelRequirement) {
	next, ok := RequirementsForLevel(currentLevel + 1)
	if !ok {
		return 100, nil
	}

	ratio := func(current, required float64) float64 {
		if required <= 0 {
			return 1
		}
		r := current / required
		if r > 1 {
			r = 1
		}
		return r
	}

	sum := ratio(float64(m.masteredWords), float64(next.MinWords)) +
		ratio(m.accuracyRate, next.MinAccuracy) +
		ratio(float64(m.currentStreak), float64(next.MinStreakDays)) +
		ratio(float64(m.practiceMinutes), float64(next.MinPracticeMinutes))

	return sum / 4 * 100, &next
}

// LevelProgression is the UI-facing result of a level evaluation
type LevelProgression struct {
	Level            int               `json:"level"`
	LeveledUp        bool              `json:"leveled_up"`
	ProgressPercent  float64           `json:"progress_percent"`
	NextRequirements *LevelRequirement `json:"next_requirements,omitempty"`
}

// EvaluateLevelProgression checks the user's metrics against the ladder and
// applies a level-up when a higher level is fully qualified. Levels never
// decrease. Safe to call repeatedly: when the profile already holds the
// qualified level the evaluation is a read-only no-op, so both the progress
// screen and session finalization may trigger it.
func (e *Engine) EvaluateLevelProgression(ctx context.Context, userID int64) (*LevelProgression, error) {
	if userID == 0 {
		return nil, ErrNoUser
	}

	profile, err := e.store.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %v", err)
	}

	mastered, err := e.store.CountWordsAtMastery(ctx, userID, masteredTier)
	if err != nil {
		return nil, fmt.Errorf("failed to count mastered words: %v", err)
	}

	metrics := levelMetrics{
		masteredWords:   mastered,
		accuracyRate:    profile.AccuracyRate,
		currentStreak:   profile.CurrentStreak,
		practiceMinutes: profile.TotalPracticeTime / 60,
	}

	qualified := qualifiedLevel(metrics)
	result := &LevelProgression{Level: profile.Level}

	if qualified > profile.Level {
		previous := profile.Level
		profile.Level = qualified
		if err := e.store.UpdateProfile(ctx, profile); err != nil {
			return nil, fmt.Errorf("failed to save level: %v", err)
		}
		result.Level = qualified
		result.LeveledUp = true

		// One level-up award per evaluation, for the final level only
		e.awardLevelUp(ctx, userID, qualified)
		for _, milestone := range []int{5, 10} {
			if previous < milestone && qualified >= milestone {
				e.awardMilestone(ctx, userID, milestone)
			}
		}
	}

	result.ProgressPercent, result.NextRequirements = progressToNext(metrics, result.Level)
	return result, nil
}
