package progress

import (
	"context"
	"fmt"

	"github.com/example/readpal/pkg/models"
)

// updateDailyGoals merges a finished session into today's three goal rows,
// creating them with default targets on the first session of the day. The
// fetch-then-upsert shape keeps a retried call from blind-incrementing rows
// it already created; invoking it once per session is the caller's job.
func (e *Engine) updateDailyGoals(ctx context.Context, userID int64, date string, wordsLearned, practiceSeconds int, sessionAccuracy float64) error {
	profile, err := e.store.GetOrCreateProfile(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load profile: %v", err)
	}

	wordsTarget := profile.DailyWordGoal
	if wordsTarget <= 0 {
		wordsTarget = models.DefaultWordsTarget
	}

	type merge struct {
		goalType string
		target   int
		apply    func(current int) int
	}

	merges := []merge{
		{
			goalType: models.GoalTypeWords,
			target:   wordsTarget,
			apply:    func(current int) int { return current + wordsLearned },
		},
		{
			goalType: models.GoalTypeTime,
			target:   models.DefaultTimeTarget,
			apply:    func(current int) int { return current + practiceSeconds/60 },
		},
		{
			goalType: models.GoalTypeAccuracy,
			target:   models.DefaultAccuracyTarget,
			apply: func(current int) int {
				session := int(sessionAccuracy)
				if session > current {
					return session
				}
				return current
			},
		},
	}

	for _, m := range merges {
		goal, err := e.store.GetDailyGoal(ctx, userID, m.goalType, date)
		if err != nil {
			return fmt.Errorf("failed to get %s goal: %v", m.goalType, err)
		}
		if goal == nil {
			goal = &models.DailyGoal{
				UserID:      userID,
				GoalType:    m.goalType,
				GoalDate:    date,
				TargetValue: m.target,
			}
		}
		goal.CurrentValue = m.apply(goal.CurrentValue)
		goal.Completed = goal.CurrentValue >= goal.TargetValue
		if err := e.store.UpsertDailyGoal(ctx, goal); err != nil {
			return fmt.Errorf("failed to save %s goal: %v", m.goalType, err)
		}
	}

	return nil
}
