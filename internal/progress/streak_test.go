package progress

import (
	"context"
	"testing"

	"github.com/example/readpal/pkg/models"
)

func completeWordsGoal(t *testing.T, store *fakeStore, userID int64, date string) {
	t.Helper()
	err := store.UpsertDailyGoal(context.Background(), &models.DailyGoal{
		UserID:       userID,
		GoalType:     models.GoalTypeWords,
		GoalDate:     date,
		TargetValue:  10,
		CurrentValue: 10,
		Completed:    true,
	})
	if err != nil {
		t.Fatalf("failed to seed words goal: %v", err)
	}
}

func TestAdvanceStreak_OnGoalCompletion(t *testing.T) {
	engine, store := newTestEngine()
	ctx := context.Background()

	completeWordsGoal(t, store, 1, testDate)
	if err := engine.advanceStreak(ctx, 1, testDate); err != nil {
		t.Fatalf("advanceStreak failed: %v", err)
	}

	profile := store.profiles[1]
	if profile.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1", profile.CurrentStreak)
	}
	if profile.LongestStreak != 1 {
		t.Errorf("longest streak = %d, want 1", profile.LongestStreak)
	}
	if profile.StreakLastAdvanced != testDate {
		t.Errorf("streak_last_advanced_date = %q, want %q", profile.StreakLastAdvanced, testDate)
	}
}

func TestAdvanceStreak_NoAdvanceWhenGoalIncomplete(t *testing.T) {
	engine, store := newTestEngine()
	ctx := context.Background()

	err := store.UpsertDailyGoal(ctx, &models.DailyGoal{
		UserID:       1,
		GoalType:     models.GoalTypeWords,
		GoalDate:     testDate,
		TargetValue:  10,
		CurrentValue: 7,
	})
	if err != nil {
		t.Fatalf("failed to seed words goal: %v", err)
	}

	if err := engine.advanceStreak(ctx, 1, testDate); err != nil {
		t.Fatalf("advanceStreak failed: %v", err)
	}
	if profile := store.profiles[1]; profile.CurrentStreak != 0 {
		t.Errorf("current streak = %d, want 0", profile.CurrentStreak)
	}
}

func TestAdvanceStreak_AtMostOncePerDay(t *testing.T) {
	engine, store := newTestEngine()
	ctx := context.Background()

	completeWordsGoal(t, store, 1, testDate)

	// Two sessions ending after the goal is met must count one day, not two
	for i := 0; i < 2; i++ {
		if err := engine.advanceStreak(ctx, 1, testDate); err != nil {
			t.Fatalf("advanceStreak %d failed: %v", i, err)
		}
	}
	if profile := store.profiles[1]; profile.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1 after repeated advances", profile.CurrentStreak)
	}
}

func TestAdvanceStreak_LongestStreakKeepsHighWaterMark(t *testing.T) {
	engine, store := newTestEngine()
	ctx := context.Background()

	profile, _ := store.GetOrCreateProfile(ctx, 1)
	profile.CurrentStreak = 2
	profile.LongestStreak = 9
	if err := store.UpdateProfile(ctx, profile); err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}

	completeWordsGoal(t, store, 1, testDate)
	if err := engine.advanceStreak(ctx, 1, testDate); err != nil {
		t.Fatalf("advanceStreak failed: %v", err)
	}

	got := store.profiles[1]
	if got.CurrentStreak != 3 {
		t.Errorf("current streak = %d, want 3", got.CurrentStreak)
	}
	if got.LongestStreak != 9 {
		t.Errorf("longest streak = %d, want 9 untouched", got.LongestStreak)
	}
}
