package progress

import (
	"context"
	"testing"
)

func TestUpdateAggregateStats_AccumulatesTotals(t *testing.T) {
	engine, store := newTestEngine()
	ctx := context.Background()

	if err := engine.updateAggregateStats(ctx, 1, 8, 240, 80); err != nil {
		t.Fatalf("updateAggregateStats failed: %v", err)
	}
	if err := engine.updateAggregateStats(ctx, 1, 5, 120, 60); err != nil {
		t.Fatalf("updateAggregateStats failed: %v", err)
	}

	profile := store.profiles[1]
	if profile.TotalWordsLearned != 13 {
		t.Errorf("total words learned = %d, want 13", profile.TotalWordsLearned)
	}
	if profile.TotalPracticeTime != 360 {
		t.Errorf("total practice time = %d, want 360", profile.TotalPracticeTime)
	}
	if profile.LastPracticeDate != "2026-03-14" {
		t.Errorf("last practice date = %q, want 2026-03-14", profile.LastPracticeDate)
	}
}

func TestUpdateAggregateStats_TwoPointAverage(t *testing.T) {
	engine, store := newTestEngine()
	ctx := context.Background()

	// Fresh profile starts at 0, so the first session averages against zero
	if err := engine.updateAggregateStats(ctx, 1, 0, 0, 100); err != nil {
		t.Fatalf("updateAggregateStats failed: %v", err)
	}
	if rate := store.profiles[1].AccuracyRate; rate != 50 {
		t.Errorf("accuracy after first session = %v, want 50", rate)
	}

	if err := engine.updateAggregateStats(ctx, 1, 0, 0, 90); err != nil {
		t.Fatalf("updateAggregateStats failed: %v", err)
	}
	if rate := store.profiles[1].AccuracyRate; rate != 70 {
		t.Errorf("accuracy after second session = %v, want 70", rate)
	}
}
