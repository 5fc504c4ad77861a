package progress

import (
	"context"
	"testing"
	"time"

	"github.com/example/readpal/pkg/models"
)

type fakeAudio struct {
	success, errors, clicks int
}

func (a *fakeAudio) PlaySuccess() { a.success++ }
func (a *fakeAudio) PlayError()   { a.errors++ }
func (a *fakeAudio) PlayClick()   { a.clicks++ }

func TestStartSession_Validation(t *testing.T) {
	engine, _ := newTestEngine()

	if _, err := engine.StartSession(0, models.SessionTypePractice); err != ErrNoUser {
		t.Errorf("no user: err = %v, want ErrNoUser", err)
	}
	if _, err := engine.StartSession(1, "quiz"); err == nil {
		t.Error("unknown session type: expected an error")
	}
	session, err := engine.StartSession(1, models.SessionTypeChat)
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if session.TotalAttempts != 0 || len(session.WordsPracticed) != 0 {
		t.Errorf("new session not empty: %+v", session)
	}
}

func TestEndSession_NoAttemptsYieldsZeroAccuracy(t *testing.T) {
	engine, store := newTestEngine()
	ctx := context.Background()

	session, err := engine.StartSession(1, models.SessionTypePractice)
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	summary, err := engine.EndSession(ctx, session)
	if err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}
	if summary.Accuracy != 0 {
		t.Errorf("accuracy = %v, want 0 for an empty session", summary.Accuracy)
	}
	if len(store.sessions) != 1 {
		t.Fatalf("persisted sessions = %d, want 1", len(store.sessions))
	}
}

func TestEndSession_AttemptCountingScenario(t *testing.T) {
	engine, store := newTestEngine()
	ctx := context.Background()

	session, err := engine.StartSession(1, models.SessionTypePractice)
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	// "cat" twice and "dog" once; one miss
	attempts := []struct {
		word    string
		correct bool
	}{
		{"cat", true},
		{"cat", false},
		{"dog", true},
	}
	for _, a := range attempts {
		if err := engine.RecordAttempt(ctx, session, a.word, a.correct, models.DifficultyEasy); err != nil {
			t.Fatalf("RecordAttempt(%q) failed: %v", a.word, err)
		}
	}

	summary, err := engine.EndSession(ctx, session)
	if err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}

	if diff := summary.Accuracy - 66.67; diff > 0.01 || diff < -0.01 {
		t.Errorf("accuracy = %v, want 66.67", summary.Accuracy)
	}

	// The words goal counts attempts, duplicates included
	goal := store.goals[goalKey(1, models.GoalTypeWords, testDate)]
	if goal.CurrentValue != 3 {
		t.Errorf("words goal current = %d, want 3 attempts, not 2 unique words", goal.CurrentValue)
	}

	record := store.sessions[0]
	if len(record.WordsPracticed) != 3 || record.WordsPracticed[0] != "cat" ||
		record.WordsPracticed[1] != "cat" || record.WordsPracticed[2] != "dog" {
		t.Errorf("words practiced = %v, want [cat cat dog] in order", record.WordsPracticed)
	}

	// Lifetime totals picked up the attempt count
	if profile := store.profiles[1]; profile.TotalWordsLearned != 3 {
		t.Errorf("total words learned = %d, want 3", profile.TotalWordsLearned)
	}
}

func TestRecordAttempt_FeedsMasteryTrackerImmediately(t *testing.T) {
	engine, store := newTestEngine()
	ctx := context.Background()

	session, _ := engine.StartSession(1, models.SessionTypeChat)
	if err := engine.RecordAttempt(ctx, session, "Sun", true, models.DifficultyEasy); err != nil {
		t.Fatalf("RecordAttempt failed: %v", err)
	}

	record, ok := store.words[wordKey(1, "sun")]
	if !ok {
		t.Fatal("word progress missing before EndSession")
	}
	if record.TimesPracticed != 1 || record.TimesCorrect != 1 {
		t.Errorf("word counters = %d/%d, want 1/1", record.TimesCorrect, record.TimesPracticed)
	}
}

func TestSession_LifecycleErrors(t *testing.T) {
	engine, _ := newTestEngine()
	ctx := context.Background()

	if err := engine.RecordAttempt(ctx, nil, "cat", true, ""); err != ErrNoSession {
		t.Errorf("nil session: err = %v, want ErrNoSession", err)
	}
	if _, err := engine.EndSession(ctx, nil); err != ErrNoSession {
		t.Errorf("nil session: err = %v, want ErrNoSession", err)
	}

	session, _ := engine.StartSession(1, models.SessionTypePractice)
	if _, err := engine.EndSession(ctx, session); err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}
	if err := engine.RecordAttempt(ctx, session, "cat", true, ""); err != ErrSessionClosed {
		t.Errorf("closed session: err = %v, want ErrSessionClosed", err)
	}
	if _, err := engine.EndSession(ctx, session); err != ErrSessionClosed {
		t.Errorf("double end: err = %v, want ErrSessionClosed", err)
	}
}

func TestEndSession_PersistFailureReturnsError(t *testing.T) {
	engine, store := newTestEngine()
	ctx := context.Background()

	store.failInsertSession = true
	session, _ := engine.StartSession(1, models.SessionTypePractice)
	if _, err := engine.EndSession(ctx, session); err == nil {
		t.Fatal("expected an error when the session record cannot be persisted")
	}
	if len(store.profiles) != 0 {
		t.Error("no downstream step should run when the session insert fails")
	}
}

func TestEndSession_DownstreamFailureIsNonFatal(t *testing.T) {
	engine, store := newTestEngine()
	ctx := context.Background()

	store.failGoals = true
	session, _ := engine.StartSession(1, models.SessionTypePractice)
	_ = engine.RecordAttempt(ctx, session, "cat", true, "")

	summary, err := engine.EndSession(ctx, session)
	if err != nil {
		t.Fatalf("EndSession must swallow goal-tracker failures, got: %v", err)
	}
	if summary == nil || len(store.sessions) != 1 {
		t.Fatal("session record must persist even when a downstream step fails")
	}
}

func TestEndSession_FirstSessionAchievement(t *testing.T) {
	engine, store := newTestEngine()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		session, _ := engine.StartSession(1, models.SessionTypePractice)
		if _, err := engine.EndSession(ctx, session); err != nil {
			t.Fatalf("EndSession %d failed: %v", i, err)
		}
	}

	first := store.achievementsOfType(models.AchievementTypeFirstSession)
	if len(first) != 1 {
		t.Errorf("first-session achievements = %d, want 1 across two sessions", len(first))
	}
}

func TestEndSession_Duration(t *testing.T) {
	engine, store := newTestEngine()
	ctx := context.Background()

	session, _ := engine.StartSession(1, models.SessionTypePractice)

	// Advance the clock 95 seconds between start and end
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	engine.now = func() time.Time { return base.Add(95 * time.Second) }

	summary, err := engine.EndSession(ctx, session)
	if err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}
	if summary.Duration != 95 {
		t.Errorf("duration = %d, want 95", summary.Duration)
	}
	if store.sessions[0].Duration != 95 {
		t.Errorf("persisted duration = %d, want 95", store.sessions[0].Duration)
	}
}

func TestRecordAttempt_AudioFeedback(t *testing.T) {
	store := newFakeStore()
	audio := &fakeAudio{}
	engine := NewEngine(store, audio)
	ctx := context.Background()

	session, _ := engine.StartSession(1, models.SessionTypePractice)
	_ = engine.RecordAttempt(ctx, session, "cat", true, "")
	_ = engine.RecordAttempt(ctx, session, "dog", false, "")

	if audio.success != 1 {
		t.Errorf("success sounds = %d, want 1", audio.success)
	}
	if audio.errors != 1 {
		t.Errorf("error sounds = %d, want 1", audio.errors)
	}
}
