package progress

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/readpal/pkg/models"
)

// Session is an in-memory accumulator for one practice or chat session.
// Nothing is persisted until EndSession.
type Session struct {
	ID        uuid.UUID
	UserID    int64
	Type      string
	StartTime time.Time

	// WordsPracticed keeps one entry per attempt, duplicates included
	WordsPracticed []string
	CorrectCount   int
	TotalAttempts  int

	ended bool
}

// SessionSummary is returned to the UI when a session ends
type SessionSummary struct {
	SessionID      int64   `json:"session_id"`
	SessionType    string  `json:"session_type"`
	WordsAttempted int     `json:"words_attempted"`
	CorrectCount   int     `json:"correct_count"`
	TotalAttempts  int     `json:"total_attempts"`
	Duration       int     `json:"duration"` // seconds
	Accuracy       float64 `json:"accuracy"` // 0-100
	Level          int     `json:"level"`
	LeveledUp      bool    `json:"leveled_up"`
}

// StartSession opens an in-memory accumulator for a user's session
func (e *Engine) StartSession(userID int64, sessionType string) (*Session, error) {
	if userID == 0 {
		return nil, ErrNoUser
	}
	if sessionType != models.SessionTypeChat && sessionType != models.SessionTypePractice {
		return nil, fmt.Errorf("unknown session type %q", sessionType)
	}
	return &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      sessionType,
		StartTime: e.now(),
	}, nil
}

// RecordAttempt adds one word attempt to the session and feeds the word
// mastery tracker immediately so the progress screen stays current. A
// mastery write failure is logged, not returned: per-word telemetry is
// best-effort and must not interrupt the session.
func (e *Engine) RecordAttempt(ctx context.Context, session *Session, word string, correct bool, difficulty string) error {
	if session == nil {
		return ErrNoSession
	}
	if session.ended {
		return ErrSessionClosed
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return fmt.Errorf("word must not be empty")
	}

	session.WordsPracticed = append(session.WordsPracticed, word)
	session.TotalAttempts++
	if correct {
		session.CorrectCount++
	}

	if e.audio != nil {
		if correct {
			e.audio.PlaySuccess()
		} else {
			e.audio.PlayError()
		}
	}

	if _, err := e.RecordWordAttempt(ctx, session.UserID, word, difficulty, correct); err != nil {
		log.Printf("Failed to record word attempt for user %d word %q: %v", session.UserID, word, err)
	}
	return nil
}

// EndSession persists the immutable session record, then runs the finalize
// pipeline: aggregate stats, daily goals, streak, level evaluation. The four
// steps are independent round trips with no transaction across them; a
// failed step is logged and the rest still run, so the worst case is a
// session whose stats lag behind.
func (e *Engine) EndSession(ctx context.Context, session *Session) (*SessionSummary, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	if session.ended {
		return nil, ErrSessionClosed
	}
	session.ended = true

	duration := int(e.now().Sub(session.StartTime).Seconds())
	accuracy := 0.0
	if session.TotalAttempts > 0 {
		accuracy = float64(session.CorrectCount) / float64(session.TotalAttempts) * 100
	}

	record := &models.LearningSession{
		UserID:         session.UserID,
		SessionType:    session.Type,
		WordsPracticed: session.WordsPracticed,
		CorrectCount:   session.CorrectCount,
		TotalAttempts:  session.TotalAttempts,
		Duration:       duration,
		Accuracy:       accuracy,
		SessionDate:    e.now(),
	}
	if err := e.store.InsertLearningSession(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist session: %v", err)
	}

	if count, err := e.store.CountLearningSessions(ctx, session.UserID); err != nil {
		log.Printf("Failed to count sessions for user %d: %v", session.UserID, err)
	} else if count == 1 {
		e.awardFirstSession(ctx, session.UserID)
	}

	// Attempts count as "words learned" downstream, duplicates included
	wordsLearned := len(session.WordsPracticed)
	today := e.today()

	if err := e.updateAggregateStats(ctx, session.UserID, wordsLearned, duration, accuracy); err != nil {
		log.Printf("Failed to update aggregate stats for user %d: %v", session.UserID, err)
	}
	if err := e.updateDailyGoals(ctx, session.UserID, today, wordsLearned, duration, accuracy); err != nil {
		log.Printf("Failed to update daily goals for user %d: %v", session.UserID, err)
	}
	if err := e.advanceStreak(ctx, session.UserID, today); err != nil {
		log.Printf("Failed to advance streak for user %d: %v", session.UserID, err)
	}

	summary := &SessionSummary{
		SessionID:      record.ID,
		SessionType:    session.Type,
		WordsAttempted: wordsLearned,
		CorrectCount:   session.CorrectCount,
		TotalAttempts:  session.TotalAttempts,
		Duration:       duration,
		Accuracy:       accuracy,
	}

	progression, err := e.EvaluateLevelProgression(ctx, session.UserID)
	if err != nil {
		log.Printf("Failed to evaluate level progression for user %d: %v", session.UserID, err)
		return summary, nil
	}
	summary.Level = progression.Level
	summary.LeveledUp = progression.LeveledUp

	if e.audio != nil && progression.LeveledUp {
		e.audio.PlaySuccess()
	}
	return summary, nil
}
