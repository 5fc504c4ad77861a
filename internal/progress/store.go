package progress

import (
	"context"
	"errors"

	"github.com/example/readpal/pkg/models"
)

// Engine errors returned to UI callers. These signal a caller-state problem,
// not a data problem; backend failures are logged and swallowed instead.
var (
	// ErrNoUser is returned when an operation is attempted without a user
	ErrNoUser = errors.New("no user id")
	// ErrNoSession is returned when an operation is attempted without an
	// active session
	ErrNoSession = errors.New("no active session")
	// ErrSessionClosed is returned when a session is used after EndSession
	ErrSessionClosed = errors.New("session already ended")
)

// Store is the data-access collaborator the engine reads and writes through.
// Implementations must make RecordWordAttempt a conflict-safe
// increment-or-create on (user, word) and UpsertDailyGoal keyed on
// (user, type, date); those per-row guarantees are the only concurrency
// defense the engine relies on.
type Store interface {
	GetOrCreateProfile(ctx context.Context, userID int64) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, profile *models.UserProfile) error

	RecordWordAttempt(ctx context.Context, userID int64, word, difficulty string, correct bool) (*models.WordProgress, error)
	UpdateWordMastery(ctx context.Context, userID int64, word string, tier int) error
	CountWordsAtMastery(ctx context.Context, userID int64, minTier int) (int, error)

	GetDailyGoal(ctx context.Context, userID int64, goalType, date string) (*models.DailyGoal, error)
	UpsertDailyGoal(ctx context.Context, goal *models.DailyGoal) error

	InsertLearningSession(ctx context.Context, session *models.LearningSession) error
	CountLearningSessions(ctx context.Context, userID int64) (int, error)

	InsertAchievement(ctx context.Context, achievement *models.Achievement) error
}

// AudioFeedback is an optional capability for per-attempt sound effects,
// injected by the UI collaborator. A nil AudioFeedback disables sound.
type AudioFeedback interface {
	PlaySuccess()
	PlayError()
	PlayClick()
}
