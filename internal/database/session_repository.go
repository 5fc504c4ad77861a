package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/readpal/pkg/models"
)

// SessionRepository handles database operations for learning sessions
type SessionRepository struct{}

// NewSessionRepository creates a new repository instance
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// sessionRow mirrors the learning_sessions table; words_practiced is stored
// as a JSON array, matching how the UI backend keeps it
type sessionRow struct {
	ID             int64     `db:"id"`
	UserID         int64     `db:"user_id"`
	SessionType    string    `db:"session_type"`
	WordsPracticed string    `db:"words_practiced"`
	CorrectCount   int       `db:"correct_count"`
	TotalAttempts  int       `db:"total_attempts"`
	Duration       int       `db:"duration"`
	Accuracy       float64   `db:"accuracy"`
	SessionDate    time.Time `db:"session_date"`
	CreatedAt      time.Time `db:"created_at"`
}

func (row *sessionRow) toModel() (*models.LearningSession, error) {
	session := &models.LearningSession{
		ID:            row.ID,
		UserID:        row.UserID,
		SessionType:   row.SessionType,
		CorrectCount:  row.CorrectCount,
		TotalAttempts: row.TotalAttempts,
		Duration:      row.Duration,
		Accuracy:      row.Accuracy,
		SessionDate:   row.SessionDate,
		CreatedAt:     row.CreatedAt,
	}
	if row.WordsPracticed != "" {
		if err := json.Unmarshal([]byte(row.WordsPracticed), &session.WordsPracticed); err != nil {
			return nil, fmt.Errorf("failed to parse words practiced: %v", err)
		}
	}
	return session, nil
}

// Create inserts a new immutable session record and fills in its ID. Session
// rows are never updated after creation.
func (r *SessionRepository) Create(ctx context.Context, session *models.LearningSession) error {
	wordsJSON, err := json.Marshal(session.WordsPracticed)
	if err != nil {
		return fmt.Errorf("failed to marshal words practiced: %v", err)
	}
	if session.SessionDate.IsZero() {
		session.SessionDate = time.Now()
	}

	query := `
		INSERT INTO learning_sessions (
			user_id, session_type, words_practiced, correct_count,
			total_attempts, duration, accuracy, session_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if DB.DriverName() == "postgres" {
		return DB.QueryRowContext(ctx, query+" RETURNING id, created_at",
			session.UserID,
			session.SessionType,
			string(wordsJSON),
			session.CorrectCount,
			session.TotalAttempts,
			session.Duration,
			session.Accuracy,
			session.SessionDate,
		).Scan(&session.ID, &session.CreatedAt)
	}

	// SQLite: no RETURNING, fetch the ID separately
	result, err := DB.ExecContext(ctx, query,
		session.UserID,
		session.SessionType,
		string(wordsJSON),
		session.CorrectCount,
		session.TotalAttempts,
		session.Duration,
		session.Accuracy,
		session.SessionDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	session.ID = id
	return nil
}

// GetRecentByUserID returns the user's most recent sessions, newest first
func (r *SessionRepository) GetRecentByUserID(ctx context.Context, userID int64, limit int) ([]models.LearningSession, error) {
	var rows []sessionRow
	err := DB.SelectContext(ctx, &rows,
		"SELECT * FROM learning_sessions WHERE user_id = $1 ORDER BY session_date DESC LIMIT $2",
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %v", err)
	}

	sessions := make([]models.LearningSession, 0, len(rows))
	for i := range rows {
		session, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}
	return sessions, nil
}

// CountByUserID returns how many sessions a user has recorded
func (r *SessionRepository) CountByUserID(ctx context.Context, userID int64) (int, error) {
	var count int
	err := DB.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM learning_sessions WHERE user_id = $1", userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %v", err)
	}
	return count, nil
}

// GetUserStatsByPeriod returns session statistics for a user within a time period
func (r *SessionRepository) GetUserStatsByPeriod(ctx context.Context, userID int64, startDate, endDate time.Time) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var totalSessions int
	err := DB.GetContext(ctx, &totalSessions,
		"SELECT COUNT(*) FROM learning_sessions WHERE user_id = $1 AND session_date BETWEEN $2 AND $3",
		userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	stats["total_sessions"] = totalSessions

	var avgAccuracy float64
	err = DB.GetContext(ctx, &avgAccuracy,
		"SELECT COALESCE(AVG(accuracy), 0) FROM learning_sessions WHERE user_id = $1 AND session_date BETWEEN $2 AND $3",
		userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	stats["avg_accuracy"] = avgAccuracy

	var totalSeconds int
	err = DB.GetContext(ctx, &totalSeconds,
		"SELECT COALESCE(SUM(duration), 0) FROM learning_sessions WHERE user_id = $1 AND session_date BETWEEN $2 AND $3",
		userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	stats["total_practice_seconds"] = totalSeconds

	var totalAttempts int
	err = DB.GetContext(ctx, &totalAttempts,
		"SELECT COALESCE(SUM(total_attempts), 0) FROM learning_sessions WHERE user_id = $1 AND session_date BETWEEN $2 AND $3",
		userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	stats["total_attempts"] = totalAttempts

	return stats, nil
}
