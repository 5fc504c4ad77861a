package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/readpal/pkg/models"
)

// DailyGoalRepository handles database operations for daily goals
type DailyGoalRepository struct{}

// NewDailyGoalRepository creates a new repository instance
func NewDailyGoalRepository() *DailyGoalRepository {
	return &DailyGoalRepository{}
}

// GetByUserAndDate returns all goal rows for a user on a calendar date
// (YYYY-MM-DD)
func (r *DailyGoalRepository) GetByUserAndDate(ctx context.Context, userID int64, date string) ([]models.DailyGoal, error) {
	var goals []models.DailyGoal
	err := DB.SelectContext(ctx, &goals,
		"SELECT * FROM daily_goals WHERE user_id = $1 AND goal_date = $2", userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily goals: %v", err)
	}
	return goals, nil
}

// GetByType returns the goal row for one (user, type, date), or nil if it
// does not exist yet
func (r *DailyGoalRepository) GetByType(ctx context.Context, userID int64, goalType, date string) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := DB.GetContext(ctx, &goal,
		"SELECT * FROM daily_goals WHERE user_id = $1 AND goal_type = $2 AND goal_date = $3",
		userID, goalType, date)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily goal: %v", err)
	}
	return &goal, nil
}

// Upsert writes the goal row for (user, type, date). The natural key keeps
// retries from creating duplicate rows.
func (r *DailyGoalRepository) Upsert(ctx context.Context, goal *models.DailyGoal) error {
	_, err := DB.ExecContext(ctx, `
		INSERT INTO daily_goals (
			user_id, goal_type, goal_date, target_value, current_value,
			completed, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, goal_type, goal_date) DO UPDATE SET
			target_value = excluded.target_value,
			current_value = excluded.current_value,
			completed = excluded.completed,
			updated_at = CURRENT_TIMESTAMP
	`,
		goal.UserID,
		goal.GoalType,
		goal.GoalDate,
		goal.TargetValue,
		goal.CurrentValue,
		goal.Completed,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert daily goal: %v", err)
	}
	return nil
}
