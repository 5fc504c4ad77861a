package database

import (
	"context"
	"fmt"
	"time"

	"github.com/example/readpal/pkg/models"
)

// AchievementRepository handles database operations for achievements
type AchievementRepository struct{}

// NewAchievementRepository creates a new repository instance
func NewAchievementRepository() *AchievementRepository {
	return &AchievementRepository{}
}

// Create appends a new achievement record. Achievements are never updated or
// deduplicated here.
func (r *AchievementRepository) Create(ctx context.Context, achievement *models.Achievement) error {
	if achievement.EarnedAt.IsZero() {
		achievement.EarnedAt = time.Now()
	}

	query := `
		INSERT INTO achievements (user_id, type, title, description, icon, earned_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if DB.DriverName() == "postgres" {
		return DB.QueryRowContext(ctx, query+" RETURNING id",
			achievement.UserID,
			achievement.Type,
			achievement.Title,
			achievement.Description,
			achievement.Icon,
			achievement.EarnedAt,
		).Scan(&achievement.ID)
	}

	result, err := DB.ExecContext(ctx, query,
		achievement.UserID,
		achievement.Type,
		achievement.Title,
		achievement.Description,
		achievement.Icon,
		achievement.EarnedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create achievement: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	achievement.ID = id
	return nil
}

// GetByUserID returns a user's achievements, newest first
func (r *AchievementRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := DB.SelectContext(ctx, &achievements,
		"SELECT * FROM achievements WHERE user_id = $1 ORDER BY earned_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements: %v", err)
	}
	return achievements, nil
}
