package progress

import (
	"context"
	"fmt"
	"log"

	"github.com/example/readpal/pkg/models"
)

// Award failures are logged and swallowed: a missing badge is annoying, a
// broken practice session is worse.

func (e *Engine) awardLevelUp(ctx context.Context, userID int64, level int) {
	err := e.store.InsertAchievement(ctx, &models.Achievement{
		UserID:      userID,
		Type:        models.AchievementTypeLevelUp,
		Title:       fmt.Sprintf("Level %d!", level),
		Description: fmt.Sprintf("You reached reading level %d", level),
		Icon:        "star",
		EarnedAt:    e.now(),
	})
	if err != nil {
		log.Printf("Failed to award level-up achievement for user %d: %v", userID, err)
	}
}

func (e *Engine) awardMilestone(ctx context.Context, userID int64, level int) {
	title := "Rising Reader"
	description := "Halfway up the ladder: level 5 reached"
	icon := "medal"
	if level == MaxLevel {
		title = "Word Master"
		description = "Every level complete: level 10 reached"
		icon = "trophy"
	}

	err := e.store.InsertAchievement(ctx, &models.Achievement{
		UserID:      userID,
		Type:        models.AchievementTypeMilestone,
		Title:       title,
		Description: description,
		Icon:        icon,
		EarnedAt:    e.now(),
	})
	if err != nil {
		log.Printf("Failed to award milestone achievement for user %d: %v", userID, err)
	}
}

func (e *Engine) awardFirstSession(ctx context.Context, userID int64) {
	err := e.store.InsertAchievement(ctx, &models.Achievement{
		UserID:      userID,
		Type:        models.AchievementTypeFirstSession,
		Title:       "First Steps",
		Description: "You finished your first practice session",
		Icon:        "footprints",
		EarnedAt:    e.now(),
	})
	if err != nil {
		log.Printf("Failed to award first-session achievement for user %d: %v", userID, err)
	}
}
