package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/readpal/internal/database"
	"github.com/example/readpal/pkg/models"
)

// Default window for goal reminders (local hours)
const (
	DefaultReminderStartHour = 8
	DefaultReminderEndHour   = 20
)

// streakResetAt is when the daily streak sweep runs
const streakResetAt = "00:05"

// Scheduler manages scheduled maintenance tasks: the daily lapsed-streak
// reset and the hourly goal-reminder sweep
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
}

// Notifier delivers a goal reminder to a user. remaining is how many words
// are still needed to finish today's words goal.
type Notifier interface {
	SendGoalReminder(userID int64, remaining int) error
}

// New creates a new scheduler instance. notifier may be nil, which disables
// reminders but keeps the streak sweep running.
func New(notifier Notifier) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		notifier:  notifier,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Streaks lapse at midnight; sweep shortly after
	s.scheduler.Every(1).Day().At(streakResetAt).Do(s.resetLapsedStreaks)

	if s.notifier != nil {
		s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)
	}

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// resetLapsedStreaks zeroes the streak of every user whose last practice was
// before yesterday. A session finished yesterday keeps the streak alive until
// tonight's sweep.
func (s *Scheduler) resetLapsedStreaks() {
	cutoff := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	profileRepo := database.NewProfileRepository()
	reset, err := profileRepo.ResetLapsedStreaks(context.Background(), cutoff)
	if err != nil {
		log.Printf("Error resetting lapsed streaks: %v", err)
		return
	}
	if reset > 0 {
		log.Printf("Reset %d lapsed streaks (last practice before %s)", reset, cutoff)
	}
}

// checkAndSendReminders nudges users whose reminder hour matches and whose
// words goal for today is still incomplete
func (s *Scheduler) checkAndSendReminders() {
	currentHour := time.Now().Hour()

	startHour := DefaultReminderStartHour
	endHour := DefaultReminderEndHour
	if startHourStr := os.Getenv("REMINDER_START_HOUR"); startHourStr != "" {
		if h, err := strconv.Atoi(startHourStr); err == nil && h >= 0 && h <= 23 {
			startHour = h
		}
	}
	if endHourStr := os.Getenv("REMINDER_END_HOUR"); endHourStr != "" {
		if h, err := strconv.Atoi(endHourStr); err == nil && h >= 0 && h <= 23 {
			endHour = h
		}
	}

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside reminder hours (%d-%d), skipping reminders",
			currentHour, startHour, endHour)
		return
	}

	ctx := context.Background()
	profileRepo := database.NewProfileRepository()
	goalRepo := database.NewDailyGoalRepository()
	today := time.Now().Format("2006-01-02")

	profiles, err := profileRepo.GetUsersForReminder(ctx, currentHour)
	if err != nil {
		log.Printf("Error getting users for reminders: %v", err)
		return
	}

	for _, profile := range profiles {
		goal, err := goalRepo.GetByType(ctx, profile.UserID, models.GoalTypeWords, today)
		if err != nil {
			log.Printf("Error getting words goal for user %d: %v", profile.UserID, err)
			continue
		}
		if goal != nil && goal.Completed {
			continue
		}

		remaining := profile.DailyWordGoal
		if goal != nil {
			remaining = goal.TargetValue - goal.CurrentValue
		}
		if remaining <= 0 {
			continue
		}

		if err := s.notifier.SendGoalReminder(profile.UserID, remaining); err != nil {
			log.Printf("Error sending reminder to user %d: %v", profile.UserID, err)
		}
	}
}
