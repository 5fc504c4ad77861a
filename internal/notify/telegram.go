package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier delivers goal reminders to a parent's Telegram chat. It
// implements scheduler.Notifier and is outbound-only; the app itself is the
// reading interface, not the bot.
type TelegramNotifier struct {
	api *tgbotapi.BotAPI
}

// NewTelegramNotifier creates a notifier from a bot token
func NewTelegramNotifier(token string) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %v", err)
	}
	return &TelegramNotifier{api: api}, nil
}

// SendGoalReminder implements the scheduler.Notifier interface. The user ID
// doubles as the Telegram chat ID, matching how accounts are provisioned.
func (n *TelegramNotifier) SendGoalReminder(userID int64, remaining int) error {
	wordForm := "words"
	if remaining == 1 {
		wordForm = "word"
	}
	msg := tgbotapi.NewMessage(userID,
		fmt.Sprintf("%d more %s to reach today's reading goal! A few minutes of practice keeps the streak going.", remaining, wordForm))
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send reminder: %v", err)
	}
	return nil
}
