package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/commforge/community_backend/internal/events"
	"github.com/commforge/community_backend/pkg/logger"
)

// TelegramNotifier announces level-ups to a Telegram channel. It subscribes
// to the event dispatcher and ignores every event type except
// MemberLeveledUp.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(botToken string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telegram bot: %w", err)
	}

	logger.Info("telegram notifier ready", "bot", bot.Self.UserName)
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// Handle implements the dispatcher's handler signature.
func (n *TelegramNotifier) Handle(evt events.Event) error {
	levelUp, ok := evt.(events.MemberLeveledUp)
	if !ok {
		return nil
	}

	text := fmt.Sprintf("🎉 Member %d in community %d reached level %d (%s)!",
		levelUp.UserID, levelUp.CommunityID, levelUp.NewLevel, levelUp.LevelName)

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send level-up notification: %w", err)
	}
	return nil
}
