package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/reinstack44/CollegeEventSystem/internal/domain"
	"github.com/rs/zerolog"
)

// TelegramNotifier mirrors reservation activity into an ops chat.
// Purely informational: the API response is the source of truth and
// delivery failures are only logged.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger zerolog.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger zerolog.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn().Msg("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, res *domain.Reservation, event *domain.Event) {
	text := fmt.Sprintf(
		"*New reservation*\n\nEvent: %s\nParticipant: %s\nStarts (UTC): %s",
		event.Title, res.ParticipantID, event.StartsAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, res *domain.Reservation, event *domain.Event) {
	text := fmt.Sprintf(
		"*Reservation cancelled*\n\nEvent: %s\nParticipant: %s",
		event.Title, res.ParticipantID,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyAdmitted(ctx context.Context, record *domain.AdmissionRecord, event *domain.Event) {
	text := fmt.Sprintf(
		"*Participant admitted*\n\nEvent: %s\nParticipant: %s\nAdmitted (UTC): %s",
		event.Title, record.ParticipantID, record.AdmittedAt.Format("02.01.2006 15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyOverCapacity(ctx context.Context, oc domain.OverCapacityEvent) {
	text := fmt.Sprintf(
		"*Event over capacity*\n\nEvent: %s\nCapacity: %d\nReserved: %d\nReview the registrations before the gate opens.",
		oc.Title, oc.Capacity, oc.Reserved,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug().Str("text", text).Msg("notification skipped (bot disabled)")
		return
	}

	if n.chatID == 0 {
		n.logger.Debug().Str("text", text).Msg("notification skipped (no chat_id)")
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug().
			Int64("chat_id", n.chatID).
			Msg("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error().
			Int64("chat_id", n.chatID).
			Err(err).
			Msg("failed to send telegram notification")
	}
}
