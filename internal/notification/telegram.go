package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/domain"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, user *domain.User, confirmation *domain.BookingConfirmation) {
	seats := make([]string, 0, len(confirmation.Passengers))
	for _, p := range confirmation.Passengers {
		seats = append(seats, p.SeatNumber)
	}

	text := fmt.Sprintf(
		"*Booking confirmed!*\n\n"+
			"PNR: %s\n"+
			"Train: %s (%s)\n"+
			"Route: %s to %s\n"+
			"Journey date: %s\n"+
			"Seats: %s\n"+
			"Total fare: %.2f",
		confirmation.PNR,
		confirmation.Train.TrainName, confirmation.Train.TrainNumber,
		confirmation.Train.SourceStation, confirmation.Train.DestinationStation,
		confirmation.JourneyDate.Format("02.01.2006"),
		strings.Join(seats, ", "),
		confirmation.TotalFare,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+
			"PNR: %s\n"+
			"Journey date: %s",
		booking.PNR,
		booking.JourneyDate.Format("02.01.2006"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
