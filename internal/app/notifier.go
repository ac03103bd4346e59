package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"homework_status_bot/internal/domain/failure"
	domainTelegram "homework_status_bot/internal/domain/telegram"
)

// Notifier delivers text messages to the single configured chat.
type Notifier struct {
	client domainTelegram.Client
	chatID int64
	logger *logrus.Entry
}

func NewNotifier(client domainTelegram.Client, chatID int64, logger *logrus.Entry) *Notifier {
	return &Notifier{
		client: client,
		chatID: chatID,
		logger: logger,
	}
}

// Send delivers text. Transport failures are logged and returned as delivery errors.
func (n *Notifier) Send(ctx context.Context, text string) error {
	logCtx := n.logger.WithField("chat_id", n.chatID)
	if err := n.client.SendMessage(ctx, n.chatID, text); err != nil {
		logCtx.WithError(err).Error("Failed to send message")
		return failure.Wrap(failure.KindDelivery, fmt.Errorf("failed to send message to chat %d: %w", n.chatID, err))
	}
	logCtx.WithField("text", text).Info("Message sent")
	return nil
}
