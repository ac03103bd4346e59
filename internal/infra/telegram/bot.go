package telegram

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const requestTimeout = 10 * time.Second

// NewBot creates a send-only bot. Unless offline is set, the token is
// checked against the Bot API right away. An empty apiURL means the public API.
func NewBot(token, apiURL string, offline bool, logger *logrus.Entry) (*telebot.Bot, error) {
	pref := telebot.Settings{
		Token:   token,
		URL:     apiURL,
		Offline: offline,
		Poller:  &telebot.LongPoller{Timeout: requestTimeout},
		OnError: func(err error, c telebot.Context) { // Global error handler
			logCtx := logger.WithError(err)
			if c != nil && c.Chat() != nil {
				logCtx = logCtx.WithField("chat_id", c.Chat().ID)
			}
			logCtx.Error("Telebot error")
		},
	}
	b, err := telebot.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("could not create Telegram bot: %w", err)
	}
	return b, nil
}
