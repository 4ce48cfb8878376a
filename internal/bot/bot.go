// Package bot wires the recommendation pipeline to Telegram. It owns
// the long-lived runtime parameters between commands and hands the
// adviser a snapshot per run.
package bot

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/nbadviser/nbadviser/internal/models"
	"github.com/nbadviser/nbadviser/internal/render"
	"github.com/nbadviser/nbadviser/internal/services"
)

// Bot is the Telegram front end of the adviser.
type Bot struct {
	api      *tgbotapi.BotAPI
	adviser  *services.Adviser
	renderer *render.Renderer
	logger   *logrus.Logger

	// controlChatID is the operator channel for strategy failures.
	// Zero disables error forwarding.
	controlChatID int64

	mu     sync.Mutex
	params models.Params
}

// New authenticates against the Telegram Bot API and returns the bot.
func New(token string, controlChatID int64, adviser *services.Adviser, renderer *render.Renderer, logger *logrus.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	logger.WithField("bot_username", api.Self.UserName).Info("Telegram bot authorized")

	return &Bot{
		api:           api,
		adviser:       adviser,
		renderer:      renderer,
		logger:        logger,
		controlChatID: controlChatID,
		params:        models.NewParams(),
	}, nil
}

// Run consumes the update long-poll until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := b.api.GetUpdatesChan(updateConfig)

	b.logger.Info("Telegram bot update loop started")
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("Telegram bot update loop stopped")
			return
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.dispatch(ctx, update.Message)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, msg *tgbotapi.Message) {
	log := b.logger.WithFields(logrus.Fields{
		"chat_id": msg.Chat.ID,
		"command": msg.Command(),
	})
	log.Info("Handling command")

	switch msg.Command() {
	case "start", "help":
		b.handleStart(msg)
	case "run":
		b.handleRun(ctx, msg)
	case "live":
		b.handleLive(ctx, msg)
	case "setdate":
		b.handleSetDate(msg)
	case "cleardate":
		b.handleClearDate(msg)
	default:
		b.reply(msg.Chat.ID, "Unknown command. Try /help.")
	}
}

// snapshotParams returns an independent copy of the stored parameters
// for one run.
func (b *Bot) snapshotParams() models.Params {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.params.Clone()
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(msg); err != nil {
		b.logger.WithError(err).WithField("chat_id", chatID).Error("Failed to send message")
	}
}
