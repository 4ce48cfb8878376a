package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nbadviser/nbadviser/internal/models"
)

const helpText = `I pick the interesting NBA games of the day.

/run - recommendations for the previous game day
/live - games in progress right now
/setdate YYYY-MM-DD - pin a specific game day
/cleardate - back to the previous game day
/help - this message`

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	b.reply(msg.Chat.ID, helpText)
}

func (b *Bot) handleRun(ctx context.Context, msg *tgbotapi.Message) {
	params := b.snapshotParams()
	recs, errs := b.adviser.GetRecommendations(ctx, params)

	b.reply(msg.Chat.ID, b.renderer.Render(recs))
	b.reportErrors(errs)
}

func (b *Bot) handleLive(ctx context.Context, msg *tgbotapi.Message) {
	rec := b.adviser.GetLiveGamesOrNone(ctx, b.snapshotParams())
	if rec == nil {
		b.reply(msg.Chat.ID, "No live games right now")
		return
	}
	b.reply(msg.Chat.ID, b.renderer.RenderRecommendation(*rec))
}

func (b *Bot) handleSetDate(msg *tgbotapi.Message) {
	date := strings.TrimSpace(msg.CommandArguments())
	if _, err := time.Parse("2006-01-02", date); err != nil {
		b.reply(msg.Chat.ID, "Usage: /setdate YYYY-MM-DD")
		return
	}

	b.mu.Lock()
	b.params.Set(models.ParamGamesDate, date)
	b.mu.Unlock()

	b.reply(msg.Chat.ID, fmt.Sprintf("Game day pinned to %s", date))
}

func (b *Bot) handleClearDate(msg *tgbotapi.Message) {
	b.mu.Lock()
	prev, ok := b.params.Del(models.ParamGamesDate)
	b.mu.Unlock()

	if !ok {
		b.reply(msg.Chat.ID, "No game day was pinned")
		return
	}
	b.reply(msg.Chat.ID, fmt.Sprintf("Unpinned game day %s", prev))
}

// SendDigest pushes the current report to the control chat. Used by
// the scheduled daily digest.
func (b *Bot) SendDigest(ctx context.Context) {
	if b.controlChatID == 0 {
		return
	}
	recs, errs := b.adviser.GetRecommendations(ctx, b.snapshotParams())
	b.reply(b.controlChatID, b.renderer.Render(recs))
	b.reportErrors(errs)
}

// reportErrors forwards strategy failures to the operator channel,
// one message per failed strategy: label, message, then the stack.
func (b *Bot) reportErrors(errs []models.StrategyError) {
	if b.controlChatID == 0 || len(errs) == 0 {
		return
	}
	for _, e := range errs {
		text := fmt.Sprintf("⚠️ %s failed: %v", e.Label, e.Err)
		if e.Stack != "" {
			stack := e.Stack
			// Telegram caps messages at 4096 chars.
			if len(stack) > 3500 {
				stack = stack[:3500]
			}
			text += "\n\n" + stack
		}
		msg := tgbotapi.NewMessage(b.controlChatID, text)
		if _, err := b.api.Send(msg); err != nil {
			b.logger.WithError(err).Error("Failed to forward strategy error to control chat")
		}
	}
}
