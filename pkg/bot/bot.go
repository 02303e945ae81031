package bot

import (
	"errors"
	"fmt"
	"sync"
	"time"

	tele "gopkg.in/telebot.v3"

	"varlife/config"
	"varlife/pkg/logger"
	"varlife/pkg/observability"
	"varlife/pkg/session"
	"varlife/service"
)

// sender is the part of *tele.Bot used to push timer-driven updates.
type sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type Bot struct {
	Bot *tele.Bot
	Log logger.ILogger
	Cfg *config.Config
	Svc service.IServiceManager

	sender sender

	mu    sync.RWMutex
	chats map[int64]struct{}
}

func New(cfg *config.Config, svc service.IServiceManager, log logger.ILogger) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.TelegramBotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			log.Error("telegram handler failed", logger.Error(err))
		},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	bot := newBot(svc, log, b)
	bot.Bot = b
	bot.Cfg = cfg
	bot.registerHandlers()
	return bot, nil
}

func newBot(svc service.IServiceManager, log logger.ILogger, s sender) *Bot {
	bot := &Bot{
		Log:    log,
		Svc:    svc,
		sender: s,
		chats:  make(map[int64]struct{}),
	}
	svc.Session().Subscribe(bot.pushAsync)
	return bot
}

func (b *Bot) Start() {
	b.Log.Info("🤖 VarLife bot started")
	b.Bot.Start()
}

func (b *Bot) Stop() {
	b.Bot.Stop()
}

func (b *Bot) registerHandlers() {
	b.Bot.Handle("/start", b.handleStart)
	b.Bot.Handle("/screen", b.handleScreen)
	b.Bot.Handle(tele.OnText, b.handleText)

	for _, unique := range callbackUniques {
		btn := tele.Btn{Unique: unique}
		b.Bot.Handle(&btn, b.handleCallback)
	}
}

func (b *Bot) handleStart(c tele.Context) error {
	observability.BotUpdates.WithLabelValues("start").Inc()
	v := b.start(c.Chat().ID)
	return c.Send(v.Text, v.options()...)
}

func (b *Bot) handleScreen(c tele.Context) error {
	observability.BotUpdates.WithLabelValues("screen").Inc()
	v := b.current(c.Chat().ID)
	return c.Send(v.Text, v.options()...)
}

func (b *Bot) handleText(c tele.Context) error {
	observability.BotUpdates.WithLabelValues("text").Inc()
	v := b.input(c.Chat().ID, c.Text())
	return c.Send(v.Text, v.options()...)
}

func (b *Bot) handleCallback(c tele.Context) error {
	observability.BotUpdates.WithLabelValues("callback").Inc()
	cb := c.Callback()
	v, toast := b.action(c.Chat().ID, cb.Unique, cb.Data)

	if toast != "" {
		_ = c.Respond(&tele.CallbackResponse{Text: toast})
	} else {
		_ = c.Respond()
	}

	err := c.Edit(v.Text, v.options()...)
	if err == nil || errors.Is(err, tele.ErrSameMessageContent) {
		return nil
	}
	b.Log.Warning("edit failed, sending new message", logger.Error(err))
	return c.Send(v.Text, v.options()...)
}

// pushAsync sends timer-driven changes to the chat they belong to.
// Sessions opened through the HTTP API are not Telegram chats and are skipped.
func (b *Bot) pushAsync(chatID int64, ch session.Change) {
	if !ch.Async || !b.known(chatID) {
		return
	}
	v := render(ch.State, b.Svc.Session().Catalog())
	if _, err := b.sender.Send(tele.ChatID(chatID), v.Text, v.options()...); err != nil {
		b.Log.Error("failed to push screen update",
			logger.Int64("chat_id", chatID),
			logger.String("reason", string(ch.Reason)),
			logger.Error(err),
		)
	}
}

func (b *Bot) remember(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.chats[chatID] = struct{}{}
}

func (b *Bot) known(chatID int64) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.chats[chatID]
	return ok
}
