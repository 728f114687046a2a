package bot

import (
	"sieteymedia/internal/config"
	"sieteymedia/internal/player"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	log     *zap.Logger
}

func New(cfg *config.Config, repo player.Repository, log *zap.Logger) (*Bot, error) {
	if err := cfg.RequireBotToken(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		handler: NewHandler(api, cfg, repo, log),
		log:     log,
	}, nil
}

// Run handles updates one at a time until Stop is called. Games are not safe
// for concurrent use, so updates are never dispatched to goroutines.
func (b *Bot) Run() error {
	b.log.Info("bot started", zap.String("username", b.api.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			b.handler.HandleCallback(update.CallbackQuery)
			continue
		}

		if update.Message != nil {
			b.handler.HandleMessage(update.Message)
		}
	}

	b.log.Info("bot stopped")
	return nil
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}
