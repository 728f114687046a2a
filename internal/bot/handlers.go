package bot

import (
	"fmt"
	"strings"

	"sieteymedia/internal/config"
	"sieteymedia/internal/game"
	"sieteymedia/internal/player"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Sender is the part of *tgbotapi.BotAPI the handlers use.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot     Sender
	cfg     *config.Config
	players player.Repository
	games   *game.Manager
	log     *zap.Logger
}

func NewHandler(bot Sender, cfg *config.Config, repo player.Repository, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		bot:     bot,
		cfg:     cfg,
		players: repo,
		games:   game.NewManager(),
		log:     log,
	}
}

// ============== helpers ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.log.Error("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		h.log.Error("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.log.Warn("failed to answer callback", zap.String("callback_id", id), zap.Error(err))
	}
}

// newGame wires a chat's game so card and outcome notifications go to that chat.
func (h *Handler) newGame(chatID int64) *game.Game {
	seed := h.cfg.Seed
	if seed != 0 {
		seed += chatID
	}

	return game.New(
		game.WithRand(game.NewRand(seed)),
		game.WithNotifier(game.NotifierFunc(func(message string) {
			h.send(chatID, message)
		})),
		game.WithLogger(h.log.With(zap.Int64("chat_id", chatID))),
	)
}

// ============== formatting ==============

func formatStatus(g *game.Game) string {
	return fmt.Sprintf("🎴 Your hand: %s\nScore: %s",
		g.Hand(), game.FormatScore(g.PlayerScore()))
}

func formatStats(p *player.Player) string {
	return fmt.Sprintf(
		"📊 Stats:\n"+
			"🎮 Rounds: %d\n"+
			"✅ Wins: %d (%.1f%%)\n"+
			"❌ Losses: %d\n"+
			"🤝 Ties: %d",
		p.Games, p.Wins, p.WinRate(), p.Losses, p.Ties)
}

// ============== commands ==============

func (h *Handler) HandleStart(chatID int64) {
	h.send(chatID,
		"🎰 Welcome to Siete y Media!\n\n"+
			"/play — start a round\n"+
			"/draw — take a card\n"+
			"/stand — stop and compare with the machine\n"+
			"/stats — your results\n"+
			"/top — best players\n"+
			"/help — rules")
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Rules:\n\n"+
			"🎯 Get as close to 7.5 as you can without going over\n\n"+
			"📊 Points:\n"+
			"• 1-7 — face value\n"+
			"• 10, 11, 12 — half a point\n"+
			"• Over 7.5 with figures in hand, each figure is taken back\n\n"+
			"🎮 You stand automatically with 4 cards.\n"+
			"🤖 The machine picks its score when the round starts.")
}

func (h *Handler) HandleStats(chatID int64) {
	p, err := h.players.GetOrCreate(chatID)
	if err != nil {
		h.log.Error("failed to load player", zap.Int64("chat_id", chatID), zap.Error(err))
		h.send(chatID, "❌ Error")
		return
	}
	h.send(chatID, formatStats(p))
}

func (h *Handler) HandleTop(chatID int64) {
	stats, err := h.players.GetTopByWins(h.cfg.TopLimit)
	if err != nil {
		h.log.Error("failed to load top players", zap.Error(err))
		h.send(chatID, "❌ Error")
		return
	}

	if len(stats) == 0 {
		h.send(chatID, "🏆 Nobody has played yet!")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 Top players:\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, s := range stats {
		medal := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			medal = medals[i]
		}
		sb.WriteString(fmt.Sprintf("%s %d wins | %d rounds (%.0f%%)\n",
			medal, s.Wins, s.Games, s.WinRate))
	}

	h.send(chatID, sb.String())
}

// HandlePlay starts a new round, abandoning any round still in progress.
func (h *Handler) HandlePlay(chatID int64) {
	g := h.games.Get(chatID)
	if g == nil {
		g = h.newGame(chatID)
		h.games.Set(chatID, g)
	}

	g.StartRound()
	h.sendWithKeyboard(chatID,
		"🎴 New round! The machine has chosen its score.\nDraw a card or stand.",
		GameKeyboard())
}

func (h *Handler) activeGame(chatID int64) *game.Game {
	g := h.games.Get(chatID)
	if g == nil || !g.IsActive() {
		return nil
	}
	return g
}

func (h *Handler) handleDraw(chatID int64, g *game.Game) {
	g.PlayerDraws()
	if h.finishRound(chatID, g) {
		return
	}
	h.sendWithKeyboard(chatID, formatStatus(g), GameKeyboard())
}

func (h *Handler) handleStand(chatID int64, g *game.Game) {
	g.PlayerStands()
	h.finishRound(chatID, g)
}

// finishRound stores the result once the game has reached an outcome.
func (h *Handler) finishRound(chatID int64, g *game.Game) bool {
	result := g.State()
	if !result.IsTerminal() {
		return false
	}

	p, err := h.players.GetOrCreate(chatID)
	if err != nil {
		h.log.Error("failed to load player", zap.Int64("chat_id", chatID), zap.Error(err))
	} else {
		p.Record(result)
		if err := h.players.Save(p); err != nil {
			h.log.Error("failed to save player", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	}

	h.sendWithKeyboard(chatID, formatStatus(g), EndGameKeyboard())
	return true
}

// ============== callbacks ==============

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID

	switch callback.Data {
	case CallbackPlayAgain:
		h.answerCallback(callback.ID, "")
		h.HandlePlay(chatID)
		return
	case CallbackStats:
		h.answerCallback(callback.ID, "")
		h.HandleStats(chatID)
		return
	}

	g := h.activeGame(chatID)
	if g == nil {
		h.answerCallback(callback.ID, "No round in progress")
		return
	}

	switch callback.Data {
	case CallbackDraw:
		h.handleDraw(chatID, g)
	case CallbackStand:
		h.handleStand(chatID, g)
	}

	h.answerCallback(callback.ID, "")
}

// ============== messages ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	// "/play@SomeBot" in group chats
	cmd := strings.ToLower(strings.SplitN(parts[0], "@", 2)[0])

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play":
		h.HandlePlay(chatID)
	case "/draw", "/stand":
		g := h.activeGame(chatID)
		if g == nil {
			h.send(chatID, "No round in progress. Use /play")
			return
		}
		if cmd == "/draw" {
			h.handleDraw(chatID, g)
		} else {
			h.handleStand(chatID, g)
		}
	case "/stats":
		h.HandleStats(chatID)
	case "/top":
		h.HandleTop(chatID)
	}
}
