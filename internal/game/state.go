package game

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type State int

const (
	NotStarted State = iota
	PlayerTurn
	PlayerWins
	PlayerLoses
	Tie
)

var stateNames = []string{"not-started", "player-turn", "player-wins", "player-loses", "tie"}

func (s State) String() string {
	if s < NotStarted || s > Tie {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// IsTerminal reports whether the round is over.
func (s State) IsTerminal() bool {
	return s == PlayerWins || s == PlayerLoses || s == Tie
}

// The player stands automatically once the hand reaches this size.
const maxHandSize = 4

// Notifier receives the messages a round produces: every card drawn and the outcome.
type Notifier interface {
	Notify(message string)
}

type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

type discard struct{}

func (discard) Notify(string) {}

type Option func(*Game)

// WithRand sets the source used for shuffling and the machine's score.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

func WithNotifier(n Notifier) Option {
	return func(g *Game) {
		if n != nil {
			g.notifier = n
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// Game plays rounds of siete y media against the machine.
type Game struct {
	deck          *Deck
	hand          *Hand
	state         State
	opponentScore float64
	roundID       uuid.UUID

	rng      *rand.Rand
	notifier Notifier
	log      *zap.Logger
}

func New(opts ...Option) *Game {
	g := &Game{
		state:    NotStarted,
		notifier: discard{},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewRand(0)
	}

	g.deck = NewDeck(g.rng)
	g.hand = NewHand()
	return g
}

func (g *Game) State() State { return g.state }
func (g *Game) OpponentScore() float64 { return g.opponentScore }
func (g *Game) PlayerScore() float64 { return g.hand.Score() }
func (g *Game) Hand() *Hand { return g.hand }
func (g *Game) RoundID() uuid.UUID { return g.roundID }
func (g *Game) DeckRemaining() int { return g.deck.Remaining() }
func (g *Game) IsActive() bool { return g.state == PlayerTurn }

// StartRound deals a fresh shuffled deck and an empty hand, and fixes the
// machine's score for the round. It can be called in any state.
func (g *Game) StartRound() {
	g.deck = NewDeck(g.rng)
	g.deck.Shuffle()
	g.hand = NewHand()

	g.opponentScore = float64(g.rng.Intn(7) + 1)
	if g.rng.Intn(2) == 0 {
		g.opponentScore += faceValue
	}

	g.roundID = uuid.New()
	g.state = PlayerTurn

	g.log.Debug("round started",
		zap.String("round_id", g.roundID.String()),
		zap.Float64("opponent_score", g.opponentScore))
}

// PlayerDraws deals one card to the player. It does nothing outside the
// player's turn or when the deck is empty.
func (g *Game) PlayerDraws() {
	if g.state != PlayerTurn {
		return
	}

	card, ok := g.deck.Draw()
	if !ok {
		return
	}

	g.hand.AddCard(card)
	g.log.Debug("card drawn",
		zap.String("round_id", g.roundID.String()),
		zap.Stringer("card", card),
		zap.Int("hand_size", g.hand.Size()))
	g.notifier.Notify("You received a card: " + card.Description())

	if g.hand.Size() >= maxHandSize {
		g.PlayerStands()
	}
}

// PlayerStands ends the round. It does nothing outside the player's turn.
func (g *Game) PlayerStands() {
	if g.state != PlayerTurn {
		return
	}
	g.finish()
}

func (g *Game) finish() {
	playerScore := g.hand.Score()
	g.state = Resolve(playerScore, g.opponentScore)

	g.log.Info("round finished",
		zap.String("round_id", g.roundID.String()),
		zap.Stringer("result", g.state),
		zap.Float64("player_score", playerScore),
		zap.Float64("opponent_score", g.opponentScore))
	g.notifier.Notify(OutcomeMessage(g.state, playerScore, g.opponentScore))
}

// Resolve decides a round from both scores.
func Resolve(playerScore, opponentScore float64) State {
	switch {
	case playerScore > Target:
		return PlayerLoses
	case playerScore > opponentScore || opponentScore > Target:
		return PlayerWins
	case playerScore == opponentScore:
		return Tie
	default:
		return PlayerLoses
	}
}

// OutcomeMessage returns the text announcing a finished round, or "" if the
// state is not terminal.
func OutcomeMessage(state State, playerScore, opponentScore float64) string {
	var prefix string
	switch state {
	case PlayerWins:
		prefix = "You won."
	case PlayerLoses:
		prefix = "You lost."
	case Tie:
		prefix = "It's a tie."
	default:
		return ""
	}
	return fmt.Sprintf("%s Player: %s - Machine: %s",
		prefix, FormatScore(playerScore), FormatScore(opponentScore))
}

// Manager keeps one game per chat.
type Manager struct {
	games map[int64]*Game
	mu    sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		games: make(map[int64]*Game),
	}
}

func (m *Manager) Get(chatID int64) *Game {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.games[chatID]
}

func (m *Manager) Set(chatID int64, g *Game) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[chatID] = g
}

func (m *Manager) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, chatID)
}
