package player

import (
	"database/sql"
	"errors"
	"fmt"

	"sieteymedia/internal/game"
)

// Player holds one chat's results. Only the counters are kept, not the rounds.
type Player struct {
	ChatID int64
	Wins   int
	Losses int
	Ties   int
	Games  int
}

type Stats struct {
	ChatID  int64
	Wins    int
	Ties    int
	Games   int
	WinRate float64
}

type Repository interface {
	GetOrCreate(chatID int64) (*Player, error)
	Save(player *Player) error
	GetTopByWins(limit int) ([]Stats, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetOrCreate(chatID int64) (*Player, error) {
	player := &Player{ChatID: chatID}

	err := r.db.QueryRow(`
		SELECT wins, losses, ties, games
		FROM players WHERE chat_id = ?
	`, chatID).Scan(&player.Wins, &player.Losses, &player.Ties, &player.Games)

	if errors.Is(err, sql.ErrNoRows) {
		_, err = r.db.Exec(`INSERT INTO players (chat_id) VALUES (?)`, chatID)
		if err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		return player, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (r *SQLiteRepository) Save(player *Player) error {
	_, err := r.db.Exec(`
		UPDATE players SET
			wins = ?, losses = ?, ties = ?, games = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE chat_id = ?
	`, player.Wins, player.Losses, player.Ties, player.Games, player.ChatID)

	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetTopByWins(limit int) ([]Stats, error) {
	rows, err := r.db.Query(`
		SELECT chat_id, wins, ties, games
		FROM players
		WHERE games > 0
		ORDER BY wins DESC, games ASC, chat_id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top players: %w", err)
	}
	defer rows.Close()

	var stats []Stats
	for rows.Next() {
		var s Stats
		if err := rows.Scan(&s.ChatID, &s.Wins, &s.Ties, &s.Games); err != nil {
			return nil, err
		}
		s.WinRate = winRate(s.Wins, s.Games)
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// Record counts a finished round. It returns false for a state that is not an outcome.
func (p *Player) Record(result game.State) bool {
	switch result {
	case game.PlayerWins:
		p.Wins++
	case game.PlayerLoses:
		p.Losses++
	case game.Tie:
		p.Ties++
	default:
		return false
	}
	p.Games++
	return true
}

func (p *Player) WinRate() float64 {
	return winRate(p.Wins, p.Games)
}

func winRate(wins, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games) * 100
}
