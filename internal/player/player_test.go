package player

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sieteymedia/internal/database"
	"sieteymedia/internal/game"
)

func newRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "players.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db.DB)
}

func TestPlayerRecord(t *testing.T) {
	p := &Player{ChatID: 1}

	assert.True(t, p.Record(game.PlayerWins))
	assert.True(t, p.Record(game.PlayerWins))
	assert.True(t, p.Record(game.PlayerLoses))
	assert.True(t, p.Record(game.Tie))
	assert.False(t, p.Record(game.PlayerTurn))
	assert.False(t, p.Record(game.NotStarted))

	assert.Equal(t, Player{ChatID: 1, Wins: 2, Losses: 1, Ties: 1, Games: 4}, *p)
	assert.Equal(t, 50.0, p.WinRate())
	assert.Equal(t, 0.0, (&Player{}).WinRate())
}

func TestSQLiteRepository(t *testing.T) {
	t.Run("creates missing players", func(t *testing.T) {
		repo := newRepo(t)

		p, err := repo.GetOrCreate(42)
		require.NoError(t, err)
		assert.Equal(t, &Player{ChatID: 42}, p)

		again, err := repo.GetOrCreate(42)
		require.NoError(t, err)
		assert.Equal(t, p, again)
	})

	t.Run("saves counters", func(t *testing.T) {
		repo := newRepo(t)

		p, err := repo.GetOrCreate(7)
		require.NoError(t, err)
		p.Record(game.PlayerWins)
		p.Record(game.Tie)
		require.NoError(t, repo.Save(p))

		loaded, err := repo.GetOrCreate(7)
		require.NoError(t, err)
		assert.Equal(t, Player{ChatID: 7, Wins: 1, Ties: 1, Games: 2}, *loaded)
	})

	t.Run("top by wins", func(t *testing.T) {
		repo := newRepo(t)

		results := map[int64][]game.State{
			1: {game.PlayerWins, game.PlayerLoses},
			2: {game.PlayerWins, game.PlayerWins, game.PlayerWins},
			3: {game.PlayerLoses},
		}
		for chatID, rounds := range results {
			p, err := repo.GetOrCreate(chatID)
			require.NoError(t, err)
			for _, r := range rounds {
				p.Record(r)
			}
			require.NoError(t, repo.Save(p))
		}
		_, err := repo.GetOrCreate(4)
		require.NoError(t, err)

		top, err := repo.GetTopByWins(2)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, Stats{ChatID: 2, Wins: 3, Games: 3, WinRate: 100}, top[0])
		assert.Equal(t, Stats{ChatID: 1, Wins: 1, Games: 2, WinRate: 50}, top[1])

		all, err := repo.GetTopByWins(10)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}
