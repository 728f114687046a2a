package main

import (
	"fmt"
	"log"

	"sieteymedia/internal/config"
	"sieteymedia/internal/game"
	"sieteymedia/internal/logger"

	"go.uber.org/zap"
)

// Plays one scripted round against the machine and prints what happens.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	g := game.New(
		game.WithRand(game.NewRand(cfg.Seed)),
		game.WithNotifier(game.NotifierFunc(func(message string) {
			fmt.Println(message)
		})),
		game.WithLogger(zl),
	)

	g.StartRound()
	g.PlayerDraws()
	g.PlayerDraws()
	g.PlayerDraws()
	g.PlayerDraws()
	// the fourth card already ended the round, so this is ignored
	g.PlayerStands()

	zl.Debug("demo finished", zap.Stringer("result", g.State()))
}
