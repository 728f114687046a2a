package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"sieteymedia/internal/bot"
	"sieteymedia/internal/config"
	"sieteymedia/internal/database"
	"sieteymedia/internal/logger"
	"sieteymedia/internal/player"

	"go.uber.org/zap"
)

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

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	zl.Info("database connected", zap.String("path", cfg.DatabasePath))

	playerRepo := player.NewRepository(db.DB)

	b, err := bot.New(cfg, playerRepo, zl)
	if err != nil {
		zl.Fatal("failed to create bot", zap.Error(err))
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		b.Stop()
	}()

	if err := b.Run(); err != nil {
		zl.Fatal("bot error", zap.Error(err))
	}
}
