package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rolld/internal/common/clock"
	"github.com/KirkDiggler/rolld/internal/common/logger"
	"github.com/KirkDiggler/rolld/internal/common/uuid"
	"github.com/KirkDiggler/rolld/internal/config"
	"github.com/KirkDiggler/rolld/internal/dice"
	"github.com/KirkDiggler/rolld/internal/handlers/discord"
	"github.com/KirkDiggler/rolld/internal/repositories/roll_history"
	diceService "github.com/KirkDiggler/rolld/internal/services/dice"
	"github.com/KirkDiggler/rolld/internal/services/messaging"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		zl.Fatal("failed to connect to Redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	historyRepo, err := roll_history.NewRedis(&roll_history.Config{
		RedisClient: redisClient,
		MaxEntries:  cfg.HistoryLimit,
		TTL:         cfg.HistoryTTL,
	})
	if err != nil {
		zl.Fatal("failed to create roll history repository", zap.Error(err))
	}

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{
		Seed: cfg.DiceSeed,
	})

	diceSvc, err := diceService.New(&diceService.Config{
		DiceRoller:    diceRoller,
		HistoryRepo:   historyRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        zl.Named("dice"),
		MaxDiceCount:  cfg.MaxDice,
	})
	if err != nil {
		zl.Fatal("failed to create dice service", zap.Error(err))
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		DiceRoller: diceRoller,
	})
	if err != nil {
		zl.Fatal("failed to create messaging service", zap.Error(err))
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		DiceService:      diceSvc,
		MessagingService: messagingSvc,
		Logger:           zl.Named("discord"),
	})
	if err != nil {
		zl.Fatal("failed to create Discord bot", zap.Error(err))
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		zl.Fatal("failed to start Discord bot", zap.Error(err))
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		zl.Error("error stopping bot", zap.Error(err))
	}

	zl.Info("bot has been shut down")
}
