package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/wangandai/ascentbot/internal/common/clock"
	"github.com/wangandai/ascentbot/internal/config"
	"github.com/wangandai/ascentbot/internal/handlers/discord"
	"github.com/wangandai/ascentbot/internal/repositories/storage"
	guildService "github.com/wangandai/ascentbot/internal/services/guild"
	"github.com/wangandai/ascentbot/internal/services/roster"
	"github.com/wangandai/ascentbot/internal/services/scheduler"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Local development keeps settings in a .env file; in production the
	// environment is set directly and the file is absent
	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.DiscordToken == "" {
		logger.Fatal().Msg("DISCORD_TOKEN environment variable is required")
	}

	zoneClock, err := clock.NewZone(cfg.Timezone)
	if err != nil {
		logger.Fatal().Err(err).Str("timezone", cfg.Timezone).Msg("failed to load timezone")
	}

	// Initialize the blob store
	var repo storage.Repository
	switch cfg.Storage {
	case config.StorageRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		repo, err = storage.NewRedis(&storage.RedisConfig{
			RedisClient: redisClient,
		})
	case config.StorageLocal:
		repo, err = storage.NewLocal(&storage.LocalConfig{
			Dir: cfg.DataDir,
		})
	}
	if err != nil {
		logger.Fatal().Err(err).Str("storage", cfg.Storage).Msg("failed to create storage repository")
	}

	// Initialize the guild registry service
	guildSvc, err := guildService.New(&guildService.Config{
		Storage:     repo,
		RegistryKey: cfg.RegistryKey(),
		Logger:      logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create guild service")
	}

	if err := guildSvc.Load(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("failed to load guild registry")
	}

	// The roster feed is optional; /fort roster is disabled without it
	var rosterClient roster.Client
	if cfg.FortRosterURL != "" {
		rosterClient, err = roster.NewHTTP(&roster.Config{
			URL: cfg.FortRosterURL,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create roster client")
		}
	}

	// Initialize the Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.DevGuildID,
		GuildService:  guildSvc,
		RosterClient:  rosterClient,
		Clock:         zoneClock,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	// The bot delivers scheduler notifications
	sched, err := scheduler.New(&scheduler.Config{
		Guilds:   guildSvc,
		Notifier: bot,
		Clock:    zoneClock,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create scheduler")
	}
	sched.Start()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	sched.Stop()
	if err := bot.Stop(); err != nil {
		logger.Error().Err(err).Msg("error stopping bot")
	}

	logger.Info().Msg("bot has been shut down")
}
