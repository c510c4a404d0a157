package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/osse101/tinklepaw-gacha/internal/discord"
	"github.com/osse101/tinklepaw-gacha/internal/logger"
)

// Default values for optional configuration
const (
	DefaultHealthPort = "8082"
	DefaultAPIURL     = "http://localhost:8080"
)

// CommandFactory creates a Discord command and its handler.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	_ = godotenv.Load()

	setupLogger()

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	httpServer := discord.NewHTTPServer(cfg.HealthPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	registerCommands(bot, getCommandFactories())

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}

	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// Commands registered by an earlier run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
	}
}

// setupLogger configures structured logging the same way the API does
func setupLogger() {
	logger.InitLogger(logger.NewConfig(
		getEnv("LOG_LEVEL", "info"),
		getEnv("LOG_FORMAT", "text"),
		"tinklepaw-gacha-discord",
		getEnv("VERSION", "dev"),
		getEnv("ENVIRONMENT", "dev"),
		false,
	))
}

// loadConfig loads and validates Discord bot configuration from environment variables.
func loadConfig() (discord.Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return discord.Config{}, errors.New("DISCORD_TOKEN is required")
	}

	appID := os.Getenv("DISCORD_APP_ID")
	if appID == "" {
		return discord.Config{}, errors.New("DISCORD_APP_ID is required")
	}

	apiURL := getEnv("API_URL", DefaultAPIURL)
	slog.Info("Configured API URL", "url", apiURL)

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		slog.Warn("API_KEY not set, discord bot requests may fail")
	}

	return discord.Config{
		Token:      token,
		AppID:      appID,
		APIURL:     apiURL,
		APIKey:     apiKey,
		HealthPort: getEnv("DISCORD_HEALTH_PORT", DefaultHealthPort),
	}, nil
}

// getCommandFactories returns every slash command the bot serves
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		discord.DrawCommand,
		discord.HistoryCommand,
		discord.StatusCommand,
		discord.PoolsCommand,
	}
}

// registerCommands registers all provided command factories with the bot's registry.
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
