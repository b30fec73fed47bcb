package main

import (
	"log/slog"
	"os"

	"github.com/osse101/KissClicker_Go/internal/bootstrap"
	"github.com/osse101/KissClicker_Go/internal/config"
	"github.com/osse101/KissClicker_Go/internal/discord"
)

// DefaultWebhookPort is used when DISCORD_WEBHOOK_PORT is unset
const DefaultWebhookPort = "8082"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	bootstrap.SetupConsoleLogger(cfg)

	if err := config.ValidateDiscordEnv(); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Configured API URL", "url", cfg.APIURL)

	bot, err := discord.New(discord.Config{
		Token:                 cfg.DiscordToken,
		AppID:                 cfg.DiscordAppID,
		GuildID:               cfg.DiscordGuildID,
		APIURL:                cfg.APIURL,
		APIKey:                cfg.APIKey,
		NotificationChannelID: os.Getenv("DISCORD_NOTIFICATION_CHANNEL_ID"),
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	webhookPort := os.Getenv("DISCORD_WEBHOOK_PORT")
	if webhookPort == "" {
		webhookPort = DefaultWebhookPort
	}
	httpServer := discord.NewHTTPServer(webhookPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	bot.Registry.RegisterAll(discord.CommandFactories())

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// The bot still works if the commands were registered before
		slog.Error("Failed to register commands", "error", err)
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}
