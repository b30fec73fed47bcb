package discord

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/KissClicker_Go/internal/apiclient"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Client   *apiclient.Client
	AppID    string
	GuildID  string
	Registry *CommandRegistry

	notificationChannelID string
	events                *SSEClient
}

// Config holds the bot configuration
type Config struct {
	Token   string
	AppID   string
	GuildID string // empty registers global commands
	APIURL  string
	APIKey  string

	// NotificationChannelID receives boss and boss-hat announcements when set
	NotificationChannelID string
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session:               s,
		Client:                apiclient.New(cfg.APIURL, cfg.APIKey),
		AppID:                 cfg.AppID,
		GuildID:               cfg.GuildID,
		Registry:              NewCommandRegistry(),
		notificationChannelID: cfg.NotificationChannelID,
	}, nil
}

// Start opens the gateway connection and, with a notification channel
// configured, starts following the API event stream
func (b *Bot) Start(ctx context.Context) error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if b.notificationChannelID != "" {
		b.events = NewSSEClient(b.Client.BaseURL, b.Client.APIKey, NotifiedEventTypes)
		NewSSENotifier(b, b.notificationChannelID).RegisterHandlers(b.events)
		b.events.Start(ctx)
		slog.Info(LogMsgNotificationsEnabled, "channel_id", b.notificationChannelID)
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	if b.events != nil {
		b.events.Stop()
	}
	if err := b.Session.Close(); err != nil {
		slog.Warn(LogMsgSessionCloseFailed, "error", err)
	}
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := b.Start(ctx); err != nil {
		return err
	}
	defer b.Stop()

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

// SendChannelEmbed posts an embed to a channel outside of any interaction
func (b *Bot) SendChannelEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	if channelID == "" {
		return fmt.Errorf("no channel configured")
	}
	_, err := b.Session.ChannelMessageSendEmbed(channelID, embed)
	return err
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Client)
	}
}
