package discord

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/KissClicker_Go/internal/apiclient"
)

// Command names
const (
	CommandPing        = "ping"
	CommandKiss        = "kiss"
	CommandKissStatus  = "kiss-status"
	CommandKissUpgrade = "kiss-upgrade"
	CommandKissBoss    = "kiss-boss"
	CommandKissReset   = "kiss-reset"

	optionPower   = "power"
	optionDamage  = "damage"
	optionConfirm = "confirm"
)

var (
	minUpgradePower = float64(2)
	minBossDamage   = float64(1)
	maxBossDamage   = float64(1000000)
)

// CommandFactory creates a Discord command and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, CommandHandler)

// CommandFactories lists every slash command the bot serves
func CommandFactories() []CommandFactory {
	return []CommandFactory{
		PingCommand,
		KissCommand,
		KissStatusCommand,
		KissUpgradeCommand,
		KissBossCommand,
		KissResetCommand,
	}
}

// RegisterAll registers factories with the registry
func (r *CommandRegistry) RegisterAll(factories []CommandFactory) {
	for _, factory := range factories {
		cmd, h := factory()
		r.Register(cmd, h)
	}
}

// PingCommand returns the ping command definition and handler
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandPing,
		Description: "Check if the bot is alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, _ *apiclient.Client) {
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "Pong! 💋",
			},
		}); err != nil {
			slog.Error(LogMsgRespondFailed, "command", CommandPing, "error", err)
		}
	}

	return cmd, handler
}

// KissCommand clicks once. During a boss battle the click hits the boss.
func KissCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandKiss,
		Description: "Give a kiss",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *apiclient.Client) {
		handleEmbedAction(s, i, CommandKiss, func(ctx context.Context, playerID string) (*discordgo.MessageEmbed, error) {
			out, err := client.Click(ctx, playerID)
			if err != nil {
				return nil, err
			}
			return clickEmbed(out), nil
		})
	}

	return cmd, handler
}

// KissStatusCommand shows the player's progress
func KissStatusCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandKissStatus,
		Description: "Show your kisses, hats and upgrades",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *apiclient.Client) {
		username := getInteractionUser(i).Username
		handleEmbedAction(s, i, CommandKissStatus, func(ctx context.Context, playerID string) (*discordgo.MessageEmbed, error) {
			snap, err := client.GetState(ctx, playerID)
			if err != nil {
				return nil, err
			}
			return statusEmbed(username, snap), nil
		})
	}

	return cmd, handler
}

// KissUpgradeCommand buys a click power upgrade
func KissUpgradeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandKissUpgrade,
		Description: "Buy a click power upgrade",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        optionPower,
				Description: "Click power to buy (see /kiss-status)",
				Required:    true,
				MinValue:    &minUpgradePower,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *apiclient.Client) {
		opts := optionMap(i)
		handleEmbedAction(s, i, CommandKissUpgrade, func(ctx context.Context, playerID string) (*discordgo.MessageEmbed, error) {
			opt, ok := opts[optionPower]
			if !ok {
				return nil, &apiclient.APIError{StatusCode: http.StatusBadRequest, Message: "missing power"}
			}
			out, err := client.PurchaseUpgrade(ctx, playerID, int(opt.IntValue()))
			if out != nil {
				// Rejected purchases still carry a result worth showing
				return upgradeEmbed(out), nil
			}
			return nil, err
		})
	}

	return cmd, handler
}

// KissBossCommand shows the boss battle, or strikes it when damage is given
func KissBossCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandKissBoss,
		Description: "Check on the boss battle or strike the boss",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        optionDamage,
				Description: "Damage to deal to the boss",
				Required:    false,
				MinValue:    &minBossDamage,
				MaxValue:    maxBossDamage,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *apiclient.Client) {
		opts := optionMap(i)
		handleEmbedAction(s, i, CommandKissBoss, func(ctx context.Context, playerID string) (*discordgo.MessageEmbed, error) {
			if opt, ok := opts[optionDamage]; ok {
				out, err := client.DamageBoss(ctx, playerID, int(opt.IntValue()))
				if err != nil {
					return nil, err
				}
				return bossDamageEmbed(out), nil
			}
			snap, err := client.GetState(ctx, playerID)
			if err != nil {
				return nil, err
			}
			return bossStatusEmbed(snap), nil
		})
	}

	return cmd, handler
}

// KissResetCommand wipes the player's progress
func KissResetCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandKissReset,
		Description: "Reset all your kisses, upgrades and hats",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        optionConfirm,
				Description: "Set to true to confirm the reset",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *apiclient.Client) {
		opts := optionMap(i)
		handleEmbedAction(s, i, CommandKissReset, func(ctx context.Context, playerID string) (*discordgo.MessageEmbed, error) {
			confirm := false
			if opt, ok := opts[optionConfirm]; ok {
				confirm = opt.BoolValue()
			}
			snap, err := client.Reset(ctx, playerID, confirm)
			if err != nil {
				return nil, err
			}
			return resetEmbed(snap), nil
		})
	}

	return cmd, handler
}
