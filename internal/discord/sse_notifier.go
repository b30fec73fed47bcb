package discord

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/KissClicker_Go/internal/sse"
)

// channelSender posts embeds to a Discord channel
type channelSender interface {
	SendChannelEmbed(channelID string, embed *discordgo.MessageEmbed) error
}

// SSENotifier announces boss battle transitions in a Discord channel.
// Player ids are Discord user ids, so they render as mentions.
type SSENotifier struct {
	sender    channelSender
	channelID string
}

// NewSSENotifier creates a new SSE notifier
func NewSSENotifier(sender channelSender, channelID string) *SSENotifier {
	return &SSENotifier{sender: sender, channelID: channelID}
}

// RegisterHandlers registers all SSE event handlers with the client
func (n *SSENotifier) RegisterHandlers(client *SSEClient) {
	client.OnEvent(sse.EventTypeBossStarted, n.handleBossStarted)
	client.OnEvent(sse.EventTypeBossDefeated, n.handleBossDefeated)
}

func (n *SSENotifier) handleBossStarted(event SSEEvent) error {
	var payload sse.BossPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		slog.Warn(sseLogMsgParseError, "error", err, "event_type", event.Type)
		return nil
	}

	embed := createEmbed("👹 A Boss Appears!",
		fmt.Sprintf("<@%s> kissed so much that a boss showed up! It has **%d** health.",
			payload.PlayerID, payload.Health),
		ColorBoss)
	return n.send(event, embed)
}

func (n *SSENotifier) handleBossDefeated(event SSEEvent) error {
	var payload sse.BossPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		slog.Warn(sseLogMsgParseError, "error", err, "event_type", event.Type)
		return nil
	}

	desc := fmt.Sprintf("<@%s> defeated the boss!", payload.PlayerID)
	if payload.Reward != nil {
		desc += fmt.Sprintf(" They earned the **%s**.", payload.Reward.Label)
	}
	return n.send(event, createEmbed("🏆 Boss Defeated!", desc, ColorVictory))
}

func (n *SSENotifier) send(event SSEEvent, embed *discordgo.MessageEmbed) error {
	if n.channelID == "" {
		return nil
	}
	if err := n.sender.SendChannelEmbed(n.channelID, embed); err != nil {
		slog.Error(sseLogMsgNotificationError, "event_type", event.Type, "error", err)
		return err
	}
	slog.Info(sseLogMsgNotificationSent, "event_type", event.Type, "channel_id", n.channelID)
	return nil
}
