package discord

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/KissClicker_Go/internal/apiclient"
	"github.com/osse101/KissClicker_Go/internal/handler"
)

// commandTimeout bounds the API calls made for one interaction
const commandTimeout = 15 * time.Second

// deferResponse acknowledges an interaction with a deferred message.
// Required before any API call that might take longer than 3 seconds.
// Returns false if deferral failed (should return early from handler).
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// respondError replaces the deferred response with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error(LogMsgEditFailed, "error", err)
	}
}

// sendEmbed replaces the deferred response with an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error(LogMsgEditFailed, "error", err)
	}
}

// handleEmbedAction defers the interaction, runs action against the API
// and sends the embed it builds. Errors become friendly messages.
func handleEmbedAction(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	name string,
	action func(ctx context.Context, playerID string) (*discordgo.MessageEmbed, error),
) {
	if !deferResponse(s, i) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	user := getInteractionUser(i)
	embed, err := action(ctx, user.ID)
	if err != nil {
		slog.Error(LogMsgActionFailed, "command", name, "user_id", user.ID, "error", err)
		respondError(s, i, formatFriendlyError(err))
		return
	}
	sendEmbed(s, i, embed)
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}

// optionMap indexes command options by name
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// formatFriendlyError maps API failures to user-facing messages
func formatFriendlyError(err error) string {
	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) {
		return MsgServerUnavailable
	}

	switch apiErr.Message {
	case handler.ErrMsgAlreadyPurchasedErr:
		return MsgAlreadyPurchased
	case handler.ErrMsgNotEnoughKissesErr:
		return MsgNotEnoughKisses
	case handler.ErrMsgUpgradeNotFoundErr:
		return MsgUpgradeNotFound
	case handler.ErrMsgBossNotActiveErr:
		return MsgBossNotActive
	case handler.ErrMsgResetNotConfirmed:
		return MsgResetNotConfirmed
	}

	switch {
	case apiErr.StatusCode == http.StatusBadRequest:
		return MsgInvalidInput
	case apiErr.StatusCode >= http.StatusInternalServerError:
		return MsgServerUnavailable
	default:
		return "❌ " + apiErr.Message
	}
}
