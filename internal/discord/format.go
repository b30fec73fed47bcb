package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/KissClicker_Go/internal/domain"
)

// Embed colors
const (
	ColorKiss     = 0xFF69B4
	ColorGolden   = 0xFFD700
	ColorBoss     = 0x8B0000
	ColorVictory  = 0x2ECC71
	ColorUpgrade  = 0x3498DB
	ColorRejected = 0xE67E22
	ColorReset    = 0x95A5A6
)

// FooterKissClicker is the standard embed footer
const FooterKissClicker = "Kiss Clicker"

const progressBarWidth = 10

var (
	printer   = message.NewPrinter(language.English)
	titleCase = cases.Title(language.English)
)

// formatNumber renders n with thousands separators
func formatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// formatPhase turns "boss_active" into "Boss Active"
func formatPhase(p domain.GamePhase) string {
	return titleCase.String(strings.ReplaceAll(string(p), "_", " "))
}

// progressBar draws a fixed-width bar of current/total
func progressBar(current, total int) string {
	if total <= 0 {
		return strings.Repeat("▱", progressBarWidth)
	}
	filled := current * progressBarWidth / total
	filled = max(0, min(progressBarWidth, filled))
	return strings.Repeat("▰", filled) + strings.Repeat("▱", progressBarWidth-filled)
}

func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterKissClicker,
		},
	}
}

func field(name, value string, inline bool) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: inline}
}

// stateFields are the fields every state-bearing embed shows
func stateFields(snap domain.ClickerSnapshot) []*discordgo.MessageEmbedField {
	hat := snap.State.CurrentHat
	if hat == "" {
		hat = "none yet"
	}
	fields := []*discordgo.MessageEmbedField{
		field("Kisses", snap.DisplayScore, true),
		field("Click Power", fmt.Sprintf("x%d", snap.State.ClickPower), true),
		field("Hat", hat, true),
	}
	if snap.NextMilestone != nil {
		next := snap.NextMilestone
		fields = append(fields, field("Next Hat",
			fmt.Sprintf("%s %s / %s (%s)",
				progressBar(snap.State.TotalScore, next.Threshold),
				snap.DisplayScore, formatNumber(next.Threshold), next.Label),
			false))
	}
	return fields
}

func unlockedField(unlocked []domain.Milestone) *discordgo.MessageEmbedField {
	labels := make([]string, 0, len(unlocked))
	for _, m := range unlocked {
		labels = append(labels, fmt.Sprintf("🎩 **%s** (%s)", m.Label, formatNumber(m.Threshold)))
	}
	return field("New Hats Unlocked!", strings.Join(labels, "\n"), false)
}

// clickEmbed renders the outcome of /kiss
func clickEmbed(out *domain.ClickOutcome) *discordgo.MessageEmbed {
	r := out.Result
	var embed *discordgo.MessageEmbed

	switch {
	case r.Boss != nil && r.Boss.Defeated:
		desc := fmt.Sprintf("Your final blow dealt **%d** damage. The boss is defeated!", r.Boss.Damage)
		if r.Boss.Reward != nil {
			desc += fmt.Sprintf("\nYou earned the legendary **%s**!", r.Boss.Reward.Label)
		}
		embed = createEmbed("🏆 Victory!", desc, ColorVictory)
	case r.Boss != nil:
		embed = createEmbed("⚔️ Boss Hit!",
			fmt.Sprintf("You dealt **%d** damage. Boss health: **%d**", r.Boss.Damage, r.Boss.Health),
			ColorBoss)
	case r.Critical:
		embed = createEmbed("✨ GOLDEN KISS! ✨",
			fmt.Sprintf("**+%s** kisses!", formatNumber(r.Value)), ColorGolden)
	default:
		embed = createEmbed("💋 Kiss!",
			fmt.Sprintf("**+%s** kisses", formatNumber(r.Value)), ColorKiss)
	}

	if r.Face != "" {
		embed.Description += fmt.Sprintf("\nA special face appears: `%s`", r.Face)
	}
	if r.BossStarted {
		embed.Description += "\n👹 **A boss appears!** Keep kissing to fight it."
	}

	embed.Fields = stateFields(out.Snapshot)
	if len(r.Unlocked) > 0 {
		embed.Fields = append(embed.Fields, unlockedField(r.Unlocked))
	}
	return embed
}

// statusEmbed renders /kiss-status
func statusEmbed(username string, snap *domain.ClickerSnapshot) *discordgo.MessageEmbed {
	embed := createEmbed(fmt.Sprintf("💋 %s's Kisses", username),
		fmt.Sprintf("Phase: **%s**", formatPhase(snap.Phase)), ColorKiss)
	embed.Fields = stateFields(*snap)

	if len(snap.Upgrades) > 0 {
		lines := make([]string, 0, len(snap.Upgrades))
		for _, u := range snap.Upgrades {
			mark := "🔒"
			switch {
			case u.Purchased:
				mark = "✅"
			case u.Affordable:
				mark = "💰"
			}
			lines = append(lines, fmt.Sprintf("%s x%d for %s", mark, u.Power, formatNumber(u.Cost)))
		}
		embed.Fields = append(embed.Fields, field("Upgrades", strings.Join(lines, "\n"), false))
	}

	if n := len(snap.State.UnlockedMilestones); n > 0 {
		embed.Fields = append(embed.Fields, field("Hats Collected", fmt.Sprintf("%d", n), true))
	}
	return embed
}

// upgradeEmbed renders /kiss-upgrade for both bought and rejected purchases
func upgradeEmbed(out *domain.PurchaseOutcome) *discordgo.MessageEmbed {
	r := out.Result
	switch r.Status {
	case domain.PurchaseStatusPurchased:
		embed := createEmbed("⬆️ Upgrade Purchased!",
			fmt.Sprintf("Every kiss is now worth **x%d**.", r.ClickPower), ColorUpgrade)
		if r.Deducted > 0 {
			embed.Description += fmt.Sprintf("\nSpent **%s** kisses.", formatNumber(r.Deducted))
		}
		embed.Fields = stateFields(out.Snapshot)
		return embed
	case domain.PurchaseStatusAlreadyPurchased:
		return createEmbed("✅ Already Owned",
			fmt.Sprintf("You already own the x%d upgrade.", r.Power), ColorRejected)
	default:
		missing := max(0, r.Cost-r.TotalScore)
		return createEmbed("💸 Not Enough Kisses",
			fmt.Sprintf("The x%d upgrade costs **%s**. You need **%s** more.",
				r.Power, formatNumber(r.Cost), formatNumber(missing)),
			ColorRejected)
	}
}

// bossStatusEmbed renders /kiss-boss without a damage option
func bossStatusEmbed(snap *domain.ClickerSnapshot) *discordgo.MessageEmbed {
	switch snap.Phase {
	case domain.PhaseBossActive:
		embed := createEmbed("👹 Boss Battle!",
			fmt.Sprintf("Boss health: **%d**\nEvery kiss now damages the boss.", snap.State.BossHealth), ColorBoss)
		embed.Fields = stateFields(*snap)
		return embed
	case domain.PhaseBossDefeated:
		return createEmbed("🏆 Boss Defeated",
			"You already beat the boss. Enjoy your hero hat!", ColorVictory)
	default:
		return createEmbed("🕊️ All Quiet",
			"No boss yet. Keep kissing to summon it.", ColorKiss)
	}
}

// bossDamageEmbed renders /kiss-boss with a damage option
func bossDamageEmbed(out *domain.BossOutcome) *discordgo.MessageEmbed {
	r := out.Result
	if r.Defeated {
		desc := fmt.Sprintf("You dealt **%d** damage and defeated the boss!", r.Damage)
		if r.Reward != nil {
			desc += fmt.Sprintf("\nReward: **%s**", r.Reward.Label)
		}
		embed := createEmbed("🏆 Victory!", desc, ColorVictory)
		embed.Fields = stateFields(out.Snapshot)
		return embed
	}
	embed := createEmbed("⚔️ Boss Hit!",
		fmt.Sprintf("You dealt **%d** damage. Boss health: **%d**", r.Damage, r.Health), ColorBoss)
	embed.Fields = stateFields(out.Snapshot)
	return embed
}

// resetEmbed renders /kiss-reset
func resetEmbed(snap *domain.ClickerSnapshot) *discordgo.MessageEmbed {
	embed := createEmbed("🔄 Fresh Start", "Your kisses, upgrades and hats were reset.", ColorReset)
	embed.Fields = stateFields(*snap)
	return embed
}
