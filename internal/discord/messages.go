package discord

// Friendly message constants for Discord responses
const (
	MsgAlreadyPurchased  = "✅ **Already Yours!**\nYou already own that upgrade."
	MsgNotEnoughKisses   = "💸 **Not Enough Kisses!**\nKeep kissing and try again."
	MsgUpgradeNotFound   = "❓ **Unknown Upgrade**\nUse `/kiss-status` to see the available powers."
	MsgBossNotActive     = "🕊️ **No Boss Here**\nThe boss only appears once you reach enough kisses."
	MsgResetNotConfirmed = "⚠️ **Reset Cancelled**\nSet `confirm` to true to wipe your progress."
	MsgInvalidInput      = "❓ **Invalid Input**\nPlease check the command options."
	MsgServerUnavailable = "📡 **Game Server Unavailable**\nPlease try again in a moment."

	MsgGenericError = "❌ Something went wrong."
)

// Log messages
const (
	LogMsgBotRunning           = "Discord bot is now running. Press CTRL-C to exit."
	LogMsgBotReady             = "Bot is ready"
	LogMsgSessionCloseFailed   = "Failed to close Discord session"
	LogMsgNotificationsEnabled = "SSE notifications enabled"
	LogMsgActionFailed         = "Action failed"
	LogMsgDeferFailed          = "Failed to send deferred response"
	LogMsgEditFailed           = "Failed to edit interaction response"
	LogMsgRespondFailed        = "Failed to respond to interaction"
)
