package discord

// Friendly message constants for Discord responses
const (
	// Points
	MsgInsufficientPoints = "💸 **Not Enough Points!**\nYou need more points for this pull."

	// Pools
	MsgNoActivePool = "🎪 **No Active Pool**\nThere is no gacha running right now."
	MsgPoolNotFound = "❓ **Pool Not Found**\nPick a pool from the suggestions."
	MsgInvalidPool  = "❓ **Unknown Pool**\nPick a pool from the suggestions."

	// Cooldowns
	MsgCooldownActive = "⏳ **Whoa there!**\nYour paid pull is still on cooldown."

	MsgServiceUnavailable = "🛠️ The gacha is busy right now. Try again in a moment."
	MsgGenericError       = "❌ Something went wrong."
)

// Display strings for gacha embeds
const (
	TitleDrawResults   = "🎰 Gacha Results"
	TitleDrawFailed    = "🎰 No Pulls Completed"
	TitleHistory       = "📜 Pull History"
	TitleStatus        = "🎟️ Gacha Status"
	TitlePools         = "🎪 Active Pools"
	MsgNoHistory       = "No pulls match those filters yet."
	MsgNoPools         = "No pools are running right now."
	MsgHistoryMore     = "More results: use offset %d"
	MsgHistoryEnd      = "End of history"
	MsgPartialFormat   = "⚠️ **%d of %d pulls succeeded**"
	MsgBalanceFormat   = "Balance: %d pts"
	MsgUnknownItemName = "Unknown item"
	MsgUnknownPoolName = "Unknown pool"
)
