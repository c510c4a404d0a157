package postgres

// SQLSTATE codes the draw procedure can surface under concurrency
const (
	SQLStateDeadlockDetected     = "40P01"
	SQLStateLockNotAvailable     = "55P03"
	SQLStateSerializationFailure = "40001"
	SQLStateQueryCanceled        = "57014"
)

// RetryAfterDetailKey prefixes the millisecond retry hint in an error DETAIL
const RetryAfterDetailKey = "retry_after_ms="

// ============================================================================
// Queries
// ============================================================================

const (
	queryPerformDraw = `
		SELECT out_item_id::text, out_name, out_rarity, out_discord_role_id,
		       out_reward_points, out_is_variant, out_is_free, out_refund_points, out_new_balance
		FROM nyang.perform_gacha_draw($1, $2::uuid)`

	queryListPulls = `
		SELECT p.pull_id::text, p.created_at, p.pool_id::text, p.is_free, p.spent_points,
		       gp.name, gp.kind,
		       r.item_id::text, r.qty, r.is_pity, r.is_variant,
		       i.name, i.rarity, i.discord_role_id, i.reward_points
		FROM nyang.gacha_pulls p
		LEFT JOIN nyang.gacha_pools gp ON gp.pool_id = p.pool_id
		LEFT JOIN LATERAL (
			SELECT pr.item_id, pr.qty, pr.is_pity, pr.is_variant
			FROM nyang.gacha_pull_results pr
			WHERE pr.pull_id = p.pull_id
			ORDER BY pr.item_id
			LIMIT 1
		) r ON TRUE
		LEFT JOIN nyang.items i ON i.item_id = r.item_id
		WHERE p.discord_user_id = $1
		ORDER BY p.created_at DESC, p.pull_id DESC
		OFFSET $2 LIMIT $3`

	queryListActivePools = `
		SELECT pool_id::text, name, kind, banner_image_url, cost_points,
		       free_pull_interval_seconds, paid_pull_cooldown_seconds,
		       pity_threshold, pity_rarity,
		       rate_r::float8, rate_s::float8, rate_ss::float8, rate_sss::float8
		FROM nyang.gacha_pools
		WHERE is_active
		ORDER BY updated_at DESC`

	queryListPoolItems = `
		SELECT i.item_id::text, i.name, i.rarity, i.discord_role_id, i.reward_points
		FROM nyang.gacha_pool_items pi
		JOIN nyang.items i ON i.item_id = pi.item_id
		WHERE pi.pool_id = $1::uuid
		ORDER BY CASE i.rarity WHEN 'SSS' THEN 0 WHEN 'SS' THEN 1 WHEN 'S' THEN 2 ELSE 3 END, i.name`

	queryBalance = `SELECT balance FROM nyang.point_balances WHERE discord_user_id = $1`

	queryUserState = `
		SELECT pity_counter, free_available_at, paid_available_at
		FROM nyang.gacha_user_state
		WHERE discord_user_id = $1 AND pool_id = $2::uuid`
)

// ============================================================================
// Error Contexts
// ============================================================================

const (
	ErrContextListPulls     = "failed to list pulls"
	ErrContextScanPull      = "failed to scan pull"
	ErrContextListPools     = "failed to list pools"
	ErrContextScanPool      = "failed to scan pool"
	ErrContextListPoolItems = "failed to list pool items"
	ErrContextScanPoolItem  = "failed to scan pool item"
	ErrContextGetBalance    = "failed to get balance"
	ErrContextGetUserState  = "failed to get user state"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgDrawProcedureFailed = "Draw procedure failed"
	LogMsgLedgerReadFailed    = "Pull ledger read failed"
)
