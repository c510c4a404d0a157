package domain

import "time"

// Pool is an active draw offering
type Pool struct {
	PoolID                  string   `json:"pool_id"`
	Name                    string   `json:"name"`
	Kind                    PoolKind `json:"kind"`
	BannerImageURL          *string  `json:"banner_image_url"`
	CostPoints              int      `json:"cost_points"`
	FreePullIntervalSeconds *int     `json:"free_pull_interval_seconds"`
	PaidPullCooldownSeconds int      `json:"paid_pull_cooldown_seconds"`
	PityThreshold           *int     `json:"pity_threshold"`
	PityRarity              *Rarity  `json:"pity_rarity"`
	RateR                   float64  `json:"rate_r"`
	RateS                   float64  `json:"rate_s"`
	RateSS                  float64  `json:"rate_ss"`
	RateSSS                 float64  `json:"rate_sss"`
}

// PoolItem is an item that can drop from a pool
type PoolItem struct {
	ItemID       string  `json:"item_id"`
	Name         string  `json:"name"`
	Rarity       Rarity  `json:"rarity"`
	RoleID       *string `json:"role_id"`
	RewardPoints int     `json:"reward_points"`
}

// UserStatus is a member's balance and per-pool draw state
type UserStatus struct {
	Balance         int        `json:"balance"`
	PityCounter     int        `json:"pity_counter"`
	FreeAvailableAt *time.Time `json:"free_available_at"`
	PaidAvailableAt *time.Time `json:"paid_available_at"`
}
