package domain

// Rarity is the rarity tier of a gacha item
type Rarity string

const (
	RarityR   Rarity = "R"
	RarityS   Rarity = "S"
	RaritySS  Rarity = "SS"
	RaritySSS Rarity = "SSS"
)

// Rarities lists every tier from highest to lowest, the order results are displayed in.
var Rarities = []Rarity{RaritySSS, RaritySS, RarityS, RarityR}

// ParseRarity returns the rarity for s and whether it is a known tier.
// Matching is exact: "sss" is not a rarity.
func ParseRarity(s string) (Rarity, bool) {
	switch Rarity(s) {
	case RarityR, RarityS, RaritySS, RaritySSS:
		return Rarity(s), true
	}
	return "", false
}

// Batch size bounds for a single draw request
const (
	MinDrawAmount = 1
	MaxDrawAmount = 10
)

// DrawRequest asks for Amount sequential pulls against a pool.
// A nil PoolID lets the remote procedure pick the default active pool.
type DrawRequest struct {
	UserID string
	PoolID *string
	Amount int
}

// ClampedAmount returns Amount forced into [MinDrawAmount, MaxDrawAmount].
func (r DrawRequest) ClampedAmount() int {
	switch {
	case r.Amount < MinDrawAmount:
		return MinDrawAmount
	case r.Amount > MaxDrawAmount:
		return MaxDrawAmount
	default:
		return r.Amount
	}
}

// DrawUnitOutcome is the result of one successful remote draw call.
// IsVariant means the remote procedure judged the item a duplicate and
// substituted a refund or variant reward.
type DrawUnitOutcome struct {
	ItemID       string  `json:"item_id"`
	Name         string  `json:"name"`
	Rarity       Rarity  `json:"rarity"`
	RoleID       *string `json:"role_id"`
	RewardPoints int     `json:"reward_points"`
	IsVariant    bool    `json:"is_variant"`
	IsFree       bool    `json:"is_free"`
	RefundPoints int     `json:"refund_points"`
	NewBalance   int     `json:"new_balance"`
}

// BatchOutcome is the caller-facing account of a draw request.
// CompletedAmount always equals len(Results) and Partial is set exactly when
// fewer units completed than were requested.
type BatchOutcome struct {
	Results         []DrawUnitOutcome `json:"results"`
	RequestedAmount int               `json:"requested_amount"`
	CompletedAmount int               `json:"completed_amount"`
	Partial         bool              `json:"partial"`
	Warning         *string           `json:"warning,omitempty"`
}

// NewBatchOutcome builds an outcome whose derived fields are consistent with results.
func NewBatchOutcome(results []DrawUnitOutcome, requested int, warning *string) *BatchOutcome {
	if results == nil {
		results = []DrawUnitOutcome{}
	}
	return &BatchOutcome{
		Results:         results,
		RequestedAmount: requested,
		CompletedAmount: len(results),
		Partial:         len(results) < requested,
		Warning:         warning,
	}
}
