package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

func TestFilter_Match(t *testing.T) {
	sss := pull(1, "pool-a", domain.RaritySSS, "Golden Whisker", false)
	ssPity := pull(2, "pool-b", domain.RaritySS, "Silver Bell", true)
	common := pull(3, "pool-a", domain.RarityR, "Plain Pebble", false)
	empty := emptyPull(4, "pool-a")
	noItem := pull(5, "pool-a", domain.RaritySSS, "ghost", true)
	noItem.Result.Item = nil

	tests := []struct {
		name     string
		query    domain.HistoryQuery
		row      domain.PullRow
		expected bool
	}{
		{"no filters match rows", domain.HistoryQuery{}, common, true},
		{"no filters match empty results", domain.HistoryQuery{}, empty, true},

		{"pool match", domain.HistoryQuery{PoolID: strPtr("pool-a")}, sss, true},
		{"pool mismatch", domain.HistoryQuery{PoolID: strPtr("pool-a")}, ssPity, false},
		{"pool match ignores case", domain.HistoryQuery{PoolID: strPtr("POOL-A")}, sss, true},

		{"rarity in set", domain.HistoryQuery{Rarities: []domain.Rarity{domain.RaritySSS, domain.RaritySS}}, ssPity, true},
		{"rarity not in set", domain.HistoryQuery{Rarities: []domain.Rarity{domain.RaritySSS}}, common, false},
		{"rarity set rejects empty result", domain.HistoryQuery{Rarities: []domain.Rarity{domain.RaritySSS}}, empty, false},
		{"rarity set rejects missing item", domain.HistoryQuery{Rarities: []domain.Rarity{domain.RaritySSS}}, noItem, false},

		{"pity only keeps pity", domain.HistoryQuery{PityOnly: true}, ssPity, true},
		{"pity only drops non-pity", domain.HistoryQuery{PityOnly: true}, sss, false},
		{"pity only drops empty result", domain.HistoryQuery{PityOnly: true}, empty, false},
		{"pity flag without item still counts", domain.HistoryQuery{PityOnly: true}, noItem, true},

		{"name substring", domain.HistoryQuery{Q: "whisk"}, sss, true},
		{"name substring ignores case", domain.HistoryQuery{Q: "GOLDEN"}, sss, true},
		{"name substring miss", domain.HistoryQuery{Q: "pebble"}, sss, false},
		{"name query trimmed", domain.HistoryQuery{Q: "  bell  "}, ssPity, true},
		{"blank query matches all", domain.HistoryQuery{Q: "   "}, empty, true},
		{"name query rejects empty result", domain.HistoryQuery{Q: "a"}, empty, false},

		{"all filters together", domain.HistoryQuery{
			PoolID:   strPtr("pool-b"),
			Rarities: []domain.Rarity{domain.RaritySS},
			PityOnly: true,
			Q:        "silver",
		}, ssPity, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewFilter(tt.query).Match(tt.row))
		})
	}
}

func TestFilter_UnicodeCaseFolding(t *testing.T) {
	row := pull(1, "pool-a", domain.RaritySS, "Éclair Charm", false)

	assert.True(t, NewFilter(domain.HistoryQuery{Q: "ÉCLAIR"}).Match(row))
	assert.True(t, NewFilter(domain.HistoryQuery{Q: "éclair"}).Match(row))
	assert.False(t, NewFilter(domain.HistoryQuery{Q: "eclair"}).Match(row), "folding does not strip accents")

	greek := pull(2, "pool-a", domain.RarityS, "ΣΟΦΙΑ", false)
	assert.True(t, NewFilter(domain.HistoryQuery{Q: "σοφια"}).Match(greek))
}
