package history

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

// Filter applies the history predicates that the ledger read cannot.
// Checks run in order: pool, rarity set, pity flag, item name.
type Filter struct {
	poolID   *string
	rarities map[domain.Rarity]struct{}
	pityOnly bool
	needle   string
	fold     cases.Caser
}

// NewFilter builds a filter from a query. An empty rarity set and an empty Q
// match everything.
func NewFilter(q domain.HistoryQuery) *Filter {
	f := &Filter{
		poolID:   q.PoolID,
		pityOnly: q.PityOnly,
		fold:     cases.Fold(),
	}
	if len(q.Rarities) > 0 {
		f.rarities = make(map[domain.Rarity]struct{}, len(q.Rarities))
		for _, r := range q.Rarities {
			f.rarities[r] = struct{}{}
		}
	}
	if needle := strings.TrimSpace(q.Q); needle != "" {
		f.needle = f.fold.String(needle)
	}
	return f
}

// Match reports whether row passes every configured predicate
func (f *Filter) Match(row domain.PullRow) bool {
	if f.poolID != nil && !strings.EqualFold(row.PoolID, *f.poolID) {
		return false
	}

	item := rowItem(row)

	if f.rarities != nil {
		if item == nil || item.Rarity == nil {
			return false
		}
		if _, ok := f.rarities[*item.Rarity]; !ok {
			return false
		}
	}

	if f.pityOnly && (row.Result == nil || !row.Result.IsPity) {
		return false
	}

	if f.needle != "" {
		if item == nil || item.Name == nil {
			return false
		}
		if !strings.Contains(f.fold.String(*item.Name), f.needle) {
			return false
		}
	}

	return true
}

func rowItem(row domain.PullRow) *domain.PullRowItem {
	if row.Result == nil {
		return nil
	}
	return row.Result.Item
}
