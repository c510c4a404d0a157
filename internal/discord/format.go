package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

// Embed colors per rarity
const (
	ColorSSS     = 0xf1c40f
	ColorSS      = 0x9b59b6
	ColorS       = 0x3498db
	ColorR       = 0x95a5a6
	ColorWarning = 0xe67e22
	ColorInfo    = 0x1abc9c
)

const historyTimeLayout = "2006-01-02 15:04"

func rarityColor(r domain.Rarity) int {
	switch r {
	case domain.RaritySSS:
		return ColorSSS
	case domain.RaritySS:
		return ColorSS
	case domain.RarityS:
		return ColorS
	default:
		return ColorR
	}
}

// formatDrawOutcome renders a batch grouped by rarity from SSS down to R.
// It returns the description and the embed color of the best pull.
func formatDrawOutcome(o *domain.BatchOutcome) (string, int) {
	var sb strings.Builder

	if o.Partial {
		fmt.Fprintf(&sb, MsgPartialFormat, o.CompletedAmount, o.RequestedAmount)
		sb.WriteString("\n")
		if o.Warning != nil && *o.Warning != "" {
			fmt.Fprintf(&sb, "> %s\n", *o.Warning)
		}
		if len(o.Results) > 0 {
			sb.WriteString("\n")
		}
	}

	byRarity := make(map[domain.Rarity][]domain.DrawUnitOutcome, len(domain.Rarities))
	for _, r := range o.Results {
		byRarity[r.Rarity] = append(byRarity[r.Rarity], r)
	}

	color := 0
	for _, rarity := range domain.Rarities {
		group := byRarity[rarity]
		if len(group) == 0 {
			continue
		}
		if color == 0 {
			color = rarityColor(rarity)
		}
		fmt.Fprintf(&sb, "**%s** ×%d\n", rarity, len(group))
		for _, r := range group {
			sb.WriteString(formatDrawLine(r))
			sb.WriteString("\n")
		}
	}

	if o.Partial || color == 0 {
		color = ColorWarning
	}
	return strings.TrimRight(sb.String(), "\n"), color
}

func formatDrawLine(r domain.DrawUnitOutcome) string {
	line := "• " + r.Name
	var tags []string
	if r.IsFree {
		tags = append(tags, "free")
	}
	if r.IsVariant {
		if r.RefundPoints > 0 {
			tags = append(tags, fmt.Sprintf("duplicate, +%d pts", r.RefundPoints))
		} else {
			tags = append(tags, "duplicate")
		}
	}
	if len(tags) > 0 {
		line += " (" + strings.Join(tags, ", ") + ")"
	}
	return line
}

// drawFooter shows the balance left after the last completed pull
func drawFooter(o *domain.BatchOutcome) string {
	if len(o.Results) == 0 {
		return ""
	}
	return fmt.Sprintf(MsgBalanceFormat, o.Results[len(o.Results)-1].NewBalance) + " · " + FooterGacha
}

// formatHistoryPage renders one line per pull, newest first as returned
func formatHistoryPage(page *domain.HistoryPage) string {
	if len(page.Entries) == 0 {
		return MsgNoHistory
	}

	var sb strings.Builder
	for _, e := range page.Entries {
		sb.WriteString(formatHistoryLine(e))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatHistoryLine(e domain.HistoryEntry) string {
	name, rarity := MsgUnknownItemName, "?"
	var flags []string
	if e.Result != nil {
		if e.Result.Name != nil {
			name = *e.Result.Name
		}
		if e.Result.Rarity != nil {
			rarity = string(*e.Result.Rarity)
		}
		if e.Result.IsPity {
			flags = append(flags, "pity")
		}
		if e.Result.IsVariant {
			flags = append(flags, "duplicate")
		}
	}

	pool := MsgUnknownPoolName
	if e.Pool.Name != nil {
		pool = *e.Pool.Name
	}

	cost := fmt.Sprintf("-%d pts", e.SpentPoints)
	if e.IsFree {
		cost = "free"
	}

	line := fmt.Sprintf("`%s` **[%s] %s** · %s · %s",
		e.CreatedAt.UTC().Format(historyTimeLayout), rarity, name, pool, cost)
	if len(flags) > 0 {
		line += " · " + strings.Join(flags, ", ")
	}
	return line
}

// historyFooter tells the member how to continue paging
func historyFooter(page *domain.HistoryPage) string {
	if page.Exhausted {
		return MsgHistoryEnd + " · " + FooterGacha
	}
	return fmt.Sprintf(MsgHistoryMore, page.NextOffset) + " · " + FooterGacha
}

// formatStatus renders a member's balance and, when known, their pool state
func formatStatus(status *domain.UserStatus, pool *domain.Pool, now time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Balance:** %d pts\n", status.Balance)
	if pool == nil {
		return strings.TrimRight(sb.String(), "\n")
	}

	fmt.Fprintf(&sb, "**Pool:** %s\n", pool.Name)
	if pool.PityThreshold != nil {
		fmt.Fprintf(&sb, "**Pity:** %d / %d\n", status.PityCounter, *pool.PityThreshold)
	}
	fmt.Fprintf(&sb, "**Free pull:** %s\n", availability(status.FreeAvailableAt, now))
	fmt.Fprintf(&sb, "**Paid pull:** %s", availability(status.PaidAvailableAt, now))
	return sb.String()
}

func availability(at *time.Time, now time.Time) string {
	if at == nil || !at.After(now) {
		return "ready"
	}
	return "in " + at.Sub(now).Round(time.Second).String()
}

// formatPools lists active pools with their price and top rate
func formatPools(pools []domain.Pool) string {
	if len(pools) == 0 {
		return MsgNoPools
	}

	var sb strings.Builder
	for _, p := range pools {
		fmt.Fprintf(&sb, "**%s** (%s) · %d pts · SSS %.2f%%\n", p.Name, p.Kind, p.CostPoints, p.RateSSS)
	}
	return strings.TrimRight(sb.String(), "\n")
}
