package discord

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

// Command option names shared by the gacha commands
const (
	optionPool   = "pool"
	optionAmount = "amount"
)

// drawTimeout bounds one /draw call; cooldown backoff across ten units stays well under it
const drawTimeout = 2 * time.Minute

// DrawCommand returns the draw command definition and handler
func DrawCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minAmount := float64(domain.MinDrawAmount)

	cmd := &discordgo.ApplicationCommand{
		Name:        "draw",
		Description: "Pull from the gacha",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        optionAmount,
				Description: "How many pulls (1-10, default 1)",
				Required:    false,
				MinValue:    &minAmount,
				MaxValue:    domain.MaxDrawAmount,
			},
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         optionPool,
				Description:  "Pool to pull from (default: current pool)",
				Required:     false,
				Autocomplete: true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		if user == nil {
			respondError(s, i, MsgGenericError)
			return
		}

		opts := optionMap(i)
		amount := domain.MinDrawAmount
		if opt, ok := opts[optionAmount]; ok {
			amount = int(opt.IntValue())
		}
		var poolID *string
		if opt, ok := opts[optionPool]; ok {
			if v := strings.TrimSpace(opt.StringValue()); v != "" {
				poolID = &v
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), drawTimeout)
		defer cancel()

		outcome, err := client.Draw(ctx, user.ID, poolID, amount)
		if err != nil {
			slog.Error("Failed to draw", "user_id", user.ID, "amount", amount, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		title := TitleDrawResults
		if outcome.CompletedAmount == 0 {
			title = TitleDrawFailed
		}
		description, color := formatDrawOutcome(outcome)
		sendEmbed(s, i, createEmbed(title, description, color, drawFooter(outcome)))
	}

	return cmd, handler
}
