package discord

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

const (
	optionRarity = "rarity"
	optionPity   = "pity"
	optionSearch = "search"
	optionOffset = "offset"

	historyPageSize = 15
	historyTimeout  = 15 * time.Second
)

// HistoryCommand returns the history command definition and handler
func HistoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minOffset := float64(0)

	rarityChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Rarities))
	for _, r := range domain.Rarities {
		rarityChoices = append(rarityChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(r),
			Value: string(r),
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "history",
		Description: "Show your past gacha pulls",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionRarity,
				Description: "Only show this rarity",
				Required:    false,
				Choices:     rarityChoices,
			},
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         optionPool,
				Description:  "Only show pulls from this pool",
				Required:     false,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        optionPity,
				Description: "Only show pity pulls",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionSearch,
				Description: "Item name contains",
				Required:    false,
				MaxLength:   domain.MaxHistoryQueryLen,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        optionOffset,
				Description: "Resume from the offset shown in the footer",
				Required:    false,
				MinValue:    &minOffset,
				MaxValue:    domain.MaxHistoryOffset,
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

		params := historyParams(optionMap(i))

		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()

		page, err := client.GetHistory(ctx, user.ID, params)
		if err != nil {
			slog.Error("Failed to load history", "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, createEmbed(TitleHistory, formatHistoryPage(page), ColorInfo, historyFooter(page)))
	}

	return cmd, handler
}

func historyParams(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) HistoryParams {
	params := HistoryParams{Limit: historyPageSize}
	if opt, ok := opts[optionRarity]; ok {
		if r, valid := domain.ParseRarity(opt.StringValue()); valid {
			params.Rarities = []domain.Rarity{r}
		}
	}
	if opt, ok := opts[optionPool]; ok {
		params.PoolID = opt.StringValue()
	}
	if opt, ok := opts[optionPity]; ok {
		params.PityOnly = opt.BoolValue()
	}
	if opt, ok := opts[optionSearch]; ok {
		params.Q = opt.StringValue()
	}
	if opt, ok := opts[optionOffset]; ok {
		params.Offset = int(opt.IntValue())
	}
	return params
}
