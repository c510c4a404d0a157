package discord

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/tinklepaw-gacha/internal/domain"
)

const statusTimeout = 10 * time.Second

// StatusCommand returns the gacha-status command definition and handler
func StatusCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "gacha-status",
		Description: "Show your points, pity and cooldowns",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         optionPool,
				Description:  "Pool to check pity and cooldowns for",
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

		var poolID string
		if opt, ok := optionMap(i)[optionPool]; ok {
			poolID = opt.StringValue()
		}

		ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
		defer cancel()

		status, err := client.GetStatus(ctx, user.ID, poolID)
		if err != nil {
			slog.Error("Failed to get gacha status", "user_id", user.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		var pool *domain.Pool
		if poolID != "" {
			pools, err := client.ListPools(ctx)
			if err != nil {
				slog.Warn("Failed to list pools for status", "error", err)
			}
			for idx := range pools {
				if pools[idx].PoolID == poolID {
					pool = &pools[idx]
					break
				}
			}
		}

		sendEmbed(s, i, createEmbed(TitleStatus, formatStatus(status, pool, time.Now()), ColorInfo, ""))
	}

	return cmd, handler
}

// PoolsCommand returns the pools command definition and handler
func PoolsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "pools",
		Description: "List the active gacha pools",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
		defer cancel()

		pools, err := client.ListPools(ctx)
		if err != nil {
			slog.Error("Failed to list pools", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, createEmbed(TitlePools, formatPools(pools), ColorInfo, ""))
	}

	return cmd, handler
}
