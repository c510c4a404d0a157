package discord

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	maxAutocompleteChoices = 25
	autocompleteTimeout    = 2 * time.Second
)

// HandleAutocomplete routes autocomplete interactions to the appropriate handler
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	data := i.ApplicationCommandData()

	var focused *discordgo.ApplicationCommandInteractionDataOption
	for _, opt := range data.Options {
		if opt.Focused {
			focused = opt
			break
		}
	}
	if focused == nil {
		return
	}

	switch focused.Name {
	case optionPool:
		handlePoolAutocomplete(s, i, client, focused.StringValue())
	default:
		slog.Warn("Unhandled autocomplete option", "command", data.Name, "option", focused.Name)
	}
}

// handlePoolAutocomplete suggests active pools by name; the value sent back is the pool id
func handlePoolAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, typed string) {
	ctx, cancel := context.WithTimeout(context.Background(), autocompleteTimeout)
	defer cancel()

	pools, err := client.ListPools(ctx)
	if err != nil {
		slog.Error("Failed to get pools for autocomplete", "error", err)
	}

	typed = strings.ToLower(strings.TrimSpace(typed))
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, min(len(pools), maxAutocompleteChoices))
	for _, p := range pools {
		if typed != "" && !strings.Contains(strings.ToLower(p.Name), typed) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  p.Name,
			Value: p.PoolID,
		})
		if len(choices) >= maxAutocompleteChoices {
			break
		}
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}); err != nil {
		slog.Error("Failed to respond to autocomplete", "error", err)
	}
}
