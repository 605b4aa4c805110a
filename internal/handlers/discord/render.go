package discord

import (
	"strings"

	"github.com/KirkDiggler/rolld/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorNeutral       = 0x00ff00 // Green
	colorCelebration   = 0xffd700 // Gold
	colorCommiseration = 0x8b0000 // Dark red
	colorError         = 0xff0000 // Red
	colorInfo          = 0x5865f2 // Blurple
)

// rerollPrefix starts the custom ID of every "Roll Again" button, the rest
// of the ID is the canonical notation to roll
const rerollPrefix = "reroll:"

// rerollCustomID builds the custom ID for a "Roll Again" button
func rerollCustomID(notation string) string {
	return rerollPrefix + notation
}

// parseRerollCustomID extracts the notation from a "Roll Again" custom ID
func parseRerollCustomID(customID string) (string, bool) {
	if !strings.HasPrefix(customID, rerollPrefix) {
		return "", false
	}

	notation := strings.TrimPrefix(customID, rerollPrefix)
	if notation == "" {
		return "", false
	}

	return notation, true
}

func toneColor(tone messaging.MessageTone) int {
	switch tone {
	case messaging.ToneCelebration:
		return colorCelebration
	case messaging.ToneCommiseration:
		return colorCommiseration
	default:
		return colorNeutral
	}
}

// renderRollResponse renders a roll result with a "Roll Again" button
func renderRollResponse(notation string, message *messaging.GetRollResultMessageOutput) *discordgo.InteractionResponse {
	rollButton := discordgo.Button{
		Label:    "Roll Again",
		Style:    discordgo.PrimaryButton,
		CustomID: rerollCustomID(notation),
		Emoji: &discordgo.ComponentEmoji{
			Name: "🎲",
		},
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       message.Title,
					Description: message.Message,
					Color:       toneColor(message.Tone),
				},
			},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{rollButton},
				},
			},
		},
	}
}

// renderHistoryResponse renders the roll history listing
func renderHistoryResponse(message *messaging.GetHistoryMessageOutput) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       message.Title,
					Description: message.Message,
					Color:       colorInfo,
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}
