package command

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// EmbedColor is the accent color used for all embeds the bot sends.
const EmbedColor = 0x3498DB

var activityTypes = map[string]discordgo.ActivityType{
	"playing":   discordgo.ActivityTypeGame,
	"watching":  discordgo.ActivityTypeWatching,
	"listening": discordgo.ActivityTypeListening,
	"competing": discordgo.ActivityTypeCompeting,
}

// BuildActivity maps a case-insensitive activity kind to a Discord activity.
// Anything outside {playing, watching, listening, competing} is a UserError
// naming the allowed set. Pure; no I/O.
func BuildActivity(kind, message string) (*discordgo.Activity, error) {
	t, ok := activityTypes[strings.ToLower(kind)]
	if !ok {
		return nil, NewUserError("Invalid status type %q. Must be one of: playing, watching, listening, competing.", kind)
	}
	return &discordgo.Activity{Name: message, Type: t}, nil
}

// BuildEmbed constructs an embed payload. Sending it is the adapter's job;
// transmission failures are handled at the dispatch boundary.
func BuildEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
	}
}
