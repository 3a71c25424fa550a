package command

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Origin says which surface produced an invocation. It decides how the reply
// is delivered: a channel message for the prefix surface, an interaction
// response for the slash surface.
type Origin int

const (
	OriginMessage Origin = iota
	OriginInteraction
)

// Caller is the identity and privilege snapshot of whoever issued an
// invocation. It is derived fresh from each inbound event and never cached;
// permissions can change between calls.
type Caller struct {
	ID      string
	IsAdmin bool
}

// Invocation is one request to run a command. Created per inbound event,
// consumed once by the dispatcher.
type Invocation struct {
	Name      string
	Args      []string
	Caller    Caller
	GuildID   string
	ChannelID string
	Origin    Origin
	Session   Session
}

// Reply is the single outbound message produced per invocation: plain text or
// an embed, never both.
type Reply struct {
	Content string
	Embed   *discordgo.MessageEmbed
}

// Session is the slice of the Discord API the command handlers touch.
// *discordgo.Session satisfies it; tests substitute a recording mock.
type Session interface {
	HeartbeatLatency() time.Duration
	UpdateStatusComplex(usd discordgo.UpdateStatusData) error
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberRoleRemove(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildMemberDeleteWithReason(guildID, userID, reason string, options ...discordgo.RequestOption) error
	GuildBanCreateWithReason(guildID, userID, reason string, days int, options ...discordgo.RequestOption) error
	GuildMemberTimeout(guildID, userID string, until *time.Time, options ...discordgo.RequestOption) error
}
