package discord

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/bwmarrin/discordgo"

	"guildwarden/internal/command"
)

// commandPrefix is the leading character of the text command surface.
const commandPrefix = ","

// parseCommand splits a raw message into a command name and its argument
// tokens. ok is false when the message is not a prefix command at all.
// Double-quoted runs form a single token, so multi-word values can fill a
// non-rest argument: `,embed "My Title" body text`.
func parseCommand(content string) (name string, args []string, ok bool) {
	if !strings.HasPrefix(content, commandPrefix) {
		return "", nil, false
	}
	fields := splitTokens(strings.TrimPrefix(content, commandPrefix))
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

// splitTokens splits on whitespace, keeping double-quoted runs together and
// stripping the quotes. An unterminated quote swallows the rest of the input.
func splitTokens(s string) []string {
	var tokens []string
	var b strings.Builder
	inQuote := false
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// flattenOptions turns an interaction's typed options into positional tokens
// in spec order, so both surfaces feed the dispatcher the same shape. Absent
// optional options are left for the binder to default.
func flattenOptions(spec *command.Spec, opts []*discordgo.ApplicationCommandInteractionDataOption) []string {
	byName := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		byName[o.Name] = o
	}

	var args []string
	for _, a := range spec.Args {
		o, ok := byName[a.Name]
		if !ok {
			break
		}
		args = append(args, optionToken(a, o))
	}
	return args
}

func optionToken(a command.Arg, o *discordgo.ApplicationCommandInteractionDataOption) string {
	switch a.Type {
	case command.ArgInt:
		return strconv.FormatInt(o.IntValue(), 10)
	case command.ArgUser:
		return o.UserValue(nil).ID
	case command.ArgRole:
		return o.RoleValue(nil, "").ID
	default:
		return o.StringValue()
	}
}
