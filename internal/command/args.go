package command

import (
	"strconv"
	"strings"
)

// BindArgs matches raw tokens against a spec's argument shape and returns one
// bound value per declared argument. A Rest argument swallows the remaining
// tokens; optional arguments fall back to their default. Mention syntax on
// user/role arguments is reduced to the bare snowflake, so both surfaces feed
// handlers the same representation.
func BindArgs(spec *Spec, tokens []string) ([]string, error) {
	bound := make([]string, 0, len(spec.Args))

	for i, a := range spec.Args {
		var raw string
		switch {
		case a.Rest && i < len(tokens):
			raw = strings.Join(tokens[i:], " ")
		case !a.Rest && i < len(tokens):
			raw = tokens[i]
		}
		if raw == "" {
			if a.Required {
				return nil, NewUserError("Missing argument `%s`. Usage: %s", a.Name, Usage(spec))
			}
			raw = a.Default
		}

		switch a.Type {
		case ArgInt:
			if _, err := strconv.Atoi(raw); err != nil {
				return nil, NewUserError("Argument `%s` must be a whole number.", a.Name)
			}
		case ArgUser, ArgRole:
			raw = stripMention(raw)
		}
		bound = append(bound, raw)

		if a.Rest {
			break
		}
	}
	return bound, nil
}

// Usage renders the prefix-surface usage line for a spec, e.g.
// `,kick <member> [reason]`.
func Usage(spec *Spec) string {
	var b strings.Builder
	b.WriteString("`,")
	b.WriteString(spec.Name)
	for _, a := range spec.Args {
		if a.Required {
			b.WriteString(" <" + a.Name + ">")
		} else {
			b.WriteString(" [" + a.Name + "]")
		}
	}
	b.WriteString("`")
	return b.String()
}

// stripMention turns <@123>, <@!123> and <@&123> into 123. Bare IDs pass
// through unchanged.
func stripMention(s string) string {
	if !strings.HasPrefix(s, "<@") || !strings.HasSuffix(s, ">") {
		return s
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "<@"), ">")
	s = strings.TrimPrefix(s, "!")
	s = strings.TrimPrefix(s, "&")
	return s
}
