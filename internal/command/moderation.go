package command

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const defaultReason = "No reason"

func kickSpec() *Spec {
	return &Spec{
		Name:         "kick",
		Description:  "Remove a member from the guild",
		RequireAdmin: true,
		Args: []Arg{
			{Name: "member", Description: "Who to kick", Type: ArgUser, Required: true},
			{Name: "reason", Description: "Why", Type: ArgString, Rest: true, Default: defaultReason},
		},
		Handler: func(ctx context.Context, inv *Invocation) (*Reply, error) {
			member, reason := inv.Args[0], inv.Args[1]
			if err := inv.Session.GuildMemberDeleteWithReason(inv.GuildID, member, reason); err != nil {
				return nil, fmt.Errorf("failed to kick member: %w", err)
			}
			return &Reply{Content: fmt.Sprintf("<@%s> was kicked. Reason: %s", member, reason)}, nil
		},
	}
}

func banSpec() *Spec {
	return &Spec{
		Name:         "ban",
		Description:  "Ban a member from the guild",
		RequireAdmin: true,
		Args: []Arg{
			{Name: "member", Description: "Who to ban", Type: ArgUser, Required: true},
			{Name: "reason", Description: "Why", Type: ArgString, Rest: true, Default: defaultReason},
		},
		Handler: func(ctx context.Context, inv *Invocation) (*Reply, error) {
			member, reason := inv.Args[0], inv.Args[1]
			if err := inv.Session.GuildBanCreateWithReason(inv.GuildID, member, reason, 0); err != nil {
				return nil, fmt.Errorf("failed to ban member: %w", err)
			}
			return &Reply{Content: fmt.Sprintf("<@%s> was banned. Reason: %s", member, reason)}, nil
		},
	}
}

func timeoutSpec() *Spec {
	return &Spec{
		Name:         "timeout",
		Description:  "Time a member out",
		RequireAdmin: true,
		Args: []Arg{
			{Name: "member", Description: "Who to time out", Type: ArgUser, Required: true},
			{Name: "seconds", Description: "For how long", Type: ArgInt, Required: true},
		},
		Handler: func(ctx context.Context, inv *Invocation) (*Reply, error) {
			member := inv.Args[0]
			seconds, _ := strconv.Atoi(inv.Args[1]) // validated by BindArgs
			if seconds <= 0 {
				return nil, NewUserError("Argument `seconds` must be greater than zero.")
			}
			until := time.Now().Add(time.Duration(seconds) * time.Second)
			if err := inv.Session.GuildMemberTimeout(inv.GuildID, member, &until); err != nil {
				return nil, fmt.Errorf("failed to time out member: %w", err)
			}
			return &Reply{Content: fmt.Sprintf("<@%s> is timed out for %d seconds.", member, seconds)}, nil
		},
	}
}
