package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

func statusSpec() *Spec {
	return &Spec{
		Name:         "status",
		Description:  "Set the bot's presence",
		RequireAdmin: true,
		Args: []Arg{
			{Name: "type", Description: "playing, watching, listening or competing", Type: ArgString, Required: true},
			{Name: "message", Description: "Status text", Type: ArgString, Required: true, Rest: true},
		},
		Handler: func(ctx context.Context, inv *Invocation) (*Reply, error) {
			activity, err := BuildActivity(inv.Args[0], inv.Args[1])
			if err != nil {
				return nil, err
			}
			err = inv.Session.UpdateStatusComplex(discordgo.UpdateStatusData{
				Status:     "online",
				Activities: []*discordgo.Activity{activity},
			})
			if err != nil {
				return nil, fmt.Errorf("failed to update presence: %w", err)
			}
			return &Reply{Content: fmt.Sprintf("✅ Status set: %s %s", strings.ToLower(inv.Args[0]), inv.Args[1])}, nil
		},
	}
}
