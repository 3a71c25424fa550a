package command

import (
	"context"
	"fmt"
)

func afkSpec() *Spec {
	return &Spec{
		Name:        "afk",
		Description: "Announce that you are away",
		Handler: func(ctx context.Context, inv *Invocation) (*Reply, error) {
			return &Reply{Content: fmt.Sprintf("<@%s> is now AFK.", inv.Caller.ID)}, nil
		},
	}
}
