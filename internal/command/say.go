package command

import "context"

func saySpec() *Spec {
	return &Spec{
		Name:         "say",
		Description:  "Say something as the bot",
		RequireAdmin: true,
		Args: []Arg{
			{Name: "message", Description: "What the bot should say", Type: ArgString, Required: true, Rest: true},
		},
		Handler: func(ctx context.Context, inv *Invocation) (*Reply, error) {
			return &Reply{Content: inv.Args[0]}, nil
		},
	}
}
