package command

import "context"

func embedSpec() *Spec {
	return &Spec{
		Name:         "embed",
		Description:  "Send an embed",
		RequireAdmin: true,
		Args: []Arg{
			{Name: "title", Description: "Embed title", Type: ArgString, Required: true},
			{Name: "description", Description: "Embed body", Type: ArgString, Required: true, Rest: true},
		},
		Handler: func(ctx context.Context, inv *Invocation) (*Reply, error) {
			return &Reply{Embed: BuildEmbed(inv.Args[0], inv.Args[1], EmbedColor)}, nil
		},
	}
}
