package command

import (
	"context"
	"fmt"
)

func addRoleSpec() *Spec {
	return &Spec{
		Name:         "addrole",
		Description:  "Grant a role to a member",
		RequireAdmin: true,
		Args: []Arg{
			{Name: "member", Description: "Who gets the role", Type: ArgUser, Required: true},
			{Name: "role", Description: "The role to grant", Type: ArgRole, Required: true},
		},
		Handler: func(ctx context.Context, inv *Invocation) (*Reply, error) {
			member, role := inv.Args[0], inv.Args[1]
			if err := inv.Session.GuildMemberRoleAdd(inv.GuildID, member, role); err != nil {
				return nil, fmt.Errorf("failed to add role: %w", err)
			}
			return &Reply{Content: fmt.Sprintf("✅ Added <@&%s> to <@%s>", role, member)}, nil
		},
	}
}

func removeRoleSpec() *Spec {
	return &Spec{
		Name:         "removerole",
		Description:  "Revoke a role from a member",
		RequireAdmin: true,
		Args: []Arg{
			{Name: "member", Description: "Who loses the role", Type: ArgUser, Required: true},
			{Name: "role", Description: "The role to revoke", Type: ArgRole, Required: true},
		},
		Handler: func(ctx context.Context, inv *Invocation) (*Reply, error) {
			member, role := inv.Args[0], inv.Args[1]
			if err := inv.Session.GuildMemberRoleRemove(inv.GuildID, member, role); err != nil {
				return nil, fmt.Errorf("failed to remove role: %w", err)
			}
			return &Reply{Content: fmt.Sprintf("❌ Removed <@&%s> from <@%s>", role, member)}, nil
		},
	}
}
