package command

import (
	"context"
	"fmt"
)

func pingSpec() *Spec {
	return &Spec{
		Name:        "ping",
		Description: "Check bot latency",
		Handler: func(ctx context.Context, inv *Invocation) (*Reply, error) {
			ms := inv.Session.HeartbeatLatency().Milliseconds()
			return &Reply{Content: fmt.Sprintf("🏓 Pong! %dms", ms)}, nil
		},
	}
}
