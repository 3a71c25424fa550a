package command

import (
	"context"
	"math/rand"
)

var eightballResponses = []string{"Yes", "No", "Maybe", "Definitely", "Ask again later"}

func eightballSpec(rng *rand.Rand) *Spec {
	return &Spec{
		Name:        "eightball",
		Description: "Ask the magic eight ball",
		Args: []Arg{
			{Name: "question", Description: "What do you want to know?", Type: ArgString, Required: true, Rest: true},
		},
		Handler: func(ctx context.Context, inv *Invocation) (*Reply, error) {
			return &Reply{Content: "🎱 " + eightballResponses[rng.Intn(len(eightballResponses))]}, nil
		},
	}
}
