// Package command implements the bot's dispatch core: a registry of command
// specs, an authorization predicate shared by both command surfaces, and a
// dispatcher that routes an invocation through validation, authorization and
// handler execution, producing exactly one reply.
package command

import "context"

// ArgType tells the binder (and the slash-command schema generator) how an
// argument is shaped on the wire.
type ArgType int

const (
	ArgString ArgType = iota
	ArgInt
	ArgUser
	ArgRole
)

// Arg describes one positional argument of a command.
type Arg struct {
	Name        string
	Description string
	Type        ArgType
	Required    bool
	// Rest marks the final argument as consuming the remainder of the input.
	Rest    bool
	Default string
}

// HandlerFunc executes a command against an already validated invocation.
// Side effects go through inv.Session; the returned Reply is delivered by the
// adapter that produced the invocation.
type HandlerFunc func(ctx context.Context, inv *Invocation) (*Reply, error)

// Spec is the registered definition of a command. Specs are built once at
// startup and never mutated afterwards.
type Spec struct {
	Name         string
	Description  string
	Args         []Arg
	RequireAdmin bool
	Handler      HandlerFunc
}
