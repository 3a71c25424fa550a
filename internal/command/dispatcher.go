package command

import (
	"context"
	"errors"
	"log"
)

// Notices shown to callers when dispatch short-circuits. Platform error detail
// never reaches the caller; it goes to the log only.
const (
	noticeUnknown  = "Unknown command."
	noticeDenied   = "You don't have permission to use this command."
	noticeInternal = "An error occurred while running the command."
)

// Dispatcher routes invocations through the registry and is the single error
// boundary of the dispatch core: no handler error propagates past Dispatch.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher returns a dispatcher over the given registry.
func NewDispatcher(r *Registry) *Dispatcher {
	return &Dispatcher{registry: r}
}

// Dispatch runs one invocation to completion and returns exactly one reply.
// Each invocation is attempted exactly once; there is no retry.
func (d *Dispatcher) Dispatch(ctx context.Context, inv *Invocation) *Reply {
	spec := d.registry.Lookup(inv.Name)
	if spec == nil {
		return &Reply{Content: noticeUnknown}
	}

	bound, err := BindArgs(spec, inv.Args)
	if err != nil {
		return &Reply{Content: err.Error()}
	}
	inv.Args = bound

	if spec.RequireAdmin && !Authorized(inv.Caller) {
		return &Reply{Content: noticeDenied}
	}

	reply, err := spec.Handler(ctx, inv)
	if err != nil {
		var ue *UserError
		if errors.As(err, &ue) {
			return &Reply{Content: ue.Error()}
		}
		log.Printf("[ERR] Command %s failed (caller=%s): %v", inv.Name, inv.Caller.ID, err)
		return &Reply{Content: noticeInternal}
	}
	return reply
}
