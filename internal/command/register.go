package command

import "math/rand"

// RegisterAll seeds the registry with the full command surface. Called once
// from the composition root, before the gateway delivers any event; both the
// prefix and slash adapters read from the same registry so their semantics
// cannot drift. src feeds the eight ball; it is wrapped so concurrent
// invocations can share it safely.
func RegisterAll(r *Registry, src rand.Source) {
	rng := rand.New(&lockedSource{src: src})

	r.Register(pingSpec())
	r.Register(afkSpec())
	r.Register(eightballSpec(rng))
	r.Register(saySpec())
	r.Register(embedSpec())
	r.Register(statusSpec())
	r.Register(addRoleSpec())
	r.Register(removeRoleSpec())
	r.Register(kickSpec())
	r.Register(banSpec())
	r.Register(timeoutSpec())
}
