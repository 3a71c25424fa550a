package command

import "sort"

// Registry stores command specs by name. It is populated once at startup,
// before the gateway starts delivering events, and is read-only afterwards.
type Registry struct {
	commands map[string]*Spec
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Spec)}
}

// Register adds a spec. Registering a name twice replaces the previous spec,
// so re-running the registration sequence is idempotent.
func (r *Registry) Register(s *Spec) {
	r.commands[s.Name] = s
}

// Lookup returns the spec for name, or nil.
func (r *Registry) Lookup(name string) *Spec {
	return r.commands[name]
}

// All returns every registered spec, sorted by name.
func (r *Registry) All() []*Spec {
	list := make([]*Spec, 0, len(r.commands))
	for _, s := range r.commands {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}
