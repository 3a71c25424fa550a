package command

import (
	"context"
	"testing"
)

func specNamed(name, description string) *Spec {
	return &Spec{
		Name:        name,
		Description: description,
		Handler: func(ctx context.Context, inv *Invocation) (*Reply, error) {
			return &Reply{Content: description}, nil
		},
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(specNamed("ping", "first"))

	if got := r.Lookup("ping"); got == nil || got.Description != "first" {
		t.Fatalf("Lookup(ping) = %v, want the registered spec", got)
	}
	if got := r.Lookup("nosuch"); got != nil {
		t.Fatalf("Lookup(nosuch) = %v, want nil", got)
	}
}

func TestRegistryLastWriteWins(t *testing.T) {
	r := NewRegistry()
	r.Register(specNamed("ping", "first"))
	r.Register(specNamed("ping", "second"))

	got := r.Lookup("ping")
	if got == nil || got.Description != "second" {
		t.Fatalf("Lookup(ping).Description = %v, want %q", got, "second")
	}
	if len(r.All()) != 1 {
		t.Fatalf("All() has %d specs, want 1 after duplicate registration", len(r.All()))
	}
}

func TestRegistryAllSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(specNamed("timeout", ""))
	r.Register(specNamed("afk", ""))
	r.Register(specNamed("ping", ""))

	all := r.All()
	want := []string{"afk", "ping", "timeout"}
	if len(all) != len(want) {
		t.Fatalf("All() returned %d specs, want %d", len(all), len(want))
	}
	for i, name := range want {
		if all[i].Name != name {
			t.Errorf("All()[%d].Name = %q, want %q", i, all[i].Name, name)
		}
	}
}
