package command

import (
	"strings"
	"testing"
)

func TestBindArgsRestJoinsRemainder(t *testing.T) {
	spec := &Spec{Name: "say", Args: []Arg{
		{Name: "message", Type: ArgString, Required: true, Rest: true},
	}}

	bound, err := BindArgs(spec, []string{"hello", "there", "world"})
	if err != nil {
		t.Fatalf("BindArgs() error: %v", err)
	}
	if len(bound) != 1 || bound[0] != "hello there world" {
		t.Fatalf("bound = %v, want the joined remainder", bound)
	}
}

func TestBindArgsMissingRequired(t *testing.T) {
	spec := &Spec{Name: "kick", Args: []Arg{
		{Name: "member", Type: ArgUser, Required: true},
		{Name: "reason", Type: ArgString, Rest: true, Default: "No reason"},
	}}

	_, err := BindArgs(spec, nil)
	if err == nil {
		t.Fatal("BindArgs() with no tokens should fail on required argument")
	}
	if !strings.Contains(err.Error(), "member") {
		t.Errorf("error %q should name the missing argument", err.Error())
	}
}

func TestBindArgsOptionalDefault(t *testing.T) {
	spec := &Spec{Name: "kick", Args: []Arg{
		{Name: "member", Type: ArgUser, Required: true},
		{Name: "reason", Type: ArgString, Rest: true, Default: "No reason"},
	}}

	bound, err := BindArgs(spec, []string{"<@!42>"})
	if err != nil {
		t.Fatalf("BindArgs() error: %v", err)
	}
	if bound[0] != "42" {
		t.Errorf("member = %q, want mention reduced to bare ID", bound[0])
	}
	if bound[1] != "No reason" {
		t.Errorf("reason = %q, want default applied", bound[1])
	}
}

func TestBindArgsRejectsNonInteger(t *testing.T) {
	spec := &Spec{Name: "timeout", Args: []Arg{
		{Name: "member", Type: ArgUser, Required: true},
		{Name: "seconds", Type: ArgInt, Required: true},
	}}

	if _, err := BindArgs(spec, []string{"42", "soon"}); err == nil {
		t.Fatal("BindArgs() should reject a non-integer for an int argument")
	}
	if _, err := BindArgs(spec, []string{"42", "30"}); err != nil {
		t.Fatalf("BindArgs() error on valid integer: %v", err)
	}
}

func TestStripMention(t *testing.T) {
	tests := []struct{ in, want string }{
		{"<@123>", "123"},
		{"<@!123>", "123"},
		{"<@&456>", "456"},
		{"789", "789"},
	}
	for _, tt := range tests {
		if got := stripMention(tt.in); got != tt.want {
			t.Errorf("stripMention(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUsage(t *testing.T) {
	spec := &Spec{Name: "kick", Args: []Arg{
		{Name: "member", Type: ArgUser, Required: true},
		{Name: "reason", Type: ArgString, Rest: true},
	}}
	if got, want := Usage(spec), "`,kick <member> [reason]`"; got != want {
		t.Errorf("Usage() = %q, want %q", got, want)
	}
}
