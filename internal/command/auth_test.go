package command

import "testing"

func TestAuthorized(t *testing.T) {
	tests := []struct {
		name   string
		caller Caller
		want   bool
	}{
		{"admin and override", Caller{ID: overrideUserID, IsAdmin: true}, true},
		{"admin only", Caller{ID: "123", IsAdmin: true}, true},
		{"override only", Caller{ID: overrideUserID, IsAdmin: false}, true},
		{"neither", Caller{ID: "123", IsAdmin: false}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Authorized(tt.caller); got != tt.want {
				t.Errorf("Authorized(%+v) = %v, want %v", tt.caller, got, tt.want)
			}
		})
	}
}
