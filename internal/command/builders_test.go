package command

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestBuildActivityKnownKinds(t *testing.T) {
	tests := []struct {
		kind string
		want discordgo.ActivityType
	}{
		{"playing", discordgo.ActivityTypeGame},
		{"Watching", discordgo.ActivityTypeWatching},
		{"LISTENING", discordgo.ActivityTypeListening},
		{"CoMpEtInG", discordgo.ActivityTypeCompeting},
	}
	for _, tt := range tests {
		activity, err := BuildActivity(tt.kind, "the chat")
		if err != nil {
			t.Errorf("BuildActivity(%q) error: %v", tt.kind, err)
			continue
		}
		if activity.Type != tt.want {
			t.Errorf("BuildActivity(%q).Type = %v, want %v", tt.kind, activity.Type, tt.want)
		}
		if activity.Name != "the chat" {
			t.Errorf("BuildActivity(%q).Name = %q, want message preserved", tt.kind, activity.Name)
		}
	}
}

func TestBuildActivityRejectsUnknownKind(t *testing.T) {
	for _, kind := range []string{"streaming", "idle", ""} {
		_, err := BuildActivity(kind, "msg")
		if err == nil {
			t.Errorf("BuildActivity(%q) should fail", kind)
			continue
		}
		var ue *UserError
		if !errors.As(err, &ue) {
			t.Errorf("BuildActivity(%q) error is %T, want *UserError", kind, err)
		}
	}
}

func TestBuildEmbed(t *testing.T) {
	em := BuildEmbed("Title", "Body", EmbedColor)
	if em.Title != "Title" || em.Description != "Body" || em.Color != EmbedColor {
		t.Errorf("BuildEmbed() = %+v, want fields passed through", em)
	}
}
