package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"guildwarden/internal/command"
)

// registerCommands syncs slash commands for a guild with Discord: deletes
// remote commands no longer in the registry, then creates the registry's
// definitions (create-by-name is an upsert on Discord's side). All REST
// calls share one limiter to stay under the registration rate limit.
func (b *Bot) registerCommands(ctx context.Context, guildID string) error {
	appID, err := b.appID()
	if err != nil {
		return err
	}

	wanted := make(map[string]struct{})
	for _, spec := range b.registry.All() {
		wanted[spec.Name] = struct{}{}
	}

	limiter := rate.NewLimiter(rate.Every(time.Second/40), 1)

	remote, _ := b.dg.ApplicationCommands(appID, guildID)
	for _, rc := range remote {
		if _, ok := wanted[rc.Name]; ok {
			continue
		}
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		log.Printf("[INFO] [%s] Deleting obsolete command: %s", guildID, rc.Name)
		if err := b.dg.ApplicationCommandDelete(appID, guildID, rc.ID); err != nil {
			log.Printf("[ERR] [%s] Failed to delete %s: %v", guildID, rc.Name, err)
		}
	}

	for _, spec := range b.registry.All() {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		if _, err := b.dg.ApplicationCommandCreate(appID, guildID, slashDefinition(spec)); err != nil {
			log.Printf("[ERR] [%s] Failed to register %s: %v", guildID, spec.Name, err)
		} else {
			log.Printf("[DONE] [%s] Registered: %s", guildID, spec.Name)
		}
	}
	return nil
}

// slashDefinition renders a command spec as an ApplicationCommand schema.
func slashDefinition(spec *command.Spec) *discordgo.ApplicationCommand {
	def := &discordgo.ApplicationCommand{
		Name:        spec.Name,
		Description: spec.Description,
		Type:        discordgo.ChatApplicationCommand,
	}
	for _, a := range spec.Args {
		def.Options = append(def.Options, &discordgo.ApplicationCommandOption{
			Type:        optionType(a.Type),
			Name:        a.Name,
			Description: a.Description,
			Required:    a.Required,
		})
	}
	return def
}

func optionType(t command.ArgType) discordgo.ApplicationCommandOptionType {
	switch t {
	case command.ArgInt:
		return discordgo.ApplicationCommandOptionInteger
	case command.ArgUser:
		return discordgo.ApplicationCommandOptionUser
	case command.ArgRole:
		return discordgo.ApplicationCommandOptionRole
	default:
		return discordgo.ApplicationCommandOptionString
	}
}

// appID returns the bot's application ID, fetching from Discord if not
// cached in State.
func (b *Bot) appID() (string, error) {
	if id := b.dg.State.User.ID; id != "" {
		return id, nil
	}
	u, err := b.dg.User("@me")
	if err != nil {
		return "", fmt.Errorf("failed to fetch bot user: %w", err)
	}
	return u.ID, nil
}
