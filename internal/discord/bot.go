// Package discord wires the command core to the Discord gateway: session
// setup, event handlers for both command surfaces, and slash-command sync.
package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"guildwarden/internal/command"
	"guildwarden/internal/config"
)

// Bot is the Discord gateway adapter around one dispatcher instance.
type Bot struct {
	dg         *discordgo.Session
	cfg        *config.Config
	registry   *command.Registry
	dispatcher *command.Dispatcher
}

// NewBot builds a bot over an already populated registry.
func NewBot(cfg *config.Config, registry *command.Registry) *Bot {
	return &Bot{
		cfg:        cfg,
		registry:   registry,
		dispatcher: command.NewDispatcher(registry),
	}
}

// Run connects to the gateway and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentMessageContent
}

// onReady is called when the gateway session is established.
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] ✅ Discord bot %v is running.", r.User.Username)

	if !b.cfg.InitSlashCommands {
		log.Println("[INFO] Registering slash commands skipped")
		return
	}
	for _, g := range r.Guilds {
		if err := b.registerCommands(context.Background(), g.ID); err != nil {
			log.Printf("[ERR] Error registering slash commands for guild %s: %v", g.ID, err)
		}
	}
}

// onMessageCreate handles the prefix command surface.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}
	if m.GuildID == "" {
		return
	}

	name, args, ok := parseCommand(m.Content)
	if !ok {
		return
	}

	inv := &command.Invocation{
		Name:      name,
		Args:      args,
		Caller:    b.messageCaller(s, m),
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		Origin:    command.OriginMessage,
		Session:   s,
	}

	reply := b.dispatcher.Dispatch(context.Background(), inv)
	b.deliverMessage(s, m.ChannelID, reply)
}

// messageCaller derives the caller's privilege snapshot for a message event.
// MessageCreate members don't carry resolved permissions, so they are
// computed per invocation; nothing is cached.
func (b *Bot) messageCaller(s *discordgo.Session, m *discordgo.MessageCreate) command.Caller {
	perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		log.Printf("[WARN] Failed to resolve permissions for %s: %v", m.Author.ID, err)
		perms = 0
	}
	return command.Caller{
		ID:      m.Author.ID,
		IsAdmin: perms&discordgo.PermissionAdministrator != 0,
	}
}

// noticeGuildOnly is sent when an interaction arrives without a guild member
// attached. Commands are guild-registered, but every delivered interaction
// still gets its one reply.
const noticeGuildOnly = "This command can only be used in a server."

// onInteractionCreate handles the slash command surface.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	caller, ok := interactionCaller(i)
	if !ok {
		b.deliverInteraction(s, i, &command.Reply{Content: noticeGuildOnly})
		return
	}

	data := i.ApplicationCommandData()
	spec := b.registry.Lookup(data.Name)
	if spec == nil {
		log.Printf("[WARN] Unknown slash command: %s", data.Name)
		return
	}

	inv := &command.Invocation{
		Name:      data.Name,
		Args:      flattenOptions(spec, data.Options),
		Caller:    caller,
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		Origin:    command.OriginInteraction,
		Session:   s,
	}

	reply := b.dispatcher.Dispatch(context.Background(), inv)
	b.deliverInteraction(s, i, reply)
}

// interactionCaller derives the caller's privilege snapshot from an
// interaction. ok is false when the interaction carries no guild member,
// e.g. a DM invocation.
func interactionCaller(i *discordgo.InteractionCreate) (command.Caller, bool) {
	if i.Member == nil || i.Member.User == nil {
		return command.Caller{}, false
	}
	return command.Caller{
		ID:      i.Member.User.ID,
		IsAdmin: i.Member.Permissions&discordgo.PermissionAdministrator != 0,
	}, true
}

// deliverMessage sends a reply to the origin channel of a prefix invocation.
func (b *Bot) deliverMessage(s *discordgo.Session, channelID string, reply *command.Reply) {
	var err error
	if reply.Embed != nil {
		_, err = s.ChannelMessageSendEmbed(channelID, reply.Embed)
	} else {
		_, err = s.ChannelMessageSend(channelID, reply.Content)
	}
	if err != nil {
		log.Printf("[ERR] Failed to send reply: %v", err)
	}
}

// deliverInteraction attaches the reply to the interaction token, at most
// once as the initial response.
func (b *Bot) deliverInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, reply *command.Reply) {
	data := &discordgo.InteractionResponseData{}
	if reply.Embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{reply.Embed}
	} else {
		data.Content = reply.Content
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Printf("[ERR] Failed to respond to interaction: %v", err)
	}
}
