// Package discord wires the playback controller to a Discord gateway
// session: command dispatch, slash registration and voice lifecycle.
package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"streamcast/internal/command"
	"streamcast/internal/config"
	"streamcast/internal/decoder"
	"streamcast/internal/player"
)

// Bot is the Discord-facing half of the service.
type Bot struct {
	dg   *discordgo.Session
	cfg  *config.Config
	ctrl *player.Controller
}

func NewBot(cfg *config.Config) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	b := &Bot{dg: dg, cfg: cfg}

	dec := decoder.New(decoder.Options{
		Path:              cfg.FFmpegPath,
		Threads:           cfg.FFmpegThreads,
		Bitrate:           cfg.AudioBitrate,
		ReconnectDelayMax: cfg.ReconnectDelayMax,
	})
	b.ctrl = player.NewController(&voiceAdapter{dg: dg}, dec, b.notify)

	return b, nil
}

// Controller exposes the playback controller, mainly for shutdown.
func (b *Bot) Controller() *player.Controller { return b.ctrl }

// Run opens the gateway session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.dg.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentGuildVoiceStates |
		discordgo.IntentMessageContent

	b.dg.AddHandler(b.onReady)
	b.dg.AddHandler(b.onMessageCreate)
	b.dg.AddHandler(b.onInteractionCreate)
	b.dg.AddHandler(b.onVoiceStateUpdate)

	if err := b.dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer b.dg.Close()

	<-ctx.Done()
	log.Println("[INFO] Shutdown signal received. Cleaning up...")
	b.ctrl.Shutdown()
	return nil
}

// notify delivers asynchronous controller messages (stream finished) to
// the originating text channel.
func (b *Bot) notify(channelID, message string) {
	if channelID == "" {
		return
	}
	if _, err := b.dg.ChannelMessageSend(channelID, message); err != nil {
		log.Printf("[WARN] Failed to send notification to channel %s: %v", channelID, err)
	}
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] Logged in as %s", r.User.String())

	if err := s.UpdateListeningStatus(b.cfg.CommandPrefix + "help"); err != nil {
		log.Printf("[WARN] Failed to set activity: %v", err)
	}

	b.registerSlashCommands(s)
}

func (b *Bot) registerSlashCommands(s *discordgo.Session) {
	for _, cmd := range command.All() {
		sp, ok := cmd.(command.SlashProvider)
		if !ok || sp.SlashDefinition() == nil {
			continue
		}
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, "", sp.SlashDefinition()); err != nil {
			log.Printf("[ERR] Failed to register slash command %s: %v", cmd.Name(), err)
		}
	}
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, b.cfg.CommandPrefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(m.Content, b.cfg.CommandPrefix))
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])

	cmd, ok := command.Get(name)
	if !ok {
		return
	}

	ctx := &command.MessageContext{
		Session: s,
		Event:   m,
		Args:    fields[1:],
		Prefix:  b.cfg.CommandPrefix,
		Player:  b.ctrl,
	}
	if err := cmd.Run(ctx); err != nil {
		log.Printf("[ERR] Command %s failed: %v", name, err)
		if _, err := s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("%v", err)); err != nil {
			log.Printf("[WARN] Failed to report command error: %v", err)
		}
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	cmd, ok := command.Get(name)
	if !ok {
		return
	}

	ctx := &command.SlashContext{
		Session: s,
		Event:   i,
		Player:  b.ctrl,
	}
	if err := cmd.Run(ctx); err != nil {
		log.Printf("[ERR] Slash command %s failed: %v", name, err)
		respondEphemeral(s, i, fmt.Sprintf("%v", err))
	}
}

// onVoiceStateUpdate watches for the bot being dropped from a voice
// channel, which counts as an implicit stop.
func (b *Bot) onVoiceStateUpdate(s *discordgo.Session, vs *discordgo.VoiceStateUpdate) {
	if vs.UserID != s.State.User.ID {
		return
	}
	if vs.ChannelID == "" {
		b.ctrl.HandleDisconnect(vs.GuildID)
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("[WARN] Failed to respond to interaction: %v", err)
	}
}
