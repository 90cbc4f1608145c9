// Package media implements the playback commands: play, pause, resume,
// seek, stop and help. Every command is usable both as a prefix message
// command and as a slash command.
package media

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"streamcast/internal/command"
	"streamcast/internal/player"
)

const embedColor = 0x5865F2

// Commands returns all playback commands for registration.
func Commands() []command.Command {
	return []command.Command{
		&PlayCommand{},
		&PauseCommand{},
		&ResumeCommand{},
		&SeekCommand{},
		&StopCommand{},
		&HelpCommand{},
	}
}

// findVoiceChannel returns the voice channel the user currently sits in,
// or "" if they are not connected to voice.
func findVoiceChannel(s *discordgo.Session, guildID, userID string) string {
	guild, err := s.State.Guild(guildID)
	if err != nil {
		log.Printf("[WARN] Failed to get guild %s from state: %v", guildID, err)
		return ""
	}
	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID {
			return vs.ChannelID
		}
	}
	return ""
}

func invoker(ctx interface{}) (guildID, channelID, userID string) {
	switch v := ctx.(type) {
	case *command.MessageContext:
		e := v.Event
		return e.GuildID, e.ChannelID, e.Author.ID
	case *command.SlashContext:
		e := v.Event
		if e.Member != nil && e.Member.User != nil {
			return e.GuildID, e.ChannelID, e.Member.User.ID
		}
	}
	return "", "", ""
}

// reply sends a single final response for the invocation.
func reply(ctx interface{}, content string) error {
	switch v := ctx.(type) {
	case *command.MessageContext:
		_, err := v.Session.ChannelMessageSendReply(v.Event.ChannelID, content, v.Event.Reference())
		return err
	case *command.SlashContext:
		return v.Session.InteractionRespond(v.Event.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Content: content},
		})
	}
	return nil
}

// progressReply sends an initial response that can be edited as a
// long-running operation moves through its stages.
func progressReply(ctx interface{}, initial string) (edit func(string), err error) {
	switch v := ctx.(type) {
	case *command.MessageContext:
		msg, err := v.Session.ChannelMessageSendReply(v.Event.ChannelID, initial, v.Event.Reference())
		if err != nil {
			return nil, err
		}
		return func(content string) {
			if _, err := v.Session.ChannelMessageEdit(msg.ChannelID, msg.ID, content); err != nil {
				log.Printf("[WARN] Failed to edit progress message: %v", err)
			}
		}, nil
	case *command.SlashContext:
		if err := v.Session.InteractionRespond(v.Event.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Content: initial},
		}); err != nil {
			return nil, err
		}
		return func(content string) {
			if _, err := v.Session.InteractionResponseEdit(v.Event.Interaction, &discordgo.WebhookEdit{
				Content: &content,
			}); err != nil {
				log.Printf("[WARN] Failed to edit interaction response: %v", err)
			}
		}, nil
	}
	return func(string) {}, nil
}

func session(ctx interface{}) *discordgo.Session {
	switch v := ctx.(type) {
	case *command.MessageContext:
		return v.Session
	case *command.SlashContext:
		return v.Session
	}
	return nil
}

// ctrl extracts the playback controller from either context kind.
func ctrl(ctx interface{}) *player.Controller {
	switch v := ctx.(type) {
	case *command.MessageContext:
		return v.Player
	case *command.SlashContext:
		return v.Player
	}
	return nil
}

// stringArg returns the first message argument or the named slash option.
func stringArg(ctx interface{}, name string) string {
	switch v := ctx.(type) {
	case *command.MessageContext:
		if len(v.Args) > 0 {
			return v.Args[0]
		}
	case *command.SlashContext:
		for _, opt := range v.Event.ApplicationCommandData().Options {
			if opt.Name == name {
				return opt.StringValue()
			}
		}
	}
	return ""
}

// userMessage maps controller errors to something worth showing in chat.
func userMessage(err error) string {
	switch {
	case errors.Is(err, player.ErrConnectionFailed):
		return "Could not join the voice channel. Try again in a moment."
	case errors.Is(err, player.ErrDecoderStart):
		return "Something went wrong while starting playback. Check that the URL is correct and reachable."
	default:
		return fmt.Sprintf("%v", err)
	}
}
