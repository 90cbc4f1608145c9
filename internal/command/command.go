// Package command is the thin dispatch layer between Discord events and
// the playback controller.
package command

import (
	"github.com/bwmarrin/discordgo"

	"streamcast/internal/player"
)

type Command interface {
	Name() string
	Description() string
	Aliases() []string
	Run(ctx interface{}) error
}

// SlashProvider is implemented by commands that also register a slash
// command definition.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// MessageContext carries a prefix command ("!play url") invocation.
type MessageContext struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	Args    []string
	Prefix  string
	Player  *player.Controller
}

// SlashContext carries a slash command invocation.
type SlashContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Player  *player.Controller
}
