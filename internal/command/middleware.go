package command

import (
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"
)

type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx interface{}) error
}

func (w *wrappedCommand) Run(ctx interface{}) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// WithGuildOnly silently drops invocations that arrive outside a guild,
// such as direct messages.
func WithGuildOnly() Middleware {
	return func(c Command) Command {
		return &wrappedCommand{Command: c, wrap: func(ctx interface{}) error {
			if guildID(ctx) == "" {
				return errors.New("this command only works inside a server")
			}
			return c.Run(ctx)
		}}
	}
}

// WithCommandLogger logs every invocation before running it.
func WithCommandLogger() Middleware {
	return func(c Command) Command {
		return &wrappedCommand{Command: c, wrap: func(ctx interface{}) error {
			log.Printf("[INFO] Command %s invoked by %s in guild %s", c.Name(), invokerID(ctx), guildID(ctx))
			return c.Run(ctx)
		}}
	}
}

func guildID(ctx interface{}) string {
	switch v := ctx.(type) {
	case *MessageContext:
		return v.Event.GuildID
	case *SlashContext:
		return v.Event.GuildID
	}
	return ""
}

func invokerID(ctx interface{}) string {
	switch v := ctx.(type) {
	case *MessageContext:
		if v.Event.Author != nil {
			return v.Event.Author.ID
		}
	case *SlashContext:
		if v.Event.Member != nil && v.Event.Member.User != nil {
			return v.Event.Member.User.ID
		}
		if v.Event.User != nil {
			return v.Event.User.ID
		}
	}
	return ""
}
