package media

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type SeekCommand struct{}

func (c *SeekCommand) Name() string        { return "seek" }
func (c *SeekCommand) Description() string { return "Jump to a timestamp (e.g. 1:30 or 01:30:00)" }
func (c *SeekCommand) Aliases() []string   { return []string{"rewind"} }

func (c *SeekCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "time",
				Description: "Target position: ss, mm:ss or hh:mm:ss",
				Required:    true,
			},
		},
	}
}

func (c *SeekCommand) Run(ctx interface{}) error {
	guildID, _, _ := invoker(ctx)

	timestamp := stringArg(ctx, "time")
	if timestamp == "" {
		return reply(ctx, "You need to provide a timestamp. Usage: `seek [time]` (e.g. `seek 1:30`)")
	}

	target, err := ctrl(ctx).Seek(guildID, timestamp)
	if err != nil {
		return reply(ctx, userMessage(err))
	}
	return reply(ctx, fmt.Sprintf("Jumped to %s (%d seconds in).", timestamp, target))
}
