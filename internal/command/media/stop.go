package media

import "github.com/bwmarrin/discordgo"

type StopCommand struct{}

func (c *StopCommand) Name() string        { return "stop" }
func (c *StopCommand) Description() string { return "Stop playback and leave the voice channel" }
func (c *StopCommand) Aliases() []string   { return nil }

func (c *StopCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: c.Name(), Description: c.Description()}
}

func (c *StopCommand) Run(ctx interface{}) error {
	guildID, _, _ := invoker(ctx)

	if err := ctrl(ctx).Stop(guildID); err != nil {
		return reply(ctx, userMessage(err))
	}
	return reply(ctx, "Playback stopped, leaving the voice channel.")
}
