package media

import "github.com/bwmarrin/discordgo"

type PauseCommand struct{}

func (c *PauseCommand) Name() string        { return "pause" }
func (c *PauseCommand) Description() string { return "Pause the current playback" }
func (c *PauseCommand) Aliases() []string   { return nil }

func (c *PauseCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: c.Name(), Description: c.Description()}
}

func (c *PauseCommand) Run(ctx interface{}) error {
	guildID, _, _ := invoker(ctx)

	if err := ctrl(ctx).Pause(guildID); err != nil {
		return reply(ctx, userMessage(err))
	}
	return reply(ctx, "Playback paused.")
}
