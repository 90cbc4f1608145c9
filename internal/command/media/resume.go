package media

import "github.com/bwmarrin/discordgo"

type ResumeCommand struct{}

func (c *ResumeCommand) Name() string        { return "resume" }
func (c *ResumeCommand) Description() string { return "Resume a paused playback" }
func (c *ResumeCommand) Aliases() []string   { return []string{"unpause"} }

func (c *ResumeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: c.Name(), Description: c.Description()}
}

func (c *ResumeCommand) Run(ctx interface{}) error {
	guildID, _, _ := invoker(ctx)

	if err := ctrl(ctx).Resume(guildID); err != nil {
		return reply(ctx, userMessage(err))
	}
	return reply(ctx, "Playback resumed.")
}
