package media

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type PlayCommand struct{}

func (c *PlayCommand) Name() string        { return "play" }
func (c *PlayCommand) Description() string { return "Play media from a URL in your voice channel" }
func (c *PlayCommand) Aliases() []string   { return nil }

func (c *PlayCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "url",
				Description: "Direct http(s) link to the media",
				Required:    true,
			},
		},
	}
}

func (c *PlayCommand) Run(ctx interface{}) error {
	guildID, channelID, userID := invoker(ctx)

	url := stringArg(ctx, "url")
	if url == "" {
		return reply(ctx, "You need to provide a URL to play. Usage: `play [url]`")
	}

	voiceChannelID := findVoiceChannel(session(ctx), guildID, userID)

	edit, err := progressReply(ctx, fmt.Sprintf("Preparing to play: %s", url))
	if err != nil {
		return err
	}

	if err := ctrl(ctx).Play(guildID, voiceChannelID, channelID, url, edit); err != nil {
		edit(userMessage(err))
		return nil
	}

	edit(fmt.Sprintf("Now playing: %s", url))
	return nil
}
