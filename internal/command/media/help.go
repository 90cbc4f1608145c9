package media

import (
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"

	"streamcast/internal/command"
	"streamcast/internal/version"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Show the available commands" }
func (c *HelpCommand) Aliases() []string   { return nil }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: c.Name(), Description: c.Description()}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	prefix := "/"
	if v, ok := ctx.(*command.MessageContext); ok {
		prefix = v.Prefix
	}

	cmds := command.All()
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })

	embed := &discordgo.MessageEmbed{
		Color:       embedColor,
		Title:       "Help - Bot Commands",
		Description: "Available commands:",
		Footer:      &discordgo.MessageEmbedFooter{Text: version.AppName},
	}
	for _, cmd := range cmds {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s%s", prefix, cmd.Name()),
			Value: cmd.Description(),
		})
	}

	switch v := ctx.(type) {
	case *command.MessageContext:
		_, err := v.Session.ChannelMessageSendEmbedReply(v.Event.ChannelID, embed, v.Event.Reference())
		return err
	case *command.SlashContext:
		return v.Session.InteractionRespond(v.Event.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
		})
	}
	return nil
}
