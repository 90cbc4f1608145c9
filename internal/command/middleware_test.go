package command

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type countingCommand struct {
	runs int
}

func (c *countingCommand) Name() string              { return "count" }
func (c *countingCommand) Description() string       { return "counts invocations" }
func (c *countingCommand) Aliases() []string         { return nil }
func (c *countingCommand) Run(ctx interface{}) error { c.runs++; return nil }

func msgCtx(guildID, userID string) *MessageContext {
	return &MessageContext{
		Event: &discordgo.MessageCreate{Message: &discordgo.Message{
			GuildID: guildID,
			Author:  &discordgo.User{ID: userID},
		}},
	}
}

func TestGuildOnlyRejectsDirectMessages(t *testing.T) {
	inner := &countingCommand{}
	cmd := ApplyMiddlewares(inner, WithGuildOnly())

	err := cmd.Run(msgCtx("", "u1"))
	require.Error(t, err)
	assert.Equal(t, 0, inner.runs)

	require.NoError(t, cmd.Run(msgCtx("g1", "u1")))
	assert.Equal(t, 1, inner.runs)
}

func TestRateLimitPerUser(t *testing.T) {
	inner := &countingCommand{}
	cmd := ApplyMiddlewares(inner, WithRateLimit(rate.Every(time.Hour), 1))

	require.NoError(t, cmd.Run(msgCtx("g1", "u1")))
	assert.ErrorIs(t, cmd.Run(msgCtx("g1", "u1")), ErrRateLimited)

	// A different user has their own budget.
	require.NoError(t, cmd.Run(msgCtx("g1", "u2")))
	assert.Equal(t, 2, inner.runs)
}

func TestMiddlewaresPreserveSlashDefinition(t *testing.T) {
	cmd := ApplyMiddlewares(&slashCommand{}, WithGuildOnly(), WithCommandLogger())

	sp, ok := cmd.(SlashProvider)
	require.True(t, ok)
	require.NotNil(t, sp.SlashDefinition())
	assert.Equal(t, "slashy", sp.SlashDefinition().Name)
}

type slashCommand struct {
	countingCommand
}

func (c *slashCommand) Name() string { return "slashy" }

func (c *slashCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: c.Name(), Description: c.Description()}
}
