package discord

import (
	"fmt"
	"io"

	"github.com/bwmarrin/discordgo"

	"streamcast/internal/player"
	"streamcast/internal/stream"
)

// voiceAdapter implements player.Voice over a discordgo session.
type voiceAdapter struct {
	dg *discordgo.Session
}

func (v *voiceAdapter) Connect(guildID, channelID string) (player.Connection, error) {
	vc, err := v.dg.ChannelVoiceJoin(guildID, channelID, false, true)
	if err != nil {
		return nil, fmt.Errorf("failed to join voice channel: %w", err)
	}
	return &voiceConnection{vc: vc}, nil
}

type voiceConnection struct {
	vc *discordgo.VoiceConnection
}

func (c *voiceConnection) OpenSink(src io.ReadCloser, onIdle func()) (player.Sink, error) {
	return stream.New(c.vc, src, onIdle), nil
}

func (c *voiceConnection) Close() error {
	return c.vc.Disconnect()
}
