package config

import (
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := env.ParseAs[Config]()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.DiscordToken)
	assert.Equal(t, "!", cfg.CommandPrefix)
	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, "ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, 2, cfg.FFmpegThreads)
	assert.Equal(t, "64k", cfg.AudioBitrate)
	assert.Equal(t, 5, cfg.ReconnectDelayMax)
}

func TestOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("COMMAND_PREFIX", "?")
	t.Setenv("PORT", "8080")
	t.Setenv("FFMPEG_PATH", "/usr/local/bin/ffmpeg")
	t.Setenv("AUDIO_BITRATE", "96k")

	cfg, err := env.ParseAs[Config]()
	require.NoError(t, err)

	assert.Equal(t, "?", cfg.CommandPrefix)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "/usr/local/bin/ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, "96k", cfg.AudioBitrate)
}

func TestMissingTokenFails(t *testing.T) {
	// No fallback credential may exist: an empty environment must be a
	// hard error, not a silently misconfigured bot.
	t.Setenv("DISCORD_TOKEN", "")

	_, err := env.ParseAs[Config]()
	require.Error(t, err)
}
