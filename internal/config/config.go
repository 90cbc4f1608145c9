package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the bot reads from the environment. The Discord
// token has no default on purpose: it must be supplied externally.
type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN,required,notEmpty"`
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`
	HTTPPort      int    `env:"PORT" envDefault:"3000"`

	FFmpegPath        string `env:"FFMPEG_PATH" envDefault:"ffmpeg"`
	FFmpegThreads     int    `env:"FFMPEG_THREADS" envDefault:"2"`
	AudioBitrate      string `env:"AUDIO_BITRATE" envDefault:"64k"`
	ReconnectDelayMax int    `env:"RECONNECT_DELAY_MAX" envDefault:"5"`
}

// New loads .env if present and parses the configuration from the
// environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
