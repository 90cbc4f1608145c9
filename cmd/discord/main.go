package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"streamcast/internal/command"
	"streamcast/internal/command/media"
	"streamcast/internal/config"
	"streamcast/internal/discord"
	"streamcast/internal/keepalive"
	v "streamcast/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v bot...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	for _, cmd := range media.Commands() {
		command.Register(command.ApplyMiddlewares(cmd,
			command.WithGuildOnly(),
			command.WithRateLimit(rate.Every(2*time.Second), 3),
			command.WithCommandLogger(),
		))
	}

	bot, err := discord.NewBot(cfg)
	if err != nil {
		log.Fatal(err)
	}

	go keepalive.Run(ctx, cfg.HTTPPort, cfg.CommandPrefix)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
