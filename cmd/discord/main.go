// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guildwarden/internal/command"
	"guildwarden/internal/config"
	"guildwarden/internal/discord"
	"guildwarden/internal/health"
)

func main() {
	log.Println("[INFO] Starting guildwarden bot...")

	cfg, err := config.New()
	if err != nil {
		// No token, no connection attempt.
		log.Fatalf("[ERR] %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := command.NewRegistry()
	command.RegisterAll(registry, rand.NewSource(time.Now().UnixNano()))

	go health.Run(ctx, cfg.HealthAddr)
	go health.KeepAlive(ctx, cfg.KeepaliveURL, 10*time.Minute)

	bot := discord.NewBot(cfg, registry)

	errCh := make(chan error, 1)
	go func() {
		errCh <- bot.Run(ctx)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
